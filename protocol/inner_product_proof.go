package protocol

import (
	"fmt"
	"math/bits"

	"github.com/MixinNetwork/transcript-go"
	"github.com/bwesterb/go-ristretto"
	"github.com/pkg/errors"
)

// InnerProductProof shows knowledge of vectors a, b such that
// P = <a, G'> + <b, H'> + <a, b>*Q, where G' and H' are G and H scaled by
// gFactors and hFactors.
type InnerProductProof struct {
	LVec []*ristretto.Point
	RVec []*ristretto.Point
	A, B *ristretto.Scalar
}

func InnerproductDomainSep(t *transcript.Transcript, n uint64) {
	DomainSep(t, "ipp v1")
	CommitUint64(t, "n", n)
}

func checkInnerProductInput(n int, lengths ...int) {
	for _, l := range lengths {
		if l != n {
			panic(fmt.Sprintf("Invalid input vectors %d, %v", n, lengths))
		}
	}
	if n == 0 || bits.OnesCount32(uint32(n)) > 1 {
		panic(fmt.Sprintf("Invalid n %d", n))
	}
}

func scaledGenerators(factors []*ristretto.Scalar, points []*ristretto.Point) []*ristretto.Point {
	out := make([]*ristretto.Point, len(points))
	for i := range points {
		var p ristretto.Point
		out[i] = p.ScalarMult(points[i], factors[i])
	}
	return out
}

// CreateInnerProductProof folds a and b down to single scalars, committing
// L and R and drawing one challenge per round. The input vectors are not
// modified.
func CreateInnerProductProof(t *transcript.Transcript, Q *ristretto.Point, gFactors, hFactors []*ristretto.Scalar, gVec, hVec []*ristretto.Point, aVec, bVec []*ristretto.Scalar) *InnerProductProof {
	n := len(gVec)
	checkInnerProductInput(n, len(hVec), len(aVec), len(bVec), len(gFactors), len(hFactors))

	InnerproductDomainSep(t, uint64(n))

	G := scaledGenerators(gFactors, gVec)
	H := scaledGenerators(hFactors, hVec)
	a := copyScalars(aVec)
	b := copyScalars(bVec)

	var LVec, RVec []*ristretto.Point
	for n > 1 {
		n = n / 2
		aL, aR := a[:n], a[n:]
		bL, bR := b[:n], b[n:]
		gL, gR := G[:n], G[n:]
		hL, hR := H[:n], H[n:]

		cL := innerProduct(aL, bR)
		cR := innerProduct(aR, bL)

		L := multiscalarMul(chainScalars(aL, bR, cL), chainPoints(gR, hL, Q))
		R := multiscalarMul(chainScalars(aR, bL, cR), chainPoints(gL, hR, Q))
		LVec = append(LVec, L)
		RVec = append(RVec, R)

		CommitPoint(t, "L", L)
		CommitPoint(t, "R", R)
		u := ChallengeScalar(t, "u")
		var uInv ristretto.Scalar
		uInv.Inverse(u)

		for i := 0; i < n; i++ {
			var r1, r2 ristretto.Scalar
			aL[i].Add(r1.Mul(aL[i], u), r2.Mul(&uInv, aR[i]))
			var r3, r4 ristretto.Scalar
			bL[i].Add(r3.Mul(bL[i], &uInv), r4.Mul(u, bR[i]))
			gL[i] = multiscalarMul([]*ristretto.Scalar{&uInv, u}, []*ristretto.Point{gL[i], gR[i]})
			hL[i] = multiscalarMul([]*ristretto.Scalar{u, &uInv}, []*ristretto.Point{hL[i], hR[i]})
		}

		a, b, G, H = aL, bL, gL, hL
	}

	return &InnerProductProof{
		LVec: LVec,
		RVec: RVec,
		A:    a[0],
		B:    b[0],
	}
}

// Verify replays the prover's transcript on t and checks the proof against P.
func (p *InnerProductProof) Verify(t *transcript.Transcript, n int, P, Q *ristretto.Point, gFactors, hFactors []*ristretto.Scalar, gVec, hVec []*ristretto.Point) error {
	if n == 0 || bits.OnesCount32(uint32(n)) > 1 {
		return errors.Errorf("ipp: invalid n %d", n)
	}
	if len(gVec) != n || len(hVec) != n || len(gFactors) != n || len(hFactors) != n {
		return errors.Errorf("ipp: generator lengths do not match n %d", n)
	}
	if p == nil {
		return errors.Wrap(ErrInvalidProof, "ipp: nil proof")
	}
	rounds := bits.TrailingZeros32(uint32(n))
	if len(p.LVec) != rounds || len(p.RVec) != rounds || p.A == nil || p.B == nil {
		return errors.Wrapf(ErrInvalidProof, "ipp: expected %d rounds", rounds)
	}
	for j := 0; j < rounds; j++ {
		if p.LVec[j] == nil || p.RVec[j] == nil {
			return errors.Wrapf(ErrInvalidProof, "ipp: missing point in round %d", j)
		}
	}

	InnerproductDomainSep(t, uint64(n))

	G := scaledGenerators(gFactors, gVec)
	H := scaledGenerators(hFactors, hVec)
	var acc ristretto.Point
	acc.SetZero()
	acc.Add(&acc, P)

	for j := 0; j < rounds; j++ {
		CommitPoint(t, "L", p.LVec[j])
		CommitPoint(t, "R", p.RVec[j])
		u := ChallengeScalar(t, "u")
		var uInv, uSq, uInvSq ristretto.Scalar
		uInv.Inverse(u)
		uSq.Mul(u, u)
		uInvSq.Mul(&uInv, &uInv)

		acc.Add(&acc, multiscalarMul([]*ristretto.Scalar{&uSq, &uInvSq}, []*ristretto.Point{p.LVec[j], p.RVec[j]}))

		n = n / 2
		for i := 0; i < n; i++ {
			G[i] = multiscalarMul([]*ristretto.Scalar{&uInv, u}, []*ristretto.Point{G[i], G[n+i]})
			H[i] = multiscalarMul([]*ristretto.Scalar{u, &uInv}, []*ristretto.Point{H[i], H[n+i]})
		}
		G, H = G[:n], H[:n]
	}

	var ab ristretto.Scalar
	ab.Mul(p.A, p.B)
	expect := multiscalarMul([]*ristretto.Scalar{p.A, p.B, &ab}, []*ristretto.Point{G[0], H[0], Q})
	if !expect.Equals(&acc) {
		return errors.Wrap(ErrInvalidProof, "ipp")
	}
	return nil
}

func (p *InnerProductProof) ToBytes() []byte {
	var buf []byte

	for i := range p.LVec {
		buf = append(buf, p.LVec[i].Bytes()...)
		buf = append(buf, p.RVec[i].Bytes()...)
	}
	buf = append(buf, p.A.Bytes()...)
	buf = append(buf, p.B.Bytes()...)

	return buf
}

func chainScalars(a, b []*ristretto.Scalar, c *ristretto.Scalar) []*ristretto.Scalar {
	chain := make([]*ristretto.Scalar, 0, len(a)+len(b)+1)
	chain = append(chain, a...)
	chain = append(chain, b...)
	return append(chain, c)
}

func chainPoints(g, h []*ristretto.Point, q *ristretto.Point) []*ristretto.Point {
	chain := make([]*ristretto.Point, 0, len(g)+len(h)+1)
	chain = append(chain, g...)
	chain = append(chain, h...)
	return append(chain, q)
}
