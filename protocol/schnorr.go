package protocol

import (
	"github.com/MixinNetwork/transcript-go"
	"github.com/bwesterb/go-ristretto"
	"github.com/pkg/errors"
)

// ErrInvalidProof is returned by every proof verifier on rejection.
var ErrInvalidProof = errors.New("protocol: proof verification failed")

// SchnorrProof proves knowledge of x such that X = x*B.
type SchnorrProof struct {
	R *ristretto.Point
	S *ristretto.Scalar
}

func schnorrDomainSep(t *transcript.Transcript, X *ristretto.Point) {
	DomainSep(t, "schnorr v1")
	CommitPoint(t, "X", X)
}

// ProveDLog returns X = x*B and a proof of knowledge of x bound to t.
func ProveDLog(t *transcript.Transcript, x *ristretto.Scalar) (*ristretto.Point, *SchnorrProof) {
	var X ristretto.Point
	X.ScalarMultBase(x)
	schnorrDomainSep(t, &X)

	var k ristretto.Scalar
	k.Rand()
	var R ristretto.Point
	R.ScalarMultBase(&k)
	CommitPoint(t, "R", &R)

	c := ChallengeScalar(t, "c")
	var s, cx ristretto.Scalar
	s.Add(&k, cx.Mul(c, x))
	k.SetZero()

	return &X, &SchnorrProof{R: &R, S: &s}
}

// Verify checks the proof against X, replaying the prover's transcript on t.
func (p *SchnorrProof) Verify(t *transcript.Transcript, X *ristretto.Point) error {
	if p == nil || p.R == nil || p.S == nil {
		return errors.Wrap(ErrInvalidProof, "schnorr: incomplete proof")
	}
	schnorrDomainSep(t, X)
	CommitPoint(t, "R", p.R)
	c := ChallengeScalar(t, "c")

	var lhs, cX, rhs ristretto.Point
	lhs.ScalarMultBase(p.S)
	rhs.Add(p.R, cX.ScalarMult(X, c))
	if !lhs.Equals(&rhs) {
		return errors.Wrap(ErrInvalidProof, "schnorr")
	}
	return nil
}
