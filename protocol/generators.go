package protocol

import (
	"encoding/binary"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

type PedersenGens struct {
	B         *ristretto.Point
	BBlinding *ristretto.Point
}

func NewPedersenGens() *PedersenGens {
	var base ristretto.Point
	base.SetBase()

	return &PedersenGens{
		B:         hashToPoint(&base),
		BBlinding: &base,
	}
}

// Commit returns value*B + blinding*BBlinding.
func (pg *PedersenGens) Commit(value, blinding *ristretto.Scalar) *ristretto.Point {
	return multiscalarMul([]*ristretto.Scalar{value, blinding}, []*ristretto.Point{pg.B, pg.BBlinding})
}

func (pg *PedersenGens) CommitUint64(value uint64, blinding *ristretto.Scalar) *ristretto.Point {
	return pg.Commit(uint64ToScalar(value), blinding)
}

type BulletproofGens struct {
	GensCapacity  int
	PartyCapacity int
	GVec          [][]*ristretto.Point
	HVec          [][]*ristretto.Point
}

func NewBulletproofGens(gensCapacity, partyCapacity int) *BulletproofGens {
	b := &BulletproofGens{
		PartyCapacity: partyCapacity,
		GVec:          make([][]*ristretto.Point, partyCapacity),
		HVec:          make([][]*ristretto.Point, partyCapacity),
	}
	b.IncreaseCapacity(gensCapacity)
	return b
}

// IncreaseCapacity extends every party's generators to capacity points.
// Existing generators are kept.
func (b *BulletproofGens) IncreaseCapacity(capacity int) {
	if b.GensCapacity >= capacity {
		return
	}
	for i := 0; i < b.PartyCapacity; i++ {
		b.GVec[i] = append(b.GVec[i], partyGenerators('G', i, b.GensCapacity, capacity)...)
		b.HVec[i] = append(b.HVec[i], partyGenerators('H', i, b.GensCapacity, capacity)...)
	}
	b.GensCapacity = capacity
}

func partyGenerators(kind byte, party, from, to int) []*ristretto.Point {
	var index [4]byte
	binary.LittleEndian.PutUint32(index[:], uint32(party))
	label := append([]byte{kind}, index[:]...)

	chain := NewGeneratorsChain(label)
	chain.FastForward(from)
	points := make([]*ristretto.Point, to-from)
	for j := range points {
		points[j] = chain.Next()
	}
	return points
}

type GeneratorsChain struct {
	sha3.ShakeHash
}

func NewGeneratorsChain(label []byte) *GeneratorsChain {
	h := sha3.NewShake256()
	h.Write([]byte("GeneratorsChain"))
	h.Write(label)
	return &GeneratorsChain{h}
}

func (c *GeneratorsChain) FastForward(n int) {
	var data [64]byte
	for i := 0; i < n; i++ {
		c.Read(data[:])
	}
}

func (c *GeneratorsChain) Next() *ristretto.Point {
	var data [64]byte
	c.Read(data[:])
	return pointFromUniformBytes(data[:])
}

type BulletproofGensShare struct {
	Gens  *BulletproofGens
	Share int
}

func (b *BulletproofGens) Share(j int) *BulletproofGensShare {
	return &BulletproofGensShare{
		Gens:  b,
		Share: j,
	}
}

func (g *BulletproofGensShare) G(n int) []*ristretto.Point {
	return g.Gens.GVec[g.Share][:n]
}

func (g *BulletproofGensShare) H(n int) []*ristretto.Point {
	return g.Gens.HVec[g.Share][:n]
}
