// Package protocol defines typed transcript operations over ristretto255 and
// the proofs built from them.
package protocol

import (
	"encoding/binary"

	"github.com/MixinNetwork/transcript-go"
	"github.com/bwesterb/go-ristretto"
)

// MerlinProtocolLabel seeds transcripts compatible with merlin v1.0.
const MerlinProtocolLabel = "Merlin v1.0"

// NewMerlinTranscript returns a transcript producing the same challenges as a
// merlin v1.0 transcript created with appLabel.
func NewMerlinTranscript(appLabel string, opts ...transcript.Option) *transcript.Transcript {
	t := transcript.New([]byte(MerlinProtocolLabel), opts...)
	DomainSep(t, appLabel)
	return t
}

// DomainSep commits label under "dom-sep".
func DomainSep(t *transcript.Transcript, label string) {
	t.Commit([]byte("dom-sep"), []byte(label))
}

// CommitUint64 commits v as 8 little-endian bytes.
func CommitUint64(t *transcript.Transcript, label string, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	t.Commit([]byte(label), buf[:])
}

// CommitScalar commits the canonical encoding of s.
func CommitScalar(t *transcript.Transcript, label string, s *ristretto.Scalar) {
	t.Commit([]byte(label), s.Bytes())
}

// CommitPoint commits the compressed encoding of p.
func CommitPoint(t *transcript.Transcript, label string, p *ristretto.Point) {
	t.Commit([]byte(label), p.Bytes())
}

// ChallengeScalar draws 64 bytes and reduces them modulo the group order.
func ChallengeScalar(t *transcript.Transcript, label string) *ristretto.Scalar {
	var buf [64]byte
	defer wipe(buf[:])
	t.Challenge([]byte(label), buf[:])

	var s ristretto.Scalar
	return s.SetReduced(&buf)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
