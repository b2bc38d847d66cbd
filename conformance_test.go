package transcript

import (
	"bytes"
	"testing"

	"github.com/mimoo/StrobeGo/strobe"
	"github.com/stretchr/testify/assert"
)

// strobeTranscript runs the same protocol on a full STROBE implementation:
// meta-AD(label || len) followed by AD(message) or PRF.
type strobeTranscript struct {
	s strobe.Strobe
}

func newStrobeTranscript(label string) *strobeTranscript {
	return &strobeTranscript{s: strobe.InitStrobe(label, 128)}
}

func (st *strobeTranscript) metadata(label []byte, n int) []byte {
	l := encodeLength(n)
	meta := make([]byte, 0, len(label)+len(l))
	meta = append(meta, label...)
	return append(meta, l[:]...)
}

func (st *strobeTranscript) commit(label, message []byte) {
	st.s.AD(true, st.metadata(label, len(message)))
	st.s.AD(false, message)
}

func (st *strobeTranscript) challenge(label []byte, out []byte) {
	st.s.AD(true, st.metadata(label, len(out)))
	copy(out, st.s.PRF(len(out)))
}

func TestEquivalenceSimple(t *testing.T) {
	assert := assert.New(t)

	real := New([]byte("test protocol"))
	test := newStrobeTranscript("test protocol")

	real.Commit([]byte("some label"), []byte("some data"))
	test.commit([]byte("some label"), []byte("some data"))

	realChallenge := make([]byte, 32)
	testChallenge := make([]byte, 32)
	real.Challenge([]byte("challenge"), realChallenge)
	test.challenge([]byte("challenge"), testChallenge)

	assert.Equal(testChallenge, realChallenge)
}

func TestEquivalenceWraparound(t *testing.T) {
	assert := assert.New(t)

	real := New([]byte("test protocol"))
	test := newStrobeTranscript("test protocol")

	data := bytes.Repeat([]byte{99}, 1024)

	real.Commit([]byte("step1"), []byte("some data"))
	test.commit([]byte("step1"), []byte("some data"))

	realChallenge := make([]byte, 32)
	testChallenge := make([]byte, 32)
	for i := 0; i < 32; i++ {
		real.Challenge([]byte("challenge"), realChallenge)
		test.challenge([]byte("challenge"), testChallenge)
		assert.Equal(testChallenge, realChallenge, "round %d", i)

		real.Commit([]byte("bigdata"), data)
		test.commit([]byte("bigdata"), data)

		real.Commit([]byte("challengedata"), realChallenge)
		test.commit([]byte("challengedata"), testChallenge)
	}
}

func TestEquivalenceLongChallenges(t *testing.T) {
	assert := assert.New(t)

	real := New([]byte("long outputs"))
	test := newStrobeTranscript("long outputs")

	for _, n := range []int{1, 2, strobeR - 1, strobeR, strobeR + 1, 3*strobeR + 5} {
		real.Commit([]byte("n"), encodeLengthSlice(n))
		test.commit([]byte("n"), encodeLengthSlice(n))

		realChallenge := make([]byte, n)
		testChallenge := make([]byte, n)
		real.Challenge([]byte("wide"), realChallenge)
		test.challenge([]byte("wide"), testChallenge)
		assert.Equal(testChallenge, realChallenge, "length %d", n)
	}
}

func encodeLengthSlice(n int) []byte {
	l := encodeLength(n)
	return l[:]
}
