package keccakf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"
)

func TestPermuteZeroState(t *testing.T) {
	assert := assert.New(t)

	var state [Size]byte
	Permute(&state)
	assert.Equal(uint64(0xF1258F7940E1DDE7), binary.LittleEndian.Uint64(state[0:]))
	assert.Equal(uint64(0x84D5CCF933C0478A), binary.LittleEndian.Uint64(state[8:]))
}

// keccak256 is a minimal Keccak-256 sponge over Permute, used to check the
// permutation against x/crypto.
func keccak256(msg []byte) []byte {
	const rate = 136
	var state [Size]byte
	for len(msg) >= rate {
		for i := 0; i < rate; i++ {
			state[i] ^= msg[i]
		}
		Permute(&state)
		msg = msg[rate:]
	}
	for i := range msg {
		state[i] ^= msg[i]
	}
	state[len(msg)] ^= 0x01
	state[rate-1] ^= 0x80
	Permute(&state)
	return append([]byte(nil), state[:32]...)
}

func TestPermuteMatchesLegacyKeccak(t *testing.T) {
	assert := assert.New(t)

	inputs := [][]byte{
		nil,
		[]byte("abc"),
		bytes.Repeat([]byte{99}, 135),
		bytes.Repeat([]byte{99}, 136),
		bytes.Repeat([]byte{7}, 1024),
	}
	for _, in := range inputs {
		h := sha3.NewLegacyKeccak256()
		h.Write(in)
		assert.Equal(h.Sum(nil), keccak256(in), "input length %d", len(in))
	}
}
