package transcript

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrFramingOverflow is raised when a message or challenge length does not
	// fit the 4-byte length field.
	ErrFramingOverflow = errors.New("transcript: length exceeds 4-byte framing")
	// ErrDestroyed is raised when a destroyed transcript is used again.
	ErrDestroyed = errors.New("transcript: use after destroy")
	// ErrContinuationMismatch is raised when an operation continues a run of a
	// different kind.
	ErrContinuationMismatch = errors.New("transcript: continuation of a different operation")
)

func encodeLength(n int) [4]byte {
	if uint64(n) > math.MaxUint32 {
		panic(errors.Wrapf(ErrFramingOverflow, "length %d", n))
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(n))
	return buf
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
