package transcript

import "github.com/pkg/errors"

// strobeR is the rate of STROBE-128 over Keccak-f[1600]: 200 - 128/4 - 2.
const strobeR = 166

// STROBE operation flags.
const (
	flagI byte = 1 << iota
	flagA
	flagC
	flagT
	flagM
	flagK
)

const strobeVersion = "STROBEv1.0.2"

// strobe128 is the subset of STROBE-128 needed for transcripts: meta-AD, AD
// and PRF. Bytes [strobeR, StateSize) are capacity and are only touched by the
// permutation and its padding.
type strobe128 struct {
	state    [StateSize]byte
	pos      byte
	posBegin byte
	curFlags byte
	perm     Permutation
}

func newStrobe128(label []byte, perm Permutation) strobe128 {
	s := strobe128{perm: perm}
	copy(s.state[:6], []byte{1, strobeR + 2, 1, 0, 1, 96})
	copy(s.state[6:18], strobeVersion)
	s.perm.Permute(&s.state)

	s.metaAD(label, false)
	return s
}

func (s *strobe128) metaAD(data []byte, more bool) {
	s.beginOp(flagM|flagA, more)
	s.absorb(data)
}

func (s *strobe128) ad(data []byte, more bool) {
	s.beginOp(flagA, more)
	s.absorb(data)
}

func (s *strobe128) prf(data []byte, more bool) {
	s.beginOp(flagI|flagA|flagC, more)
	s.squeeze(data)
}

func (s *strobe128) runF() {
	s.state[s.pos] ^= s.posBegin
	s.state[s.pos+1] ^= 0x04
	s.state[strobeR+1] ^= 0x80
	s.perm.Permute(&s.state)
	s.pos = 0
	s.posBegin = 0
}

func (s *strobe128) absorb(data []byte) {
	for _, b := range data {
		s.state[s.pos] ^= b
		s.pos++
		if s.pos == strobeR {
			s.runF()
		}
	}
}

// squeeze copies rate bytes out and zeroes the positions it consumed.
func (s *strobe128) squeeze(data []byte) {
	for i := range data {
		data[i] = s.state[s.pos]
		s.state[s.pos] = 0
		s.pos++
		if s.pos == strobeR {
			s.runF()
		}
	}
}

func (s *strobe128) beginOp(flags byte, more bool) {
	if more {
		if s.curFlags != flags {
			panic(errors.Wrapf(ErrContinuationMismatch, "flags 0x%02x, running 0x%02x", flags, s.curFlags))
		}
		return
	}
	if flags&flagT != 0 {
		panic("transcript: transport operations are not supported")
	}

	oldBegin := s.posBegin
	s.posBegin = s.pos + 1
	s.curFlags = flags

	s.absorb([]byte{oldBegin, flags})

	// C and K operations must see every byte absorbed before them.
	forceF := flags&(flagC|flagK) != 0
	if forceF && s.pos != 0 {
		s.runF()
	}
}

func (s *strobe128) clear() {
	wipe(s.state[:])
	s.pos = 0
	s.posBegin = 0
	s.curFlags = 0
}
