package transcript

import (
	"math"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Transcript is a transcript of a public-coin argument. Prover messages are
// added with Commit and verifier challenges are drawn with Challenge.
//
// Protocol implementations should take a *Transcript from their caller rather
// than create one, so that every proof is domain separated by the caller's
// label and protocols compose sequentially on one transcript.
//
// A Transcript is not safe for concurrent use. Clone forks it into an
// independent copy.
type Transcript struct {
	strobe    strobe128
	logger    logrus.FieldLogger
	destroyed bool
}

// New creates a transcript domain separated by label.
func New(label []byte, opts ...Option) *Transcript {
	cfg := config{perm: KeccakF1600}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Transcript{
		strobe: newStrobe128(label, cfg.perm),
		logger: cfg.logger,
	}
	t.trace("init", label, 0)
	runtime.SetFinalizer(t, (*Transcript).Destroy)
	return t
}

// Commit adds a prover message, framed by label and its length.
func (t *Transcript) Commit(label, message []byte) {
	t.mustUsable()
	dataLen := t.frameLength(len(message))
	defer wipe(dataLen[:])

	t.strobe.metaAD(label, false)
	t.strobe.metaAD(dataLen[:], true)
	t.strobe.ad(message, false)
	t.trace("commit", label, len(message))
}

// Challenge fills out with challenge bytes bound to label, len(out) and every
// operation before it.
func (t *Transcript) Challenge(label []byte, out []byte) {
	t.mustUsable()
	dataLen := t.frameLength(len(out))
	defer wipe(dataLen[:])

	t.strobe.metaAD(label, false)
	t.strobe.metaAD(dataLen[:], true)
	t.strobe.prf(out, false)
	t.trace("challenge", label, len(out))
}

// Clone returns an independent copy of t sharing its history so far.
func (t *Transcript) Clone() *Transcript {
	t.mustUsable()
	c := &Transcript{
		strobe: t.strobe,
		logger: t.logger,
	}
	runtime.SetFinalizer(c, (*Transcript).Destroy)
	return c
}

// Destroy overwrites the transcript state. The transcript cannot be used
// afterwards.
func (t *Transcript) Destroy() {
	t.strobe.clear()
	t.destroyed = true
	runtime.SetFinalizer(t, nil)
}

// frameLength encodes n. A length that does not fit destroys t before the
// panic so that no partially framed state survives.
func (t *Transcript) frameLength(n int) [4]byte {
	if uint64(n) > math.MaxUint32 {
		t.Destroy()
	}
	return encodeLength(n)
}

func (t *Transcript) mustUsable() {
	if t.destroyed {
		panic(errors.WithStack(ErrDestroyed))
	}
}

func (t *Transcript) trace(op string, label []byte, n int) {
	if t.logger == nil {
		return
	}
	t.logger.WithFields(logrus.Fields{
		"op":    op,
		"label": string(label),
		"len":   n,
	}).Debugln("transcript operation")
}
