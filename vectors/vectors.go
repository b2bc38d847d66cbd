// Package vectors describes transcript operation sequences and the challenge
// bytes they must produce, so independent implementations can be checked
// against each other.
package vectors

import (
	"bytes"
	"encoding/hex"

	"github.com/MixinNetwork/transcript-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("process", "vectors")

// Operation kinds.
const (
	KindCommit     = "commit"
	KindCommitLast = "commit-last"
	KindChallenge  = "challenge"
)

// ErrMismatch reports a challenge that differs from its recorded Expect value.
var ErrMismatch = errors.New("vectors: challenge mismatch")

// maxLength bounds the message and challenge sizes a vector may request.
const maxLength = 1 << 24

// Vector is a named sequence of operations on a transcript created with Label.
type Vector struct {
	Name  string `mapstructure:"name" json:"name" yaml:"name"`
	Label string `mapstructure:"label" json:"label" yaml:"label"`
	Ops   []Op   `mapstructure:"ops" json:"ops" yaml:"ops"`
}

// Op is one transcript call. A commit takes its message from Data (hex) or,
// when Data is empty, Length bytes of Fill. commit-last commits the output of
// the previous challenge.
type Op struct {
	Kind   string `mapstructure:"kind" json:"kind" yaml:"kind"`
	Label  string `mapstructure:"label" json:"label" yaml:"label"`
	Data   string `mapstructure:"data" json:"data,omitempty" yaml:"data,omitempty"`
	Fill   int    `mapstructure:"fill" json:"fill,omitempty" yaml:"fill,omitempty"`
	Length int    `mapstructure:"length" json:"length,omitempty" yaml:"length,omitempty"`
	Expect string `mapstructure:"expect" json:"expect,omitempty" yaml:"expect,omitempty"`
}

func (op Op) message() ([]byte, error) {
	if op.Data != "" {
		msg, err := hex.DecodeString(op.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "op %q data", op.Label)
		}
		return msg, nil
	}
	if op.Fill < 0 || op.Fill > 0xff {
		return nil, errors.Errorf("op %q fill %d out of byte range", op.Label, op.Fill)
	}
	return bytes.Repeat([]byte{byte(op.Fill)}, op.Length), nil
}

// Run executes v on a fresh transcript and returns every challenge output in
// order.
func Run(v Vector, opts ...transcript.Option) ([][]byte, error) {
	t := transcript.New([]byte(v.Label), opts...)
	defer t.Destroy()

	var outputs [][]byte
	for i, op := range v.Ops {
		if op.Length < 0 {
			return nil, errors.Errorf("vector %q op %d: negative length", v.Name, i)
		}
		if op.Length > maxLength {
			return nil, errors.Errorf("vector %q op %d: length %d exceeds %d", v.Name, i, op.Length, maxLength)
		}
		switch op.Kind {
		case KindCommit:
			msg, err := op.message()
			if err != nil {
				return nil, errors.Wrapf(err, "vector %q op %d", v.Name, i)
			}
			t.Commit([]byte(op.Label), msg)
		case KindCommitLast:
			if len(outputs) == 0 {
				return nil, errors.Errorf("vector %q op %d: no challenge to commit", v.Name, i)
			}
			t.Commit([]byte(op.Label), outputs[len(outputs)-1])
		case KindChallenge:
			out := make([]byte, op.Length)
			t.Challenge([]byte(op.Label), out)
			outputs = append(outputs, out)
		default:
			return nil, errors.Errorf("vector %q op %d: unknown kind %q", v.Name, i, op.Kind)
		}
	}
	return outputs, nil
}

// Generate returns a copy of v with every challenge's Expect filled in.
func Generate(v Vector, opts ...transcript.Option) (Vector, error) {
	outputs, err := Run(v, opts...)
	if err != nil {
		return Vector{}, err
	}

	out := v
	out.Ops = make([]Op, len(v.Ops))
	copy(out.Ops, v.Ops)
	next := 0
	for i := range out.Ops {
		if out.Ops[i].Kind != KindChallenge {
			continue
		}
		out.Ops[i].Expect = hex.EncodeToString(outputs[next])
		next++
	}
	log.WithField("vector", v.Name).WithField("challenges", next).Debugln("generated vector")
	return out, nil
}

// Verify runs v and compares every challenge that carries an Expect value.
func Verify(v Vector, opts ...transcript.Option) error {
	outputs, err := Run(v, opts...)
	if err != nil {
		return err
	}

	next := 0
	for i, op := range v.Ops {
		if op.Kind != KindChallenge {
			continue
		}
		got := outputs[next]
		next++
		if op.Expect == "" {
			continue
		}
		want, err := hex.DecodeString(op.Expect)
		if err != nil {
			return errors.Wrapf(err, "vector %q op %d (%s) expect", v.Name, i, op.Label)
		}
		if !bytes.Equal(got, want) {
			return errors.Wrapf(ErrMismatch, "vector %q op %d (%s): got %x", v.Name, i, op.Label, got)
		}
	}
	return nil
}
