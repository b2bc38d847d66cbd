package vectors

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MixinNetwork/transcript-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleMatchesTranscript(t *testing.T) {
	assert := assert.New(t)

	outputs, err := Run(Simple())
	require.NoError(t, err)
	require.Len(t, outputs, 1)

	tr := transcript.New([]byte("test protocol"))
	tr.Commit([]byte("some label"), []byte("some data"))
	expect := make([]byte, 32)
	tr.Challenge([]byte("challenge"), expect)
	assert.Equal(expect, outputs[0])
}

func TestWraparound(t *testing.T) {
	assert := assert.New(t)

	outputs, err := Run(Wraparound())
	require.NoError(t, err)
	assert.Len(outputs, 32)
	for i := 1; i < len(outputs); i++ {
		assert.NotEqual(outputs[i-1], outputs[i])
	}
}

func TestGenerateVerify(t *testing.T) {
	assert := assert.New(t)

	for _, v := range Builtin() {
		generated, err := Generate(v)
		require.NoError(t, err)
		assert.NoError(Verify(generated), v.Name)

		// The source vector is left untouched.
		for _, op := range v.Ops {
			assert.Empty(op.Expect)
		}

		tampered := generated
		tampered.Ops = append([]Op(nil), generated.Ops...)
		for i := range tampered.Ops {
			if tampered.Ops[i].Kind == KindChallenge {
				tampered.Ops[i].Expect = hex.EncodeToString(make([]byte, 32))
				break
			}
		}
		assert.True(errors.Is(Verify(tampered), ErrMismatch), v.Name)
	}
}

func TestRunErrors(t *testing.T) {
	vectors := map[string]Vector{
		"unknown kind": {Name: "bad", Ops: []Op{{Kind: "ratchet"}}},
		"no challenge": {Name: "bad", Ops: []Op{{Kind: KindCommitLast, Label: "x"}}},
		"bad hex":      {Name: "bad", Ops: []Op{{Kind: KindCommit, Label: "x", Data: "zz"}}},
		"bad fill":     {Name: "bad", Ops: []Op{{Kind: KindCommit, Label: "x", Fill: 256, Length: 1}}},
		"negative":     {Name: "bad", Ops: []Op{{Kind: KindChallenge, Label: "x", Length: -1}}},
		"huge":         {Name: "bad", Ops: []Op{{Kind: KindChallenge, Label: "x", Length: maxLength + 1}}},
		"huge fill":    {Name: "bad", Ops: []Op{{Kind: KindCommit, Label: "x", Fill: 1, Length: maxLength + 1}}},
	}
	for name, v := range vectors {
		_, err := Run(v)
		assert.Error(t, err, name)
	}
}

func TestVerifyExpectEncoding(t *testing.T) {
	assert := assert.New(t)

	generated, err := Generate(Simple())
	require.NoError(t, err)

	upper := generated
	upper.Ops = append([]Op(nil), generated.Ops...)
	upper.Ops[1].Expect = strings.ToUpper(generated.Ops[1].Expect)
	assert.NotEqual(generated.Ops[1].Expect, upper.Ops[1].Expect)
	assert.NoError(Verify(upper))

	upper.Ops[1].Expect = "not hex"
	err = Verify(upper)
	assert.Error(err)
	assert.False(errors.Is(err, ErrMismatch))
}

func TestSaveLoad(t *testing.T) {
	assert := assert.New(t)

	var generated []Vector
	for _, v := range Builtin() {
		g, err := Generate(v)
		require.NoError(t, err)
		generated = append(generated, g)
	}

	for _, ext := range []string{"yaml", "json", "toml"} {
		path := filepath.Join(t.TempDir(), "vectors."+ext)
		require.NoError(t, Save(path, generated))

		loaded, err := Load(path)
		require.NoError(t, err, ext)
		assert.Equal(generated, loaded, ext)
		for _, v := range loaded {
			assert.NoError(Verify(v), ext)
		}
	}
}

func TestLoadHandwritten(t *testing.T) {
	assert := assert.New(t)

	generated, err := Generate(Simple())
	require.NoError(t, err)

	doc := `vectors:
  - name: simple
    label: test protocol
    ops:
      - kind: commit
        label: some label
        data: "` + hex.EncodeToString([]byte("some data")) + `"
      - kind: challenge
        label: challenge
        length: 32
        expect: "` + generated.Ops[1].Expect + `"
`
	path := filepath.Join(t.TempDir(), "handwritten.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal("simple", loaded[0].Name)
	assert.Equal(32, loaded[0].Ops[1].Length)
	assert.NoError(Verify(loaded[0]))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
