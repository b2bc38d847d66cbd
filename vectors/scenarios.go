package vectors

import "encoding/hex"

// Simple commits one message and draws one 32-byte challenge.
func Simple() Vector {
	return Vector{
		Name:  "simple",
		Label: "test protocol",
		Ops: []Op{
			{Kind: KindCommit, Label: "some label", Data: hex.EncodeToString([]byte("some data"))},
			{Kind: KindChallenge, Label: "challenge", Length: 32},
		},
	}
}

// Wraparound runs 32 rounds of challenge, a 1024-byte commit and a commit of
// the challenge just drawn. Each large commit crosses the rate boundary
// several times.
func Wraparound() Vector {
	v := Vector{
		Name:  "wraparound",
		Label: "test protocol",
		Ops: []Op{
			{Kind: KindCommit, Label: "step1", Data: hex.EncodeToString([]byte("some data"))},
		},
	}
	for i := 0; i < 32; i++ {
		v.Ops = append(v.Ops,
			Op{Kind: KindChallenge, Label: "challenge", Length: 32},
			Op{Kind: KindCommit, Label: "bigdata", Fill: 99, Length: 1024},
			Op{Kind: KindCommitLast, Label: "challengedata"},
		)
	}
	return v
}

// Builtin returns every built-in scenario.
func Builtin() []Vector {
	return []Vector{Simple(), Wraparound()}
}
