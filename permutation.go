package transcript

import "github.com/MixinNetwork/transcript-go/keccakf"

// StateSize is the width of the sponge state in bytes.
const StateSize = keccakf.Size

// Permutation mixes the full sponge state. Implementations must be pure: the
// output depends only on the input state.
type Permutation interface {
	Permute(state *[StateSize]byte)
}

// PermutationFunc adapts a plain function to Permutation.
type PermutationFunc func(state *[StateSize]byte)

func (f PermutationFunc) Permute(state *[StateSize]byte) {
	f(state)
}

// KeccakF1600 is the default permutation, bit-exact with STROBE v1.0.2.
var KeccakF1600 Permutation = PermutationFunc(keccakf.Permute)
