package tomlenc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aragonzkresearch/noir-trie-proofs/pkg/mpt"
)

func TestRoot(t *testing.T) {
	got := Root("state_root", []byte{0x52, 0xE4})
	require.Equal(t, "state_root = [\n    0x52,\n    0xe4,\n]", got)
}

func TestProof(t *testing.T) {
	tp, err := mpt.Preprocess(
		[][]byte{{0xAA, 0xBB}, {0xCC}},
		[]byte{0x01, 0x02},
		[]byte{0x01},
		3, 4, 2,
	)
	require.NoError(t, err)

	want := "[storage_proof]\n" +
		"key = [\n    0x01,\n    0x02,\n]\n" +
		"proof = [\n" +
		"    0xaa,\n    0xbb,\n    0x00,\n    0x00,\n" +
		"    0xcc,\n    0x00,\n    0x00,\n    0x00,\n" +
		"    0x00,\n    0x00,\n    0x00,\n    0x00,\n" +
		"]\n" +
		"depth = 0x02\n" +
		"value = [\n    0x00,\n    0x01,\n]"

	require.Equal(t, want, Proof("storage_proof", tp))
}

func TestEmptyArray(t *testing.T) {
	require.Equal(t, "root = []", Root("root", nil))
}
