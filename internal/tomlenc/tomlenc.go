// Package tomlenc renders preprocessed trie proofs in the TOML dialect
// the downstream prover reads: byte arrays as multi-line lists of
// 0x-prefixed two-digit hex literals.
package tomlenc

import (
	"fmt"
	"strings"

	"github.com/aragonzkresearch/noir-trie-proofs/pkg/mpt"
)

// Root renders a root hash as a top-level TOML entry.
func Root(name string, root []byte) string {
	return fmt.Sprintf("%s = %s", name, hexArray(root))
}

// Proof renders a trie proof as a TOML table named name.
func Proof(name string, tp *mpt.TrieProof) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s]\n", name)
	fmt.Fprintf(&sb, "key = %s\n", hexArray(tp.Key))
	fmt.Fprintf(&sb, "proof = %s\n", hexArray(tp.Proof))
	fmt.Fprintf(&sb, "depth = %#02x\n", tp.Depth)
	fmt.Fprintf(&sb, "value = %s", hexArray(tp.Value))
	return sb.String()
}

func hexArray(b []byte) string {
	if len(b) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, x := range b {
		fmt.Fprintf(&sb, "    %#02x,\n", x)
	}
	sb.WriteString("]")
	return sb.String()
}
