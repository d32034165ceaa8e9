package mpt

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// TerminalValue extracts the resolved value from a raw state proof: the
// last element of the terminal (deepest) node, decoded as an RLP list of
// byte strings. Storage proofs never need this; their value arrives as
// scalar data in the eth_getProof reply.
func TerminalValue(nodes [][]byte) ([]byte, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyProof
	}

	var items [][]byte
	if err := rlp.DecodeBytes(nodes[len(nodes)-1], &items); err != nil {
		return nil, &MalformedProofError{Err: err}
	}
	if len(items) == 0 {
		return nil, &MalformedProofError{}
	}
	return items[len(items)-1], nil
}
