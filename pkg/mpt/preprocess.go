// Package mpt turns variable-depth Merkle–Patricia trie proofs into the
// fixed-dimension, zero-padded layout consumed by a circuit with
// static-size inputs.
package mpt

// TrieProof is a trie membership proof preprocessed to fixed dimensions.
// Proof holds maxDepth node slots of maxNodeLen bytes each, every real
// node left-justified in its slot; slots beyond Depth are all zero.
type TrieProof struct {
	// Key is the unhashed lookup key, as supplied by the caller.
	Key []byte
	// Proof is the flat concatenation of the padded proof nodes,
	// exactly maxDepth*maxNodeLen bytes.
	Proof []byte
	// Depth is the number of real nodes before padding.
	Depth int
	// Value is the resolved value, left-padded to maxValueLen bytes.
	Value []byte
}

// Preprocess pads and flattens a raw trie proof into a TrieProof.
//
// nodes is the raw proof in root-to-leaf order, key the unhashed lookup
// key and value the resolved value. Every failure reflects a limit that
// is too small for the real data: the caller must re-invoke with a larger
// maxDepth, maxNodeLen or maxValueLen, never retry the same call.
func Preprocess(nodes [][]byte, key, value []byte, maxDepth, maxNodeLen, maxValueLen int) (*TrieProof, error) {
	depth := len(nodes)
	if depth > maxDepth {
		return nil, &DepthExceededError{Depth: depth, Max: maxDepth}
	}

	// Real nodes land left-justified in their slots; the remainder of the
	// buffer is already the zero padding.
	flat := make([]byte, maxDepth*maxNodeLen)
	for i, n := range nodes {
		if len(n) > maxNodeLen {
			return nil, &NodeLengthExceededError{Index: i, Len: len(n), Max: maxNodeLen}
		}
		copy(flat[i*maxNodeLen:], n)
	}

	padded, err := LeftPad(value, maxValueLen)
	if err != nil {
		return nil, err
	}

	return &TrieProof{
		Key:   key,
		Proof: flat,
		Depth: depth,
		Value: padded,
	}, nil
}

// LeftPad prepends zero bytes to v up to maxLen bytes, preserving the
// original bytes' big-endian significance. Oversized input fails with
// *DimensionExceededError; it is never truncated.
func LeftPad(v []byte, maxLen int) ([]byte, error) {
	if len(v) > maxLen {
		return nil, &DimensionExceededError{Len: len(v), Max: maxLen}
	}
	out := make([]byte, maxLen)
	copy(out[maxLen-len(v):], v)
	return out, nil
}
