package mpt

import (
	"errors"
	"fmt"
)

// ErrEmptyProof reports a proof with no nodes at all, so there is no
// terminal node to extract a value from.
var ErrEmptyProof = errors.New("mpt: proof contains no nodes")

// DimensionExceededError reports a byte vector larger than the maximum it
// must be padded to. The remedy is a larger maximum, not a retry.
type DimensionExceededError struct {
	Len, Max int
}

func (e *DimensionExceededError) Error() string {
	return fmt.Sprintf("mpt: vector of %d bytes exceeds its maximum expected dimension of %d", e.Len, e.Max)
}

// DepthExceededError reports a proof with more nodes than the configured
// maximum depth.
type DepthExceededError struct {
	Depth, Max int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("mpt: proof depth %d exceeds the maximum depth %d", e.Depth, e.Max)
}

// NodeLengthExceededError reports a single proof node longer than the
// configured maximum node length. Index is the node's position in the
// root-to-leaf sequence.
type NodeLengthExceededError struct {
	Index, Len, Max int
}

func (e *NodeLengthExceededError) Error() string {
	return fmt.Sprintf("mpt: node %d is %d bytes, exceeding the maximum node length %d", e.Index, e.Len, e.Max)
}

// MalformedProofError reports a terminal node that does not decode as a
// non-empty RLP list of byte strings.
type MalformedProofError struct {
	Err error
}

func (e *MalformedProofError) Error() string {
	if e.Err == nil {
		return "mpt: malformed terminal node"
	}
	return fmt.Sprintf("mpt: malformed terminal node: %v", e.Err)
}

func (e *MalformedProofError) Unwrap() error { return e.Err }
