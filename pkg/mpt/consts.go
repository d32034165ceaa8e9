package mpt

// Fixed dimensions assumed by the downstream circuit inputs.
const (
	// MaxNodeLen is the maximum length of a state or storage trie node in bytes.
	MaxNodeLen = 532

	// MaxStorageValueLen is the maximum size of the value in a storage slot.
	MaxStorageValueLen = 32

	// MaxAccountStateLen is the maximum size of the RLP-encoded list
	// representing an account state.
	MaxAccountStateLen = 134
)
