// Package slot derives storage slot keys for Solidity mapping entries.
package slot

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Calc returns keccak256( pad32(mapKey) ‖ pad32(slotIndex) ), the storage
// slot holding the mapping entry for mapKey in the mapping declared at
// slotIndex.
func Calc(mapKey *big.Int, slotIndex uint64) common.Hash {
	var buf [64]byte

	// first 32 bytes = mapping key, big-endian
	mapKey.FillBytes(buf[:32])

	// last 8 bytes of buf[32:64] = slot index, big-endian
	binary.BigEndian.PutUint64(buf[56:], slotIndex)

	return crypto.Keccak256Hash(buf[:])
}
