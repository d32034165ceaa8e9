// Package fetch retrieves account and storage trie proofs from an
// Ethereum JSON-RPC node and hands them to pkg/mpt for preprocessing.
package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/aragonzkresearch/noir-trie-proofs/pkg/mpt"
)

// ErrNoStorageProof reports an eth_getProof reply without a storage proof
// entry for the requested slot.
var ErrNoStorageProof = errors.New("fetch: no storage proof returned")

// proofResult mirrors the eth_getProof reply (EIP-1186).
type proofResult struct {
	AccountProof []hexutil.Bytes `json:"accountProof"`
	StorageHash  common.Hash     `json:"storageHash"`
	StorageProof []struct {
		Key   string          `json:"key"`
		Value *hexutil.Big    `json:"value"`
		Proof []hexutil.Bytes `json:"proof"`
	} `json:"storageProof"`
}

func rawNodes(proof []hexutil.Bytes) [][]byte {
	nodes := make([][]byte, len(proof))
	for i, n := range proof {
		nodes[i] = n
	}
	return nodes
}

// FetchStateProof retrieves the account proof for address at block and
// preprocesses it. The returned hash is the block's state root; the proof
// key is the 20-byte address and the value is the terminal node's last
// RLP list element.
func FetchStateProof(
	ctx context.Context,
	cli *ethclient.Client,
	address common.Address,
	block uint64,
	maxDepth int,
) (common.Hash, *mpt.TrieProof, error) {

	var res proofResult
	err := cli.Client().CallContext(
		ctx, &res, "eth_getProof",
		address,
		[]string{}, // no slots, account proof only
		hexutil.Uint64(block),
	)
	if err != nil {
		return common.Hash{}, nil, fmt.Errorf("fetch: eth_getProof: %w", err)
	}

	// State root comes from the block header.
	var hdr struct {
		StateRoot common.Hash `json:"stateRoot"`
	}
	if err := cli.Client().CallContext(ctx, &hdr, "eth_getBlockByNumber", hexutil.Uint64(block), false); err != nil {
		return common.Hash{}, nil, fmt.Errorf("fetch: eth_getBlockByNumber: %w", err)
	}

	nodes := rawNodes(res.AccountProof)
	value, err := mpt.TerminalValue(nodes)
	if err != nil {
		return common.Hash{}, nil, err
	}

	tp, err := mpt.Preprocess(nodes, address.Bytes(), value, maxDepth, mpt.MaxNodeLen, mpt.MaxAccountStateLen)
	if err != nil {
		return common.Hash{}, nil, err
	}
	return hdr.StateRoot, tp, nil
}

// FetchStorageProof retrieves the proof for one storage slot of address
// at block and preprocesses it. The returned hash is the account's
// storage root; the proof key is the 32-byte slot key and the value is
// the slot's content as a 32-byte big-endian integer, taken directly from
// the reply.
func FetchStorageProof(
	ctx context.Context,
	cli *ethclient.Client,
	address common.Address,
	slotKey common.Hash,
	block uint64,
	maxDepth int,
) (common.Hash, *mpt.TrieProof, error) {

	var res proofResult
	err := cli.Client().CallContext(
		ctx, &res, "eth_getProof",
		address,
		[]string{slotKey.Hex()},
		hexutil.Uint64(block),
	)
	if err != nil {
		return common.Hash{}, nil, fmt.Errorf("fetch: eth_getProof: %w", err)
	}
	if len(res.StorageProof) == 0 {
		return common.Hash{}, nil, ErrNoStorageProof
	}
	sp := res.StorageProof[0]

	value := make([]byte, 32)
	if sp.Value != nil {
		sp.Value.ToInt().FillBytes(value)
	}

	tp, err := mpt.Preprocess(rawNodes(sp.Proof), slotKey.Bytes(), value, maxDepth, mpt.MaxNodeLen, mpt.MaxStorageValueLen)
	if err != nil {
		return common.Hash{}, nil, err
	}
	return res.StorageHash, tp, nil
}

// LatestBlock returns the node's most recent block number.
func LatestBlock(ctx context.Context, cli *ethclient.Client) (uint64, error) {
	return cli.BlockNumber(ctx)
}
