package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aragonzkresearch/noir-trie-proofs/internal/tomlenc"
	"github.com/aragonzkresearch/noir-trie-proofs/pkg/fetch"
	"github.com/aragonzkresearch/noir-trie-proofs/pkg/mpt"
	"github.com/aragonzkresearch/noir-trie-proofs/pkg/slot"
)

func main() {
	var (
		rpcURL    string
		maxDepth  int
		blockNum  uint64
		rootName  string
		proofName string
	)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:          "trie-proofs",
		Short:        "Fetch Ethereum trie proofs and preprocess them for a fixed-size circuit",
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rpcURL, "rpc-url", "", "URL of JSON-RPC supporting Ethereum node (falls back to RPC_URL)")
	pf.IntVar(&maxDepth, "max-depth", 0, "Maximum allowable depth of proof")
	pf.Uint64Var(&blockNum, "block-number", 0, "Block number (default: latest)")
	pf.StringVar(&rootName, "root-name", "", "Optional name of trie root in TOML output")
	pf.StringVar(&proofName, "proof-name", "", "Optional name of trie proof in TOML output")

	// dial + block resolution shared by both subcommands
	connect := func(cmd *cobra.Command) (*ethclient.Client, uint64, error) {
		if rpcURL == "" {
			_ = godotenv.Load()
			rpcURL = os.Getenv("RPC_URL")
			if rpcURL == "" {
				return nil, 0, fmt.Errorf("--rpc-url flag or RPC_URL env var is required")
			}
		}
		if maxDepth <= 0 {
			return nil, 0, fmt.Errorf("--max-depth must be specified")
		}

		cli, err := ethclient.DialContext(cmd.Context(), rpcURL)
		if err != nil {
			return nil, 0, err
		}

		block := blockNum
		if !cmd.Flags().Changed("block-number") {
			if block, err = fetch.LatestBlock(cmd.Context(), cli); err != nil {
				cli.Close()
				return nil, 0, err
			}
			logger.Info().Uint64("block", block).Msg("using latest block")
		}
		return cli, block, nil
	}

	render := func(defRoot, defProof string, root common.Hash, tp *mpt.TrieProof) {
		if rootName == "" {
			rootName = defRoot
		}
		if proofName == "" {
			proofName = defProof
		}
		fmt.Printf("%s\n\n%s\n", tomlenc.Root(rootName, root.Bytes()), tomlenc.Proof(proofName, tp))
	}

	var addressS string

	stateCmd := &cobra.Command{
		Use:   "state-proof",
		Short: "Fetch and preprocess an account state proof",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, block, err := connect(cmd)
			if err != nil {
				return err
			}
			defer cli.Close()

			stateRoot, tp, err := fetch.FetchStateProof(
				cmd.Context(), cli, common.HexToAddress(addressS), block, maxDepth)
			if err != nil {
				return err
			}
			logger.Info().Int("depth", tp.Depth).Msg("state proof preprocessed")

			render("state_root", "state_proof", stateRoot, tp)
			return nil
		},
	}
	stateCmd.Flags().StringVar(&addressS, "address", "", "Address of the account whose state proof is retrieved")
	_ = stateCmd.MarkFlagRequired("address")

	var (
		keyS      string
		mapKeyS   string
		slotIndex uint64
	)

	storageCmd := &cobra.Command{
		Use:   "storage-proof",
		Short: "Fetch and preprocess a storage slot proof",
		RunE: func(cmd *cobra.Command, _ []string) error {
			slotKey, err := resolveSlotKey(keyS, mapKeyS, slotIndex)
			if err != nil {
				return err
			}

			cli, block, err := connect(cmd)
			if err != nil {
				return err
			}
			defer cli.Close()

			storageRoot, tp, err := fetch.FetchStorageProof(
				cmd.Context(), cli, common.HexToAddress(addressS), slotKey, block, maxDepth)
			if err != nil {
				return err
			}
			logger.Info().Int("depth", tp.Depth).Msg("storage proof preprocessed")

			render("storage_root", "storage_proof", storageRoot, tp)
			return nil
		},
	}
	storageCmd.Flags().StringVar(&addressS, "address", "", "Address of the account from which a storage proof is retrieved")
	storageCmd.Flags().StringVar(&keyS, "key", "", "Key of the storage slot for which a storage proof is retrieved")
	storageCmd.Flags().StringVar(&mapKeyS, "map-key", "", "Mapping key whose slot is derived with --slot-index (alternative to --key)")
	storageCmd.Flags().Uint64Var(&slotIndex, "slot-index", 0, "Declared slot index of the mapping for --map-key")
	_ = storageCmd.MarkFlagRequired("address")

	rootCmd.AddCommand(stateCmd, storageCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("trie-proofs failed")
	}
}

// resolveSlotKey takes the slot key verbatim from --key, or derives it
// from --map-key and --slot-index.
func resolveSlotKey(keyS, mapKeyS string, slotIndex uint64) (common.Hash, error) {
	switch {
	case keyS != "":
		return common.HexToHash(keyS), nil
	case mapKeyS != "":
		mk, err := parseMapKey(mapKeyS)
		if err != nil {
			return common.Hash{}, err
		}
		return slot.Calc(mk, slotIndex), nil
	default:
		return common.Hash{}, fmt.Errorf("either --key or --map-key is required")
	}
}

func parseMapKey(s string) (*big.Int, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	mk, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid map key %q", s)
	}
	return mk, nil
}
