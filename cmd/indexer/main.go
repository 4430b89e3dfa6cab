package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"marketscope/internal/market"
)

func main() {
	root := &cobra.Command{
		Use:          "marketscope",
		Short:        "Sui NFT marketplace activity indexer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	activityCmd := &cobra.Command{
		Use:   "activity",
		Short: "Reconstruct the marketplace activity feed",
		RunE:  runActivity,
	}
	addContractFlags(activityCmd)
	activityCmd.Flags().Int("page-size", 60, "transactions per feed request (max 60)")
	activityCmd.Flags().String("out", "", "optional JSONL snapshot path")
	activityCmd.Flags().Int("max-retries", 3, "maximum retry attempts for the bulk query")
	activityCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	root.AddCommand(activityCmd)

	listingsCmd := &cobra.Command{
		Use:   "listings",
		Short: "Discover live listings",
		RunE:  runListings,
	}
	addContractFlags(listingsCmd)
	listingsCmd.Flags().Int("type-scan-limit", 36, "exact type query cap")
	listingsCmd.Flags().Int("package-scan-limit", 50, "package scan cap")
	listingsCmd.Flags().Int("replay-limit", 25, "transaction replay cap")
	listingsCmd.Flags().String("out", "", "optional JSONL snapshot path")
	root.AddCommand(listingsCmd)

	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "Discover minted NFTs and merge in session mints",
		RunE:  runGallery,
	}
	addContractFlags(galleryCmd)
	galleryCmd.Flags().String("session", "", "JSONL file of session-local mints")
	galleryCmd.Flags().String("out", "", "optional JSONL snapshot path")
	root.AddCommand(galleryCmd)

	ownedCmd := &cobra.Command{
		Use:   "owned",
		Short: "Reconcile a wallet's NFTs against live listings",
		RunE:  runOwned,
	}
	addContractFlags(ownedCmd)
	ownedCmd.Flags().String("owner", "", "wallet address")
	ownedCmd.Flags().String("out", "", "optional JSONL snapshot path")
	root.AddCommand(ownedCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addContractFlags(cmd *cobra.Command) {
	cmd.Flags().String("rpc", "", "fullnode RPC URL")
	cmd.Flags().String("package", "", "marketplace package id")
	cmd.Flags().String("module", "", "marketplace module name")
	cmd.Flags().String("nft-struct", "DevNetNFT", "NFT struct name")
	cmd.Flags().String("listing-struct", "Listing", "Listing struct name")
	cmd.Flags().String("list-function", "list_nft_for_sale", "list entry function name")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func contractFromConfig(pkg, module, nftStruct, listingStruct, listFunction string) market.Contract {
	return market.Contract{
		PackageID:     pkg,
		Module:        module,
		NftStruct:     nftStruct,
		ListingStruct: listingStruct,
		ListFunction:  listFunction,
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
