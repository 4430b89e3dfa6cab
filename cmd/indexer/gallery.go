package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"marketscope/internal/chain"
	"marketscope/internal/config"
	"marketscope/internal/market"
	"marketscope/internal/model"
	"marketscope/internal/storage"
)

func runGallery(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadGallery(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if err := cfg.Contract.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := chain.NewClient(ctx, cfg.RPCURL, logger)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer client.Close()

	contract := contractFromConfig(
		cfg.Contract.PackageID,
		cfg.Contract.Module,
		cfg.Contract.NftStruct,
		cfg.Contract.ListingStruct,
		cfg.Contract.ListFunction,
	)

	service := market.NewListingService(client, contract, logger, market.DefaultListingConfig())

	logger.Info("gallery start",
		zap.String("rpc", cfg.RPCURL),
		zap.String("package", cfg.Contract.PackageID),
		zap.String("module", cfg.Contract.Module),
	)

	nfts, err := service.DiscoverNfts(ctx)
	if err != nil {
		return err
	}

	chainMints := make([]model.MintedNft, 0, len(nfts))
	for _, nft := range nfts {
		chainMints = append(chainMints, model.MintedNft{
			ObjectID:    nft.ObjectID,
			Name:        nft.Name,
			Description: nft.Description,
			ImageURL:    nft.ImageURL,
		})
	}

	// Session mints from an earlier run are replayed through the store so
	// the most recent snapshot line surfaces first, then merged with the
	// chain-indexed view. Session entries win on conflict.
	store := market.NewMintedStore()
	if cfg.Session != "" {
		session, err := storage.ReadMintedSnapshot(cfg.Session)
		if err != nil {
			return fmt.Errorf("read session mints: %w", err)
		}
		for _, nft := range session {
			store.Add(nft)
		}
	}
	merged := market.MergeMinted(store.Items(), chainMints)

	if cfg.Out != "" {
		sink := storage.NewJsonlSink(cfg.Out)
		if err := sink.PutMintedBatch(merged); err != nil {
			return fmt.Errorf("snapshot gallery: %w", err)
		}
		logger.Info("gallery written", zap.String("out", cfg.Out), zap.Int("count", len(merged)))
		return nil
	}

	return printJSON(merged)
}
