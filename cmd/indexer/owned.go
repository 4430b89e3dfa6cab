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
	"marketscope/internal/storage"
)

func runOwned(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOwned(cfgFile, cmd.Flags())
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
	if cfg.Owner == "" {
		return fmt.Errorf("owner address is required")
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

	logger.Info("owned start",
		zap.String("rpc", cfg.RPCURL),
		zap.String("owner", cfg.Owner),
		zap.String("package", cfg.Contract.PackageID),
	)

	listings, err := service.Discover(ctx)
	if err != nil {
		return err
	}

	nfts, err := service.ReconcileOwned(ctx, cfg.Owner, listings)
	if err != nil {
		return err
	}

	if cfg.Out != "" {
		sink := storage.NewJsonlSink(cfg.Out)
		if err := sink.PutOwnedBatch(nfts); err != nil {
			return fmt.Errorf("snapshot owned: %w", err)
		}
		logger.Info("owned written", zap.String("out", cfg.Out), zap.Int("count", len(nfts)))
		return nil
	}

	return printJSON(nfts)
}
