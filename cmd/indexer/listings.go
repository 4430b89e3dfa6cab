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

func runListings(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadListings(cfgFile, cmd.Flags())
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

	service := market.NewListingService(client, contract, logger, market.ListingConfig{
		TypeScanLimit:    cfg.TypeScanLimit,
		PackageScanLimit: cfg.PackageScanLimit,
		ReplayLimit:      cfg.ReplayLimit,
		ReplayFetchCap:   cfg.ReplayLimit,
	})

	logger.Info("listings start",
		zap.String("rpc", cfg.RPCURL),
		zap.String("package", cfg.Contract.PackageID),
		zap.String("module", cfg.Contract.Module),
	)

	listings, err := service.Discover(ctx)
	if err != nil {
		return err
	}

	if cfg.Out != "" {
		sink := storage.NewJsonlSink(cfg.Out)
		if err := sink.PutListingBatch(listings); err != nil {
			return fmt.Errorf("snapshot listings: %w", err)
		}
		logger.Info("listings written", zap.String("out", cfg.Out), zap.Int("count", len(listings)))
		return nil
	}

	return printJSON(listings)
}
