package main

import (
	"context"
	"encoding/json"
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

func runActivity(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadActivity(cfgFile, cmd.Flags())
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

	builder := market.NewFeedBuilder(client, contract, logger, market.FeedConfig{
		PageSize:     cfg.PageSize,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	})

	logger.Info("activity start",
		zap.String("rpc", cfg.RPCURL),
		zap.String("package", cfg.Contract.PackageID),
		zap.String("module", cfg.Contract.Module),
		zap.Int("page_size", cfg.PageSize),
	)

	feed, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	if cfg.Out != "" {
		sink := storage.NewJsonlSink(cfg.Out)
		if err := sink.PutActionBatch(feed); err != nil {
			return fmt.Errorf("snapshot feed: %w", err)
		}
		logger.Info("feed written", zap.String("out", cfg.Out), zap.Int("actions", len(feed)))
		return nil
	}

	return printJSON(feed)
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
