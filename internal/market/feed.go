package market

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"marketscope/internal/model"
)

// MaxFeedPageSize caps one feed request.
const MaxFeedPageSize = 60

// FeedConfig holds runtime settings for feed assembly.
type FeedConfig struct {
	PageSize     int
	MaxRetries   int
	RetryBackoff time.Duration
}

// FeedBuilder reconstructs the ordered activity feed for one marketplace
// module: bulk transaction query, classification, cross-reference
// resolution, and metadata enrichment, in that order. Records are processed
// sequentially to bound concurrent load on the node.
type FeedBuilder struct {
	reader   Reader
	contract Contract
	resolver *Resolver
	enricher *Enricher
	logger   *zap.Logger
	cfg      FeedConfig
}

// NewFeedBuilder builds a FeedBuilder with its dependencies.
func NewFeedBuilder(reader Reader, contract Contract, logger *zap.Logger, cfg FeedConfig) *FeedBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 || cfg.PageSize > MaxFeedPageSize {
		cfg.PageSize = MaxFeedPageSize
	}
	return &FeedBuilder{
		reader:   reader,
		contract: contract,
		resolver: NewResolver(reader, contract, logger),
		enricher: NewEnricher(reader, NewMetadataCache(), logger),
		logger:   logger,
		cfg:      cfg,
	}
}

// Build returns the most-recent-first activity feed, at most PageSize
// entries with unique digests. Every failure degrades: a node without the
// bulk query capability, or a query that keeps failing, yields an empty
// feed rather than an error. The returned error is only ever a context
// cancellation.
func (b *FeedBuilder) Build(ctx context.Context) ([]model.ActionRecord, error) {
	query := model.TransactionQuery{
		MoveFunction: &model.MoveFunctionFilter{
			Package: b.contract.PackageID,
			Module:  b.contract.Module,
		},
		Limit:             b.cfg.PageSize,
		Descending:        true,
		ShowEvents:        true,
		ShowInput:         true,
		ShowEffects:       true,
		ShowObjectChanges: true,
	}

	var txs []model.TransactionRecord
	err := withRetry(ctx, b.cfg.MaxRetries, b.cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		txs, err = b.reader.QueryTransactions(ctx, query)
		if errors.Is(err, model.ErrUnsupported) {
			txs = nil
			return nil
		}
		if err != nil {
			b.logger.Warn("transaction query failed", zap.Error(err))
		}
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		b.logger.Warn("activity feed unavailable", zap.Error(err))
		return []model.ActionRecord{}, nil
	}

	feed := make([]model.ActionRecord, 0, len(txs))
	seen := make(map[string]struct{}, len(txs))
	for _, tx := range txs {
		if _, dup := seen[tx.Digest]; dup {
			continue
		}
		seen[tx.Digest] = struct{}{}

		record := Classify(tx, b.contract)
		b.resolver.Resolve(ctx, &record, tx)
		if !record.Label.Valid() {
			continue
		}

		if record.NftID != "" {
			meta := b.enricher.Enrich(ctx, record.NftID)
			record.ImageURL = meta.ImageURL
			record.Name = meta.Name
		}
		if record.PriceSui != nil {
			record.Details = FormatPrice(*record.PriceSui)
		}

		feed = append(feed, record)
	}

	b.logger.Info("feed assembled", zap.Int("transactions", len(txs)), zap.Int("actions", len(feed)))
	return feed, nil
}
