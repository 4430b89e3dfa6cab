package market

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"marketscope/internal/model"
)

const (
	objectIDPrefix = "0x"
	minObjectIDLen = 20
)

// Resolver completes classified records that lack an NFT or listing id by
// performing bounded follow-up lookups. Each transaction costs at most one
// extra read: either the listing object or the first id-shaped raw input.
// Lookups are single-attempt; a failed fetch leaves the field unset.
type Resolver struct {
	reader   Reader
	contract Contract
	logger   *zap.Logger
}

// NewResolver builds a Resolver with its dependencies.
func NewResolver(reader Reader, contract Contract, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{reader: reader, contract: contract, logger: logger}
}

// Resolve fills missing identifying fields on record using the transaction's
// raw inputs and at most one follow-up object fetch.
func (r *Resolver) Resolve(ctx context.Context, record *model.ActionRecord, tx model.TransactionRecord) {
	switch {
	case record.ListingID != "" && record.NftID == "":
		r.resolveFromListing(ctx, record)
	case record.ListingID == "" && record.NftID == "":
		r.resolveFromInputs(ctx, record, tx.Inputs)
	}
}

func (r *Resolver) resolveFromListing(ctx context.Context, record *model.ActionRecord) {
	obj, err := r.reader.GetObject(ctx, record.ListingID, model.ObjectOptions{ShowContent: true})
	if err != nil {
		r.logger.Debug("listing lookup failed", zap.String("listing_id", record.ListingID), zap.Error(err))
		return
	}
	fillFromListingFields(obj.Fields, record)
}

func (r *Resolver) resolveFromInputs(ctx context.Context, record *model.ActionRecord, inputs []model.CallInput) {
	for _, input := range inputs {
		if !looksLikeObjectID(input.Value) {
			continue
		}
		obj, err := r.reader.GetObject(ctx, input.Value, model.ObjectOptions{ShowContent: true})
		if err != nil {
			r.logger.Debug("input lookup failed", zap.String("object_id", input.Value), zap.Error(err))
			return
		}
		if r.contract.MatchesListing(obj.Type) {
			record.ListingID = input.Value
			fillFromListingFields(obj.Fields, record)
		} else {
			record.NftID = input.Value
		}
		return
	}
}

// fillFromListingFields copies the NFT back-reference out of a listing
// object and backfills seller and price when still unset.
func fillFromListingFields(fields model.Payload, record *model.ActionRecord) {
	if fields == nil {
		return
	}
	if nftID := objectRef(fields, "nft_id"); nftID != "" {
		record.NftID = nftID
	}
	if record.Seller == "" {
		record.Seller = probeString(fields, sellerKeys...)
	}
	if record.PriceSui == nil {
		if mist, ok := probeUint(fields, priceKeys...); ok {
			price := FromMist(mist)
			record.PriceSui = &price
		}
	}
}

func looksLikeObjectID(value string) bool {
	return strings.HasPrefix(value, objectIDPrefix) && len(value) > minObjectIDLen
}
