package storage

import "marketscope/internal/model"

// Sink receives snapshots produced by the CLI. Marketplace state itself is
// never persisted; these are export targets only.
type Sink interface {
	PutActionBatch(actions []model.ActionRecord) error
	PutListingBatch(listings []model.Listing) error
	PutOwnedBatch(nfts []model.OwnedNft) error
	PutMintedBatch(nfts []model.MintedNft) error
}
