package market

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"marketscope/internal/model"
)

// ListingConfig caps each listing-discovery tier independently.
type ListingConfig struct {
	TypeScanLimit    int
	PackageScanLimit int
	ReplayLimit      int
	ReplayFetchCap   int
}

// DefaultListingConfig mirrors the caps the UI uses.
func DefaultListingConfig() ListingConfig {
	return ListingConfig{
		TypeScanLimit:    36,
		PackageScanLimit: 50,
		ReplayLimit:      25,
		ReplayFetchCap:   24,
	}
}

// ListingService discovers live listings and reconciles a wallet's owned
// NFTs against them. Listings are re-derived from chain state on every call;
// nothing is persisted.
type ListingService struct {
	reader   Reader
	contract Contract
	enricher *Enricher
	logger   *zap.Logger
	cfg      ListingConfig
}

// NewListingService builds a ListingService with its dependencies.
func NewListingService(reader Reader, contract Contract, logger *zap.Logger, cfg ListingConfig) *ListingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == (ListingConfig{}) {
		cfg = DefaultListingConfig()
	}
	return &ListingService{
		reader:   reader,
		contract: contract,
		enricher: NewEnricher(reader, NewMetadataCache(), logger),
		logger:   logger,
		cfg:      cfg,
	}
}

// Discover finds live listings through a three-tier fallback chain: exact
// struct-type query, package-wide scan, and transaction-history replay. Each
// tier runs only when the previous one produced nothing, and every tier
// degrades to an empty result on failure. Discovered listings carry NFT
// previews resolved through the enricher.
func (s *ListingService) Discover(ctx context.Context) ([]model.Listing, error) {
	listings := s.discoverByType(ctx)
	if len(listings) == 0 {
		listings = s.discoverByPackage(ctx)
	}
	if len(listings) == 0 {
		listings = s.discoverByReplay(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range listings {
		if listings[i].NftID == "" {
			continue
		}
		meta := s.enricher.Enrich(ctx, listings[i].NftID)
		listings[i].Name = meta.Name
		listings[i].Description = meta.Description
		listings[i].ImageURL = meta.ImageURL
	}

	s.logger.Info("listings discovered", zap.Int("count", len(listings)))
	return listings, nil
}

func (s *ListingService) discoverByType(ctx context.Context) []model.Listing {
	objects, err := s.reader.QueryObjectsByType(ctx, s.contract.ListingType(), s.cfg.TypeScanLimit)
	if err != nil {
		s.logger.Debug("type scan unavailable", zap.Error(err))
		return nil
	}
	return s.listingsFromObjects(objects)
}

func (s *ListingService) discoverByPackage(ctx context.Context) []model.Listing {
	objects, err := s.reader.QueryObjectsByPackage(ctx, s.contract.PackageID, s.cfg.PackageScanLimit)
	if err != nil {
		s.logger.Debug("package scan unavailable", zap.Error(err))
		return nil
	}
	filtered := objects[:0:0]
	for _, obj := range objects {
		if s.contract.MatchesListing(obj.Type) {
			filtered = append(filtered, obj)
		}
	}
	return s.listingsFromObjects(filtered)
}

// discoverByReplay reconstructs listings from recent list transactions:
// collect created objects of the Listing type, then fetch each one, skipping
// any that no longer resolves (bought or canceled since).
func (s *ListingService) discoverByReplay(ctx context.Context) []model.Listing {
	filter := &model.MoveFunctionFilter{
		Package: s.contract.PackageID,
		Module:  s.contract.Module,
	}
	if s.contract.ListFunction != "" {
		filter.Function = s.contract.ListFunction
	}

	txs, err := s.reader.QueryTransactions(ctx, model.TransactionQuery{
		MoveFunction:      filter,
		Limit:             s.cfg.ReplayLimit,
		Descending:        true,
		ShowObjectChanges: true,
	})
	if err != nil {
		s.logger.Debug("transaction replay unavailable", zap.Error(err))
		return nil
	}

	ids := make([]string, 0)
	for _, tx := range txs {
		for _, change := range tx.Changes {
			if change.Kind == model.ChangeCreated && s.contract.MatchesListing(change.ObjectType) {
				ids = append(ids, change.ObjectID)
			}
		}
	}
	if len(ids) > s.cfg.ReplayFetchCap {
		ids = ids[:s.cfg.ReplayFetchCap]
	}

	listings := make([]model.Listing, 0, len(ids))
	for _, id := range ids {
		obj, err := s.reader.GetObject(ctx, id, model.ObjectOptions{ShowContent: true})
		if err != nil {
			s.logger.Debug("listing fetch failed", zap.String("listing_id", id), zap.Error(err))
			continue
		}
		if listing, ok := listingFromObject(obj); ok {
			listings = append(listings, listing)
		}
	}
	return listings
}

func (s *ListingService) listingsFromObjects(objects []model.ObjectData) []model.Listing {
	listings := make([]model.Listing, 0, len(objects))
	for _, obj := range objects {
		if listing, ok := listingFromObject(obj); ok {
			listings = append(listings, listing)
		}
	}
	return listings
}

func listingFromObject(obj model.ObjectData) (model.Listing, bool) {
	if obj.ObjectID == "" || obj.Fields == nil {
		return model.Listing{}, false
	}
	listing := model.Listing{
		ObjectID: obj.ObjectID,
		NftID:    objectRef(obj.Fields, "nft_id"),
		Seller:   probeString(obj.Fields, sellerKeys...),
	}
	if price, ok := probeUint(obj.Fields, priceKeys...); ok {
		listing.Price = price
	}
	return listing, true
}

// ReconcileOwned cross-references a wallet's directly-owned NFTs against the
// listing set, keyed by referenced NFT id case-insensitively. NFTs held in
// escrow by a live listing no longer appear among the owner's objects, so
// those are fetched directly by id and included with their listing attached.
func (s *ListingService) ReconcileOwned(ctx context.Context, owner string, listings []model.Listing) ([]model.OwnedNft, error) {
	listingByNft := make(map[string]string, len(listings))
	for _, listing := range listings {
		if listing.NftID != "" {
			listingByNft[strings.ToLower(listing.NftID)] = listing.ObjectID
		}
	}

	owned, err := s.reader.GetOwnedObjects(ctx, owner, s.contract.NftType())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("owned objects fetch failed", zap.Error(err))
		owned = nil
	}

	out := make([]model.OwnedNft, 0, len(owned))
	seen := make(map[string]struct{}, len(owned))
	for _, obj := range owned {
		if obj.ObjectID == "" {
			continue
		}
		meta := MetadataFromObject(obj)
		seen[strings.ToLower(obj.ObjectID)] = struct{}{}
		out = append(out, model.OwnedNft{
			ObjectID:    obj.ObjectID,
			Name:        meta.Name,
			Description: meta.Description,
			ImageURL:    meta.ImageURL,
			Owner:       owner,
			ListingID:   listingByNft[strings.ToLower(obj.ObjectID)],
		})
	}

	for _, listing := range listings {
		if listing.NftID == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(listing.NftID)]; ok {
			continue
		}
		obj, err := s.reader.GetObject(ctx, listing.NftID, model.ObjectOptions{ShowContent: true, ShowDisplay: true, ShowOwner: true})
		if err != nil {
			s.logger.Debug("listed nft fetch failed", zap.String("nft_id", listing.NftID), zap.Error(err))
			continue
		}
		meta := MetadataFromObject(obj)
		out = append(out, model.OwnedNft{
			ObjectID:    obj.ObjectID,
			Name:        meta.Name,
			Description: meta.Description,
			ImageURL:    meta.ImageURL,
			Owner:       obj.Owner,
			ListingID:   listing.ObjectID,
		})
	}

	return out, nil
}

// DiscoverNfts builds the public gallery feed with the same degradation
// ladder the listings use: exact type query, package scan filtered to
// objects carrying any metadata, then mint-event replay.
func (s *ListingService) DiscoverNfts(ctx context.Context) ([]model.OwnedNft, error) {
	nfts := s.nftsByType(ctx)
	if len(nfts) == 0 {
		nfts = s.nftsByPackage(ctx)
	}
	if len(nfts) == 0 {
		nfts = s.nftsByMintEvents(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nfts, nil
}

func (s *ListingService) nftsByType(ctx context.Context) []model.OwnedNft {
	objects, err := s.reader.QueryObjectsByType(ctx, s.contract.NftType(), s.cfg.TypeScanLimit)
	if err != nil {
		s.logger.Debug("nft type scan unavailable", zap.Error(err))
		return nil
	}
	return nftsFromObjects(objects, false)
}

func (s *ListingService) nftsByPackage(ctx context.Context) []model.OwnedNft {
	objects, err := s.reader.QueryObjectsByPackage(ctx, s.contract.PackageID, s.cfg.PackageScanLimit)
	if err != nil {
		s.logger.Debug("nft package scan unavailable", zap.Error(err))
		return nil
	}
	filtered := objects[:0:0]
	for _, obj := range objects {
		if s.contract.MatchesNft(obj.Type) {
			filtered = append(filtered, obj)
		}
	}
	return nftsFromObjects(filtered, true)
}

func (s *ListingService) nftsByMintEvents(ctx context.Context) []model.OwnedNft {
	eventType := s.contract.EventType("MintNFTEvent")
	txs, err := s.reader.QueryTransactions(ctx, model.TransactionQuery{
		MoveEventType: eventType,
		Limit:         20,
		Descending:    true,
		ShowEvents:    true,
	})
	if err != nil {
		s.logger.Debug("mint event replay unavailable", zap.Error(err))
		return nil
	}

	ids := make([]string, 0)
	for _, tx := range txs {
		for _, event := range tx.Events {
			if event.Type != eventType {
				continue
			}
			if id := probeString(event.Payload, mintNftIDKeys...); id != "" {
				ids = append(ids, id)
			}
		}
	}

	nfts := make([]model.OwnedNft, 0, len(ids))
	for _, id := range ids {
		obj, err := s.reader.GetObject(ctx, id, model.ObjectOptions{ShowContent: true})
		if err != nil {
			s.logger.Debug("minted nft fetch failed", zap.String("nft_id", id), zap.Error(err))
			continue
		}
		meta := MetadataFromObject(obj)
		nfts = append(nfts, model.OwnedNft{
			ObjectID:    id,
			Name:        meta.Name,
			Description: meta.Description,
			ImageURL:    meta.ImageURL,
		})
	}
	return nfts
}

// nftsFromObjects maps objects to gallery entries. requireMeta drops objects
// with no decodable metadata at all, which the package-wide scan needs to
// filter out unrelated structs.
func nftsFromObjects(objects []model.ObjectData, requireMeta bool) []model.OwnedNft {
	nfts := make([]model.OwnedNft, 0, len(objects))
	for _, obj := range objects {
		if obj.ObjectID == "" {
			continue
		}
		meta := MetadataFromObject(obj)
		if requireMeta && meta == (model.NftMetadata{}) {
			continue
		}
		nfts = append(nfts, model.OwnedNft{
			ObjectID:    obj.ObjectID,
			Name:        meta.Name,
			Description: meta.Description,
			ImageURL:    meta.ImageURL,
			Owner:       obj.Owner,
		})
	}
	return nfts
}

// VerifyOwner reports whether the address directly owns the object. The UI
// runs this before submitting a list transaction.
func VerifyOwner(ctx context.Context, reader Reader, objectID, address string) (bool, error) {
	obj, err := reader.GetObject(ctx, objectID, model.ObjectOptions{ShowOwner: true})
	if err != nil {
		return false, err
	}
	if obj.Owner == "" {
		return false, nil
	}
	return strings.EqualFold(obj.Owner, address), nil
}
