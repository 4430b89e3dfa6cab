package market

import (
	"strings"
	"sync"

	"marketscope/internal/model"
)

// MintedStore is the session-local list of freshly minted NFTs, kept so the
// gallery can show a mint before the chain-indexed view has caught up.
// Append-only for the lifetime of the session: new entries are prepended and
// nothing is ever removed.
type MintedStore struct {
	mu    sync.RWMutex
	items []model.MintedNft
}

func NewMintedStore() *MintedStore {
	return &MintedStore{}
}

// Add prepends a freshly minted NFT.
func (s *MintedStore) Add(nft model.MintedNft) {
	s.mu.Lock()
	s.items = append([]model.MintedNft{nft}, s.items...)
	s.mu.Unlock()
}

// Items returns a copy of the session list, newest first.
func (s *MintedStore) Items() []model.MintedNft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MintedNft, len(s.items))
	copy(out, s.items)
	return out
}

// MergeMinted merges session-local entries with chain-confirmed ones,
// de-duplicated by object id. Session entries come first and win on
// conflict.
func MergeMinted(session, chain []model.MintedNft) []model.MintedNft {
	merged := make([]model.MintedNft, 0, len(session)+len(chain))
	seen := make(map[string]struct{}, len(session)+len(chain))
	for _, nft := range append(append([]model.MintedNft{}, session...), chain...) {
		key := strings.ToLower(nft.ObjectID)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, nft)
	}
	return merged
}
