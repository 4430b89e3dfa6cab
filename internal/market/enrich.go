package market

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"marketscope/internal/model"
)

// MetadataCache caches decoded NFT metadata by object id.
type MetadataCache struct {
	mu   sync.RWMutex
	data map[string]model.NftMetadata
}

func NewMetadataCache() *MetadataCache {
	return &MetadataCache{data: make(map[string]model.NftMetadata)}
}

func (c *MetadataCache) Get(id string) (model.NftMetadata, bool) {
	c.mu.RLock()
	meta, ok := c.data[strings.ToLower(id)]
	c.mu.RUnlock()
	return meta, ok
}

func (c *MetadataCache) Set(id string, meta model.NftMetadata) {
	c.mu.Lock()
	c.data[strings.ToLower(id)] = meta
	c.mu.Unlock()
}

// Enricher attaches display metadata to resolved NFT ids. Fetch failures are
// never propagated; the result simply stays empty.
type Enricher struct {
	reader Reader
	cache  *MetadataCache
	logger *zap.Logger
}

// NewEnricher builds an Enricher. cache may be nil to disable caching.
func NewEnricher(reader Reader, cache *MetadataCache, logger *zap.Logger) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{reader: reader, cache: cache, logger: logger}
}

// Enrich fetches the object with display and content enabled and decodes
// {name, description, imageUrl} out of whichever layer has them.
func (e *Enricher) Enrich(ctx context.Context, nftID string) model.NftMetadata {
	if nftID == "" {
		return model.NftMetadata{}
	}
	if e.cache != nil {
		if meta, ok := e.cache.Get(nftID); ok {
			return meta
		}
	}

	obj, err := e.reader.GetObject(ctx, nftID, model.ObjectOptions{ShowContent: true, ShowDisplay: true})
	if err != nil {
		e.logger.Debug("metadata fetch failed", zap.String("nft_id", nftID), zap.Error(err))
		return model.NftMetadata{}
	}

	meta := MetadataFromObject(obj)
	if e.cache != nil && meta != (model.NftMetadata{}) {
		e.cache.Set(nftID, meta)
	}
	return meta
}

// MetadataFromObject decodes metadata from an already-fetched object. The
// display layer wins over raw content fields; every candidate goes through
// DecodeField to absorb byte-vector encodings.
func MetadataFromObject(obj model.ObjectData) model.NftMetadata {
	meta := model.NftMetadata{}

	if obj.Display != nil {
		meta.ImageURL = probeString(obj.Display, "image_url", "image")
		meta.Name = probeString(obj.Display, "name")
		meta.Description = probeString(obj.Display, "description")
	}
	if obj.Fields != nil {
		if meta.ImageURL == "" {
			meta.ImageURL = probeString(obj.Fields, "url", "image", "image_url")
		}
		if meta.Name == "" {
			meta.Name = probeString(obj.Fields, "name")
		}
		if meta.Description == "" {
			meta.Description = probeString(obj.Fields, "description")
		}
	}
	return meta
}
