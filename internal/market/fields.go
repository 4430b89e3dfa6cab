package market

import (
	"strconv"

	"marketscope/internal/model"
)

// Candidate key names per semantic field, tried in order, first non-empty
// wins. Contracts disagree on payload field names, so every read site goes
// through these tables instead of assuming one spelling.
var (
	nftIDKeys     = []string{"nft_id", "object_id", "nft", "id"}
	mintNftIDKeys = []string{"object_id", "nft_id", "nft", "id"}
	listingIDKeys = []string{"listing_id", "listing"}
	sellerKeys    = []string{"seller"}
	listedByKeys  = []string{"seller", "creator"}
	creatorKeys   = []string{"creator", "sender"}
	burnOwnerKeys = []string{"owner", "sender"}
	buyerKeys     = []string{"buyer"}
	priceKeys     = []string{"price"}
)

// probeString returns the first candidate field decoded to a non-empty
// string.
func probeString(payload model.Payload, keys ...string) string {
	for _, key := range keys {
		value, ok := payload.Lookup(key)
		if !ok {
			continue
		}
		if decoded := DecodeField(value); decoded != "" {
			return decoded
		}
	}
	return ""
}

// probeUint reads an integer field that may arrive as a JSON number or a
// decimal string.
func probeUint(payload model.Payload, keys ...string) (uint64, bool) {
	value, ok := payload.Lookup(keys...)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// objectRef reads an object-id field that may be a raw id string or a nested
// reference object with an "id" field.
func objectRef(payload model.Payload, keys ...string) string {
	value, ok := payload.Lookup(keys...)
	if !ok {
		return ""
	}
	if nested, isMap := value.(map[string]any); isMap {
		if id, ok := nested["id"].(string); ok {
			return id
		}
		return ""
	}
	return DecodeField(value)
}
