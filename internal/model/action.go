package model

// ActionKind is the reconstructed meaning of a marketplace transaction.
type ActionKind string

const (
	ActionListed   ActionKind = "Listed"
	ActionBought   ActionKind = "Bought"
	ActionCanceled ActionKind = "Canceled"
	ActionMinted   ActionKind = "Minted"
	ActionBurned   ActionKind = "Burned"
)

// Valid reports whether the kind is one of the five terminal labels. Records
// that never classify to a valid kind are dropped from the feed.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionListed, ActionBought, ActionCanceled, ActionMinted, ActionBurned:
		return true
	default:
		return false
	}
}

// ActionRecord is one reconstructed marketplace action. Identifying fields
// are populated incrementally by the classifier and resolver and may remain
// empty when unresolvable.
type ActionRecord struct {
	Digest      string     `json:"digest"`
	TimestampMs int64      `json:"timestamp_ms,omitempty"`
	Label       ActionKind `json:"label"`
	NftID       string     `json:"nft_id,omitempty"`
	ListingID   string     `json:"listing_id,omitempty"`
	Seller      string     `json:"seller,omitempty"`
	Buyer       string     `json:"buyer,omitempty"`
	PriceSui    *float64   `json:"price_sui,omitempty"`
	Details     string     `json:"details,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Name        string     `json:"name,omitempty"`
}
