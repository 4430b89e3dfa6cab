package model

// Listing is the client-side view of an on-chain listing object. NftID is a
// back-reference to the NFT the listing offers, not an ownership relation.
// Listings are never persisted; they are re-derived from chain state on each
// request.
type Listing struct {
	ObjectID    string `json:"object_id"`
	NftID       string `json:"nft_id"`
	Price       uint64 `json:"price"`
	Seller      string `json:"seller"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
