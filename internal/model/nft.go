package model

// NftMetadata is the decoded display/content metadata of an NFT object.
// Fields stay empty when the fetch fails or the object carries no metadata.
type NftMetadata struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// OwnedNft is one entry of the reconciled gallery view. ListingID is set
// when the NFT is currently offered on a live listing.
type OwnedNft struct {
	ObjectID    string `json:"object_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Owner       string `json:"owner,omitempty"`
	ListingID   string `json:"listing_id,omitempty"`
}

// MintedNft is a session-local record of a freshly minted NFT, kept until
// the chain-indexed view catches up.
type MintedNft struct {
	ObjectID    string `json:"object_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
