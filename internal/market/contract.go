package market

import "strings"

// Contract identifies the marketplace package and the struct names its
// objects carry on chain.
type Contract struct {
	PackageID     string
	Module        string
	NftStruct     string
	ListingStruct string
	ListFunction  string
}

// NftType returns the fully qualified NFT struct type tag.
func (c Contract) NftType() string {
	return c.PackageID + "::" + c.Module + "::" + c.NftStruct
}

// ListingType returns the fully qualified Listing struct type tag.
func (c Contract) ListingType() string {
	return c.PackageID + "::" + c.Module + "::" + c.ListingStruct
}

// EventType returns the fully qualified type tag of a module event.
func (c Contract) EventType(name string) string {
	return c.PackageID + "::" + c.Module + "::" + name
}

// MatchesListing reports whether a type tag denotes the Listing struct.
// Suffix matching tolerates package upgrades, which change the address part
// of the tag but not the struct name.
func (c Contract) MatchesListing(objectType string) bool {
	return c.ListingStruct != "" && strings.HasSuffix(objectType, "::"+c.ListingStruct)
}

// MatchesNft reports whether a type tag denotes the NFT struct.
func (c Contract) MatchesNft(objectType string) bool {
	return c.NftStruct != "" && strings.HasSuffix(objectType, "::"+c.NftStruct)
}
