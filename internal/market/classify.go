package market

import (
	"strings"

	"marketscope/internal/model"
)

// eventRule maps an event-name pattern to a label and the candidate payload
// keys for each identifying field. A nil key slice means the event kind does
// not carry that field.
type eventRule struct {
	names      []string
	label      model.ActionKind
	nftKeys    []string
	sellerKeys []string
	buyerKeys  []string
	listingKey []string
	hasPrice   bool
}

var eventRules = []eventRule{
	{
		names:      []string{"ListNFTEvent"},
		label:      model.ActionListed,
		nftKeys:    nftIDKeys,
		sellerKeys: listedByKeys,
		listingKey: listingIDKeys,
		hasPrice:   true,
	},
	{
		names:      []string{"PurchaseNFTEvent", "BuyNFTEvent"},
		label:      model.ActionBought,
		nftKeys:    nftIDKeys,
		sellerKeys: sellerKeys,
		buyerKeys:  buyerKeys,
		listingKey: listingIDKeys,
		hasPrice:   true,
	},
	{
		names:      []string{"DelistNFTEvent", "CancelListingEvent"},
		label:      model.ActionCanceled,
		nftKeys:    nftIDKeys,
		sellerKeys: sellerKeys,
		listingKey: listingIDKeys,
	},
	{
		names:      []string{"MintNFTEvent"},
		label:      model.ActionMinted,
		nftKeys:    mintNftIDKeys,
		sellerKeys: creatorKeys,
	},
	{
		names:      []string{"BurnNFTEvent"},
		label:      model.ActionBurned,
		nftKeys:    mintNftIDKeys,
		sellerKeys: burnOwnerKeys,
	},
}

// Classify reconstructs the marketplace meaning of one transaction from the
// evidence it carries by itself. Three stages run in a fixed order and later
// stages overwrite earlier ones: the move-call name is the weakest signal,
// emitted events are stronger, and object-change diffs are strongest. The
// order is load-bearing: a "mint" call whose effects show an NFT deletion
// classifies as Burned.
func Classify(tx model.TransactionRecord, contract Contract) model.ActionRecord {
	record := model.ActionRecord{
		Digest:      tx.Digest,
		TimestampMs: tx.TimestampMs,
	}

	classifyByFunction(tx.MoveCall, &record)
	classifyByEvents(tx.Events, &record)
	classifyByChanges(tx.Changes, contract, &record)

	return record
}

func classifyByFunction(call *model.MoveCall, record *model.ActionRecord) {
	if call == nil {
		return
	}
	function := strings.ToLower(call.Function)
	switch {
	case strings.Contains(function, "list") && !strings.Contains(function, "cancel"):
		record.Label = model.ActionListed
	case strings.Contains(function, "buy"), strings.Contains(function, "purchase"):
		record.Label = model.ActionBought
	case strings.Contains(function, "cancel"), strings.Contains(function, "delist"):
		record.Label = model.ActionCanceled
	case strings.Contains(function, "mint"):
		record.Label = model.ActionMinted
	case strings.Contains(function, "burn"):
		record.Label = model.ActionBurned
	}
}

func classifyByEvents(events []model.Event, record *model.ActionRecord) {
	for _, event := range events {
		for _, rule := range eventRules {
			if !rule.matches(event.Type) {
				continue
			}
			record.Label = rule.label
			record.NftID = probeString(event.Payload, rule.nftKeys...)
			record.Seller = probeString(event.Payload, rule.sellerKeys...)
			if rule.buyerKeys != nil {
				record.Buyer = probeString(event.Payload, rule.buyerKeys...)
			}
			if rule.listingKey != nil {
				record.ListingID = probeString(event.Payload, rule.listingKey...)
			}
			if rule.hasPrice {
				if mist, ok := probeUint(event.Payload, priceKeys...); ok {
					price := FromMist(mist)
					record.PriceSui = &price
				}
			}
		}
	}
}

func (r eventRule) matches(eventType string) bool {
	for _, name := range r.names {
		if strings.HasSuffix(eventType, "::"+name) || strings.Contains(eventType, name) {
			return true
		}
	}
	return false
}

func classifyByChanges(changes []model.ObjectChange, contract Contract, record *model.ActionRecord) {
	for _, change := range changes {
		if contract.MatchesListing(change.ObjectType) {
			switch change.Kind {
			case model.ChangeCreated:
				record.Label = model.ActionListed
				record.ListingID = change.ObjectID
			case model.ChangeDeleted:
				record.Label = model.ActionCanceled
				record.ListingID = change.ObjectID
			}
		}
		if record.NftID == "" && contract.MatchesNft(change.ObjectType) {
			switch change.Kind {
			case model.ChangeCreated:
				record.Label = model.ActionMinted
				record.NftID = change.ObjectID
			case model.ChangeDeleted:
				record.Label = model.ActionBurned
				record.NftID = change.ObjectID
			}
		}
	}
}
