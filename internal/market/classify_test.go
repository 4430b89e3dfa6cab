package market

import (
	"testing"

	"marketscope/internal/model"
)

func TestClassifyListCallWithCreatedListing(t *testing.T) {
	tx := model.TransactionRecord{
		Digest:   "D1",
		MoveCall: &model.MoveCall{Package: "0xpkg", Module: "nft_marketplace", Function: "list_nft_for_sale"},
		Changes: []model.ObjectChange{
			{Kind: model.ChangeCreated, ObjectType: "0xpkg::nft_marketplace::Listing", ObjectID: "L1"},
		},
	}

	record := Classify(tx, testContract())
	if record.Label != model.ActionListed {
		t.Fatalf("label = %q, want Listed", record.Label)
	}
	if record.ListingID != "L1" {
		t.Fatalf("listing id = %q, want L1", record.ListingID)
	}
}

func TestClassifyPurchaseEvent(t *testing.T) {
	tx := model.TransactionRecord{
		Digest: "D2",
		Events: []model.Event{
			{
				Type: "0xpkg::nft_marketplace::PurchaseNFTEvent",
				Payload: model.Payload{
					"nft_id": "N1",
					"seller": "0xA",
					"buyer":  "0xB",
					"price":  "2000000000",
				},
			},
		},
	}

	record := Classify(tx, testContract())
	if record.Label != model.ActionBought {
		t.Fatalf("label = %q, want Bought", record.Label)
	}
	if record.NftID != "N1" || record.Seller != "0xA" || record.Buyer != "0xB" {
		t.Fatalf("fields mismatch: %+v", record)
	}
	if record.PriceSui == nil || *record.PriceSui != 2.0 {
		t.Fatalf("price = %v, want 2.0", record.PriceSui)
	}
}

func TestClassifyEventOverridesFunctionName(t *testing.T) {
	tx := model.TransactionRecord{
		Digest:   "D3",
		MoveCall: &model.MoveCall{Function: "foo_function"},
		Events: []model.Event{
			{Type: "0xpkg::nft_marketplace::PurchaseNFTEvent", Payload: model.Payload{"nft_id": "N1"}},
		},
	}

	record := Classify(tx, testContract())
	if record.Label != model.ActionBought {
		t.Fatalf("label = %q, want Bought (event evidence wins)", record.Label)
	}
}

func TestClassifyChangeOverridesEvent(t *testing.T) {
	tx := model.TransactionRecord{
		Digest: "D4",
		Events: []model.Event{
			{Type: "0xpkg::nft_marketplace::ListNFTEvent", Payload: model.Payload{"nft_id": "N1"}},
		},
		Changes: []model.ObjectChange{
			{Kind: model.ChangeDeleted, ObjectType: "0xpkg::nft_marketplace::Listing", ObjectID: "L9"},
		},
	}

	record := Classify(tx, testContract())
	if record.Label != model.ActionCanceled {
		t.Fatalf("label = %q, want Canceled (object change wins)", record.Label)
	}
	if record.ListingID != "L9" {
		t.Fatalf("listing id = %q, want L9", record.ListingID)
	}
}

// A mint call whose effects delete an NFT classifies as Burned: later stages
// always win, even when they contradict the call name.
func TestClassifyMintCallWithDeletionIsBurned(t *testing.T) {
	tx := model.TransactionRecord{
		Digest:   "D5",
		MoveCall: &model.MoveCall{Function: "mint_to_sender"},
		Changes: []model.ObjectChange{
			{Kind: model.ChangeDeleted, ObjectType: "0xpkg::nft_marketplace::DevNetNFT", ObjectID: "N5"},
		},
	}

	record := Classify(tx, testContract())
	if record.Label != model.ActionBurned {
		t.Fatalf("label = %q, want Burned", record.Label)
	}
	if record.NftID != "N5" {
		t.Fatalf("nft id = %q, want N5", record.NftID)
	}
}

func TestClassifyFunctionNameVariants(t *testing.T) {
	cases := []struct {
		function string
		want     model.ActionKind
	}{
		{"list_nft_for_sale", model.ActionListed},
		{"buy_nft", model.ActionBought},
		{"purchase", model.ActionBought},
		{"cancel_listing", model.ActionCanceled},
		// "delist" contains "list" but not "cancel", so the name heuristic
		// alone labels it Listed; a real delist carries events or a Listing
		// deletion, and those stages correct the label.
		{"delist", model.ActionListed},
		{"mint_to_sender", model.ActionMinted},
		{"burn_nft", model.ActionBurned},
		{"withdraw_marketplace_fees", ""},
	}

	for _, tc := range cases {
		tx := model.TransactionRecord{
			Digest:   "D",
			MoveCall: &model.MoveCall{Function: tc.function},
		}
		record := Classify(tx, testContract())
		if record.Label != tc.want {
			t.Fatalf("function %q: label = %q, want %q", tc.function, record.Label, tc.want)
		}
	}
}

// A bare delist call with no events and no object changes keeps the Listed
// label from the name heuristic. The later stages normally correct it; when
// they are absent the heuristic's answer stands as-is.
func TestClassifyBareDelistCall(t *testing.T) {
	bare := model.TransactionRecord{
		Digest:   "D8",
		MoveCall: &model.MoveCall{Function: "delist_nft"},
	}
	if record := Classify(bare, testContract()); record.Label != model.ActionListed {
		t.Fatalf("label = %q, want Listed", record.Label)
	}

	corrected := model.TransactionRecord{
		Digest:   "D9",
		MoveCall: &model.MoveCall{Function: "delist_nft"},
		Changes: []model.ObjectChange{
			{Kind: model.ChangeDeleted, ObjectType: "0xpkg::nft_marketplace::Listing", ObjectID: "L2"},
		},
	}
	if record := Classify(corrected, testContract()); record.Label != model.ActionCanceled {
		t.Fatalf("label = %q, want Canceled", record.Label)
	}
}

func TestClassifyUnmatchedStaysInvalid(t *testing.T) {
	record := Classify(model.TransactionRecord{Digest: "D6"}, testContract())
	if record.Label.Valid() {
		t.Fatalf("empty transaction should not classify, got %q", record.Label)
	}
}

func TestClassifyMintEventKeyFallback(t *testing.T) {
	tx := model.TransactionRecord{
		Digest: "D7",
		Events: []model.Event{
			{Type: "0xpkg::nft_marketplace::MintNFTEvent", Payload: model.Payload{"object_id": "N7", "creator": "0xC"}},
		},
	}

	record := Classify(tx, testContract())
	if record.Label != model.ActionMinted {
		t.Fatalf("label = %q, want Minted", record.Label)
	}
	if record.NftID != "N7" || record.Seller != "0xC" {
		t.Fatalf("fields mismatch: %+v", record)
	}
}
