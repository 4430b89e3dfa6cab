package market

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"marketscope/internal/model"
)

func TestBuildFeed(t *testing.T) {
	purchase := model.TransactionRecord{
		Digest: "D1",
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
	unclassifiable := model.TransactionRecord{Digest: "D2"}
	mint := model.TransactionRecord{
		Digest:   "D3",
		MoveCall: &model.MoveCall{Function: "mint_to_sender"},
		Changes: []model.ObjectChange{
			{Kind: model.ChangeCreated, ObjectType: "0xpkg::nft_marketplace::DevNetNFT", ObjectID: "N3"},
		},
	}

	reader := &fakeReader{
		txs: []model.TransactionRecord{purchase, purchase, unclassifiable, mint},
		objects: map[string]model.ObjectData{
			"N1": {
				ObjectID: "N1",
				Display:  model.Payload{"name": "Shield", "image_url": "https://img/1.png"},
			},
			"N3": {
				ObjectID: "N3",
				Fields:   model.Payload{"name": "Sword", "url": "https://img/3.png"},
			},
		},
	}

	builder := NewFeedBuilder(reader, testContract(), zap.NewNop(), FeedConfig{PageSize: 60})
	feed, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(feed) != 2 {
		t.Fatalf("feed length = %d, want 2", len(feed))
	}
	for _, record := range feed {
		if !record.Label.Valid() {
			t.Fatalf("invalid label in feed: %q", record.Label)
		}
	}
	if feed[0].Digest != "D1" || feed[1].Digest != "D3" {
		t.Fatalf("order mismatch: %s, %s", feed[0].Digest, feed[1].Digest)
	}

	if feed[0].Details != "2.000 SUI" {
		t.Fatalf("details = %q", feed[0].Details)
	}
	if feed[0].Name != "Shield" || feed[0].ImageURL != "https://img/1.png" {
		t.Fatalf("enrichment mismatch: %+v", feed[0])
	}
	if feed[1].Label != model.ActionMinted || feed[1].Name != "Sword" {
		t.Fatalf("mint record mismatch: %+v", feed[1])
	}
}

func TestBuildFeedUniqueDigests(t *testing.T) {
	tx := model.TransactionRecord{
		Digest:   "DUP",
		MoveCall: &model.MoveCall{Function: "buy_nft"},
	}
	reader := &fakeReader{txs: []model.TransactionRecord{tx, tx, tx}}

	builder := NewFeedBuilder(reader, testContract(), zap.NewNop(), FeedConfig{})
	feed, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	seen := make(map[string]struct{})
	for _, record := range feed {
		if _, dup := seen[record.Digest]; dup {
			t.Fatalf("duplicate digest %q in feed", record.Digest)
		}
		seen[record.Digest] = struct{}{}
	}
	if len(feed) != 1 {
		t.Fatalf("feed length = %d, want 1", len(feed))
	}
}

func TestBuildFeedUnsupportedNodeYieldsEmpty(t *testing.T) {
	reader := &fakeReader{txErr: model.ErrUnsupported}

	builder := NewFeedBuilder(reader, testContract(), zap.NewNop(), FeedConfig{})
	feed, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("unsupported capability must not error: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("feed length = %d, want 0", len(feed))
	}
}

func TestBuildFeedQueryFailureYieldsEmpty(t *testing.T) {
	reader := &fakeReader{txErr: fmt.Errorf("rpc timeout")}

	builder := NewFeedBuilder(reader, testContract(), zap.NewNop(), FeedConfig{MaxRetries: 1})
	feed, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("query failure must degrade, not error: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("feed length = %d, want 0", len(feed))
	}
	if len(reader.txQueries) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(reader.txQueries))
	}
}

func TestBuildFeedClampsPageSize(t *testing.T) {
	reader := &fakeReader{}
	builder := NewFeedBuilder(reader, testContract(), zap.NewNop(), FeedConfig{PageSize: 500})
	if _, err := builder.Build(context.Background()); err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(reader.txQueries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(reader.txQueries))
	}
	if got := reader.txQueries[0].Limit; got != MaxFeedPageSize {
		t.Fatalf("limit = %d, want %d", got, MaxFeedPageSize)
	}
	if !reader.txQueries[0].Descending {
		t.Fatalf("feed query must be descending")
	}
}
