package storage

import (
	"path/filepath"
	"testing"

	"marketscope/internal/model"
)

func TestMintedSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "minted.jsonl")
	sink := NewJsonlSink(path)

	first := []model.MintedNft{
		{ObjectID: "N1", Name: "Shield", ImageURL: "https://img/1.png"},
	}
	if err := sink.PutMintedBatch(first); err != nil {
		t.Fatalf("put: %v", err)
	}

	// A second batch appends rather than truncates.
	second := []model.MintedNft{{ObjectID: "N2", Name: "Sword"}}
	if err := sink.PutMintedBatch(second); err != nil {
		t.Fatalf("put: %v", err)
	}

	nfts, err := ReadMintedSnapshot(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(nfts) != 2 {
		t.Fatalf("records = %d, want 2", len(nfts))
	}
	if nfts[0].ObjectID != "N1" || nfts[0].Name != "Shield" || nfts[0].ImageURL != "https://img/1.png" {
		t.Fatalf("first record mismatch: %+v", nfts[0])
	}
	if nfts[1].ObjectID != "N2" {
		t.Fatalf("second record mismatch: %+v", nfts[1])
	}
}

func TestReadMintedSnapshotMissingFile(t *testing.T) {
	nfts, err := ReadMintedSnapshot(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if nfts != nil {
		t.Fatalf("missing file must yield no records: %+v", nfts)
	}
}

func TestPutMintedBatchEmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minted.jsonl")
	if err := NewJsonlSink(path).PutMintedBatch(nil); err != nil {
		t.Fatalf("put: %v", err)
	}
	if nfts, err := ReadMintedSnapshot(path); err != nil || len(nfts) != 0 {
		t.Fatalf("empty batch must leave no file: %v, %+v", err, nfts)
	}
}
