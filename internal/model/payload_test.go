package model

import "testing"

func TestPayloadLookupOrder(t *testing.T) {
	payload := Payload{"nft_id": "N1", "object_id": "N2"}

	value, ok := payload.Lookup("nft_id", "object_id")
	if !ok || value != "N1" {
		t.Fatalf("lookup = %v (%v), want N1", value, ok)
	}

	value, ok = payload.Lookup("object_id", "nft_id")
	if !ok || value != "N2" {
		t.Fatalf("lookup = %v (%v), want N2", value, ok)
	}
}

func TestPayloadLookupSkipsEmptyValues(t *testing.T) {
	payload := Payload{"nft_id": "", "nft": nil, "id": "N3"}

	value, ok := payload.Lookup("nft_id", "nft", "id")
	if !ok || value != "N3" {
		t.Fatalf("lookup = %v (%v), want N3", value, ok)
	}
}

func TestPayloadLookupMiss(t *testing.T) {
	payload := Payload{"price": "100"}

	if _, ok := payload.Lookup("nft_id", "object_id"); ok {
		t.Fatalf("lookup should miss")
	}
	if _, ok := Payload(nil).Lookup("nft_id"); ok {
		t.Fatalf("nil payload should miss")
	}
}

func TestPayloadLookupKeepsNonStringValues(t *testing.T) {
	payload := Payload{"price": float64(0)}

	value, ok := payload.Lookup("price")
	if !ok || value != float64(0) {
		t.Fatalf("numeric zero must not be skipped: %v (%v)", value, ok)
	}
}
