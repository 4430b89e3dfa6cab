package market

import (
	"context"
	"fmt"

	"marketscope/internal/model"
)

// fakeReader is a scriptable chain reader for tests.
type fakeReader struct {
	objects      map[string]model.ObjectData
	objectErrs   map[string]error
	owned        []model.ObjectData
	ownedErr     error
	txs          []model.TransactionRecord
	txErr        error
	byType       map[string][]model.ObjectData
	byTypeErr    error
	byPackage    map[string][]model.ObjectData
	byPackageErr error

	objectCalls []string
	txQueries   []model.TransactionQuery
}

func (f *fakeReader) GetObject(_ context.Context, id string, _ model.ObjectOptions) (model.ObjectData, error) {
	f.objectCalls = append(f.objectCalls, id)
	if err, ok := f.objectErrs[id]; ok {
		return model.ObjectData{}, err
	}
	if obj, ok := f.objects[id]; ok {
		return obj, nil
	}
	return model.ObjectData{}, fmt.Errorf("object not found: %s", id)
}

func (f *fakeReader) GetOwnedObjects(_ context.Context, _ string, _ string) ([]model.ObjectData, error) {
	if f.ownedErr != nil {
		return nil, f.ownedErr
	}
	return f.owned, nil
}

func (f *fakeReader) QueryTransactions(_ context.Context, q model.TransactionQuery) ([]model.TransactionRecord, error) {
	f.txQueries = append(f.txQueries, q)
	if f.txErr != nil {
		return nil, f.txErr
	}
	return f.txs, nil
}

func (f *fakeReader) QueryObjectsByType(_ context.Context, structType string, _ int) ([]model.ObjectData, error) {
	if f.byTypeErr != nil {
		return nil, f.byTypeErr
	}
	return f.byType[structType], nil
}

func (f *fakeReader) QueryObjectsByPackage(_ context.Context, packageID string, _ int) ([]model.ObjectData, error) {
	if f.byPackageErr != nil {
		return nil, f.byPackageErr
	}
	return f.byPackage[packageID], nil
}

func testContract() Contract {
	return Contract{
		PackageID:     "0xpkg",
		Module:        "nft_marketplace",
		NftStruct:     "DevNetNFT",
		ListingStruct: "Listing",
		ListFunction:  "list_nft_for_sale",
	}
}
