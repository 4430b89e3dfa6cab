package market

import (
	"context"

	"marketscope/internal/model"
)

// Reader is the chain access contract this core depends on. chain.Client is
// the production implementation; tests inject fakes. Every method may fail
// with a generic I/O error which callers treat as "no data"; the two query
// methods additionally report model.ErrUnsupported on nodes without the
// capability, which degrades to an empty result.
type Reader interface {
	GetObject(ctx context.Context, id string, opts model.ObjectOptions) (model.ObjectData, error)
	GetOwnedObjects(ctx context.Context, owner string, structType string) ([]model.ObjectData, error)
	QueryTransactions(ctx context.Context, q model.TransactionQuery) ([]model.TransactionRecord, error)
	QueryObjectsByType(ctx context.Context, structType string, limit int) ([]model.ObjectData, error)
	QueryObjectsByPackage(ctx context.Context, packageID string, limit int) ([]model.ObjectData, error)
}
