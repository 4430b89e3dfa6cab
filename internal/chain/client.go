package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"marketscope/internal/model"
)

const (
	ownedObjectsPageLimit = 50
	methodNotFoundCode    = -32601
)

// Client is a thin reader over a Sui fullnode JSON-RPC endpoint. All methods
// are read-only; transaction construction and signing belong to the wallet
// side and are out of scope here.
type Client struct {
	rpcClient *rpc.Client
	logger    *zap.Logger
}

// NewClient dials the fullnode RPC URL.
func NewClient(ctx context.Context, rpcURL string, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return &Client{rpcClient: rpcClient, logger: logger}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// GetObject fetches a single object by id with the requested detail level.
func (c *Client) GetObject(ctx context.Context, id string, opts model.ObjectOptions) (model.ObjectData, error) {
	var resp wireObjectResponse
	err := c.rpcClient.CallContext(ctx, &resp, "sui_getObject", id, objectOptionsWire(opts))
	if err != nil {
		return model.ObjectData{}, fmt.Errorf("get object %s: %w", id, translateRPCError(err))
	}
	if resp.Error != nil {
		return model.ObjectData{}, fmt.Errorf("get object %s: %s", id, resp.Error.Code)
	}
	if resp.Data == nil {
		return model.ObjectData{}, fmt.Errorf("get object %s: empty response", id)
	}
	return objectFromWire(*resp.Data), nil
}

// GetOwnedObjects lists objects directly owned by the address, optionally
// filtered by struct type.
func (c *Client) GetOwnedObjects(ctx context.Context, owner string, structType string) ([]model.ObjectData, error) {
	query := map[string]any{
		"options": map[string]any{
			"showType":    true,
			"showContent": true,
			"showDisplay": true,
		},
	}
	if structType != "" {
		query["filter"] = map[string]any{"StructType": structType}
	}

	var page wireObjectPage
	err := c.rpcClient.CallContext(ctx, &page, "suix_getOwnedObjects", owner, query, nil, ownedObjectsPageLimit)
	if err != nil {
		return nil, fmt.Errorf("get owned objects: %w", translateRPCError(err))
	}
	return objectsFromWirePage(page), nil
}

// QueryTransactions fetches up to q.Limit transactions matching the filter.
// Nodes without the query capability yield model.ErrUnsupported.
func (c *Client) QueryTransactions(ctx context.Context, q model.TransactionQuery) ([]model.TransactionRecord, error) {
	filter := map[string]any{}
	switch {
	case q.MoveFunction != nil:
		mf := map[string]any{
			"package": q.MoveFunction.Package,
			"module":  q.MoveFunction.Module,
		}
		if q.MoveFunction.Function != "" {
			mf["function"] = q.MoveFunction.Function
		}
		filter["MoveFunction"] = mf
	case q.MoveEventType != "":
		filter["MoveEventType"] = q.MoveEventType
	default:
		return nil, fmt.Errorf("transaction query requires a filter")
	}

	query := map[string]any{
		"filter": filter,
		"options": map[string]any{
			"showEvents":        q.ShowEvents,
			"showInput":         q.ShowInput,
			"showEffects":       q.ShowEffects,
			"showObjectChanges": q.ShowObjectChanges,
		},
	}

	var page wireTransactionPage
	err := c.rpcClient.CallContext(ctx, &page, "suix_queryTransactionBlocks", query, nil, q.Limit, q.Descending)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", translateRPCError(err))
	}

	records := make([]model.TransactionRecord, 0, len(page.Data))
	for _, tx := range page.Data {
		record, ok := transactionFromWire(tx)
		if !ok {
			c.logger.Debug("skip transaction with invalid digest", zap.String("digest", tx.Digest))
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// QueryObjectsByType scans objects by exact struct type. Optional capability.
func (c *Client) QueryObjectsByType(ctx context.Context, structType string, limit int) ([]model.ObjectData, error) {
	return c.queryObjects(ctx, map[string]any{"StructType": structType}, limit)
}

// QueryObjectsByPackage scans all objects originating from a package.
// Optional capability.
func (c *Client) QueryObjectsByPackage(ctx context.Context, packageID string, limit int) ([]model.ObjectData, error) {
	return c.queryObjects(ctx, map[string]any{"Package": packageID}, limit)
}

func (c *Client) queryObjects(ctx context.Context, filter map[string]any, limit int) ([]model.ObjectData, error) {
	query := map[string]any{
		"filter":  filter,
		"options": map[string]any{"showType": true, "showContent": true},
	}

	var page wireObjectPage
	err := c.rpcClient.CallContext(ctx, &page, "suix_queryObjects", query, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("query objects: %w", translateRPCError(err))
	}
	return objectsFromWirePage(page), nil
}

func objectOptionsWire(opts model.ObjectOptions) map[string]any {
	return map[string]any{
		"showContent": opts.ShowContent,
		"showDisplay": opts.ShowDisplay,
		"showOwner":   opts.ShowOwner,
	}
}

// translateRPCError maps a JSON-RPC "method not found" response onto the
// sentinel callers use to degrade gracefully.
func translateRPCError(err error) error {
	if rpcErr, ok := err.(rpc.Error); ok && rpcErr.ErrorCode() == methodNotFoundCode {
		return model.ErrUnsupported
	}
	return err
}
