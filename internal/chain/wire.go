package chain

import "encoding/json"

// Wire shapes mirror the fullnode JSON-RPC responses. They are converted to
// internal/model types before leaving this package.

type wireObjectError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id"`
}

type wireObjectResponse struct {
	Data  *wireObjectData  `json:"data"`
	Error *wireObjectError `json:"error"`
}

type wireObjectData struct {
	ObjectID string          `json:"objectId"`
	Type     string          `json:"type"`
	Owner    json.RawMessage `json:"owner"`
	Content  *wireContent    `json:"content"`
	Display  *wireDisplay    `json:"display"`
}

type wireContent struct {
	DataType string         `json:"dataType"`
	Type     string         `json:"type"`
	Fields   map[string]any `json:"fields"`
}

type wireDisplay struct {
	Data map[string]string `json:"data"`
}

type wireObjectPage struct {
	Data        []wireObjectResponse `json:"data"`
	HasNextPage bool                 `json:"hasNextPage"`
}

type wireTransactionPage struct {
	Data        []wireTransaction `json:"data"`
	HasNextPage bool              `json:"hasNextPage"`
}

type wireTransaction struct {
	Digest        string             `json:"digest"`
	TimestampMs   string             `json:"timestampMs"`
	Transaction   *wireTxEnvelope    `json:"transaction"`
	Events        []wireEvent        `json:"events"`
	ObjectChanges []wireObjectChange `json:"objectChanges"`
}

type wireTxEnvelope struct {
	Data wireTxData `json:"data"`
}

type wireTxData struct {
	Transaction wireTxKind `json:"transaction"`
}

type wireTxKind struct {
	Kind         string           `json:"kind"`
	Inputs       []map[string]any `json:"inputs"`
	Transactions []map[string]any `json:"transactions"`
	MoveCall     *wireMoveCall    `json:"MoveCall"`
}

type wireMoveCall struct {
	Package  string `json:"package"`
	Module   string `json:"module"`
	Function string `json:"function"`
}

type wireEvent struct {
	Type       string         `json:"type"`
	ParsedJSON map[string]any `json:"parsedJson"`
}

type wireObjectChange struct {
	Type       string `json:"type"`
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
}
