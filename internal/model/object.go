package model

// ObjectData is the normalized view of one on-chain object. Content fields
// and display metadata are only present when requested and available.
type ObjectData struct {
	ObjectID string  `json:"object_id"`
	Type     string  `json:"type,omitempty"`
	Fields   Payload `json:"fields,omitempty"`
	Display  Payload `json:"display,omitempty"`
	Owner    string  `json:"owner,omitempty"`
}
