package model

// ChangeKind classifies an object change within a transaction.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeDeleted ChangeKind = "deleted"
	ChangeMutated ChangeKind = "mutated"
	ChangeOther   ChangeKind = "other"
)

// MoveCall identifies the entry function a transaction invoked.
type MoveCall struct {
	Package  string `json:"package"`
	Module   string `json:"module"`
	Function string `json:"function"`
}

// Event is an emitted event with its namespaced type tag and raw payload.
type Event struct {
	Type    string  `json:"type"`
	Payload Payload `json:"payload,omitempty"`
}

// ObjectChange records that a transaction created, mutated, or deleted an object.
type ObjectChange struct {
	Kind       ChangeKind `json:"kind"`
	ObjectType string     `json:"object_type"`
	ObjectID   string     `json:"object_id"`
}

// CallInput is a single raw transaction input. Only string-valued inputs are
// kept; anything else is unusable for object-id scanning.
type CallInput struct {
	Value string `json:"value"`
}

// TransactionRecord is the normalized representation of one transaction as
// returned by the chain reader. It is read-only once built.
type TransactionRecord struct {
	Digest      string         `json:"digest"`
	TimestampMs int64          `json:"timestamp_ms,omitempty"`
	MoveCall    *MoveCall      `json:"move_call,omitempty"`
	Events      []Event        `json:"events,omitempty"`
	Changes     []ObjectChange `json:"object_changes,omitempty"`
	Inputs      []CallInput    `json:"inputs,omitempty"`
}
