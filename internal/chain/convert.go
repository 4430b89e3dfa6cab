package chain

import (
	"encoding/json"
	"strconv"

	"github.com/mr-tron/base58"

	"marketscope/internal/model"
)

const digestByteLen = 32

func objectFromWire(data wireObjectData) model.ObjectData {
	obj := model.ObjectData{
		ObjectID: data.ObjectID,
		Type:     data.Type,
		Owner:    ownerAddress(data.Owner),
	}

	if data.Content != nil && data.Content.DataType == "moveObject" {
		if obj.Type == "" {
			obj.Type = data.Content.Type
		}
		obj.Fields = model.Payload(data.Content.Fields)
	}
	if data.Display != nil && len(data.Display.Data) > 0 {
		display := make(model.Payload, len(data.Display.Data))
		for key, value := range data.Display.Data {
			display[key] = value
		}
		obj.Display = display
	}
	return obj
}

func objectsFromWirePage(page wireObjectPage) []model.ObjectData {
	objects := make([]model.ObjectData, 0, len(page.Data))
	for _, resp := range page.Data {
		if resp.Data == nil {
			continue
		}
		objects = append(objects, objectFromWire(*resp.Data))
	}
	return objects
}

// ownerAddress extracts a direct address owner. Shared and immutable owners
// yield an empty string.
func ownerAddress(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var owner struct {
		AddressOwner string `json:"AddressOwner"`
	}
	if err := json.Unmarshal(raw, &owner); err != nil {
		return ""
	}
	return owner.AddressOwner
}

func transactionFromWire(tx wireTransaction) (model.TransactionRecord, bool) {
	if !validDigest(tx.Digest) {
		return model.TransactionRecord{}, false
	}

	record := model.TransactionRecord{Digest: tx.Digest}

	if tx.TimestampMs != "" {
		if ms, err := strconv.ParseInt(tx.TimestampMs, 10, 64); err == nil {
			record.TimestampMs = ms
		}
	}

	if tx.Transaction != nil {
		kind := tx.Transaction.Data.Transaction
		record.MoveCall = moveCallFromWire(kind)
		record.Inputs = inputsFromWire(kind.Inputs)
	}

	for _, event := range tx.Events {
		record.Events = append(record.Events, model.Event{
			Type:    event.Type,
			Payload: model.Payload(event.ParsedJSON),
		})
	}

	for _, change := range tx.ObjectChanges {
		record.Changes = append(record.Changes, model.ObjectChange{
			Kind:       changeKind(change.Type),
			ObjectType: change.ObjectType,
			ObjectID:   change.ObjectID,
		})
	}

	return record, true
}

// moveCallFromWire handles both the legacy single-call shape and the
// programmable transaction shape, where the call sits inside the command list.
func moveCallFromWire(kind wireTxKind) *model.MoveCall {
	if kind.MoveCall != nil {
		return &model.MoveCall{
			Package:  kind.MoveCall.Package,
			Module:   kind.MoveCall.Module,
			Function: kind.MoveCall.Function,
		}
	}
	for _, command := range kind.Transactions {
		raw, ok := command["MoveCall"].(map[string]any)
		if !ok {
			continue
		}
		call := &model.MoveCall{}
		if pkg, ok := raw["package"].(string); ok {
			call.Package = pkg
		}
		if module, ok := raw["module"].(string); ok {
			call.Module = module
		}
		if function, ok := raw["function"].(string); ok {
			call.Function = function
		}
		return call
	}
	return nil
}

func inputsFromWire(inputs []map[string]any) []model.CallInput {
	out := make([]model.CallInput, 0, len(inputs))
	for _, input := range inputs {
		if value, ok := input["value"].(string); ok && value != "" {
			out = append(out, model.CallInput{Value: value})
			continue
		}
		if id, ok := input["objectId"].(string); ok && id != "" {
			out = append(out, model.CallInput{Value: id})
		}
	}
	return out
}

func changeKind(raw string) model.ChangeKind {
	switch raw {
	case "created":
		return model.ChangeCreated
	case "deleted":
		return model.ChangeDeleted
	case "mutated":
		return model.ChangeMutated
	default:
		return model.ChangeOther
	}
}

// validDigest checks the base58 transaction digest format before the record
// is admitted as a feed identity.
func validDigest(digest string) bool {
	if digest == "" {
		return false
	}
	decoded, err := base58.Decode(digest)
	if err != nil {
		return false
	}
	return len(decoded) == digestByteLen
}
