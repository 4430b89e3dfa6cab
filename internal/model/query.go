package model

// ObjectOptions selects which parts of an object the reader should return.
type ObjectOptions struct {
	ShowContent bool
	ShowDisplay bool
	ShowOwner   bool
}

// MoveFunctionFilter filters transactions by the entry function they call.
// Function may be empty to match every function of the module.
type MoveFunctionFilter struct {
	Package  string
	Module   string
	Function string
}

// TransactionQuery describes a bounded transaction lookup. Exactly one of
// MoveFunction or MoveEventType is expected to be set.
type TransactionQuery struct {
	MoveFunction  *MoveFunctionFilter
	MoveEventType string
	Limit         int
	Descending    bool

	ShowEvents        bool
	ShowInput         bool
	ShowEffects       bool
	ShowObjectChanges bool
}
