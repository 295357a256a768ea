package types

import "errors"

// Roster defines backend-agnostic access to the member store. Callers attach
// to a backend, access tables by name, and detach when done.
type Roster interface {
	// GetTable returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a standard table.
	GetTable(name string) (Table, error)

	// Attach connects the Roster to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations on tables return ErrRosterDetached.
	Detach() error
}

// Roster lifecycle errors.
var (
	ErrRosterDetached  = errors.New("roster is detached")
	ErrAlreadyAttached = errors.New("roster is already attached")
	ErrTableNotFound   = errors.New("table not found")
)
