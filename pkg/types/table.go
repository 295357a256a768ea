package types

import "errors"

// Standard table names.
const (
	MembersTable = "members"
)

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity
// struct.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Set creates or updates an entity. When id is empty a new UUID v7 is
	// generated. Returns the actual ID used (generated or provided).
	Set(id string, data any) (string, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// Fetch returns all entities matching the filter. Filter keys are enum
	// field names (FieldRole, FieldStatus) and values are labels, matched by
	// equality on the stored integer code. An empty filter returns every
	// entity. Returns ErrInvalidFilter for an unrecognized key and
	// enum.ErrUnknownLabel for a label outside the field's definition.
	Fetch(filter map[string]any) ([]any, error)

	// SetField sets one enum field to the given label and persists the
	// change immediately, without a separate Set call. Returns ErrNotFound
	// if the entity does not exist, ErrUnknownField for an unrecognized
	// field name, and enum.ErrUnknownLabel for an undefined label.
	SetField(id, field, label string) error
}

// Table operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Entity and filter errors.
var (
	ErrInvalidName   = errors.New("invalid name")
	ErrUnknownField  = errors.New("unknown enum field")
	ErrInvalidFilter = errors.New("invalid filter key or value type")
)
