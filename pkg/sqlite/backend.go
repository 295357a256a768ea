// Package sqlite provides the public API for the SQLite roster backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/roster/internal/sqlite"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// NewRoster creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	r := sqlite.NewRoster()
//	err := r.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".roster-db",
//	})
//	defer r.Detach()
func NewRoster() types.Roster {
	return sqlite.NewBackend()
}
