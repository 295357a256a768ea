// Package sqlite implements the SQLite storage backend for the roster.
// Enum fields are persisted as their integer codes; labels exist only in
// memory and on the definitions in pkg/types.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Database file name inside DataDir.
const dbFileName = "roster.db"

// createMembers is the members table DDL. The role and status columns hold
// the integer codes of the enum definitions in pkg/types; their defaults are
// filled in from the definitions' default labels at schema-build time so the
// schema and the code can never disagree.
const createMembers = `CREATE TABLE IF NOT EXISTS members (
    member_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    role INTEGER NOT NULL DEFAULT %d,
    status INTEGER NOT NULL DEFAULT %d,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

const createMemberIndexes = `CREATE INDEX IF NOT EXISTS idx_members_role ON members(role);
CREATE INDEX IF NOT EXISTS idx_members_status ON members(status);`

// schemaSQL renders the full DDL with enum column defaults resolved from the
// field definitions.
func schemaSQL() (string, error) {
	roleDefault, err := types.Roles.Encode(types.Roles.Default())
	if err != nil {
		return "", fmt.Errorf("encoding default role: %w", err)
	}
	statusDefault, err := types.Statuses.Encode(types.Statuses.Default())
	if err != nil {
		return "", fmt.Errorf("encoding default status: %w", err)
	}
	return fmt.Sprintf(createMembers, roleDefault, statusDefault) + "\n" + createMemberIndexes, nil
}
