// Members table accessor: hydrates rows to *types.Member and dehydrates enum
// fields to their integer codes on write.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/roster/pkg/enum"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// Compile-time interface check: membersTable must implement Table.
var _ types.Table = (*membersTable)(nil)

type membersTable struct {
	backend *Backend
}

// Get retrieves a member by ID and hydrates the row to *types.Member.
// Returns ErrInvalidID for an empty id, ErrNotFound if no row matches, and
// enum.ErrUnknownCode if the stored role or status code has drifted outside
// the current definitions.
func (mt *membersTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	mt.backend.mu.RLock()
	defer mt.backend.mu.RUnlock()
	if !mt.backend.attached {
		return nil, types.ErrRosterDetached
	}

	row := mt.backend.db.QueryRow(
		"SELECT member_id, name, role, status, created_at, updated_at FROM members WHERE member_id = ?",
		id,
	)
	member, err := hydrateMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting member %s: %w", id, err)
	}
	return member, nil
}

// Set persists a member. If id is empty, generates a UUID v7 and creates the
// member; otherwise updates the existing row. The enum fields are written as
// their integer codes. Returns the actual ID used.
func (mt *membersTable) Set(id string, data any) (string, error) {
	member, ok := data.(*types.Member)
	if !ok {
		return "", types.ErrInvalidData
	}
	if err := member.Validate(); err != nil {
		return "", err
	}

	mt.backend.mu.Lock()
	defer mt.backend.mu.Unlock()
	if !mt.backend.attached {
		return "", types.ErrRosterDetached
	}

	now := time.Now().UTC()

	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		member.MemberID = newID.String()
		member.CreatedAt = now
		id = member.MemberID
	} else {
		member.MemberID = id
	}
	member.UpdatedAt = now

	var exists bool
	err := mt.backend.db.QueryRow(
		"SELECT 1 FROM members WHERE member_id = ?", id,
	).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking member existence: %w", err)
	}

	createdAt := member.CreatedAt.Format(time.RFC3339)
	updatedAt := member.UpdatedAt.Format(time.RFC3339)

	if exists {
		_, err = mt.backend.db.Exec(
			"UPDATE members SET name = ?, role = ?, status = ?, created_at = ?, updated_at = ? WHERE member_id = ?",
			member.Name, member.Role.Code(), member.Status.Code(), createdAt, updatedAt, id,
		)
	} else {
		_, err = mt.backend.db.Exec(
			"INSERT INTO members (member_id, name, role, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			id, member.Name, member.Role.Code(), member.Status.Code(), createdAt, updatedAt,
		)
	}
	if err != nil {
		return "", fmt.Errorf("saving member %s: %w", id, err)
	}
	return id, nil
}

// Delete removes a member by ID.
// Returns ErrInvalidID for an empty id, ErrNotFound if no row matches.
func (mt *membersTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	mt.backend.mu.Lock()
	defer mt.backend.mu.Unlock()
	if !mt.backend.attached {
		return types.ErrRosterDetached
	}

	result, err := mt.backend.db.Exec("DELETE FROM members WHERE member_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting member %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting member %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch returns members matching the filter, ordered by creation time. Filter
// keys are enum field names with label values; each label is encoded before
// the query runs, so filtering by label costs an integer equality on an
// indexed column. An unknown key fails with ErrInvalidFilter, an undefined
// label with enum.ErrUnknownLabel, before touching the database.
func (mt *membersTable) Fetch(filter map[string]any) ([]any, error) {
	mt.backend.mu.RLock()
	defer mt.backend.mu.RUnlock()
	if !mt.backend.attached {
		return nil, types.ErrRosterDetached
	}

	query := "SELECT member_id, name, role, status, created_at, updated_at FROM members"
	var args []any
	var clauses []string

	// Iterate field names, not map order, so the generated SQL is stable.
	for _, field := range []string{types.FieldRole, types.FieldStatus} {
		raw, present := filter[field]
		if !present {
			continue
		}
		label, ok := raw.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		def, err := types.FieldDefinition(field)
		if err != nil {
			return nil, err
		}
		code, err := def.Encode(label)
		if err != nil {
			return nil, fmt.Errorf("filter %s=%q: %w", field, label, err)
		}
		clauses = append(clauses, field+" = ?")
		args = append(args, code)
	}
	for key := range filter {
		if key != types.FieldRole && key != types.FieldStatus {
			return nil, types.ErrInvalidFilter
		}
	}

	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at, member_id"

	rows, err := mt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching members: %w", err)
	}
	defer rows.Close()

	var members []any
	for rows.Next() {
		member, err := hydrateMember(rows)
		if err != nil {
			return nil, fmt.Errorf("fetching members: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching members: %w", err)
	}
	return members, nil
}

// SetField encodes the label for the named enum field and writes it in a
// single UPDATE, the immediate-persist counterpart to Member.SetRole followed
// by Set. Returns ErrUnknownField, enum.ErrUnknownLabel, or ErrNotFound.
func (mt *membersTable) SetField(id, field, label string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	def, err := types.FieldDefinition(field)
	if err != nil {
		return err
	}
	code, err := def.Encode(label)
	if err != nil {
		return fmt.Errorf("setting %s=%q: %w", field, label, err)
	}

	mt.backend.mu.Lock()
	defer mt.backend.mu.Unlock()
	if !mt.backend.attached {
		return types.ErrRosterDetached
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	result, err := mt.backend.db.Exec(
		"UPDATE members SET "+field+" = ?, updated_at = ? WHERE member_id = ?",
		code, updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("setting %s on member %s: %w", field, id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting %s on member %s: %w", field, id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// scannable covers *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// hydrateMember scans one members row and decodes the stored enum codes back
// to labels. A code outside the current definition surfaces
// enum.ErrUnknownCode: the data was written under a definition this build no
// longer has, and guessing a label would hide the drift.
func hydrateMember(row scannable) (*types.Member, error) {
	var (
		id, name, createdAt, updatedAt string
		roleCode, statusCode           int
	)
	if err := row.Scan(&id, &name, &roleCode, &statusCode, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	role, err := enum.ValueFromCode(types.Roles, roleCode)
	if err != nil {
		return nil, fmt.Errorf("member %s role code %d: %w", id, roleCode, err)
	}
	status, err := enum.ValueFromCode(types.Statuses, statusCode)
	if err != nil {
		return nil, fmt.Errorf("member %s status code %d: %w", id, statusCode, err)
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("member %s created_at: %w", id, err)
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("member %s updated_at: %w", id, err)
	}

	return &types.Member{
		MemberID:  id,
		Name:      name,
		Role:      role,
		Status:    status,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}
