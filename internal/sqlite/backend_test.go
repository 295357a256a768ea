package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// attachTestBackend returns an attached backend over a temp DataDir.
// Detach runs via t.Cleanup.
func attachTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	err := b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func TestBackendAttachDetach(t *testing.T) {
	dir := t.TempDir()
	b := NewBackend()

	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))

	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)

	require.NoError(t, b.Detach())
	// Detach is idempotent.
	require.NoError(t, b.Detach())

	// Re-attach after detach works.
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	require.NoError(t, b.Detach())
}

func TestBackendAttachValidatesConfig(t *testing.T) {
	b := NewBackend()

	err := b.Attach(types.Config{Backend: "", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	err = b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestBackendGetTable(t *testing.T) {
	b := attachTestBackend(t)

	table, err := b.GetTable(types.MembersTable)
	require.NoError(t, err)
	assert.NotNil(t, table)

	_, err = b.GetTable("ghosts")
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}

func TestBackendDetachedOperations(t *testing.T) {
	b := NewBackend()

	_, err := b.GetTable(types.MembersTable)
	assert.ErrorIs(t, err, types.ErrRosterDetached)
}

// Data written before Detach must still be there after a fresh Attach on the
// same DataDir.
func TestBackendDataSurvivesReattach(t *testing.T) {
	dir := t.TempDir()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))

	table, err := b.GetTable(types.MembersTable)
	require.NoError(t, err)
	id, err := table.Set("", types.NewMember("Ada"))
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b2.Detach()

	table, err = b2.GetTable(types.MembersTable)
	require.NoError(t, err)
	entity, err := table.Get(id)
	require.NoError(t, err)
	member := entity.(*types.Member)
	assert.Equal(t, "Ada", member.Name)
}

func TestTableOperationsAfterDetach(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	table, err := b.GetTable(types.MembersTable)
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	// A table handle obtained before Detach reports the lifecycle error.
	_, err = table.Get("any-id")
	assert.ErrorIs(t, err, types.ErrRosterDetached)
	_, err = table.Set("", types.NewMember("Ada"))
	assert.ErrorIs(t, err, types.ErrRosterDetached)
	_, err = table.Fetch(nil)
	assert.ErrorIs(t, err, types.ErrRosterDetached)
	err = table.SetField("any-id", types.FieldRole, types.RoleAdmin)
	assert.ErrorIs(t, err, types.ErrRosterDetached)
}
