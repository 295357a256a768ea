// Shared helpers for roster CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mesh-intelligence/roster/internal/sqlite"
	"github.com/mesh-intelligence/roster/pkg/enum"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// membersTable attaches the backend and returns the members table. The
// returned detach function must be deferred by the caller.
func membersTable() (types.Table, func(), error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}
	table, err := backend.GetTable(types.MembersTable)
	if err != nil {
		backend.Detach()
		return nil, nil, fmt.Errorf("get members table: %w", err)
	}
	return table, func() { _ = backend.Detach() }, nil
}

// printMemberJSON renders one member as indented JSON.
func printMemberJSON(member *types.Member) error {
	out, err := json.MarshalIndent(member, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal member: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printMemberText renders one member as a human-readable block.
func printMemberText(member *types.Member) {
	fmt.Printf("ID:      %s\n", member.MemberID)
	fmt.Printf("Name:    %s\n", member.Name)
	fmt.Printf("Role:    %s\n", member.Role.Label())
	fmt.Printf("Status:  %s\n", member.Status.Label())
	fmt.Printf("Created: %s\n", member.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated: %s\n", member.UpdatedAt.Format("2006-01-02 15:04:05"))
}

// printMembersTable renders members as an aligned table.
func printMembersTable(members []*types.Member) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tSTATUS")
	for _, m := range members {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.MemberID, m.Name, m.Role.Label(), m.Status.Label())
	}
	w.Flush()
}

// exitCode maps an error to the CLI exit code convention: validation and
// lookup failures are user errors, everything else is a system error.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrUnknownField),
		errors.Is(err, types.ErrInvalidFilter),
		errors.Is(err, enum.ErrUnknownLabel):
		return exitUserError
	default:
		return exitSysError
	}
}
