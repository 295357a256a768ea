// Set command updates a member's enum fields, persisting immediately.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var (
	setRole   string
	setStatus string
)

var setCmd = &cobra.Command{
	Use:   "set <member-id>",
	Short: "Set a member's role or status",
	Long: `Set changes a member's role and/or status and saves the change
immediately. At least one of --role or --status is required.

Example:
  roster set 0193e5a0-1111-7000-8000-000000000001 --role admin
  roster set 0193e5a0-1111-7000-8000-000000000001 --status suspended
  roster set 0193e5a0-1111-7000-8000-000000000001 --role vendor --status active`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&setRole, "role", "", "new role")
	setCmd.Flags().StringVar(&setStatus, "status", "", "new status")
}

func runSet(cmd *cobra.Command, args []string) error {
	if setRole == "" && setStatus == "" {
		return fmt.Errorf("nothing to set: pass --role and/or --status")
	}

	table, detach, err := membersTable()
	if err != nil {
		return err
	}
	defer detach()

	id := args[0]
	if setRole != "" {
		if err := table.SetField(id, types.FieldRole, setRole); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
	}
	if setStatus != "" {
		if err := table.SetField(id, types.FieldStatus, setStatus); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
	}

	entity, err := table.Get(id)
	if err != nil {
		return fmt.Errorf("get member %s: %w", id, err)
	}
	member, ok := entity.(*types.Member)
	if !ok {
		return fmt.Errorf("unexpected entity type")
	}

	if flagJSON {
		return printMemberJSON(member)
	}
	fmt.Printf("Updated member %s: role=%s status=%s\n",
		member.MemberID, member.Role.Label(), member.Status.Label())
	return nil
}
