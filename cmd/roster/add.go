// Add command creates a new member.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var (
	addName   string
	addRole   string
	addStatus string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a member to the roster",
	Long: `Add creates a new member with the given name.

New members default to role "volunteer" and status "invited".

Example:
  roster add --name "Ada Lovelace"
  roster add --name "Grace Hopper" --role admin
  roster add --name "Edsger" --role vendor --status active --json`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "member name (required)")
	addCmd.Flags().StringVar(&addRole, "role", "", "initial role (default: volunteer)")
	addCmd.Flags().StringVar(&addStatus, "status", "", "initial status (default: invited)")
	_ = addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	table, detach, err := membersTable()
	if err != nil {
		return err
	}
	defer detach()

	member := types.NewMember(addName)
	if addRole != "" {
		if err := member.SetRole(addRole); err != nil {
			return fmt.Errorf("invalid role %q: %w", addRole, err)
		}
	}
	if addStatus != "" {
		if err := member.SetStatus(addStatus); err != nil {
			return fmt.Errorf("invalid status %q: %w", addStatus, err)
		}
	}

	id, err := table.Set("", member)
	if err != nil {
		return fmt.Errorf("create member: %w", err)
	}

	if flagJSON {
		return printMemberJSON(member)
	}
	fmt.Printf("Added member: %s\n", id)
	return nil
}
