// Get command shows one member.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <member-id>",
	Short: "Show a member",
	Long: `Get retrieves a member by ID and displays it.

Example:
  roster get 0193e5a0-1111-7000-8000-000000000001
  roster get 0193e5a0-1111-7000-8000-000000000001 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	table, detach, err := membersTable()
	if err != nil {
		return err
	}
	defer detach()

	entity, err := table.Get(args[0])
	if err != nil {
		return fmt.Errorf("get member %s: %w", args[0], err)
	}
	member, ok := entity.(*types.Member)
	if !ok {
		return fmt.Errorf("unexpected entity type")
	}

	if flagJSON {
		return printMemberJSON(member)
	}
	printMemberText(member)
	return nil
}
