// Delete command removes a member.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <member-id>",
	Short: "Delete a member",
	Long: `Delete removes a member from the roster.

Example:
  roster delete 0193e5a0-1111-7000-8000-000000000001`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	table, detach, err := membersTable()
	if err != nil {
		return err
	}
	defer detach()

	if err := table.Delete(args[0]); err != nil {
		return fmt.Errorf("delete member %s: %w", args[0], err)
	}

	fmt.Printf("Deleted member: %s\n", args[0])
	return nil
}
