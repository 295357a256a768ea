// List command queries members, optionally filtered by label.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var (
	listRole   string
	listStatus string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List members",
	Long: `List fetches members and displays them. Use --role and --status to
filter by label; the backend matches on the stored integer code.

Example:
  roster list
  roster list --role admin
  roster list --role admin --status active --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listRole, "role", "", "filter by role label")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status label")
}

func runList(cmd *cobra.Command, args []string) error {
	table, detach, err := membersTable()
	if err != nil {
		return err
	}
	defer detach()

	filter := make(map[string]any)
	if listRole != "" {
		filter[types.FieldRole] = listRole
	}
	if listStatus != "" {
		filter[types.FieldStatus] = listStatus
	}

	entities, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("fetch members: %w", err)
	}

	members := make([]*types.Member, 0, len(entities))
	for _, e := range entities {
		member, ok := e.(*types.Member)
		if !ok {
			return fmt.Errorf("unexpected entity type")
		}
		members = append(members, member)
	}

	if flagJSON {
		out, err := json.MarshalIndent(members, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal members: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(members) == 0 {
		fmt.Println("No members found")
		return nil
	}
	printMembersTable(members)
	return nil
}
