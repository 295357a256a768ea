// Version command for the roster CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/roster"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the roster version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("roster", roster.Version)
	},
}
