// Codes command prints the label-to-code mapping of the enum fields.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var codesField string

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Show the label-to-code mapping of the enum fields",
	Long: `Codes prints each enum field's labels and the integer codes the backend
stores for them, in declaration order.

Example:
  roster codes
  roster codes --field role
  roster codes --json`,
	Args: cobra.NoArgs,
	RunE: runCodes,
}

func init() {
	codesCmd.Flags().StringVar(&codesField, "field", "", "limit to one field (role or status)")
}

func runCodes(cmd *cobra.Command, args []string) error {
	fields := []string{types.FieldRole, types.FieldStatus}
	if codesField != "" {
		if _, err := types.FieldDefinition(codesField); err != nil {
			return fmt.Errorf("field %q: %w", codesField, err)
		}
		fields = []string{codesField}
	}

	if flagJSON {
		out := make(map[string]map[string]int, len(fields))
		for _, field := range fields {
			def, err := types.FieldDefinition(field)
			if err != nil {
				return err
			}
			out[field] = def.Codes()
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal codes: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tLABEL\tCODE")
	for _, field := range fields {
		def, err := types.FieldDefinition(field)
		if err != nil {
			return err
		}
		codes := def.Codes()
		for _, label := range def.Labels() {
			fmt.Fprintf(w, "%s\t%s\t%d\n", field, label, codes[label])
		}
	}
	w.Flush()
	return nil
}
