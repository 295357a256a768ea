// Init command creates the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize roster configuration and storage",
	Long: `Init creates the configuration directory with a default config.yaml and
initializes the member store in the data directory.

Example:
  roster init
  roster init --data-dir /srv/roster`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	// Attaching creates the data dir and applies the schema.
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	fmt.Printf("Initialized roster\n")
	fmt.Printf("Config dir: %s\n", configDir)
	fmt.Printf("Data dir:   %s\n", dataDir)
	return nil
}
