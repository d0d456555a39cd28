package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okhotin/tui-splash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default physics config",
	Long: `Print the default physics configuration as YAML. Save it to
~/.splash/configs/physics.yaml (or pass it via 'run --config') and edit the
values to change how the mascot moves.

Examples:
  splash config
  splash config > ~/.splash/configs/physics.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}
