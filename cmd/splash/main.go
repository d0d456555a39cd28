// splash is an animated title screen for the terminal: a gravity-bound
// mascot you can drag, drop, and bounce off the title letters.
//
// Usage:
//
//	splash run [variant]     - Run the title screen
//	splash list              - List available variants
//	splash serve             - Start SSH server for remote sessions
//	splash streaks [variant] - Show best bounce streaks
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible jumps
//	--db <path>     - Set database path (default: ~/.splash/streaks.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/okhotin/tui-splash/internal/scene/variants"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "splash",
	Short: "Animated title screen with a draggable mascot",
	Long: `splash renders an animated title screen in your terminal. A small
mascot falls onto the title letters, bounces, and can be dragged around
with the mouse or launched with the keyboard.

Available commands:
  run      - Run the title screen
  list     - Show all registered variants
  serve    - Start SSH server for remote sessions
  streaks  - View best bounce streaks
  config   - Print the default physics config

Examples:
  splash run
  splash run neon --feel floaty
  splash list
  splash serve --ssh :2222
  splash streaks classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.splash/streaks.db", "Path to streaks database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(streaksCmd)
	rootCmd.AddCommand(configCmd)
}
