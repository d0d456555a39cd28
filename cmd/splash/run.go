package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhotin/tui-splash/internal/config"
	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/platform/tui"
	"github.com/okhotin/tui-splash/internal/registry"
	"github.com/okhotin/tui-splash/internal/storage"
)

var (
	flagConfig string
	flagFeel   string
)

var runCmd = &cobra.Command{
	Use:   "run [variant]",
	Short: "Run the title screen",
	Long: `Run the animated title screen. Without an argument the last used
variant is picked, falling back to classic.

Controls:
  Mouse      - Drag the mascot, click buttons, click space to poke
  Space/Up   - Launch the mascot upward
  Left/Right - Nudge the mascot sideways
  M          - Toggle mute
  Tab        - Show bounce streaks
  Q/Ctrl+C   - Quit

Feel presets:
  floaty - Low gravity, springy bounces
  normal - Config values as-is
  heavy  - High gravity, dead bounces

Examples:
  splash run
  splash run neon
  splash run classic --feel heavy
  splash run --config ./my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	runCmd.Flags().StringVar(&flagFeel, "feel", "", "Feel preset: floaty, normal, heavy")
}

func runRun(cmd *cobra.Command, args []string) {
	// Open streak storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open streaks database: %v\n", err)
		// Continue without storage - the screen still works
		store = nil
	}

	variantID := pickVariant(args, store)
	if !registry.Exists(variantID) {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'splash list' to see available variants.")
		os.Exit(1)
	}

	// Load physics config
	cfg, err := config.Load(flagConfig)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagFeel != "" {
		preset, ok := config.ParseFeelPreset(flagFeel)
		if !ok {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: unknown feel preset %q (floaty, normal, heavy)\n", flagFeel)
			os.Exit(1)
		}
		config.ApplyFeelPreset(&cfg, preset)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	variant, err := registry.Create(variantID)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(variant, cfg, store, runtime)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running title screen: %v\n", runErr)
		os.Exit(1)
	}
}

// pickVariant resolves which variant to run: the argument if given, then the
// last used one from storage, then classic.
func pickVariant(args []string, store *storage.Store) string {
	if len(args) > 0 {
		return args[0]
	}
	if store != nil {
		if last, err := store.LastVariant(); err == nil && last != "" && registry.Exists(last) {
			return last
		}
	}
	return "classic"
}
