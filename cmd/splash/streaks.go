package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhotin/tui-splash/internal/platform/tui"
	"github.com/okhotin/tui-splash/internal/registry"
	"github.com/okhotin/tui-splash/internal/storage"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks [variant]",
	Short: "Show best bounce streaks",
	Long: `Display the top 10 bounce streaks for a variant. Without an argument
an interactive browser opens instead.

Examples:
  splash streaks
  splash streaks classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStreaks,
}

func runStreaks(cmd *cobra.Command, args []string) {
	// Open streak storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening streaks database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		runStreaksBrowser(store)
		return
	}

	variantID := args[0]
	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'splash list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	variant, err := registry.Create(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
		os.Exit(1)
	}

	// Get top streaks
	streaks, err := store.TopStreaks(variantID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving streaks: %v\n", err)
		os.Exit(1)
	}

	// Display streaks
	fmt.Printf("Bounce Streaks - %s\n", variant.Title())
	fmt.Println()

	if len(streaks) == 0 {
		fmt.Println("No streaks recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'splash run %s' and let the mascot bounce!\n", variantID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Bounces", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-------", "----")

	// Print streaks
	for i, entry := range streaks {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Streak, dateStr)
	}

	// Show best
	fmt.Println()
	best, err := store.BestStreak(variantID)
	if err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

// runStreaksBrowser opens the interactive streak table.
func runStreaksBrowser(store *storage.Store) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunStreaks(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing streaks: %v\n", err)
		os.Exit(1)
	}
}
