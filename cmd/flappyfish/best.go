package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/game"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score",
	Long: `Display the best score recorded on this machine.

Examples:
  flappyfish best
  flappyfish best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the stored best score")
}

func runBest(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetBest(game.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting best score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score cleared.")
		return
	}

	entry, err := store.Best(game.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Score - %s\n", game.Title)
	fmt.Println()

	if entry.UpdatedAt.IsZero() {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Run 'flappyfish play' to set the first best score!")
		return
	}

	fmt.Printf("  %-6s  %d\n", "Best", entry.Score)
	fmt.Printf("  %-6s  %s\n", "Set", entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
}
