package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-runner/internal/games/starrunner"
	"github.com/vovakirdan/star-runner/internal/registry"
	"github.com/vovakirdan/star-runner/internal/storage"
)

var (
	flagAllScores   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores and play statistics for a game
(Star Runner by default).

Examples:
  starrunner scores
  starrunner scores --all
  starrunner scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := starrunner.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starrunner list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	// Get top scores
	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'starrunner play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %s\n", "Rank", "Score", "Hit by", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	// Print scores
	for i, entry := range scores {
		cause := entry.Cause
		if cause == "" {
			cause = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-9s  %-6s  %s\n", i+1, entry.Score, cause, runTime(entry.Duration), dateStr)
	}

	printStats(store, gameID)
}

// printStats shows aggregate numbers below the score table.
func printStats(store *storage.Store, gameID string) {
	fmt.Println()

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Printf("Games played: %d\n", stats.GamesCount)
	fmt.Printf("Best:         %d\n", stats.HighScore)
	fmt.Printf("Average:      %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	counts, err := store.CauseCounts(gameID)
	if err != nil || len(counts) == 0 {
		return
	}
	causes := make([]string, 0, len(counts))
	for c := range counts {
		if c != "" {
			causes = append(causes, c)
		}
	}
	sort.Strings(causes)
	for _, c := range causes {
		fmt.Printf("Ended by %-6s %d\n", c+":", counts[c])
	}
}

// runTime formats a run length as m:ss.
func runTime(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
