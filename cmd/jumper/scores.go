package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs, the best score and overall stats.

Examples:
  jumper scores
  jumper scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs and the best score")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open scores database", "path", flagDBPath, "error", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(jumper.GameID); err != nil {
			logger.Fatal("could not clear scores", "error", err)
		}
		logger.Info("scores cleared", "game", jumper.GameID)
		return
	}

	// Get top scores
	runs, err := store.TopScores(jumper.GameID, 10)
	if err != nil {
		logger.Fatal("could not retrieve scores", "error", err)
	}

	// Display scores
	fmt.Println("High Scores - Sky Jumper")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumper play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Stage", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	// Print scores
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-8d  %-5d  %s\n", i+1, r.PlayerName, r.Score, r.Stage, dateStr)
	}

	fmt.Println()
	if top, err := store.HighScore(jumper.GameID); err == nil {
		fmt.Printf("Top run: %d\n", top)
	}
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(jumper.GameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.0f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02"))
	}
}
