package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amoeboids/internal/games/amoeboids"
	"github.com/vovakirdan/amoeboids/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores with the level each run reached.

Examples:
  amoeboids scores
  amoeboids scores --limit 25
  amoeboids scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(amoeboids.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(amoeboids.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Amoeboids")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'amoeboids play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-16s  %s\n", "Rank", "Score", "Level", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-16s  %s\n", "----", "-----", "-----", "----", "---")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %-16s  %s\n", i+1, entry.Score, entry.Level, dateStr, entry.RunID)
	}

	stats, err := store.GetGameStats(amoeboids.GameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Deepest level: %d  Runs: %d  Average: %.0f\n",
			stats.HighScore, stats.BestLevel, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
