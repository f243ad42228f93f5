package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished games",
	Long: `Display the top scores recorded in the scores database.

Examples:
  snake scores
  snake scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cfg.Storage.DBPath == "" {
		return fmt.Errorf("score history is disabled (storage.db_path is empty)")
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Snake")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snake' to play the first one!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-10s  %s\n", "Rank", "Score", "Outcome", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-10s  %s\n", "----", "-----", "-------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-6d  %-10s  %s\n", i+1, entry.Score, entry.Outcome, dateStr)
	}

	fmt.Fprintln(out)
	if high, err := store.HighScore(); err == nil {
		fmt.Fprintf(out, "Best: %d\n", high)
	}
	if wins, err := store.Victories(); err == nil {
		fmt.Fprintf(out, "Victories: %d\n", wins)
	}
	return nil
}
