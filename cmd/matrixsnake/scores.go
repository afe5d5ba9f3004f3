package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrix-snake/internal/platform/tui"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlain  bool
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display recorded runs. On a terminal this opens an interactive table
(Tab switches between top scores and recent runs); otherwise, or with
--plain, a text list is printed.

Examples:
  matrixsnake scores
  matrixsnake scores --plain --limit 5
  matrixsnake scores --plain --recent
  matrixsnake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a text list instead of the table")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Score history cleared.")
		return nil
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(out, store, flagScoresLimit, flagScoresRecent)
}

func printScores(w io.Writer, store *storage.Store, limit int, recent bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	title := "High Scores"
	if recent {
		title = "Recent Runs"
		scores, err = store.RecentScores(limit)
	} else {
		scores, err = store.TopScores(limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "%s - Matrix Snake\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'matrixsnake' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-6s  %-20s  %s\n", "Rank", "Score", "Walls", "Speed", "Seed", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-6s  %-20s  %s\n", "----", "-----", "-----", "-----", "----", "----")
	for i, row := range tui.ScoreRows(scores) {
		fmt.Fprintf(w, "  %-4d  %-6s  %-6s  %-6s  %-20s  %s\n",
			i+1, row[1], row[2], row[3], row[4], scores[i].CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Best: %d  Avg: %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	}
	return nil
}
