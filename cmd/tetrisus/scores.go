package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetrisus/internal/games/tetris"
	"github.com/vovakirdan/tetrisus/internal/platform/tui"
	"github.com/vovakirdan/tetrisus/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresClear       bool
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded games",
	Long: `Display the top recorded games with their lines and level.

Examples:
  tetrisus scores
  tetrisus scores --limit 20
  tetrisus scores -i
  tetrisus scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded games and the best score")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(tetris.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	games, err := store.TopGames(tetris.GameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Tetrisus")
	fmt.Fprintln(out)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tetrisus play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, g := range games {
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-5d  %s\n", i+1, g.Score, g.Lines, g.Level, dateStr)
	}

	stats, err := store.Stats(tetris.GameID)
	if err != nil {
		return err
	}
	best, err := store.BestScore(tetris.GameID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Average: %.0f  Lines: %d  Best: %d\n",
		stats.GamesCount, stats.AvgScore, stats.TotalLines, max(best, stats.HighScore))
	return nil
}
