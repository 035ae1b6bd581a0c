package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetrisus/internal/games/tetris"
	"github.com/vovakirdan/tetrisus/internal/storage"
)

var (
	flagBestFile   string
	flagBestImport bool
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Print the stored best score",
	Long: `Print the best score from the scores database, or from a legacy
score file with --file. With --import the file's score is copied into the
database when it beats the stored best.

Examples:
  tetrisus best
  tetrisus best --file score.json
  tetrisus best --file score.json --import`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().StringVar(&flagBestFile, "file", "", "Read a JSON score file ({\"score\": N}) instead of the database")
	bestCmd.Flags().BoolVar(&flagBestImport, "import", false, "Copy the file's score into the database if it is higher")
}

func runBest(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagBestFile == "" {
		if flagBestImport {
			return errors.New("--import requires --file")
		}
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		best, err := store.BestScore(tetris.GameID)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, best)
		return nil
	}

	file, err := storage.NewFileBest(flagBestFile)
	if err != nil {
		return err
	}
	score := file.ReadBest()

	if !flagBestImport {
		fmt.Fprintln(out, score)
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	db := storage.NewBestScore(store, tetris.GameID, nil)
	if score <= db.ReadBest() {
		fmt.Fprintf(out, "Kept %d; %s holds %d\n", db.ReadBest(), file.Path(), score)
		return nil
	}
	if err := db.WriteBest(score); err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d from %s\n", score, file.Path())
	return nil
}
