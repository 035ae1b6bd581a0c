package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetrisus/internal/config"
	"github.com/vovakirdan/tetrisus/internal/core"
	"github.com/vovakirdan/tetrisus/internal/games/tetris"
	"github.com/vovakirdan/tetrisus/internal/platform/tui"
	"github.com/vovakirdan/tetrisus/internal/storage"
)

// runMenu shows the title menu and returns to it after every game or
// scoreboard visit until the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	tetrisCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := terminalSize()

	for {
		best := 0
		if store != nil {
			best = storage.NewBestScore(store, tetris.GameID, logger).ReadBest()
		}

		result, err := tui.RunMenu(core.RuntimeConfig{ScreenW: width, ScreenH: height}, best)
		if err != nil {
			return err
		}
		width, height = result.Width, result.Height

		switch result.Choice {
		case tui.MenuPlay:
			if err := playGame(tetrisCfg, store, logger, width, height); err != nil {
				return err
			}
		case tui.MenuScores:
			if store == nil {
				fmt.Fprintln(os.Stderr, "Scores are unavailable without a database.")
				continue
			}
			if err := tui.RunScoreboard(store, width, height); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
