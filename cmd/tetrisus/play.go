package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetrisus/internal/config"
	"github.com/vovakirdan/tetrisus/internal/core"
	"github.com/vovakirdan/tetrisus/internal/games/tetris"
	"github.com/vovakirdan/tetrisus/internal/platform/tui"
	"github.com/vovakirdan/tetrisus/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate clockwise
  Down, S          - Soft drop (hold)
  Space            - Hard drop
  P                - Pause
  M                - Mute
  R                - Restart
  ?                - Toggle help
  Ctrl+S           - Save a screenshot
  Q/Esc/Ctrl+C     - Quit

Examples:
  tetrisus play
  tetrisus play --seed 42 --fps 60
  tetrisus play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	tetrisCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	// Continue without storage if the database is unavailable.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := terminalSize()
	return playGame(tetrisCfg, store, logger, width, height)
}

// terminalSize returns the size of stdout, or 80x30 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 30
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// playGame runs one play session. store may be nil.
func playGame(tetrisCfg config.TetrisConfig, store *storage.Store, logger *log.Logger, width, height int) error {
	session := uuid.NewString()
	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Tetris:  tetrisCfg,
		Logger:  logger,
		Session: session,
	}

	if dir, dirErr := dataDir(); dirErr == nil {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	if store == nil {
		opts.Store = &tetris.MemoryBest{}
	} else {
		opts.Store = storage.NewBestScore(store, tetris.GameID, logger)
		opts.OnLock = append(opts.OnLock, store.GameRecorder(session, logger))
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
