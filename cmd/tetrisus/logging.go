package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// dataDir returns ~/.tetrisus.
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".tetrisus"), nil
}

// newFileLogger returns a logger for the play command. The alt screen owns
// the terminal, so logs go to a file and only with --debug. The returned
// closer must be called on exit.
func newFileLogger() (*log.Logger, io.Closer, error) {
	if !flagDebug {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	dir, err := dataDir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "tetrisus.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetrisus",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// newServerLogger returns a logger writing to stderr.
func newServerLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetrisus-ssh",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
