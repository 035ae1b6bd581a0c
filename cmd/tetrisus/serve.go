package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetrisus/internal/config"
	"github.com/vovakirdan/tetrisus/internal/metrics"
	"github.com/vovakirdan/tetrisus/internal/platform/tui"
	"github.com/vovakirdan/tetrisus/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Scores are stored per-server
(all users share the same best score and history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetrisus/host_key

Examples:
  tetrisus serve                           # Listen on :23234 with auto-generated key
  tetrisus serve --ssh :2222               # Listen on port 2222
  tetrisus serve --host-key ./my_host_key  # Use specific host key
  tetrisus serve --metrics :2112           # Expose Prometheus metrics

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Prometheus metrics address (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newServerLogger()

	tetrisCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}

	// Continue without storage; sessions then share an in-memory best.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	var exporter *metrics.Exporter
	if flagMetricsAddr != "" {
		exporter = metrics.New()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Tetris = tetrisCfg

	server, err := tui.NewSSHServer(cfg, store, exporter, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if exporter != nil {
		go func() {
			if err := exporter.Serve(ctx, flagMetricsAddr, logger); err != nil {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	if _, port, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		logger.Info("Connect with: ssh localhost -p " + port)
	}
	return server.ListenAndServe(ctx)
}
