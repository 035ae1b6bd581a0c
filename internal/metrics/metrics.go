// Package metrics exposes serve-mode game counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tetrisus/internal/games/tetris"
)

const namespace = "tetrisus"

// Exporter holds the game counters and the registry they live in.
type Exporter struct {
	registry *prometheus.Registry

	piecesLocked prometheus.Counter
	linesCleared prometheus.Counter
	clears       *prometheus.CounterVec
	gamesStarted prometheus.Counter
	gamesOver    prometheus.Counter
	sessions     prometheus.Gauge
	finalScore   prometheus.Histogram
}

// New creates an exporter with its own registry.
func New() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		piecesLocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_locked_total",
			Help:      "Pieces merged into a board.",
		}),
		linesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_cleared_total",
			Help:      "Rows removed by line clears.",
		}),
		clears: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clears_total",
			Help:      "Locks grouped by the number of rows they cleared.",
		}, []string{"rows"}),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games started, including restarts.",
		}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Games that reached game over.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Connected play sessions.",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   prometheus.ExponentialBuckets(100, 2, 10),
		}),
	}

	e.registry.MustRegister(
		e.piecesLocked,
		e.linesCleared,
		e.clears,
		e.gamesStarted,
		e.gamesOver,
		e.sessions,
		e.finalScore,
	)
	return e
}

// Registry returns the registry the counters are registered in.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Observe records one lock event. It is meant to be passed to Game.Subscribe.
func (e *Exporter) Observe(ev tetris.LockEvent) {
	e.piecesLocked.Inc()
	e.linesCleared.Add(float64(ev.Rows))
	e.clears.WithLabelValues(strconv.Itoa(ev.Rows)).Inc()
	if ev.GameOver {
		e.gamesOver.Inc()
		e.finalScore.Observe(float64(ev.Score))
	}
}

// GameStarted counts a new or restarted game.
func (e *Exporter) GameStarted() {
	e.gamesStarted.Inc()
}

// SessionOpened increments the active session gauge.
func (e *Exporter) SessionOpened() {
	e.sessions.Inc()
}

// SessionClosed decrements the active session gauge.
func (e *Exporter) SessionClosed() {
	e.sessions.Dec()
}

// Handler returns the /metrics HTTP handler.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Serve runs the metrics endpoint on addr until ctx is cancelled.
func (e *Exporter) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
