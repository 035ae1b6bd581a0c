package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseTetris(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed:\n  base: 12\n"), 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Speed.Base)
	assert.Equal(t, 1, cfg.Speed.Min, "unset keys keep defaults")
	assert.Equal(t, 18, cfg.Scoring.NoClear)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("speed: [oops"), 0o600))
	_, err = LoadTetris(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("level:\n  lines_per_level: 0\n"), 0o600))
	_, err = LoadTetris(invalid)
	assert.ErrorContains(t, err, "lines_per_level")
}

func TestScoringPoints(t *testing.T) {
	s := DefaultTetrisConfig().Scoring

	tests := []struct {
		rows int
		want int
	}{
		{0, 18},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.Points(tc.rows), "rows=%d", tc.rows)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		ok     bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"spawn off board", func(c *TetrisConfig) { c.Spawn.Column = 9 }, false},
		{"zero min speed", func(c *TetrisConfig) { c.Speed.Min = 0 }, false},
		{"base below min", func(c *TetrisConfig) { c.Speed.Base = 0 }, false},
		{"negative score", func(c *TetrisConfig) { c.Scoring.Double = -1 }, false},
		{"no release delay", func(c *TetrisConfig) { c.Input.SoftDropReleaseTicks = 0 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateReportsScoringInOrder(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Scoring.Tetris = -4
	cfg.Scoring.Double = -2
	cfg.Scoring.NoClear = -1

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()

	noClear := strings.Index(msg, "scoring.no_clear")
	double := strings.Index(msg, "scoring.double")
	tetris := strings.Index(msg, "scoring.tetris")
	require.True(t, noClear >= 0 && double >= 0 && tetris >= 0, msg)
	assert.Less(t, noClear, double)
	assert.Less(t, double, tetris)

	for range 20 {
		assert.Equal(t, msg, cfg.Validate().Error())
	}
}
