// Package config provides YAML-based game configuration loading for the
// falling-block game.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all tunable parameters of the game.
type TetrisConfig struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Speed   SpeedConfig   `yaml:"speed"`
	Level   LevelConfig   `yaml:"level"`
	Scoring ScoringConfig `yaml:"scoring"`
	Input   InputConfig   `yaml:"input"`
}

// SpawnConfig defines where new pieces enter the board.
type SpawnConfig struct {
	Column int `yaml:"column"` // Board column of the piece's bounding box
}

// SpeedConfig defines how many ticks pass between automatic drops.
type SpeedConfig struct {
	Base int `yaml:"base"` // Ticks per drop = base - level
	Min  int `yaml:"min"`  // Floor for ticks per drop
}

// LevelConfig defines level progression.
type LevelConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// ScoringConfig defines points awarded per lock by rows cleared.
type ScoringConfig struct {
	NoClear int `yaml:"no_clear"` // Awarded when a lock clears nothing
	Single  int `yaml:"single"`
	Double  int `yaml:"double"`
	Triple  int `yaml:"triple"`
	Tetris  int `yaml:"tetris"`
}

// InputConfig defines platform input tuning.
type InputConfig struct {
	// SoftDropReleaseTicks is how many ticks without a repeated down key
	// end a soft drop. Terminals report no key releases.
	SoftDropReleaseTicks int `yaml:"soft_drop_release_ticks"`
}

// Points returns the score for a lock that cleared the given number of rows.
func (s ScoringConfig) Points(rows int) int {
	switch rows {
	case 1:
		return s.Single
	case 2:
		return s.Double
	case 3:
		return s.Triple
	case 4:
		return s.Tetris
	default:
		return s.NoClear
	}
}

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Spawn.Column < 0 || c.Spawn.Column > 6 {
		errs = append(errs, fmt.Errorf("spawn.column %d out of range [0, 6]", c.Spawn.Column))
	}
	if c.Speed.Min < 1 {
		errs = append(errs, fmt.Errorf("speed.min must be at least 1, got %d", c.Speed.Min))
	}
	if c.Speed.Base < c.Speed.Min {
		errs = append(errs, fmt.Errorf("speed.base %d below speed.min %d", c.Speed.Base, c.Speed.Min))
	}
	if c.Level.LinesPerLevel < 1 {
		errs = append(errs, fmt.Errorf("level.lines_per_level must be at least 1, got %d", c.Level.LinesPerLevel))
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"no_clear", c.Scoring.NoClear},
		{"single", c.Scoring.Single},
		{"double", c.Scoring.Double},
		{"triple", c.Scoring.Triple},
		{"tetris", c.Scoring.Tetris},
	} {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("scoring.%s must not be negative, got %d", f.name, f.value))
		}
	}
	if c.Input.SoftDropReleaseTicks < 1 {
		errs = append(errs, fmt.Errorf("input.soft_drop_release_ticks must be at least 1, got %d", c.Input.SoftDropReleaseTicks))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tetris config: %w", err)
	}
	return nil
}
