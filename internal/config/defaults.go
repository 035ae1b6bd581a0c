package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Spawn: SpawnConfig{
			Column: 4,
		},
		Speed: SpeedConfig{
			Base: 16,
			Min:  1,
		},
		Level: LevelConfig{
			LinesPerLevel: 10,
		},
		Scoring: ScoringConfig{
			NoClear: 18,
			Single:  100,
			Double:  300,
			Triple:  500,
			Tetris:  800,
		},
		Input: InputConfig{
			SoftDropReleaseTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
