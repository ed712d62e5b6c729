package config

import (
	_ "embed"
)

//go:embed defaults/stack.yaml
var defaultStackYAML []byte

// DefaultStackConfig returns the default Stack Tower configuration.
func DefaultStackConfig() StackConfig {
	return StackConfig{
		Physics: StackPhysics{
			BaseSpeed:    30.0,
			GrowthFactor: 1.1,
		},
		Block: StackBlock{
			WidthRatio: 0.3,
			Height:     1,
			BaseOffset: 3,
		},
		Difficulty: DifficultyConfig{
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "stack":
		return defaultStackYAML
	default:
		return nil
	}
}
