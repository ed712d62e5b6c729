// Package config provides YAML-based game configuration loading and
// difficulty management for the stacker.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid config")

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// StackConfig contains all configuration for the Stack Tower game.
type StackConfig struct {
	Physics    StackPhysics     `yaml:"physics"`
	Block      StackBlock       `yaml:"block"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// StackPhysics defines block motion parameters.
type StackPhysics struct {
	BaseSpeed    float64 `yaml:"base_speed"`    // Seed block speed in cells per second
	GrowthFactor float64 `yaml:"growth_factor"` // Speed multiplier for every new block (> 1)
}

// StackBlock defines block geometry relative to the playfield.
type StackBlock struct {
	WidthRatio float64 `yaml:"width_ratio"` // Seed block width as a fraction of the playfield
	Height     int     `yaml:"height"`      // Block height in rows
	BaseOffset int     `yaml:"base_offset"` // Rows between the seed block and the screen bottom
}

// DifficultyConfig defines how a preset changes the starting speed.
type DifficultyConfig struct {
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the seed speed factor at level 1.0
}

// Validate checks that the config can produce a playable game.
func (c StackConfig) Validate() error {
	switch {
	case !(c.Physics.BaseSpeed > 0):
		return fmt.Errorf("%w: physics.base_speed must be positive, got %v", ErrInvalidConfig, c.Physics.BaseSpeed)
	case !(c.Physics.GrowthFactor > 1):
		return fmt.Errorf("%w: physics.growth_factor must be greater than 1, got %v", ErrInvalidConfig, c.Physics.GrowthFactor)
	case !(c.Block.WidthRatio > 0 && c.Block.WidthRatio <= 1):
		return fmt.Errorf("%w: block.width_ratio must be in (0, 1], got %v", ErrInvalidConfig, c.Block.WidthRatio)
	case c.Block.Height < 1:
		return fmt.Errorf("%w: block.height must be at least 1, got %d", ErrInvalidConfig, c.Block.Height)
	case c.Block.BaseOffset < 1:
		return fmt.Errorf("%w: block.base_offset must be at least 1, got %d", ErrInvalidConfig, c.Block.BaseOffset)
	case !(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1):
		return fmt.Errorf("%w: difficulty.initial_level must be in [0, 1], got %v", ErrInvalidConfig, c.Difficulty.InitialLevel)
	case !(c.Difficulty.Scaling.SpeedMultiplier >= 0):
		return fmt.Errorf("%w: difficulty.scaling.speed_multiplier must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config default".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownPreset, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
