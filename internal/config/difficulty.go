package config

import "math"

// DifficultyManager derives starting parameters from the difficulty level.
// In-game progression comes only from the physics growth factor.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SeedSpeed returns the starting block speed for the current level.
// Speed increases from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) SeedSpeed(baseSpeed float64) float64 {
	return baseSpeed * (1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
