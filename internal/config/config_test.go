package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg StackConfig
	if err := yaml.Unmarshal(GetDefaultYAML("stack"), &cfg); err != nil {
		t.Fatalf("embedded stack.yaml does not parse: %v", err)
	}
	if cfg != DefaultStackConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultStackConfig() %+v", cfg, DefaultStackConfig())
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadStackCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.yaml")
	data := []byte("physics:\n  base_speed: 12.5\n  growth_factor: 1.25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadStack(path)
	if err != nil {
		t.Fatalf("LoadStack() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 12.5 || cfg.Physics.GrowthFactor != 1.25 {
		t.Errorf("physics = %+v, expected overrides from file", cfg.Physics)
	}
	// Fields not present in the file keep their defaults
	if cfg.Block != DefaultStackConfig().Block {
		t.Errorf("block = %+v, expected defaults", cfg.Block)
	}
}

func TestLoadStackCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadStack(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadStack(broken); err == nil {
		t.Error("unparsable custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  growth_factor: 0.9\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadStack(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("growth factor below 1 should be ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *StackConfig)
		ok     bool
	}{
		{"defaults", func(c *StackConfig) {}, true},
		{"zero speed", func(c *StackConfig) { c.Physics.BaseSpeed = 0 }, false},
		{"growth of one", func(c *StackConfig) { c.Physics.GrowthFactor = 1 }, false},
		{"width ratio above one", func(c *StackConfig) { c.Block.WidthRatio = 1.5 }, false},
		{"zero height", func(c *StackConfig) { c.Block.Height = 0 }, false},
		{"zero base offset", func(c *StackConfig) { c.Block.BaseOffset = 0 }, false},
		{"level above one", func(c *StackConfig) { c.Difficulty.InitialLevel = 2 }, false},
		{"negative multiplier", func(c *StackConfig) { c.Difficulty.Scaling.SpeedMultiplier = -1 }, false},
		{"nan speed", func(c *StackConfig) { c.Physics.BaseSpeed = math.NaN() }, false},
		{"nan growth", func(c *StackConfig) { c.Physics.GrowthFactor = math.NaN() }, false},
		{"nan width ratio", func(c *StackConfig) { c.Block.WidthRatio = math.NaN() }, false},
		{"nan level", func(c *StackConfig) { c.Difficulty.InitialLevel = math.NaN() }, false},
		{"nan multiplier", func(c *StackConfig) { c.Difficulty.Scaling.SpeedMultiplier = math.NaN() }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStackConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("fixed"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(fixed) = %v, expected ErrUnknownPreset", err)
	}
}

func TestApplyStackPreset(t *testing.T) {
	cfg := DefaultStackConfig()
	ApplyStackPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Block.WidthRatio != 0.2 {
		t.Errorf("hard width ratio = %v, expected 0.2", cfg.Block.WidthRatio)
	}

	cfg = DefaultStackConfig()
	ApplyStackPreset(&cfg, "")
	if cfg != DefaultStackConfig() {
		t.Error("empty preset should leave config untouched")
	}
}

func TestDifficultySeedSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		InitialLevel: 0.5,
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})
	if got := d.SeedSpeed(20); got != 30 {
		t.Errorf("SeedSpeed(20) at level 0.5 = %v, expected 30", got)
	}

	d = NewDifficultyManager(DifficultyConfig{
		InitialLevel: 5,
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})
	if got := d.SeedSpeed(20); got != 40 {
		t.Errorf("level should clamp to 1, SeedSpeed(20) = %v", got)
	}
	d = NewDifficultyManager(DifficultyConfig{
		InitialLevel: -1,
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})
	if d.SeedSpeed(20) != 20 {
		t.Errorf("level 0 should keep base speed, got %v", d.SeedSpeed(20))
	}
}
