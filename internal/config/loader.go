package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and screenshots.
const AppDir = ".stacker"

// LoadStack loads Stack Tower configuration.
// Search order: customPath -> ~/.stacker/configs/stack.yaml -> ./configs/stack.yaml -> embedded default
func LoadStack(customPath string) (StackConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultStackConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stack.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "stack.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	cfg = DefaultStackConfig()
	if err := yaml.Unmarshal(defaultStackYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultStackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (StackConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StackConfig{}, false
	}
	cfg := DefaultStackConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StackConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return StackConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyStackPreset modifies the config based on a difficulty preset.
func ApplyStackPreset(cfg *StackConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Wider seed blocks on easy, narrower on hard
	switch preset {
	case DifficultyEasy:
		cfg.Block.WidthRatio = 0.4
	case DifficultyHard:
		cfg.Block.WidthRatio = 0.2
	}
}
