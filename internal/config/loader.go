package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for in the config directories.
const FileName = "breakjoe.yaml"

// Load loads the BreakJoe configuration.
// Search order: customPath -> ~/.breakjoe/configs/breakjoe.yaml -> ./configs/breakjoe.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakjoe", "configs", filename)
}

// Validate rejects values the physics engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("brick height must be positive, got %g", c.Bricks.Height))
	}
	for name, d := range map[string]float64{"paddle": c.Paddle.Drag, "ball": c.Ball.Drag, "bricks": c.Bricks.Drag} {
		if d <= 0 || d > 1 {
			errs = append(errs, fmt.Errorf("%s drag must be in (0, 1], got %g", name, d))
		}
	}
	if c.Physics.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("max_speed must be positive, got %g", c.Physics.MaxSpeed))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width *= 1.3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.8
		cfg.Physics.MaxSpeed *= 1.2
	}
}
