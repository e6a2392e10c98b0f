// Package config provides YAML-based game configuration loading and
// difficulty management for BreakJoe.
package config

// Config contains all tunable parameters of a BreakJoe session.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Sound      SoundConfig      `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the arena size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines engine tuning.
type PhysicsConfig struct {
	MaxSpeed          float64 `yaml:"max_speed"`
	PaddleSpeed       float64 `yaml:"paddle_speed"` // Velocity added per tick while a direction is held
	PushOut           float64 `yaml:"push_out"`
	PaddleNormalDepth float64 `yaml:"paddle_normal_depth"`
	CaptureOffset     float64 `yaml:"capture_offset"`  // Ball height above the paddle while captured
	LaunchVelocity    float64 `yaml:"launch_velocity"` // Upward speed given on launch
}

// PaddleConfig defines the paddle body.
type PaddleConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Drag      float64 `yaml:"drag"`
	YFraction float64 `yaml:"y_fraction"` // Paddle centre height as a fraction of the world height
}

// BallConfig defines the ball body.
type BallConfig struct {
	Radius   float64 `yaml:"radius"`
	Drag     float64 `yaml:"drag"`
	Reflects bool    `yaml:"reflects"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	TopOffset float64 `yaml:"top_offset"`
	Height    float64 `yaml:"height"`
	Spacing   float64 `yaml:"spacing"`
	Drag      float64 `yaml:"drag"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives        int     `yaml:"lives"`
	PauseSeconds float64 `yaml:"pause_seconds"` // Banner time between levels
	Language     string  `yaml:"language"`
}

// SoundConfig defines the sound effect output.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to max speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a name to a preset. Unknown names return false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
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
