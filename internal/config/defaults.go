package config

import (
	_ "embed"
)

//go:embed defaults/breakjoe.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  1080,
			Height: 720,
		},
		Physics: PhysicsConfig{
			MaxSpeed:          10,
			PaddleSpeed:       0.8,
			PushOut:           1.1,
			PaddleNormalDepth: 10,
			CaptureOffset:     10,
			LaunchVelocity:    2,
		},
		Paddle: PaddleConfig{
			Width:     100,
			Height:    10,
			Drag:      0.95,
			YFraction: 0.2,
		},
		Ball: BallConfig{
			Radius:   10,
			Drag:     1.0,
			Reflects: true,
		},
		Bricks: BricksConfig{
			TopOffset: 80,
			Height:    20,
			Spacing:   5,
			Drag:      0.95,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			PauseSeconds: 3,
			Language:     "english",
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
