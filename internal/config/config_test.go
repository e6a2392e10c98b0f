package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ball:\n  radius: 6\ngameplay:\n  lives: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Ball.Radius != 6 || cfg.Gameplay.Lives != 7 {
		t.Errorf("overrides not applied: radius=%v lives=%d", cfg.Ball.Radius, cfg.Gameplay.Lives)
	}
	if cfg.Paddle.Width != 100 {
		t.Errorf("untouched key changed: paddle width = %v", cfg.Paddle.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  drag: 2\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "drag") {
		t.Errorf("expected drag validation error, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		progression bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Difficulty.Enabled != tt.progression {
				t.Errorf("difficulty enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.progression)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestDifficultyManagerMaxSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 10},
		{50, 12.5},
		{100, 15},
		{500, 15},
	}
	for _, tt := range tests {
		if got := d.MaxSpeed(10, tt.score, 0); got != tt.expected {
			t.Errorf("MaxSpeed(score=%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.4})
	if got := fixed.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled Level() = %v, expected 0.4", got)
	}
}
