package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", core.Configf("config.ParsePreset", "unknown difficulty %q", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	scale := cfg.Field.Scale

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Damage = cfg.Gameplay.MaxHealth / 5
		cfg.Paddle.Width = 3 * scale
		cfg.Runtime.TickPeriod = 7 * time.Millisecond
	case DifficultyHard:
		cfg.Gameplay.Damage = cfg.Gameplay.MaxHealth / 2
		cfg.Paddle.Width = 3 * scale / 2
		cfg.Ball.DeviationMax = 3
		cfg.Runtime.TickPeriod = 4 * time.Millisecond
	}
}

// LoadWithPreset loads the config and applies a named preset on top.
func LoadWithPreset(customPath, preset string) (ArkanoidConfig, error) {
	p, err := ParsePreset(preset)
	if err != nil {
		return ArkanoidConfig{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, p)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: preset %s: %w", p, err)
	}
	return cfg, nil
}
