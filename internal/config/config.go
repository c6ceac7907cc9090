// Package config provides YAML-based game configuration loading and
// difficulty presets for the arkanoid front-ends.
package config

import (
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ArkanoidConfig contains all configuration for one game session.
type ArkanoidConfig struct {
	Field    ArkanoidField    `yaml:"field"`
	Ball     ArkanoidBall     `yaml:"ball"`
	Paddle   ArkanoidPaddle   `yaml:"paddle"`
	Blocks   ArkanoidBlocks   `yaml:"blocks"`
	Gameplay ArkanoidGameplay `yaml:"gameplay"`
	Effects  ArkanoidEffects  `yaml:"effects"`
	Runtime  ArkanoidRuntime  `yaml:"runtime"`
}

// ArkanoidField defines the play area in cells.
type ArkanoidField struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	HUDHeight int `yaml:"hud_height"`
	Scale     int `yaml:"scale"` // Units per cell
}

// ArkanoidBall defines the ball. Sizes are in units.
type ArkanoidBall struct {
	Size         int `yaml:"size"`
	DeviationMax int `yaml:"deviation_max"` // Largest re-rolled step
}

// ArkanoidPaddle defines the paddle. Sizes are in units.
type ArkanoidPaddle struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Units per tick
}

// ArkanoidBlocks defines the block grid.
type ArkanoidBlocks struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	LeftMargin int `yaml:"left_margin"` // Columns skipped for the side wall
	TopOffset  int `yaml:"top_offset"`  // Rows between the HUD and the first block row
}

// ArkanoidGameplay defines counters.
type ArkanoidGameplay struct {
	MaxHealth  int `yaml:"max_health"`
	Damage     int `yaml:"damage"`
	BlockScore int `yaml:"block_score"`
}

// ArkanoidEffects defines cosmetic timings.
type ArkanoidEffects struct {
	BlurDelay  time.Duration `yaml:"blur_delay"`
	TraceTTL   time.Duration `yaml:"trace_ttl"`
	TraceEvery int           `yaml:"trace_every"`
}

// ArkanoidRuntime defines how a front-end hosts the loop.
type ArkanoidRuntime struct {
	TickPeriod time.Duration `yaml:"tick_period"`
	FrameRate  int           `yaml:"frame_rate"`
	KeyHold    time.Duration `yaml:"key_hold"`
	Seed       uint64        `yaml:"seed"`
}

// Params converts the config into simulation parameters.
func (c ArkanoidConfig) Params() arkanoid.Params {
	return arkanoid.Params{
		Field: arkanoid.Field{
			Width:     c.Field.Width,
			Height:    c.Field.Height,
			HUDHeight: c.Field.HUDHeight,
			Scale:     c.Field.Scale,
		},
		BallSize:     c.Ball.Size,
		DeviationMax: c.Ball.DeviationMax,
		PaddleWidth:  c.Paddle.Width,
		PaddleHeight: c.Paddle.Height,
		PaddleSpeed:  c.Paddle.Speed,
		BlockWidth:   c.Blocks.Width,
		BlockHeight:  c.Blocks.Height,
		LeftMargin:   c.Blocks.LeftMargin,
		TopOffset:    c.Blocks.TopOffset,
		MaxHealth:    c.Gameplay.MaxHealth,
		Damage:       c.Gameplay.Damage,
		BlockScore:   c.Gameplay.BlockScore,
		BlurDelay:    c.Effects.BlurDelay,
		TraceTTL:     c.Effects.TraceTTL,
		TraceEvery:   c.Effects.TraceEvery,
	}
}

// RuntimeConfig converts the runtime section.
func (c ArkanoidConfig) RuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickPeriod: c.Runtime.TickPeriod,
		FrameRate:  c.Runtime.FrameRate,
		KeyHold:    c.Runtime.KeyHold,
		Seed:       c.Runtime.Seed,
	}
}

// Validate reports the first problem with the config as a ConfigurationError.
func (c ArkanoidConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	const op = "config.Validate"
	r := c.Runtime
	switch {
	case r.TickPeriod < 0:
		return core.Configf(op, "tick_period must not be negative, got %s", r.TickPeriod)
	case r.FrameRate <= 0:
		return core.Configf(op, "frame_rate must be positive, got %d", r.FrameRate)
	case r.KeyHold <= 0:
		return core.Configf(op, "key_hold must be positive, got %s", r.KeyHold)
	}
	return nil
}
