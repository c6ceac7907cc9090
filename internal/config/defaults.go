package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default configuration. It matches the
// embedded defaults/arkanoid.yaml.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Field: ArkanoidField{
			Width:     9,
			Height:    12,
			HUDHeight: 2,
			Scale:     50,
		},
		Ball: ArkanoidBall{
			Size:         25,
			DeviationMax: 2,
		},
		Paddle: ArkanoidPaddle{
			Width:  100,
			Height: 25,
			Speed:  2,
		},
		Blocks: ArkanoidBlocks{
			Width:      40,
			Height:     25,
			LeftMargin: 1,
			TopOffset:  1,
		},
		Gameplay: ArkanoidGameplay{
			MaxHealth:  100,
			Damage:     30,
			BlockScore: 10,
		},
		Effects: ArkanoidEffects{
			BlurDelay:  100 * time.Millisecond,
			TraceTTL:   100 * time.Millisecond,
			TraceEvery: 2,
		},
		Runtime: ArkanoidRuntime{
			TickPeriod: 5 * time.Millisecond,
			FrameRate:  30,
			KeyHold:    150 * time.Millisecond,
			Seed:       0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
