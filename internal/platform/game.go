// Package platform holds what every front-end shares: building a playable
// game from a loaded config.
package platform

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/render"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// Game bundles one simulation with the scene it draws into.
type Game struct {
	Session *arkanoid.Session
	Loop    *arkanoid.Loop
	Scene   *render.Scene
	Runtime core.RuntimeConfig
}

// NewGame validates cfg and wires a session to a fresh scene. A nil audio
// plays nothing and a zero seed is replaced by one taken from the clock.
func NewGame(cfg config.ArkanoidConfig, audio arkanoid.Audio, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	rc := cfg.RuntimeConfig()
	if rc.Seed == 0 {
		rc.Seed = uint64(time.Now().UnixNano()) //#nosec G115 -- clock seed
	}

	params := cfg.Params()
	scene := render.NewScene(params.Field)
	opts := []arkanoid.SessionOption{
		arkanoid.WithRenderer(scene),
		arkanoid.WithHUDView(scene),
		arkanoid.WithEffects(scene),
		arkanoid.WithSeed(rc.Seed),
	}
	if audio != nil {
		opts = append(opts, arkanoid.WithAudio(audio))
	}

	session, err := arkanoid.NewSession(params, opts...)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	loop, err := arkanoid.NewLoop(session, rc.TickPeriod, arkanoid.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("new loop: %w", err)
	}

	return &Game{
		Session: session,
		Loop:    loop,
		Scene:   scene,
		Runtime: rc,
	}, nil
}

// Status samples what a leaderboard recorder needs.
func (g *Game) Status(f render.Frame) storage.GameStatus {
	return storage.GameStatus{
		Score:   f.Score,
		Health:  f.Health,
		Stopped: g.Loop.State() == arkanoid.StateStopped,
		Won:     f.Info == arkanoid.TextWin,
	}
}
