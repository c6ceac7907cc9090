package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Session is the complete state of one game: field, entities, counters and
// the bus tying them together. It is owned by a single goroutine (the Loop's).
type Session struct {
	params Params
	bus    *Bus
	input  *InputState
	engine *Engine
	blocks *Generator
	hud    *HUD
	paddle Paddle
	ids    core.IDAllocator

	renderer Renderer
	effects  Effects
	audio    Audio
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	renderer Renderer
	hud      HUDView
	effects  Effects
	audio    Audio
	rng      Rand
	keymap   core.Keymap
}

// WithRenderer sets the entity renderer.
func WithRenderer(r Renderer) SessionOption {
	return func(o *sessionOptions) { o.renderer = r }
}

// WithHUDView sets the HUD display.
func WithHUDView(v HUDView) SessionOption {
	return func(o *sessionOptions) { o.hud = v }
}

// WithEffects sets the cosmetic effects runner.
func WithEffects(e Effects) SessionOption {
	return func(o *sessionOptions) { o.effects = e }
}

// WithAudio sets the audio player.
func WithAudio(a Audio) SessionOption {
	return func(o *sessionOptions) { o.audio = a }
}

// WithRand sets the random source. Tests pass a fixed sequence here.
func WithRand(r Rand) SessionOption {
	return func(o *sessionOptions) { o.rng = r }
}

// WithSeed seeds the default random source.
func WithSeed(seed uint64) SessionOption {
	return func(o *sessionOptions) { o.rng = NewRand(seed) }
}

// WithKeymap sets the bindings used to classify held keys.
func WithKeymap(km core.Keymap) SessionOption {
	return func(o *sessionOptions) { o.keymap = km }
}

// NewSession validates p, creates the ball and paddle visuals and places both
// at their home positions. Blocks are generated by the first start.
func NewSession(p Params, opts ...SessionOption) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := sessionOptions{
		renderer: nopRenderer{},
		hud:      nopHUD{},
		effects:  nopEffects{},
		audio:    nopAudio{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewRand(0)
	}

	s := &Session{
		params:   p,
		bus:      NewBus(),
		input:    NewInputState(o.keymap),
		hud:      NewHUD(o.hud, p.MaxHealth),
		renderer: o.renderer,
		effects:  o.effects,
		audio:    o.audio,
	}
	s.blocks = NewGenerator(p, o.renderer, &s.ids)

	s.paddle = Paddle{
		ID:     s.ids.Next(),
		X:      p.PaddleHome(),
		Y:      p.PaddleY(),
		Width:  p.PaddleWidth,
		Height: p.PaddleHeight,
		Speed:  p.PaddleSpeed,
	}
	bx, by := p.BallHome()
	ball := Ball{
		ID:         s.ids.Next(),
		X:          bx,
		Y:          by,
		MovingLeft: o.rng.IntN(2) == 1,
		MovingUp:   true,
		StepX:      1,
		StepY:      1,
		Size:       p.BallSize,
	}
	s.engine = &Engine{
		params:   p,
		ball:     ball,
		paddle:   &s.paddle,
		blocks:   s.blocks,
		hud:      s.hud,
		bus:      s.bus,
		audio:    o.audio,
		effects:  o.effects,
		renderer: o.renderer,
		rng:      o.rng,
	}

	if err := s.renderer.Create(s.paddle.ID, core.KindPaddle, s.paddle.Bounds()); err != nil {
		return nil, fmt.Errorf("create paddle: %w", err)
	}
	if err := s.renderer.Create(ball.ID, core.KindBall, ball.Bounds()); err != nil {
		return nil, fmt.Errorf("create ball: %w", err)
	}
	if err := s.Centralize(); err != nil {
		return nil, err
	}
	// A freshly built session has not served yet.
	s.engine.ball.InPlay = false

	s.bus.Subscribe(EventPaddleBlur, func(Event) error {
		s.effects.Flash(s.paddle.ID, p.BlurDelay)
		s.audio.Play(CuePaddleHit, PlayOptions{Volume: 1})
		return nil
	})
	return s, nil
}

func (s *Session) Params() Params        { return s.params }
func (s *Session) Bus() *Bus             { return s.bus }
func (s *Session) Input() *InputState    { return s.input }
func (s *Session) HUD() *HUD             { return s.hud }
func (s *Session) Blocks() *Generator    { return s.blocks }
func (s *Session) Engine() *Engine       { return s.engine }
func (s *Session) Ball() Ball            { return s.engine.Ball() }
func (s *Session) Paddle() Paddle        { return s.paddle }
func (s *Session) Counters() HealthScore { return s.hud.Counters() }

// Centralize returns the paddle and the ball to their home positions with the
// ball heading up.
func (s *Session) Centralize() error {
	s.paddle.X = s.params.PaddleHome()
	s.paddle.Positioned = true
	if err := s.renderer.MoveTo(s.paddle.ID, s.paddle.X, s.paddle.Y); err != nil {
		return err
	}
	s.engine.serve()
	b := s.engine.ball
	return s.renderer.MoveTo(b.ID, b.X, b.Y)
}

// Restart regenerates the grid, recenters everything and resets the HUD.
// Calling it twice in a row leaves the session in the same state.
func (s *Session) Restart() error {
	if err := s.blocks.Clear(); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	if err := s.blocks.Generate(); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	if err := s.Centralize(); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	s.hud.Reset()
	s.engine.resetWin()
	return nil
}

// MovePaddle applies one tick of movement in the given direction, clamped to
// the walls, and announces it on the bus.
func (s *Session) MovePaddle(intent Intent) error {
	var ev Event
	switch intent {
	case IntentLeft:
		ev = EventPaddleLeft
	case IntentRight:
		ev = EventPaddleRight
	default:
		return nil
	}
	if err := s.bus.Publish(ev); err != nil {
		return err
	}

	f := s.params.Field
	dx := s.paddle.Speed
	if intent == IntentLeft {
		dx = -dx
	}
	x := core.Clamp(s.paddle.X+dx, f.LeftWall(), f.RightWall()-s.paddle.Width)
	if x == s.paddle.X {
		return nil
	}
	s.paddle.X = x
	return s.renderer.MoveTo(s.paddle.ID, s.paddle.X, s.paddle.Y)
}
