package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Outcome reports what one physics step did.
type Outcome struct {
	WallBounce  bool          // Side wall or ceiling reflection
	PaddleHit   bool          // Ball bounced off the paddle
	Miss        bool          // Ball crossed the floor
	BlockBroken core.EntityID // Zero when no block was hit
	Won         bool          // The last block went this step
}

// Engine advances the ball and resolves its collisions. It owns the ball;
// everything else it touches goes through the generator, the HUD and the bus.
type Engine struct {
	params   Params
	ball     Ball
	paddle   *Paddle
	blocks   *Generator
	hud      *HUD
	bus      *Bus
	audio    Audio
	effects  Effects
	renderer Renderer
	rng      Rand
	steps    uint64
	won      bool
}

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball { return e.ball }

// Steps returns how many steps ran since the session began.
func (e *Engine) Steps() uint64 { return e.steps }

// Won reports whether the win was already handled this session.
func (e *Engine) Won() bool { return e.won }

// Step advances the ball once: horizontal move, vertical move with paddle and
// floor checks, block scan, win check. Each sub-step runs in that order.
func (e *Engine) Step() (Outcome, error) {
	var out Outcome
	e.steps++

	e.stepHorizontal(&out)
	if err := e.stepVertical(&out); err != nil {
		return out, err
	}
	if err := e.scanBlocks(&out); err != nil {
		return out, err
	}
	if err := e.checkWin(&out); err != nil {
		return out, err
	}

	if err := e.renderer.MoveTo(e.ball.ID, e.ball.X, e.ball.Y); err != nil {
		return out, err
	}
	if n := uint64(e.params.TraceEvery); n > 0 && e.steps%n == 0 { //#nosec G115 -- validated non-negative
		e.effects.Trace(e.ball.Bounds(), e.params.TraceTTL)
	}
	return out, nil
}

func (e *Engine) stepHorizontal(out *Outcome) {
	b := &e.ball
	f := e.params.Field
	if b.MovingLeft {
		if b.X-b.StepX < f.LeftWall() {
			b.MovingLeft = false
			e.rerollSteps()
			out.WallBounce = true
			return
		}
		b.X -= b.StepX
		return
	}
	if b.X+b.StepX+b.Size > f.RightWall() {
		b.MovingLeft = true
		e.rerollSteps()
		out.WallBounce = true
		return
	}
	b.X += b.StepX
}

func (e *Engine) stepVertical(out *Outcome) error {
	b := &e.ball
	f := e.params.Field
	if b.MovingUp {
		if b.Y-b.StepY < f.Top() {
			b.MovingUp = false
			e.rerollDirection()
			out.WallBounce = true
			return nil
		}
		b.Y -= b.StepY
		return nil
	}

	if e.hitsPaddle() {
		b.MovingUp = true
		e.rerollDirection()
		out.PaddleHit = true
		return e.bus.Publish(EventPaddleBlur)
	}

	if b.Y+b.Size+b.StepY > f.Bottom() {
		out.Miss = true
		b.InPlay = false
		if err := e.bus.Publish(EventGameBreak); err != nil {
			return err
		}
		e.hud.Damage(e.params.Damage)
		e.audio.Play(CueBallHit, PlayOptions{Volume: 0.5})
		if e.hud.Health() == 0 {
			e.hud.ShowInfo(TextGameOver)
		} else {
			e.hud.ShowInfo(TextContinue)
		}
	}
	b.Y += b.StepY
	return nil
}

// hitsPaddle reports whether the next downward step lands the ball on the
// paddle's top edge while the two overlap horizontally.
func (e *Engine) hitsPaddle() bool {
	b := e.ball
	p := e.paddle
	if p == nil || !p.Positioned {
		return false
	}
	nextBottom := b.Y + b.Size + b.StepY
	return nextBottom-p.Y > e.params.DeviationMax &&
		b.Y+b.StepY < p.Y+p.Height &&
		b.X+b.Size > p.X &&
		b.X < p.X+p.Width
}

func (e *Engine) scanBlocks(out *Outcome) error {
	bounds := e.ball.Bounds()
	var hit core.EntityID
	for blk := range e.blocks.Blocks().All() {
		if bounds.Intersects(blk.Bounds) {
			hit = blk.ID
			break
		}
	}
	if hit == 0 {
		return nil
	}

	if _, err := e.blocks.Break(hit); err != nil {
		return err
	}
	out.BlockBroken = hit
	if err := e.bus.Publish(EventBlockBreak); err != nil {
		return err
	}
	if err := e.hud.SetScore(e.hud.Score() + e.params.BlockScore); err != nil {
		return err
	}
	e.ball.MovingLeft = !e.ball.MovingLeft
	e.ball.MovingUp = !e.ball.MovingUp
	e.audio.Play(CueBlockHit, PlayOptions{Volume: 0.5})
	return nil
}

// checkWin fires once per session when a block break empties the grid.
func (e *Engine) checkWin(out *Outcome) error {
	if out.BlockBroken == 0 || e.blocks.Count() != 0 || e.won {
		return nil
	}
	e.won = true
	out.Won = true
	e.ball.InPlay = false
	e.hud.ShowInfo(TextWin)
	if err := e.bus.Publish(EventGameBreak); err != nil {
		return err
	}
	e.hud.ShowHealthIndicator(false)
	// Zero health turns the next start into a full restart, so no blocks
	// are spawned before then.
	e.hud.SetHealth(0)
	return nil
}

func (e *Engine) rerollSteps() {
	e.ball.StepX = 1 + e.rng.IntN(e.params.DeviationMax)
	e.ball.StepY = 1 + e.rng.IntN(e.params.DeviationMax)
}

func (e *Engine) rerollDirection() {
	e.ball.MovingLeft = e.rng.IntN(2) == 1
	e.rerollSteps()
}

// serve puts the ball back at its home position, heading up.
func (e *Engine) serve() {
	e.ball.X, e.ball.Y = e.params.BallHome()
	e.ball.MovingUp = true
	e.ball.InPlay = true
}

// resetWin clears the once-per-session win latch.
func (e *Engine) resetWin() { e.won = false }
