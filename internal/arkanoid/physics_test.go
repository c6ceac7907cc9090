package arkanoid

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name           string
		x, y           int
		left, up       bool
		wantX, wantY   int
		wantLeft       bool
		wantUp         bool
		wantWallBounce bool
	}{
		{"free flight up-left", 200, 400, true, true, 199, 399, true, true, false},
		{"left wall", 50, 400, true, true, 50, 399, false, true, true},
		{"right wall", 425, 400, false, true, 425, 399, true, true, true},
		{"ceiling", 200, 100, false, true, 201, 100, false, false, true},
		{"just inside left wall", 51, 400, true, true, 50, 399, true, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rig := newRig(t)
			rig.placeBall(tc.x, tc.y, tc.left, tc.up)

			out, err := rig.s.engine.Step()
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			b := rig.s.Ball()
			if b.X != tc.wantX || b.Y != tc.wantY {
				t.Errorf("position = (%d, %d), expected (%d, %d)", b.X, b.Y, tc.wantX, tc.wantY)
			}
			if b.MovingLeft != tc.wantLeft || b.MovingUp != tc.wantUp {
				t.Errorf("direction left=%v up=%v, expected left=%v up=%v", b.MovingLeft, b.MovingUp, tc.wantLeft, tc.wantUp)
			}
			if out.WallBounce != tc.wantWallBounce {
				t.Errorf("WallBounce = %v, expected %v", out.WallBounce, tc.wantWallBounce)
			}
		})
	}
}

func TestStepRerollStaysInRange(t *testing.T) {
	rig := newRig(t)
	rig.s.engine.rng = &seqRand{vals: []int{1, 0, 1, 1, 0, 1}}
	rig.placeBall(50, 400, true, true)

	for range 20 {
		rig.s.engine.ball.MovingLeft = true
		rig.s.engine.ball.X = 50
		if _, err := rig.s.engine.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
		b := rig.s.Ball()
		if b.StepX < 1 || b.StepX > 2 || b.StepY < 1 || b.StepY > 2 {
			t.Fatalf("steps (%d, %d) outside [1, 2]", b.StepX, b.StepY)
		}
	}
}

// Ball at center moving up-left with a block just above-left of it.
func TestBlockHitFlipsBall(t *testing.T) {
	rig := newRig(t)
	target := rig.addBlock(t, core.NewRect(215, 380, 40, 25))
	rig.addBlock(t, core.NewRect(400, 150, 40, 25))
	rig.placeBall(237, 400, true, true)

	out, err := rig.s.engine.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}

	if out.BlockBroken != target {
		t.Fatalf("BlockBroken = %d, expected %d", out.BlockBroken, target)
	}
	if _, ok := rig.s.blocks.Blocks().Get(target); ok {
		t.Error("hit block should be removed from the set")
	}
	if _, ok := rig.renderer.live[target]; ok {
		t.Error("hit block visual should be destroyed")
	}
	if got := rig.s.HUD().Score(); got != 10 {
		t.Errorf("score = %d, expected 10", got)
	}
	b := rig.s.Ball()
	if b.MovingUp {
		t.Error("ball should now move down")
	}
	if b.MovingLeft {
		t.Error("horizontal direction should flip as well")
	}
	if rig.audio.last() != CueBlockHit {
		t.Errorf("last cue = %q, expected %q", rig.audio.last(), CueBlockHit)
	}
	if out.Won {
		t.Error("one block remains, no win expected")
	}
}

func TestOneBlockPerTick(t *testing.T) {
	rig := newRig(t)
	first := rig.addBlock(t, core.NewRect(215, 380, 40, 25))
	second := rig.addBlock(t, core.NewRect(230, 380, 40, 25))
	rig.placeBall(237, 400, true, true)

	out, err := rig.s.engine.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if out.BlockBroken != first {
		t.Errorf("first block in insertion order should break, got %d", out.BlockBroken)
	}
	if _, ok := rig.s.blocks.Blocks().Get(second); !ok {
		t.Error("second overlapping block must survive this tick")
	}
	if rig.s.HUD().Score() != 10 {
		t.Errorf("score = %d, expected 10", rig.s.HUD().Score())
	}
}

// Paddle centered, ball descending onto it.
func TestPaddleBounceKeepsHealth(t *testing.T) {
	rig := newRig(t)
	blur := 0
	rig.s.Bus().Subscribe(EventPaddleBlur, func(Event) error {
		blur++
		return nil
	})
	rig.placeBall(237, 626, false, false)
	rig.s.engine.ball.StepX = 1
	rig.s.engine.ball.StepY = 2

	out, err := rig.s.engine.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}

	b := rig.s.Ball()
	if !out.PaddleHit || !b.MovingUp {
		t.Fatalf("expected a paddle bounce, got %+v", out)
	}
	if b.Y != 626 {
		t.Errorf("vertical displacement should be skipped on a bounce, y = %d", b.Y)
	}
	if rig.s.HUD().Health() != 100 {
		t.Errorf("health = %d, expected 100", rig.s.HUD().Health())
	}
	if blur != 1 {
		t.Errorf("paddle-blur published %d times, expected 1", blur)
	}
	if rig.audio.last() != CuePaddleHit {
		t.Errorf("last cue = %q, expected %q", rig.audio.last(), CuePaddleHit)
	}
}

func TestPaddleHitRequiresPositionedPaddle(t *testing.T) {
	rig := newRig(t)
	rig.s.paddle.Positioned = false
	rig.placeBall(237, 626, false, false)
	rig.s.engine.ball.StepY = 2

	out, err := rig.s.engine.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if out.PaddleHit {
		t.Error("an unplaced paddle must not bounce the ball")
	}
}

func TestPaddleHitGeometry(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		hit  bool
	}{
		{"well above", 237, 600, false},
		{"landing", 237, 627, true},
		{"left edge overlap", 176, 627, true},
		{"just left of paddle", 175, 627, false},
		{"right edge overlap", 299, 627, true},
		{"just right of paddle", 300, 627, false},
		{"already below the paddle", 237, 675, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rig := newRig(t)
			rig.placeBall(tc.x, tc.y, false, false)
			if got := rig.s.engine.hitsPaddle(); got != tc.hit {
				t.Errorf("hitsPaddle() = %v, expected %v", got, tc.hit)
			}
		})
	}
}

// Ball falls past the floor away from the paddle.
func TestMissCostsHealth(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		wantHealth int
		wantInfo   string
	}{
		{"first miss", 100, 70, TextContinue},
		{"last life", 30, 0, TextGameOver},
		{"clamped at zero", 10, 0, TextGameOver},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rig := newRig(t)
			rig.s.HUD().SetHealth(tc.health)
			breaks := 0
			rig.s.Bus().Subscribe(EventGameBreak, func(Event) error {
				breaks++
				return nil
			})
			rig.placeBall(60, 680, false, false)

			out, err := rig.s.engine.Step()
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if !out.Miss {
				t.Fatal("expected a miss")
			}
			if got := rig.s.HUD().Health(); got != tc.wantHealth {
				t.Errorf("health = %d, expected %d", got, tc.wantHealth)
			}
			if got := rig.s.HUD().Info(); got != tc.wantInfo {
				t.Errorf("info = %q, expected %q", got, tc.wantInfo)
			}
			if breaks != 1 {
				t.Errorf("game-break published %d times, expected 1", breaks)
			}
			if rig.s.Ball().Y != 681 {
				t.Errorf("miss should still move the ball, y = %d", rig.s.Ball().Y)
			}
			if rig.s.Ball().InPlay {
				t.Error("ball should be out of play after a miss")
			}
			if rig.audio.last() != CueBallHit {
				t.Errorf("last cue = %q, expected %q", rig.audio.last(), CueBallHit)
			}
		})
	}
}

// The last block goes.
func TestLastBlockWins(t *testing.T) {
	rig := newRig(t)
	rig.addBlock(t, core.NewRect(215, 380, 40, 25))
	rig.placeBall(237, 400, true, true)

	breaks := 0
	rig.s.Bus().Subscribe(EventGameBreak, func(Event) error {
		breaks++
		return nil
	})

	out, err := rig.s.engine.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !out.Won {
		t.Fatal("expected the win on the last block")
	}
	hud := rig.s.HUD()
	if hud.Info() != TextWin {
		t.Errorf("info = %q, expected %q", hud.Info(), TextWin)
	}
	if hud.IndicatorShown() {
		t.Error("health indicator should be hidden after a win")
	}
	if hud.Health() != 0 {
		t.Errorf("health = %d, expected 0 after a win", hud.Health())
	}
	if breaks != 1 {
		t.Errorf("game-break published %d times, expected 1", breaks)
	}

	// Further steps must not re-trigger the win.
	hud.ShowInfo("")
	for range 50 {
		out, err := rig.s.engine.Step()
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		if out.Won {
			t.Fatal("win triggered twice")
		}
	}
	if hud.Info() != "" {
		t.Errorf("info changed after the win: %q", hud.Info())
	}
	if rig.s.blocks.Count() != 0 {
		t.Error("no blocks may spawn before a restart")
	}
}

func TestTraceEverySecondStep(t *testing.T) {
	rig := newRig(t)
	traces := 0
	rig.s.engine.effects = effectsFunc(func() { traces++ })
	rig.placeBall(237, 500, false, true)

	for range 10 {
		if _, err := rig.s.engine.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if traces != 5 {
		t.Errorf("traces = %d, expected 5", traces)
	}
}

type effectsFunc func()

func (f effectsFunc) Flash(core.EntityID, time.Duration) {}
func (f effectsFunc) Trace(core.Rect, time.Duration)     { f() }
