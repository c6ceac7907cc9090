package arkanoid

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func newLoopRig(t *testing.T) (testRig, *Loop) {
	t.Helper()
	rig := newRig(t)
	l, err := NewLoop(rig.s, time.Hour)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	t.Cleanup(l.disarm)
	return rig, l
}

func TestNewLoopPeriod(t *testing.T) {
	rig := newRig(t)

	if _, err := NewLoop(rig.s, -time.Millisecond); err == nil {
		t.Fatal("negative period should be rejected")
	} else {
		var cfgErr *core.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected ConfigurationError, got %T", err)
		}
	}

	l, err := NewLoop(rig.s, 0)
	if err != nil {
		t.Fatalf("NewLoop(0): %v", err)
	}
	if l.Period() != MinTickPeriod {
		t.Errorf("Period() = %s, expected %s", l.Period(), MinTickPeriod)
	}
	if l.State() != StateIdle {
		t.Errorf("new loop state = %s, expected idle", l.State())
	}

	if _, err := NewLoop(nil, time.Second); !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("nil session: expected ErrConfiguration, got %v", err)
	}
}

// Stop without a scheduled tick.
func TestStopWithoutTickFails(t *testing.T) {
	_, l := newLoopRig(t)

	err := l.Stop()
	var stateErr *core.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}

	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := l.Stop(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("second Stop: expected ErrInvalidState, got %v", err)
	}
}

func TestStartFirstTime(t *testing.T) {
	rig, l := newLoopRig(t)

	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if l.State() != StateRunning {
		t.Fatalf("state = %s, expected running", l.State())
	}
	if got, want := rig.s.Blocks().Count(), rig.s.Blocks().GridSize(); got != want {
		t.Errorf("blocks = %d, expected %d", got, want)
	}
	if !rig.s.Ball().InPlay {
		t.Error("ball should be served on start")
	}
	if rig.audio.last() != CueInGame {
		t.Errorf("last cue = %q, expected %q", rig.audio.last(), CueInGame)
	}

	// Start while running is a no-op.
	blocks := rig.s.Blocks().Count()
	cues := len(rig.audio.cues)
	if err := l.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if rig.s.Blocks().Count() != blocks || len(rig.audio.cues) != cues {
		t.Error("Start while running must not touch the session")
	}
}

func TestTickOrder(t *testing.T) {
	rig, l := newLoopRig(t)
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var seen []Event
	rig.s.Bus().Observe(func(e Event) { seen = append(seen, e) })
	rig.s.Input().Press(core.KeyA)
	rig.s.Input().Press(core.KeyD)

	if _, err := l.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	want := []Event{EventProcessInput, EventPaddleLeft, EventBallRun}
	if len(seen) != len(want) {
		t.Fatalf("events = %v, expected %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("event %d = %s, expected %s", i, seen[i], want[i])
		}
	}
	if got, want := rig.s.Paddle().X, rig.s.Params().PaddleHome()-2; got != want {
		t.Errorf("paddle x = %d, expected %d (left wins)", got, want)
	}
}

func TestPaddleStaysBetweenWalls(t *testing.T) {
	rig, l := newLoopRig(t)
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f := rig.s.Params().Field

	for _, code := range []core.KeyCode{core.ArrowLeft, core.ArrowRight} {
		rig.s.Input().Reset()
		rig.s.Input().Press(code)
		for range 300 {
			// Keep the ball rising below the grid so nothing stops the loop.
			rig.placeBall(237, 600, false, true)
			if _, err := l.Tick(); err != nil {
				t.Fatalf("Tick: %v", err)
			}
			p := rig.s.Paddle()
			if p.X < f.LeftWall() || p.X > f.RightWall()-p.Width {
				t.Fatalf("paddle x = %d outside [%d, %d]", p.X, f.LeftWall(), f.RightWall()-p.Width)
			}
		}
	}
	if got, want := rig.s.Paddle().X, f.RightWall()-rig.s.Paddle().Width; got != want {
		t.Errorf("paddle should rest against the right wall at %d, got %d", want, got)
	}
}

func TestMissStopsLoop(t *testing.T) {
	rig, l := newLoopRig(t)
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	rig.placeBall(60, 680, false, false)
	if _, err := l.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if l.State() != StateStopped {
		t.Fatalf("state = %s, expected stopped", l.State())
	}
	if l.RestartPending() {
		t.Error("health 70 should not be restart-pending")
	}
	if !slices.Contains(rig.audio.cues, CueAwait) {
		t.Errorf("cues = %v, expected %q after the stop", rig.audio.cues, CueAwait)
	}

	// Resume recenters the ball and keeps the grid.
	blocks := rig.s.Blocks().Count()
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	hx, hy := rig.s.Params().BallHome()
	if b := rig.s.Ball(); b.X != hx || b.Y != hy || !b.MovingUp {
		t.Errorf("ball = %+v, expected recentered at (%d, %d) moving up", b, hx, hy)
	}
	if rig.s.Blocks().Count() != blocks {
		t.Error("resume after a miss must keep the grid")
	}
	if rig.s.HUD().Info() != "" {
		t.Errorf("info should be cleared on start, got %q", rig.s.HUD().Info())
	}
}

func TestGameOverRestarts(t *testing.T) {
	rig, l := newLoopRig(t)
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rig.placeBall(237, 400, true, true)
	if _, err := l.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	scored := rig.s.HUD().Score()

	rig.s.HUD().SetHealth(30)
	rig.placeBall(60, 680, false, false)
	if _, err := l.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !l.RestartPending() {
		t.Fatal("zero health should leave the loop restart-pending")
	}
	if rig.s.HUD().Info() != TextGameOver {
		t.Errorf("info = %q, expected %q", rig.s.HUD().Info(), TextGameOver)
	}

	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	hud := rig.s.HUD()
	if hud.Health() != hud.MaxHealth() || hud.Score() != 0 {
		t.Errorf("after restart health=%d score=%d (was %d), expected %d and 0", hud.Health(), hud.Score(), scored, hud.MaxHealth())
	}
	if got, want := rig.s.Blocks().Count(), rig.s.Blocks().GridSize(); got != want {
		t.Errorf("blocks = %d, expected %d", got, want)
	}
}

func TestWinThenStartRestarts(t *testing.T) {
	rig, l := newLoopRig(t)
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := rig.s.Blocks().Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	rig.addBlock(t, core.NewRect(215, 380, 40, 25))
	rig.placeBall(237, 400, true, true)

	out, err := l.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !out.Won || l.State() != StateStopped {
		t.Fatalf("expected win and stop, got won=%v state=%s", out.Won, l.State())
	}
	if !l.RestartPending() {
		t.Error("a win leaves the loop restart-pending")
	}

	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got, want := rig.s.Blocks().Count(), rig.s.Blocks().GridSize(); got != want {
		t.Errorf("blocks = %d, expected %d", got, want)
	}
	if !rig.s.HUD().IndicatorShown() {
		t.Error("health indicator should be back after restart")
	}
	if rig.s.Engine().Won() {
		t.Error("win latch should reset on restart")
	}
}

func TestBreakKeepsPositions(t *testing.T) {
	rig, l := newLoopRig(t)
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rig.placeBall(300, 500, false, true)

	if err := l.Break(); err != nil {
		t.Fatalf("Break: %v", err)
	}
	if l.State() != StateStopped {
		t.Fatalf("state = %s, expected stopped", l.State())
	}
	if rig.s.HUD().Info() != TextPaused {
		t.Errorf("info = %q, expected %q", rig.s.HUD().Info(), TextPaused)
	}

	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if b := rig.s.Ball(); b.X != 300 || b.Y != 500 {
		t.Errorf("resume after a break moved the ball to (%d, %d)", b.X, b.Y)
	}
}

func TestRequestRunGoesThroughBus(t *testing.T) {
	rig, l := newLoopRig(t)
	requests := 0
	rig.s.Bus().Observe(func(e Event) {
		if e == EventRunGameLoop {
			requests++
		}
	})

	if err := l.RequestRun(); err != nil {
		t.Fatalf("RequestRun: %v", err)
	}
	if requests != 1 || l.State() != StateRunning {
		t.Errorf("requests=%d state=%s, expected 1 and running", requests, l.State())
	}
}

// Random input over many ticks never lets the ball leave the field.
func TestBallStaysInField(t *testing.T) {
	rig := newRig(t)
	rig.s.engine.rng = NewRand(7)
	l, err := NewLoop(rig.s, time.Hour)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	defer l.disarm()

	keys := []core.KeyCode{core.KeyA, core.KeyD, core.ArrowLeft, core.ArrowRight}
	picker := NewRand(11)
	for tick := range 20000 {
		if l.State() != StateRunning {
			if err := l.Start(); err != nil {
				t.Fatalf("tick %d: Start: %v", tick, err)
			}
		}
		if tick%40 == 0 {
			rig.s.Input().Reset()
			rig.s.Input().Press(keys[picker.IntN(len(keys))])
		}
		out, err := l.Tick()
		if err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		if out.Miss {
			continue
		}
		checkBounds(t, rig.s, tick)
	}
}

func TestRunCommands(t *testing.T) {
	rig := newRig(t)
	l, err := NewLoop(rig.s, time.Millisecond)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	waitState := func(want GameState) {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for l.State() != want {
			if time.Now().After(deadline) {
				t.Fatalf("state = %s, expected %s", l.State(), want)
			}
			time.Sleep(time.Millisecond)
		}
	}

	// Break while idle is dropped.
	if err := l.Send(ctx, BreakCmd()); err != nil {
		t.Fatalf("Send break: %v", err)
	}
	if err := l.Send(ctx, RunCmd()); err != nil {
		t.Fatalf("Send run: %v", err)
	}
	waitState(StateRunning)

	if err := l.Send(ctx, BreakCmd()); err != nil {
		t.Fatalf("Send break: %v", err)
	}
	waitState(StateStopped)

	if err := l.Send(ctx, QuitCmd()); err != nil {
		t.Fatalf("Send quit: %v", err)
	}
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-ctx.Done():
		t.Fatal("Run did not return after quit")
	}

	if err := l.Send(context.Background(), RunCmd()); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Send after exit: expected ErrInvalidState, got %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	rig := newRig(t)
	l, err := NewLoop(rig.s, time.Millisecond)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, expected context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	<-l.Done()
}

func TestRunExitLeavesRunning(t *testing.T) {
	_, l := newLoopRig(t)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	if err := l.Send(ctx, RunCmd()); err != nil {
		t.Fatalf("Send: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for l.State() != StateRunning {
		if time.Now().After(deadline) {
			t.Fatal("loop never started")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-l.Done()
	<-errc

	if got := l.State(); got != StateStopped {
		t.Fatalf("state after Run exit = %s, expected %s", got, StateStopped)
	}
	if err := l.Stop(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Stop after exit: expected ErrInvalidState, got %v", err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("Start after exit: %v", err)
	}
	if got := l.State(); got != StateRunning {
		t.Errorf("state after Start = %s, expected %s", got, StateRunning)
	}
	if err := l.Stop(); err != nil {
		t.Errorf("Stop after restart: %v", err)
	}
}

func TestKeyCommand(t *testing.T) {
	km := core.DefaultKeymap()
	tests := []struct {
		name string
		code core.KeyCode
		down bool
		want Command
		ok   bool
	}{
		{"left down", core.ArrowLeft, true, PressCmd(core.ArrowLeft), true},
		{"left up", core.ArrowLeft, false, ReleaseCmd(core.ArrowLeft), true},
		{"d down", core.KeyD, true, PressCmd(core.KeyD), true},
		{"space down", core.Space, true, RunCmd(), true},
		{"space up", core.Space, false, Command{}, false},
		{"p down", core.KeyP, true, BreakCmd(), true},
		{"escape down", core.Escape, true, BreakCmd(), true},
		{"q down", core.KeyQ, true, QuitCmd(), true},
		{"unbound", core.KeyCode("KeyZ"), true, Command{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := KeyCommand(km, tc.code, tc.down)
			if ok != tc.ok || got != tc.want {
				t.Errorf("KeyCommand(%s, %v) = %+v, %v; expected %+v, %v", tc.code, tc.down, got, ok, tc.want, tc.ok)
			}
		})
	}
}
