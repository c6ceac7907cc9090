package render

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestScene() (*Scene, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	return NewScene(arkanoid.DefaultField(), WithClock(clk.now)), clk
}

func TestSceneErrorContract(t *testing.T) {
	s, _ := newTestScene()

	if err := s.Create(1, core.KindBall, core.NewRect(0, 0, 25, 25)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create(1, core.KindBall, core.NewRect(0, 0, 25, 25)); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("duplicate Create = %v, expected ErrInvalidState", err)
	}
	if err := s.MoveTo(2, 10, 10); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("MoveTo unknown = %v, expected ErrNotFound", err)
	}
	if err := s.Destroy(2); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Destroy unknown = %v, expected ErrNotFound", err)
	}

	if err := s.MoveTo(1, 60, 70); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if b, _ := s.Bounds(1); b != core.NewRect(60, 70, 25, 25) {
		t.Errorf("bounds after MoveTo = %+v", b)
	}
	if err := s.Destroy(1); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := s.Destroy(1); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("second Destroy = %v, expected ErrNotFound", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, expected 0", s.Len())
	}
}

func TestFrameOrdersByLayer(t *testing.T) {
	s, _ := newTestScene()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(s.Create(5, core.KindBall, core.NewRect(237, 625, 25, 25)))
	must(s.Create(3, core.KindBlock, core.NewRect(100, 150, 40, 25)))
	must(s.Create(4, core.KindPaddle, core.NewRect(200, 650, 100, 25)))
	must(s.Create(2, core.KindBlock, core.NewRect(50, 150, 40, 25)))

	f := s.Frame()
	var got []core.EntityID
	for _, e := range f.Entities {
		got = append(got, e.ID)
	}
	want := []core.EntityID{2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("entities = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entities = %v, expected %v", got, want)
		}
	}
	if f.Width != 500 || f.Height != 700 || f.Top != 100 || f.LeftWall != 50 || f.RightWall != 450 {
		t.Errorf("frame geometry = %+v", f)
	}
}

func TestEffectsExpire(t *testing.T) {
	s, clk := newTestScene()
	if err := s.Create(1, core.KindPaddle, core.NewRect(200, 650, 100, 25)); err != nil {
		t.Fatal(err)
	}

	s.Flash(1, 100*time.Millisecond)
	s.Flash(99, 100*time.Millisecond) // unknown, ignored
	s.Trace(core.NewRect(10, 10, 25, 25), 100*time.Millisecond)

	f := s.Frame()
	if !f.Entities[0].Flashed {
		t.Error("paddle should be flashed right after Flash")
	}
	if len(f.Traces) != 1 {
		t.Errorf("traces = %d, expected 1", len(f.Traces))
	}

	clk.advance(99 * time.Millisecond)
	if f := s.Frame(); !f.Entities[0].Flashed || len(f.Traces) != 1 {
		t.Error("effects expired early")
	}

	clk.advance(time.Millisecond)
	f = s.Frame()
	if f.Entities[0].Flashed {
		t.Error("flash should have expired")
	}
	if len(f.Traces) != 0 {
		t.Errorf("traces = %d, expected 0", len(f.Traces))
	}
}

func TestHUDFields(t *testing.T) {
	s, _ := newTestScene()
	s.SetScore(40)
	s.SetHealth(70, 100)
	s.ShowInfo(arkanoid.TextContinue)
	s.ShowHealthIndicator(true)

	f := s.Frame()
	if f.Score != 40 || f.Health != 70 || f.MaxHealth != 100 || f.Info != arkanoid.TextContinue || !f.Indicator {
		t.Errorf("HUD fields = %+v", f)
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health, max, width int
		want               string
	}{
		{100, 100, 4, "████"},
		{50, 100, 4, "██░░"},
		{0, 100, 4, "░░░░"},
		{120, 100, 2, "██"},
		{10, 0, 4, ""},
	}
	for _, tc := range tests {
		if got := HealthBar(tc.health, tc.max, tc.width); got != tc.want {
			t.Errorf("HealthBar(%d, %d, %d) = %q, expected %q", tc.health, tc.max, tc.width, got, tc.want)
		}
	}
}

func TestDrawSession(t *testing.T) {
	s, _ := newTestScene()
	sess, err := arkanoid.NewSession(arkanoid.DefaultParams(),
		arkanoid.WithRenderer(s), arkanoid.WithHUDView(s), arkanoid.WithEffects(s))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := sess.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.Len() != 50 {
		t.Fatalf("Len = %d, expected 48 blocks + ball + paddle", s.Len())
	}

	g := DefaultGrid(50)
	scr := Draw(s.Frame(), g)
	if scr.Width() != 50 || scr.Height() != 28 {
		t.Fatalf("screen %dx%d, expected 50x28", scr.Width(), scr.Height())
	}
	if !strings.HasPrefix(scr.Row(0), " Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.Contains(scr.Row(0), "██████████") {
		t.Errorf("full health bar missing: %q", scr.Row(0))
	}
	// Walls: 5 columns each side from row 4, outlined.
	if scr.Get(2, 10) != '▒' || scr.Get(47, 10) != '▒' {
		t.Error("wall fill missing")
	}
	if scr.Get(0, 10) != '│' || scr.Get(49, 10) != '│' {
		t.Errorf("wall outline missing: %q", scr.Row(10))
	}
	if scr.Get(0, 4) != '┌' || scr.Get(4, 27) != '┘' {
		t.Errorf("wall corners missing: %q / %q", scr.Row(4), scr.Row(27))
	}
	// First block: column 1, row 3 of the field -> x 50..90, y 150..175.
	if c := scr.GetCell(5, 6); c.Rune != '█' || c.Color != core.BlockColor(3) {
		t.Errorf("block cell = %+v", c)
	}
	// Paddle at x 200..300, y 650.
	if scr.Get(20, 26) != '▀' || scr.Get(29, 26) != '▀' {
		t.Errorf("paddle row = %q", scr.Row(26))
	}
	// Ball at x 237..262, y 625.
	if scr.Get(24, 25) != '●' {
		t.Errorf("ball row = %q", scr.Row(25))
	}
}

func TestSceneConcurrentReaders(t *testing.T) {
	s, _ := newTestScene()
	if err := s.Create(1, core.KindBall, core.NewRect(0, 0, 25, 25)); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Go(func() {
			for range 200 {
				_ = s.Frame()
			}
		})
	}
	for i := range 200 {
		if err := s.MoveTo(1, i, i); err != nil {
			t.Error(err)
		}
		s.Trace(core.NewRect(i, i, 25, 25), time.Millisecond)
	}
	wg.Wait()
}
