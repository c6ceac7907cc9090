package arkanoid

import (
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// fakeRenderer tracks live entities and enforces the renderer error contract.
type fakeRenderer struct {
	live      map[core.EntityID]core.Rect
	destroyed int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{live: make(map[core.EntityID]core.Rect)}
}

func (r *fakeRenderer) Create(id core.EntityID, _ core.Kind, bounds core.Rect) error {
	if _, ok := r.live[id]; ok {
		return core.InvalidStatef("fake.Create", "entity %d exists", id)
	}
	r.live[id] = bounds
	return nil
}

func (r *fakeRenderer) MoveTo(id core.EntityID, x, y int) error {
	b, ok := r.live[id]
	if !ok {
		return &core.NotFoundError{Op: "fake.MoveTo", ID: id}
	}
	r.live[id] = b.MoveTo(x, y)
	return nil
}

func (r *fakeRenderer) Destroy(id core.EntityID) error {
	if _, ok := r.live[id]; !ok {
		return &core.NotFoundError{Op: "fake.Destroy", ID: id}
	}
	delete(r.live, id)
	r.destroyed++
	return nil
}

// recordingAudio remembers every cue played.
type recordingAudio struct {
	cues []Cue
}

func (a *recordingAudio) Play(cue Cue, _ PlayOptions) {
	a.cues = append(a.cues, cue)
}

func (a *recordingAudio) last() Cue {
	if len(a.cues) == 0 {
		return ""
	}
	return a.cues[len(a.cues)-1]
}

type testRig struct {
	s        *Session
	renderer *fakeRenderer
	audio    *recordingAudio
}

// newRig builds a default session whose random source always yields zero:
// directions re-roll to "right" and steps re-roll to 1.
func newRig(t *testing.T) testRig {
	t.Helper()
	r := newFakeRenderer()
	a := &recordingAudio{}
	s, err := NewSession(DefaultParams(),
		WithRenderer(r),
		WithAudio(a),
		WithRand(&seqRand{vals: []int{0}}),
	)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return testRig{s: s, renderer: r, audio: a}
}

// placeBall puts the ball in play at (x, y) with unit steps.
func (rig testRig) placeBall(x, y int, left, up bool) {
	b := &rig.s.engine.ball
	b.X, b.Y = x, y
	b.MovingLeft, b.MovingUp = left, up
	b.StepX, b.StepY = 1, 1
	b.InPlay = true
}

// addBlock inserts a hand-placed block into the live set.
func (rig testRig) addBlock(t *testing.T, bounds core.Rect) core.EntityID {
	t.Helper()
	id := rig.s.ids.Next()
	if err := rig.renderer.Create(id, core.KindBlock, bounds); err != nil {
		t.Fatalf("create block: %v", err)
	}
	rig.s.blocks.set.Add(Block{ID: id, Bounds: bounds})
	return id
}

// checkBounds fails if the ball left the field.
func checkBounds(t *testing.T, s *Session, tick int) {
	t.Helper()
	b := s.Ball()
	f := s.params.Field
	if b.X < f.LeftWall() || b.X+b.Size > f.RightWall() {
		t.Fatalf("tick %d: ball x=%d outside [%d, %d]", tick, b.X, f.LeftWall(), f.RightWall()-b.Size)
	}
	if b.Y < f.Top() {
		t.Fatalf("tick %d: ball y=%d above ceiling %d", tick, b.Y, f.Top())
	}
	if b.Y+b.Size > f.Bottom() {
		t.Fatalf("tick %d: ball y=%d below floor %d without a miss", tick, b.Y, f.Bottom())
	}
}
