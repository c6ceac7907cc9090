// Package render holds the display side of a session: a thread-safe entity
// registry that the simulation drives through the Renderer, HUDView and
// Effects interfaces, and that front-ends read back as a Frame or rasterize
// onto a core.Screen.
package render

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

var (
	_ arkanoid.Renderer = (*Scene)(nil)
	_ arkanoid.HUDView  = (*Scene)(nil)
	_ arkanoid.Effects  = (*Scene)(nil)
)

type entity struct {
	id     core.EntityID
	kind   core.Kind
	bounds core.Rect
}

type trace struct {
	bounds  core.Rect
	expires time.Time
}

// Scene is the live picture of one session. The loop goroutine writes to it
// and any number of readers take frames concurrently.
type Scene struct {
	mu sync.Mutex

	field    arkanoid.Field
	entities map[core.EntityID]*entity
	flashes  map[core.EntityID]time.Time
	traces   []trace

	score     int
	health    int
	maxHealth int
	info      string
	indicator bool

	now func() time.Time
}

// Option configures a Scene.
type Option func(*Scene)

// WithClock replaces time.Now for effect expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Scene) { s.now = now }
}

// NewScene creates an empty scene for the given field.
func NewScene(f arkanoid.Field, opts ...Option) *Scene {
	s := &Scene{
		field:    f,
		entities: make(map[core.EntityID]*entity),
		flashes:  make(map[core.EntityID]time.Time),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Field returns the field the scene was built for.
func (s *Scene) Field() arkanoid.Field { return s.field }

// Create registers a new entity.
func (s *Scene) Create(id core.EntityID, kind core.Kind, bounds core.Rect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[id]; ok {
		return core.InvalidStatef("Scene.Create", "%s %d already exists", kind, id)
	}
	s.entities[id] = &entity{id: id, kind: kind, bounds: bounds}
	return nil
}

// MoveTo repositions an entity's top-left corner.
func (s *Scene) MoveTo(id core.EntityID, x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities[id]
	if !ok {
		return &core.NotFoundError{Op: "Scene.MoveTo", ID: id}
	}
	e.bounds = e.bounds.MoveTo(x, y)
	return nil
}

// Destroy removes an entity and any effect attached to it.
func (s *Scene) Destroy(id core.EntityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[id]; !ok {
		return &core.NotFoundError{Op: "Scene.Destroy", ID: id}
	}
	delete(s.entities, id)
	delete(s.flashes, id)
	return nil
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entities)
}

// Bounds returns the current bounds of an entity.
func (s *Scene) Bounds(id core.EntityID) (core.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities[id]
	if !ok {
		return core.Rect{}, false
	}
	return e.bounds, true
}

func (s *Scene) SetScore(score int) {
	s.mu.Lock()
	s.score = score
	s.mu.Unlock()
}

func (s *Scene) SetHealth(health, maxHealth int) {
	s.mu.Lock()
	s.health, s.maxHealth = health, maxHealth
	s.mu.Unlock()
}

func (s *Scene) ShowInfo(text string) {
	s.mu.Lock()
	s.info = text
	s.mu.Unlock()
}

func (s *Scene) ShowHealthIndicator(visible bool) {
	s.mu.Lock()
	s.indicator = visible
	s.mu.Unlock()
}

// Flash highlights an entity for d. Unknown IDs are ignored: effects are
// cosmetic and may race a Destroy.
func (s *Scene) Flash(id core.EntityID, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[id]; !ok || d <= 0 {
		return
	}
	s.flashes[id] = s.now().Add(d)
}

// Trace leaves a fading copy of bounds behind for d.
func (s *Scene) Trace(bounds core.Rect, d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.traces = append(s.traces, trace{bounds: bounds, expires: s.now().Add(d)})
	s.mu.Unlock()
}

// EntityView is one entity as seen by a front-end.
type EntityView struct {
	ID      core.EntityID `json:"id"`
	Kind    string        `json:"kind"`
	X       int           `json:"x"`
	Y       int           `json:"y"`
	W       int           `json:"w"`
	H       int           `json:"h"`
	Flashed bool          `json:"flashed,omitempty"`
}

// Bounds returns the view's rectangle.
func (v EntityView) Bounds() core.Rect { return core.NewRect(v.X, v.Y, v.W, v.H) }

// Frame is a consistent copy of the scene at one instant. Entities are
// ordered blocks first, then paddle, then ball, each group by ID.
type Frame struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Scale     int          `json:"scale"`
	Top       int          `json:"top"`
	LeftWall  int          `json:"leftWall"`
	RightWall int          `json:"rightWall"`
	Entities  []EntityView `json:"entities"`
	Traces    []core.Rect  `json:"traces"`
	Score     int          `json:"score"`
	Health    int          `json:"health"`
	MaxHealth int          `json:"maxHealth"`
	Info      string       `json:"info"`
	Indicator bool         `json:"indicator"`
}

// drawOrder puts blocks under the paddle and the ball on top.
func drawOrder(k core.Kind) int {
	switch k {
	case core.KindBlock:
		return 0
	case core.KindPaddle:
		return 1
	default:
		return 2
	}
}

// Frame snapshots the scene, dropping expired effects.
func (s *Scene) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.expire(now)

	ext := s.field.Extent()
	f := Frame{
		Width:     ext.W,
		Height:    ext.H,
		Scale:     s.field.Scale,
		Top:       s.field.Top(),
		LeftWall:  s.field.LeftWall(),
		RightWall: s.field.RightWall(),
		Entities:  make([]EntityView, 0, len(s.entities)),
		Traces:    make([]core.Rect, 0, len(s.traces)),
		Score:     s.score,
		Health:    s.health,
		MaxHealth: s.maxHealth,
		Info:      s.info,
		Indicator: s.indicator,
	}
	live := make([]*entity, 0, len(s.entities))
	for _, e := range s.entities {
		live = append(live, e)
	}
	slices.SortFunc(live, func(a, b *entity) int {
		if c := cmp.Compare(drawOrder(a.kind), drawOrder(b.kind)); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	for _, e := range live {
		_, flashed := s.flashes[e.id]
		f.Entities = append(f.Entities, EntityView{
			ID:      e.id,
			Kind:    e.kind.String(),
			X:       e.bounds.X,
			Y:       e.bounds.Y,
			W:       e.bounds.W,
			H:       e.bounds.H,
			Flashed: flashed,
		})
	}
	for _, t := range s.traces {
		f.Traces = append(f.Traces, t.bounds)
	}
	return f
}

func (s *Scene) expire(now time.Time) {
	for id, until := range s.flashes {
		if !now.Before(until) {
			delete(s.flashes, id)
		}
	}
	s.traces = slices.DeleteFunc(s.traces, func(t trace) bool {
		return !now.Before(t.expires)
	})
}
