package arkanoid_test

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid/mocks"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestSessionCreatesVisualsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := mocks.NewMockRenderer(ctrl)
	gomock.InOrder(
		r.EXPECT().Create(gomock.Any(), core.KindPaddle, core.NewRect(200, 650, 100, 25)).Return(nil),
		r.EXPECT().Create(gomock.Any(), core.KindBall, gomock.Any()).Return(nil),
	)
	r.EXPECT().MoveTo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	if _, err := arkanoid.NewSession(arkanoid.DefaultParams(), arkanoid.WithRenderer(r)); err != nil {
		t.Fatalf("NewSession: %v", err)
	}
}

func TestSessionFailsFastOnRendererError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := mocks.NewMockRenderer(ctrl)
	r.EXPECT().Create(gomock.Any(), core.KindPaddle, gomock.Any()).
		Return(core.InvalidStatef("Create", "already exists"))

	_, err := arkanoid.NewSession(arkanoid.DefaultParams(), arkanoid.WithRenderer(r))
	if !errors.Is(err, core.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestStartGeneratesGridThroughRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := mocks.NewMockRenderer(ctrl)
	r.EXPECT().Create(gomock.Any(), core.KindPaddle, gomock.Any()).Return(nil)
	r.EXPECT().Create(gomock.Any(), core.KindBall, gomock.Any()).Return(nil)
	r.EXPECT().Create(gomock.Any(), core.KindBlock, gomock.Any()).Return(nil).Times(48)
	r.EXPECT().MoveTo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s, err := arkanoid.NewSession(arkanoid.DefaultParams(), arkanoid.WithRenderer(r))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	l, err := arkanoid.NewLoop(s, time.Hour)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestLoopAudioCues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mocks.NewMockAudio(ctrl)
	gomock.InOrder(
		a.EXPECT().Play(arkanoid.CueInGame, arkanoid.PlayOptions{Volume: 0.4, Loop: true, Solo: true}),
		a.EXPECT().Play(arkanoid.CueAwait, arkanoid.PlayOptions{Volume: 1, Loop: true, Solo: true}),
		a.EXPECT().Play(arkanoid.CueInGame, arkanoid.PlayOptions{Volume: 0.4, Loop: true, Solo: true}),
		a.EXPECT().Play(arkanoid.CueAwait, arkanoid.PlayOptions{Volume: 1, Loop: true, Solo: true}),
	)

	s, err := arkanoid.NewSession(arkanoid.DefaultParams(), arkanoid.WithAudio(a))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	l, err := arkanoid.NewLoop(s, time.Hour)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Break(); err != nil {
		t.Fatalf("Break: %v", err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestHUDViewMirrorsCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mocks.NewMockHUDView(ctrl)
	gomock.InOrder(
		v.EXPECT().SetScore(0),
		v.EXPECT().SetHealth(100, 100),
		v.EXPECT().ShowInfo(""),
		v.EXPECT().ShowHealthIndicator(true),
		v.EXPECT().SetHealth(70, 100),
		v.EXPECT().SetScore(10),
		v.EXPECT().ShowInfo(arkanoid.TextPaused),
	)

	h := arkanoid.NewHUD(v, 100)
	h.Damage(30)
	if err := h.SetScore(10); err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	h.ShowInfo(arkanoid.TextPaused)
}

func TestTraceEffectCadence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := mocks.NewMockEffects(ctrl)
	fx.EXPECT().Trace(gomock.Any(), 100*time.Millisecond).Times(2)

	s, err := arkanoid.NewSession(arkanoid.DefaultParams(), arkanoid.WithEffects(fx), arkanoid.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	l, err := arkanoid.NewLoop(s, time.Hour)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer l.Stop() //nolint:errcheck // cleanup

	for range 4 {
		if _, err := l.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
}
