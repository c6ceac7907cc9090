package web

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/platform"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

const (
	cueQueueSize = 64
	writeTimeout = 5 * time.Second
)

// errQuit ends an endpoint whose player sent Quit.
var errQuit = errors.New("player quit")

// endpoint is one browser connection and the game it plays.
type endpoint struct {
	id       string
	conn     *websocket.Conn
	game     *platform.Game
	cues     *cueQueue
	keymap   core.Keymap
	recorder *storage.Recorder
	logger   *log.Logger
}

// run drives the game until the socket closes, the player quits or ctx ends.
// The loop, the reader and the writer share one errgroup: whichever stops
// first cancels the other two.
func (e *endpoint) run(ctx context.Context) error {
	if err := e.write(ctx, ServerMessage{Type: TypeHello, Session: e.id}); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := e.game.Loop.Run(ctx); err != nil {
			return err
		}
		return errQuit
	})
	eg.Go(func() error {
		return e.readLoop(ctx)
	})
	eg.Go(func() error {
		return e.writeLoop(ctx)
	})

	err := eg.Wait()
	if n := e.cues.Dropped(); n > 0 {
		e.logger.Warn("cues dropped", "count", n)
	}
	switch {
	case errors.Is(err, errQuit):
		// The reader's cancelled context may have closed the socket already.
		e.conn.Close(websocket.StatusNormalClosure, "quit") //nolint:errcheck
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return nil
	}
	return err
}

// readLoop forwards key events to the loop.
func (e *endpoint) readLoop(ctx context.Context) error {
	for {
		_, data, err := e.conn.Read(ctx)
		if err != nil {
			return err
		}
		msg, err := DecodeClientMessage(data)
		if err != nil {
			e.logger.Debug("ignoring message", "error", err)
			continue
		}
		cmd, ok := arkanoid.KeyCommand(e.keymap, msg.Code, msg.Down)
		if !ok {
			continue
		}
		if err := e.game.Loop.Send(ctx, cmd); err != nil {
			return err
		}
	}
}

// writeLoop sends a frame every frame period and cues as they come.
func (e *endpoint) writeLoop(ctx context.Context) error {
	ticker := time.NewTicker(e.game.Runtime.FramePeriod())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cue := <-e.cues.ch:
			if err := e.write(ctx, ServerMessage{Type: TypeCue, Cue: &cue}); err != nil {
				return err
			}
		case now := <-ticker.C:
			frame := e.game.Scene.Frame()
			if err := e.write(ctx, ServerMessage{Type: TypeFrame, Frame: &frame}); err != nil {
				return err
			}
			saved, err := e.recorder.Observe(now, e.game.Status(frame))
			if err != nil {
				e.logger.Warn("could not save result", "error", err)
				continue
			}
			if saved {
				if err := e.write(ctx, ServerMessage{Type: TypeSaved, Score: frame.Score}); err != nil {
					return err
				}
			}
		}
	}
}

func (e *endpoint) write(ctx context.Context, msg ServerMessage) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, e.conn, msg)
}
