// Package web serves arkanoid to browsers. Each websocket connection owns one
// session and its loop; the server streams scene frames and sound cues as
// JSON and reads key events back.
package web

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/render"
)

// Server to browser message types.
const (
	TypeHello = "hello" // First message, carries the session ID
	TypeFrame = "frame"
	TypeCue   = "cue"
	TypeSaved = "saved" // A finished game reached the leaderboard
)

// Browser to server message types.
const TypeKey = "key"

// ServerMessage is one JSON text message sent to the browser.
type ServerMessage struct {
	Type    string        `json:"type"`
	Session string        `json:"session,omitempty"`
	Frame   *render.Frame `json:"frame,omitempty"`
	Cue     *CueMessage   `json:"cue,omitempty"`
	Score   int           `json:"score,omitempty"`
}

// CueMessage asks the browser to play a sound.
type CueMessage struct {
	Name   arkanoid.Cue `json:"name"`
	Volume float64      `json:"volume"`
	Loop   bool         `json:"loop,omitempty"`
	Solo   bool         `json:"solo,omitempty"`
}

// ClientMessage is one JSON text message read from the browser. Code follows
// KeyboardEvent.code.
type ClientMessage struct {
	Type string       `json:"type"`
	Code core.KeyCode `json:"code"`
	Down bool         `json:"down"`
}

// DecodeClientMessage parses and checks a browser message.
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("web: bad message: %w", err)
	}
	switch msg.Type {
	case TypeKey:
		if msg.Code == "" {
			return msg, errors.New("web: key message without code")
		}
		return msg, nil
	default:
		return msg, fmt.Errorf("web: unknown message type %q", msg.Type)
	}
}
