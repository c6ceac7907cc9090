package web

import (
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestDecodeClientMessage(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    ClientMessage
		wantErr bool
	}{
		{"key down", `{"type":"key","code":"KeyA","down":true}`, ClientMessage{Type: TypeKey, Code: core.KeyA, Down: true}, false},
		{"key up", `{"type":"key","code":"Space"}`, ClientMessage{Type: TypeKey, Code: core.Space}, false},
		{"missing code", `{"type":"key","down":true}`, ClientMessage{}, true},
		{"unknown type", `{"type":"chat"}`, ClientMessage{}, true},
		{"not json", `key`, ClientMessage{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeClientMessage([]byte(tc.data))
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestCueQueueNeverBlocks(t *testing.T) {
	q := newCueQueue(2)
	opts := arkanoid.PlayOptions{Volume: 1}

	for range 5 {
		q.Play(arkanoid.CueBlockHit, opts)
	}
	if got := q.Dropped(); got != 3 {
		t.Errorf("dropped = %d, expected 3", got)
	}
	if msg := <-q.ch; msg.Name != arkanoid.CueBlockHit || msg.Volume != 1 {
		t.Errorf("unexpected cue %+v", msg)
	}
}
