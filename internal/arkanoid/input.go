package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Intent is the paddle movement resolved for one tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// InputState tracks held keys between ticks.
type InputState struct {
	held   map[core.KeyCode]struct{}
	keymap core.Keymap
}

// NewInputState creates an input state using km to classify keys.
// A nil keymap selects core.DefaultKeymap.
func NewInputState(km core.Keymap) *InputState {
	if km == nil {
		km = core.DefaultKeymap()
	}
	return &InputState{held: make(map[core.KeyCode]struct{}), keymap: km}
}

// Keymap returns the bindings used to classify keys. It never changes.
func (in *InputState) Keymap() core.Keymap {
	return in.keymap
}

// Press marks code as held. Pressing a held key again has no effect.
func (in *InputState) Press(code core.KeyCode) {
	in.held[code] = struct{}{}
}

// Release clears code. Releasing a key that is not held has no effect.
func (in *InputState) Release(code core.KeyCode) {
	delete(in.held, code)
}

// Held reports whether code is currently held.
func (in *InputState) Held(code core.KeyCode) bool {
	_, ok := in.held[code]
	return ok
}

// Reset releases every key.
func (in *InputState) Reset() {
	clear(in.held)
}

// Resolve turns the held keys into an intent. Left is checked first, so
// holding both directions moves left.
func (in *InputState) Resolve() Intent {
	right := false
	for code := range in.held {
		switch in.keymap.Lookup(code) {
		case core.ActionLeft:
			return IntentLeft
		case core.ActionRight:
			right = true
		}
	}
	if right {
		return IntentRight
	}
	return IntentNone
}
