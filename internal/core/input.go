package core

import "slices"

// KeyCode is an opaque physical key identifier. Front-ends translate their
// native key events into these names (they follow DOM KeyboardEvent.code).
type KeyCode string

const (
	KeyA       KeyCode = "KeyA"
	KeyD       KeyCode = "KeyD"
	KeyQ       KeyCode = "KeyQ"
	KeyP       KeyCode = "KeyP"
	ArrowLeft  KeyCode = "ArrowLeft"
	ArrowRight KeyCode = "ArrowRight"
	Space      KeyCode = "Space"
	Escape     KeyCode = "Escape"
)

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - paddle left while held
	ActionRight        // D, Right arrow - paddle right while held
	ActionRun          // Space - start, resume or restart
	ActionBreak        // P, Escape - pause the running game
	ActionQuit         // Q, Ctrl+C - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRun:
		return "Run"
	case ActionBreak:
		return "Break"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a directional one that stays active
// between press and release.
func (a Action) Held() bool {
	return a == ActionLeft || a == ActionRight
}

// Keymap binds key codes to actions.
type Keymap map[KeyCode]Action

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		KeyA:       ActionLeft,
		ArrowLeft:  ActionLeft,
		KeyD:       ActionRight,
		ArrowRight: ActionRight,
		Space:      ActionRun,
		KeyP:       ActionBreak,
		Escape:     ActionBreak,
		KeyQ:       ActionQuit,
	}
}

// Lookup returns the action bound to code, or ActionNone.
func (k Keymap) Lookup(code KeyCode) Action {
	if k == nil {
		return ActionNone
	}
	return k[code]
}

// Codes returns every code bound to the given action, sorted.
func (k Keymap) Codes(a Action) []KeyCode {
	var codes []KeyCode
	for code, bound := range k {
		if bound == a {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes
}
