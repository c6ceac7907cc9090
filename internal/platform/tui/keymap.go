package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// GameKeyMap defines the in-game bindings shown in the help line.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Run        key.Binding
	Break      key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Run, k.Break, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Run, k.Break},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// NewGameKeyMap builds the in-game bindings from the simulation keymap, so the
// help line shows exactly the keys KeyCode accepts.
func NewGameKeyMap(km core.Keymap) GameKeyMap {
	return GameKeyMap{
		Left:  actionBinding(km, core.ActionLeft, "left"),
		Right: actionBinding(km, core.ActionRight, "right"),
		Run:   actionBinding(km, core.ActionRun, "start"),
		Break: actionBinding(km, core.ActionBreak, "pause"),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: actionBinding(km, core.ActionQuit, "quit"),
	}
}

// actionBinding collects every terminal key that produces a code bound to a.
// Actions without a reachable key get a disabled binding, hidden from help.
func actionBinding(km core.Keymap, a core.Action, desc string) key.Binding {
	var keys, labels []string
	for _, code := range km.Codes(a) {
		names, ok := keyNames[code]
		if !ok {
			continue
		}
		keys = append(keys, names...)
		labels = append(labels, keyLabels[code])
	}
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyNames lists the Bubble Tea key names that produce each physical key code.
var keyNames = map[core.KeyCode][]string{
	core.KeyA:       {"a", "A"},
	core.KeyD:       {"d", "D"},
	core.ArrowLeft:  {"left"},
	core.ArrowRight: {"right"},
	core.Space:      {" "},
	core.KeyP:       {"p", "P"},
	core.Escape:     {"esc"},
	core.KeyQ:       {"q", "Q", "ctrl+c"},
}

// keyLabels is how each code is shown in the help line.
var keyLabels = map[core.KeyCode]string{
	core.KeyA:       "a",
	core.KeyD:       "d",
	core.ArrowLeft:  "←",
	core.ArrowRight: "→",
	core.Space:      "space",
	core.KeyP:       "p",
	core.Escape:     "esc",
	core.KeyQ:       "q",
}

// keyCodes is keyNames inverted.
var keyCodes = func() map[string]core.KeyCode {
	m := make(map[string]core.KeyCode)
	for code, names := range keyNames {
		for _, n := range names {
			m[n] = code
		}
	}
	return m
}()

// KeyCode maps a key message to a physical key code.
func KeyCode(msg tea.KeyMsg) (core.KeyCode, bool) {
	code, ok := keyCodes[msg.String()]
	return code, ok
}

// MenuKeyMap defines the bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"), // vim-style k for up
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"), // vim-style j for down
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
