package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/platform"
	"github.com/vovakirdan/tui-arkanoid/internal/render"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// TextStart is shown before the first start.
const TextStart = "Press Space to start"

// Deps are the per-process collaborators a game screen needs.
type Deps struct {
	Context   context.Context // Parent of every game loop; nil means Background
	Store     *storage.Store  // nil disables the leaderboard
	Audio     arkanoid.Audio  // nil plays nothing
	Logger    *log.Logger
	Player    string
	SessionID string
}

// loopExitMsg reports that Loop.Run returned.
type loopExitMsg struct {
	game string
	err  error
}

// GameModel is the Bubble Tea model for one game. The simulation runs in its
// own goroutine (Loop.Run); the model forwards keys as commands and samples
// the scene on every frame.
type GameModel struct {
	id      string // Tags frame and exit messages
	game    *platform.Game
	runtime core.RuntimeConfig
	deps    Deps

	loop  *arkanoid.Loop
	scene *render.Scene
	grid  render.Grid
	frame render.Frame

	ctx    context.Context
	cancel context.CancelFunc

	keys   GameKeyMap
	help   help.Model
	keymap core.Keymap
	held   map[core.KeyCode]time.Time // Auto-release deadline per held key

	recorder *storage.Recorder

	width      int
	height     int
	quitting   bool
	backToMenu bool
	err        error
}

// NewGameModel builds the session, scene and loop for cfg.
func NewGameModel(cfg config.ArkanoidConfig, deps Deps, width, height int) (GameModel, error) {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	g, err := platform.NewGame(cfg, deps.Audio, deps.Logger)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}

	parent := deps.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	h := help.New()
	h.Width = width

	return GameModel{
		id:      uuid.NewString(),
		game:    g,
		runtime: g.Runtime,
		deps:    deps,
		loop:    g.Loop,
		scene:   g.Scene,
		grid:    render.DefaultGrid(cfg.Field.Scale),
		frame:   g.Scene.Frame(),
		ctx:     ctx,
		cancel:  cancel,
		keys:    NewGameKeyMap(g.Session.Input().Keymap()),
		help:    h,
		keymap:  g.Session.Input().Keymap(),
		held:    make(map[core.KeyCode]time.Time),
		width:   width,
		height:  height,

		recorder: storage.NewRecorder(deps.Store, deps.SessionID, deps.Player, time.Now()),
	}, nil
}

// Init starts the simulation goroutine and the frame clock.
func (m GameModel) Init() tea.Cmd {
	loop, ctx, id := m.loop, m.ctx, m.id
	return tea.Batch(
		func() tea.Msg { return loopExitMsg{game: id, err: loop.Run(ctx)} },
		frameCmd(id, m.runtime.FramePeriod()),
	)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if msg.Game != m.id {
			return m, nil
		}
		return m.handleFrame(msg.Time)

	case loopExitMsg:
		if msg.game != m.id {
			return m, nil
		}
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
			m.deps.Logger.Error("game loop stopped", "error", msg.err)
		}
		if !m.quitting {
			m.backToMenu = true
		}
		m.cancel()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.loop.State() != arkanoid.StateRunning {
			m.backToMenu = true
			m.cancel()
		}
		return m, nil
	}

	code, ok := KeyCode(msg)
	if !ok {
		return m, nil
	}
	cmd, ok := arkanoid.KeyCommand(m.keymap, code, true)
	if !ok {
		return m, nil
	}

	switch cmd.Kind {
	case arkanoid.CmdQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case arkanoid.CmdPress:
		// Terminals report no key-up; repeats keep the key alive.
		_, already := m.held[code]
		m.held[code] = time.Now().Add(m.runtime.KeyHold)
		if already {
			return m, nil
		}
		// Opposite directions are exclusive here: a terminal cannot tell us
		// the other key went up.
		for other := range m.held {
			if other != code && m.keymap.Lookup(other) != m.keymap.Lookup(code) {
				delete(m.held, other)
				m.send(arkanoid.ReleaseCmd(other))
			}
		}
	}
	m.send(cmd)
	return m, nil
}

// handleFrame releases expired keys, samples the scene and records finished games.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	for code, until := range m.held {
		if !now.Before(until) {
			delete(m.held, code)
			m.send(arkanoid.ReleaseCmd(code))
		}
	}

	m.frame = m.scene.Frame()
	m.recordResult(now)
	return m, frameCmd(m.id, m.runtime.FramePeriod())
}

// recordResult hands the sampled frame to the session recorder.
func (m GameModel) recordResult(now time.Time) {
	if _, err := m.recorder.Observe(now, m.game.Status(m.frame)); err != nil {
		m.deps.Logger.Warn("could not save result", "error", err)
	}
}

func (m GameModel) send(cmd arkanoid.Command) {
	if err := m.loop.Send(m.ctx, cmd); err != nil {
		m.deps.Logger.Debug("command dropped", "command", cmd.Kind, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	scr := render.Draw(m.frame, m.grid)

	dir := filepath.Join(os.Getenv("HOME"), ".arkanoid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("arkanoid_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(scr.String()), 0o600)
}

// MinSize returns the terminal size the game needs, help line included.
func (m GameModel) MinSize() (int, int) {
	w, h := m.grid.Size(m.frame)
	return w, h + 2
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.MinSize()
	if m.width > 0 && m.height > 0 && (m.width < needW || m.height < needH) {
		return centerText(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height), m.width)
	}

	scr := render.Draw(m.frame, m.grid)
	if m.loop.State() == arkanoid.StateIdle {
		scr.DrawTextCentered(0, scr.Width(), 1, TextStart, core.ColorYellow)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(scr),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Err returns the error that stopped the loop, if any.
func (m GameModel) Err() error {
	return m.err
}

// Close stops the simulation goroutine.
func (m GameModel) Close() {
	m.cancel()
}
