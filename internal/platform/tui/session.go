package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow of one player: menu -> game -> menu,
// with the leaderboard reachable from the menu. Local play and every SSH
// connection each get one.
type SessionModel struct {
	base     config.ArkanoidConfig // Loaded config before any preset
	deps     Deps
	screen   screen
	menu     MenuModel
	game     *GameModel
	scores   LeaderboardModel
	width    int
	height   int
	errMsg   string
	quitting bool
}

// NewSessionModel creates a new session model. deps.SessionID and
// deps.Player identify this player's results in the store.
func NewSessionModel(base config.ArkanoidConfig, deps Deps, width, height int) SessionModel {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return SessionModel{
		base:   base,
		deps:   deps,
		width:  width,
		height: height,
		menu:   NewMenuModel(width, height, bestScore(deps)),
	}
}

func bestScore(deps Deps) int {
	if deps.Store == nil {
		return 0
	}
	best, err := deps.Store.HighScore()
	if err != nil {
		return 0
	}
	return best
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.screen = screenScores
		m.scores = NewLeaderboardModel(m.deps.Store, m.deps.SessionID, m.width, m.height)
		return m, m.scores.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		cfg := m.base
		config.ApplyPreset(&cfg, selected.Preset)
		game, err := NewGameModel(cfg, m.deps, m.width, m.height)
		if err != nil {
			m.deps.Logger.Error("cannot start game", "preset", selected.Preset, "error", err)
			m.errMsg = fmt.Sprintf("cannot start %s: %v", selected.Preset, err)
			m.menu = NewMenuModel(m.width, m.height, bestScore(m.deps))
			return m, nil
		}
		m.errMsg = ""
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		if err := m.game.Err(); err != nil {
			m.errMsg = err.Error()
		}
		m.game.Close()
		m.game = nil
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the leaderboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if lb, ok := newModel.(LeaderboardModel); ok {
		m.scores = lb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) toMenu() {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.width, m.height, bestScore(m.deps))
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		view += "\n" + centerText(errStyle.Render(m.errMsg), m.width)
	}
	return view
}

// Close stops a running game, if any.
func (m SessionModel) Close() {
	if m.game != nil {
		m.game.Close()
	}
}

// Run runs an interactive session on the local terminal.
func Run(base config.ArkanoidConfig, deps Deps, width, height int) error {
	model := NewSessionModel(base, deps, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if sm, ok := finalModel.(SessionModel); ok {
		sm.Close()
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
