package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/registry"
)

// GameFactory creates a fresh game of the given mode for each run.
type GameFactory func(id string) (registry.Game, error)

// SessionOptions configures a session.
type SessionOptions struct {
	NewGame  GameFactory
	GameID   string              // Mode the picker opens on
	Modes    []registry.GameInfo // Modes offered by the picker; empty offers GameID only
	Recorder RunRecorder         // May be nil
	Logger   *log.Logger         // May be nil
}

// SessionModel manages the full session flow: level picker -> game ->
// level picker. It is the top-level model for both local play and SSH
// sessions.
type SessionModel struct {
	opts     SessionOptions
	logger   *log.Logger
	config   core.RuntimeConfig
	picker   LevelSelectModel
	game     *Model
	inGame   bool
	quitting bool
	err      error
}

// NewSessionModel creates a session. When cfg.StartLevel is set the picker
// is skipped for the first run.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := SessionModel{
		opts:   opts,
		logger: logger,
		config: cfg,
	}
	m.picker = m.newPicker(opts.GameID, max(cfg.StartLevel, 1))
	if cfg.StartLevel > 0 {
		m.startGame(opts.GameID, cfg.StartLevel)
	}
	return m
}

func (m SessionModel) newPicker(gameID string, level int) LevelSelectModel {
	return NewLevelSelectModel(m.config.ScreenW, m.config.ScreenH, level).WithModes(m.opts.Modes, gameID)
}

// startGame creates a game model of mode id starting at level.
func (m *SessionModel) startGame(id string, level int) {
	game, err := m.opts.NewGame(id)
	if err != nil {
		m.logger.Error("cannot create game", "error", err)
		m.err = err
		m.quitting = true
		return
	}

	cfg := m.config
	cfg.StartLevel = level
	gm := NewModel(game, m.opts.Recorder, cfg, m.logger)
	m.game = &gm
	m.inGame = true
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	if m.inGame {
		return m.game.Init()
	}
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.game != nil {
		return m.updateGame(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while choosing a level.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Stray ticks from a finished game are dropped.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(LevelSelectModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if level := m.picker.Selected(); level > 0 {
		m.startGame(m.picker.Mode(), level)
		if m.quitting {
			return m, tea.Quit
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		level, id := m.game.config.StartLevel, m.game.game.ID()
		m.inGame = false
		m.game = nil
		m.picker = m.newPicker(id, max(level, 1))
		return m, m.picker.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.game != nil {
		return m.game.View()
	}

	return m.picker.View()
}

// Err returns the error that ended the session early, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession starts a Bubble Tea program for a local session.
func RunSession(opts SessionOptions, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(opts, cfg),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}
