package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/registry"
	"github.com/vovakirdan/shape-shifter/internal/storage"
)

// Model is the Bubble Tea model for running a game. It feeds collected
// key intents to the game once per tick and, when the game supports it,
// records every frame into the run journal.
type Model struct {
	game       registry.Game
	journal    Journaled // nil when the game cannot be recorded
	screen     *core.Screen
	recorder   RunRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	interval   time.Duration
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	run        runLog
	quitting   bool
	backToMenu bool
	journaled  bool // Whether the current game over has been journaled
}

// NewModel creates a model for the given game and resets the game.
// recorder and logger may be nil.
func NewModel(game registry.Game, recorder RunRecorder, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	if registry.Players(game) > 1 {
		keys = DuelKeyMap()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   recorder,
		logger:     logger,
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		interval:   tickInterval(game),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		run:        runLog{id: storage.NewRunID()},
	}
	if j, ok := game.(Journaled); ok {
		m.journal = j
	}

	logger.Info("game started", "game", game.ID(), "run", m.run.id, "seed", cfg.Seed, "tick", m.interval)
	return m
}

// TickInterval returns the real-time interval between simulation steps.
func (m Model) TickInterval() time.Duration {
	return m.interval
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game intents are queued for the
// next tick; platform keys act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishRun("back")
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finishRun("quit")
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize only changes the view; the world keeps its fixed size and
// the session is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the intents collected since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	if m.journal != nil {
		m.run.record(m.inputFrame)
	}
	m.inputFrame.Clear()

	prev := m.gameState
	m.gameState = result.State
	if prev.Phase != m.gameState.Phase {
		m.logger.Debug("phase changed", "from", prev.Phase, "to", m.gameState.Phase)
	}
	if m.gameState.Level > prev.Level {
		m.logger.Info("level up", "level", m.gameState.Level, "score", m.gameState.Score)
	}

	switch {
	case m.gameState.GameOver && !m.journaled:
		m.onGameOver()
	case !m.gameState.GameOver:
		m.journaled = false
	}

	return m, tickCmd(m.interval)
}

// onGameOver records a finished game once.
func (m *Model) onGameOver() {
	m.journaled = true

	score := m.gameState.Score
	highest := m.gameState.Level
	if m.journal != nil {
		highest = m.journal.HighestLevel()
	}
	m.run.finishGame(score, highest)
	m.logger.Info("game over", "score", score, "highest_level", highest, "games", m.run.games)
	m.saveRun()
}

// finishRun checkpoints the journal when the player leaves the game.
func (m *Model) finishRun(reason string) {
	m.run.bestScore = max(m.run.bestScore, m.gameState.Score)
	m.logger.Info("leaving game", "reason", reason, "ticks", len(m.run.frames))
	m.saveRun()
}

// saveRun upserts the run journal. Failures are logged, never fatal.
func (m *Model) saveRun() {
	if m.recorder == nil || m.journal == nil || len(m.run.frames) == 0 {
		return
	}
	run := m.run.run(m.game.ID(), m.journal)
	if err := m.recorder.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "run", run.ID, "error", err)
		return
	}
	m.logger.Debug("run saved", "run", run.ID, "ticks", run.Ticks, "hash", run.Hash)
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: cannot write %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	height := m.config.ScreenH
	var helpView string
	if m.help.ShowAll {
		helpView = m.help.View(m.keys)
		height -= lipgloss.Height(helpView)
	}

	m.screen.Resize(m.config.ScreenW, max(height, 1))
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if helpView != "" {
		out += "\n" + helpView
	}
	return out
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunID returns the journal ID of this run.
func (m Model) RunID() string {
	return m.run.id
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested the level picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, recorder RunRecorder, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, recorder, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
