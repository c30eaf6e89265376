package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-runner/internal/core"
	"github.com/vovakirdan/star-runner/internal/registry"
	"github.com/vovakirdan/star-runner/internal/storage"
)

// releaseTimer is implemented by games that want inferred key-up events.
type releaseTimer interface {
	ReleaseAfter() time.Duration
}

// summarizer is implemented by games that can say how a run ended.
type summarizer interface {
	Summary() core.RunSummary
}

// resizer is implemented by games that keep their state across resizes.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool
	clock      core.Clock
	keyMapper  *KeyMapper
	hold       *core.KeyHold // Movement key release inference
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		fixedSeed:  fixedSeed,
		clock:      core.ClockOrWall(cfg.Clock),
		keyMapper:  NewKeyMapper(),
		hold:       core.NewKeyHold(0),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// resetGame starts a new session and rearms release inference.
func (m *Model) resetGame() {
	m.game.Reset(m.config)
	m.hold.Reset()
	if rt, ok := m.game.(releaseTimer); ok {
		m.hold.SetWindow(rt.ReleaseAfter())
	}
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action.IsMovement():
		m.hold.Press(m.clock.Now())
	case action == core.ActionRelease:
		m.hold.Reset()
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games drawn in world units only need to know the new size;
	// anything else starts over at the new dimensions.
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.resetGame()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game unless the user pinned one
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.resetGame()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Terminals never send key-up; a movement key that stopped repeating
	// counts as released.
	if m.hold.Poll(m.clock.Now()) && !m.inputFrame.Has(core.ActionRelease) {
		m.inputFrame.Set(core.ActionRelease)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run. Failures are logged; play goes on.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	var run core.RunSummary
	if s, ok := m.game.(summarizer); ok {
		run = s.Summary()
	}

	if _, err := m.store.SaveRun(m.game.ID(), m.gameState.Score, run); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "score", m.gameState.Score, "error", err)
		return
	}
	m.logger.Debug("score saved", "game", m.game.ID(), "score", m.gameState.Score, "cause", run.Cause)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".starrunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
