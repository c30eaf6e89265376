// Package starrunner implements Star Runner: steer a ship through falling
// stars and power-ups while dodging comets and homing rocks.
package starrunner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-runner/internal/config"
	"github.com/vovakirdan/star-runner/internal/core"
	"github.com/vovakirdan/star-runner/internal/registry"
)

// GameID is the registry and score-table key.
const GameID = "starrunner"

// Minimum terminal size the playfield is drawn at.
const (
	minScreenW = 20
	minScreenH = 8
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by new sessions. Nil silences logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for Star Runner.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.StarRunnerConfig
	clock   core.Clock

	state *State
	loop  *Loop

	// User pause. Paused time is cut out of the session clock.
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration
	startedAt   time.Time

	screenTooSmall bool
}

// New creates a new Star Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Runner"
}

// Controls returns the key summary shown in menus.
func (g *Game) Controls() string {
	return "Arrows/WASD steer, Space stop, P pause, R restart, Q quit"
}

// Reset starts a new session with a fresh state record.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.clock = core.ClockOrWall(runtime.Clock)

	cfg, err := config.LoadStarRunner(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultStarRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStarRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.paused = false
	g.pausedTotal = 0
	g.startedAt = g.clock.Now()
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.state = NewState(cfg, runtime.Seed, g.startedAt)
	g.loop = newLoop()
}

// newLoop wires the frame systems and terminal guards in execution order.
func newLoop() *Loop {
	l := &Loop{}
	l.OnFrame("move character", moveCharacter)
	l.OnFrame("move character y", moveCharacterY)
	l.OnFrame("drop", dropFalling)
	l.OnFrame("reap", reapFallen)
	l.OnFrame("wrap", wrapAround)
	l.OnFrame("spawn", spawnAll)
	l.OnFrame("move rocks", moveRocks)
	l.OnFrame("scale comets", scaleComets)
	l.OnFrame("collect stars", collectStars)
	l.OnFrame("collect lightning", collectLightning)
	l.OnFrame("collect frenzy", collectFrenzy)
	l.OnFrame("collect resets", collectResets)
	l.OnFrame("frenzy", sustainFrenzy)
	l.OnFrame("label", updateLabel)

	pause := func(*State) { l.Pause() }
	l.Guard("comet", hitBy(KindComet), endGame(KindComet), pause)
	l.Guard("rock", hitBy(KindRock), endGame(KindRock), pause)
	return l
}

// Resize records a new terminal size. The world is projected at draw
// time, so the session carries on.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenW || height < minScreenH
}

// sessionNow returns clock time minus everything spent paused.
func (g *Game) sessionNow() time.Time {
	now := g.clock.Now()
	if g.paused {
		now = g.pausedAt
	}
	return now.Add(-g.pausedTotal)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.togglePause()
	}

	if g.paused || g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)

	g.state.Now = g.sessionNow()
	if g.loop.Run(g.state) {
		g.state.Frames++
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	if g.paused {
		g.pausedTotal += g.clock.Now().Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.pausedAt = g.clock.Now()
	g.paused = true
}

// steer applies key presses. A release stops both axes; presses that
// arrive in the same frame take effect after it.
func (g *Game) steer(in core.InputFrame) {
	ch := &g.state.Character
	speed := g.cfg.Player.Speed

	if in.Has(core.ActionRelease) {
		ch.SpeedX = 0
		ch.SpeedY = 0
	}
	if in.Has(core.ActionLeft) {
		ch.SpeedX = -speed
		ch.FacingLeft = true
	}
	if in.Has(core.ActionRight) {
		ch.SpeedX = speed
		ch.FacingLeft = false
	}
	if in.Has(core.ActionUp) {
		ch.SpeedY = speed
	}
	if in.Has(core.ActionDown) {
		ch.SpeedY = -speed
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Summary describes how the session ended.
func (g *Game) Summary() core.RunSummary {
	if g.state == nil {
		return core.RunSummary{}
	}
	return core.RunSummary{
		Cause:    g.state.Cause,
		Duration: g.state.Now.Sub(g.startedAt),
	}
}

// ReleaseAfter returns how long a movement key may go without repeating
// before the platform treats it as let go.
func (g *Game) ReleaseAfter() time.Duration {
	return g.cfg.ReleaseAfter()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
