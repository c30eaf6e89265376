package starrunner

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/star-runner/internal/core"
	"github.com/vovakirdan/star-runner/internal/registry"
)

const frame = 33 * time.Millisecond

// newTestGame returns a game on a manual clock with no user config in reach.
func newTestGame(t *testing.T, seed int64) (*Game, *core.ManualClock) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	clock := &core.ManualClock{T: t0}
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
		Clock:    clock,
	})
	return g, clock
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// step advances the clock one frame and steps the game.
func step(g *Game, clock *core.ManualClock, in core.InputFrame) core.StepResult {
	clock.Advance(frame)
	return g.Step(in)
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("starrunner should be registered")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Star Runner" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		switch {
		case i%40 < 10:
			inputs[i] = input(core.ActionLeft)
		case i%40 < 20:
			inputs[i] = input(core.ActionRelease)
		case i%40 < 30:
			inputs[i] = input(core.ActionRight, core.ActionUp)
		default:
			inputs[i] = input(core.ActionDown)
		}
	}

	run := func() Snapshot {
		g, clock := newTestGame(t, 12345)
		for _, in := range inputs {
			step(g, clock, in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Determinism failed:\n%+v\n%+v", snap1, snap2)
	}
	if len(snap1.Entities)+snap1.Destroyed == 0 {
		t.Error("expected something to spawn in 300 frames")
	}
}

func TestGameSeedsDiffer(t *testing.T) {
	run := func(seed int64) Snapshot {
		g, clock := newTestGame(t, seed)
		for range 200 {
			step(g, clock, core.NewInputFrame())
		}
		return g.Snapshot()
	}
	if reflect.DeepEqual(run(1), run(2)) {
		t.Error("different seeds should produce different sessions")
	}
}

func TestGameSteering(t *testing.T) {
	g, clock := newTestGame(t, 1)
	ch := &g.state.Character

	step(g, clock, input(core.ActionRight))
	if ch.SpeedX != 10 || ch.FacingLeft || ch.X != 410 {
		t.Errorf("right: speed=%v facingLeft=%v x=%v", ch.SpeedX, ch.FacingLeft, ch.X)
	}

	step(g, clock, input(core.ActionLeft))
	if ch.SpeedX != -10 || !ch.FacingLeft || ch.X != 400 {
		t.Errorf("left: speed=%v facingLeft=%v x=%v", ch.SpeedX, ch.FacingLeft, ch.X)
	}

	y := ch.Y
	step(g, clock, input(core.ActionUp))
	if ch.SpeedY != 10 || ch.Y != y-10 {
		t.Errorf("up: speedY=%v y=%v", ch.SpeedY, ch.Y)
	}

	step(g, clock, input(core.ActionDown))
	if ch.SpeedY != -10 || ch.Y != y {
		t.Errorf("down: speedY=%v y=%v", ch.SpeedY, ch.Y)
	}

	// Keys stay in effect without repeats
	x := ch.X
	step(g, clock, core.NewInputFrame())
	if ch.X != x-10 {
		t.Errorf("held: x=%v want %v", ch.X, x-10)
	}

	step(g, clock, input(core.ActionRelease))
	if ch.SpeedX != 0 || ch.SpeedY != 0 {
		t.Errorf("release should stop both axes, got %v/%v", ch.SpeedX, ch.SpeedY)
	}
}

func TestGameCometEndsRun(t *testing.T) {
	g, clock := newTestGame(t, 1)
	place(g.state, KindComet, 400, 380)

	result := step(g, clock, core.NewInputFrame())

	if !result.State.GameOver {
		t.Fatal("touching a comet should end the run")
	}
	if g.state.Cause != "comet" {
		t.Errorf("Cause = %q, want comet", g.state.Cause)
	}
	if g.state.Label != GameOverMessage(0) {
		t.Errorf("Label = %q", g.state.Label)
	}
	if !g.loop.Paused() {
		t.Error("loop should be paused after game over")
	}

	// Nothing moves afterwards
	before := g.Snapshot()
	for range 10 {
		step(g, clock, input(core.ActionLeft))
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("state changed after game over")
	}
}

func TestGameRockEndsRun(t *testing.T) {
	g, clock := newTestGame(t, 1)
	g.state.Score = 42
	place(g.state, KindRock, 410, 400)

	step(g, clock, core.NewInputFrame())

	if !g.state.GameOver || g.state.Cause != "rock" {
		t.Fatalf("GameOver=%v Cause=%q", g.state.GameOver, g.state.Cause)
	}
	if g.state.Label != "Not bad... for a rookie. FINAL SCORE: 42" {
		t.Errorf("Label = %q", g.state.Label)
	}
}

func TestGameRestart(t *testing.T) {
	g, clock := newTestGame(t, 1)
	g.state.Score = 5
	place(g.state, KindComet, 400, 380)
	step(g, clock, core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}
	old := g.state

	step(g, clock, input(core.ActionRestart))

	if g.state == old {
		t.Error("restart should create a fresh state record")
	}
	st := g.State()
	if st.GameOver || st.Score != 0 {
		t.Errorf("after restart: %+v", st)
	}
	if g.loop.Paused() {
		t.Error("new session loop should run")
	}
}

func TestGameRestartIgnoredWhilePlaying(t *testing.T) {
	g, clock := newTestGame(t, 1)
	g.state.Score = 3
	step(g, clock, input(core.ActionRestart))
	if g.state.Score != 3 {
		t.Error("restart mid-run should do nothing")
	}
}

func TestGamePause(t *testing.T) {
	g, clock := newTestGame(t, 1)

	step(g, clock, core.NewInputFrame())
	frames := g.state.Frames
	sessionTime := g.state.Now

	result := step(g, clock, input(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("P should pause")
	}

	clock.Advance(5 * time.Second)
	step(g, clock, core.NewInputFrame())
	if g.state.Frames != frames {
		t.Error("paused game should not advance")
	}

	result = step(g, clock, input(core.ActionPause))
	if result.State.Paused {
		t.Fatal("P should resume")
	}
	if g.state.Frames != frames+1 {
		t.Errorf("Frames = %d, want %d", g.state.Frames, frames+1)
	}

	// The resumed frame picks up where the pause began
	want := sessionTime.Add(frame)
	if !g.state.Now.Equal(want) {
		t.Errorf("session time = %v, want %v", g.state.Now.Sub(t0), want.Sub(t0))
	}
}

func TestGamePauseFreezesEffects(t *testing.T) {
	g, clock := newTestGame(t, 1)
	step(g, clock, core.NewInputFrame())
	g.state.SpeedBoost.Active = true
	g.state.SpeedBoost.Start = g.state.Now

	step(g, clock, input(core.ActionPause))
	clock.Advance(time.Minute)
	step(g, clock, input(core.ActionPause))

	if !g.state.SpeedBoost.InForce(g.state.Now) {
		t.Error("boost should not run out while paused")
	}
}

func TestGameSummary(t *testing.T) {
	g, clock := newTestGame(t, 1)
	for range 30 {
		step(g, clock, core.NewInputFrame())
	}
	place(g.state, KindComet, 400, 380)
	step(g, clock, core.NewInputFrame())

	sum := g.Summary()
	if sum.Cause != "comet" {
		t.Errorf("Cause = %q", sum.Cause)
	}
	if sum.Duration != 31*frame {
		t.Errorf("Duration = %v, want %v", sum.Duration, 31*frame)
	}
}

func TestGameReleaseAfter(t *testing.T) {
	g, _ := newTestGame(t, 1)
	if g.ReleaseAfter() != 700*time.Millisecond {
		t.Errorf("ReleaseAfter() = %v", g.ReleaseAfter())
	}
}

func TestGameRender(t *testing.T) {
	g, clock := newTestGame(t, 1)
	step(g, clock, core.NewInputFrame())
	place(g.state, KindStar, 100, 100)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	out := screen.String()
	if !strings.ContainsRune(out, PlayerGlyphLeft) {
		t.Error("player glyph not drawn")
	}
	if !strings.ContainsRune(out, '*') {
		t.Error("star glyph not drawn")
	}
	// Player sits at 2/3 of the playfield height, below the HUD row
	if !strings.ContainsRune(screen.Row(15), PlayerGlyphLeft) {
		t.Errorf("player row = %q", screen.Row(15))
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g, clock := newTestGame(t, 1)
	place(g.state, KindComet, 400, 380)
	step(g, clock, core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, Verdict(0)) {
		t.Error("verdict not shown")
	}
	if !strings.Contains(out, "FINAL SCORE: 0") {
		t.Error("final score not shown")
	}
}

func TestGameTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1})

	g.Step(core.NewInputFrame())
	if g.state.Frames != 0 {
		t.Error("tiny screen should not simulate")
	}
	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestGameResizeKeepsSession(t *testing.T) {
	g, clock := newTestGame(t, 1)
	g.state.Score = 7
	state := g.state

	g.Resize(10, 5)
	step(g, clock, core.NewInputFrame())
	if g.state.Frames != 0 {
		t.Error("too small screen should freeze the game")
	}

	g.Resize(120, 40)
	step(g, clock, core.NewInputFrame())
	if g.state != state || g.state.Score != 7 || g.state.Frames != 1 {
		t.Errorf("resize should keep the session, frames=%d score=%d", g.state.Frames, g.state.Score)
	}
}
