package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-runner/internal/core"
	"github.com/vovakirdan/star-runner/internal/registry"
	"github.com/vovakirdan/star-runner/internal/storage"
)

func newTestScoreboard(t *testing.T) ScoreboardModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []struct {
		score int
		cause string
	}{
		{40, "comet"},
		{3, "rock"},
		{17, "comet"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("starrunner", r.score, core.RunSummary{Cause: r.cause, Duration: time.Minute}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	m.games = []registry.GameInfo{{ID: "starrunner", Title: "Star Runner"}}
	m.gameCursor = 0
	m.reload()
	return m
}

func TestScoreboardBestView(t *testing.T) {
	m := newTestScoreboard(t)

	if len(m.scores) != 3 || m.scores[0].Score != 40 {
		t.Fatalf("best view = %+v, expected 40 first", m.scores)
	}
	if m.causes["comet"] != 2 || m.causes["rock"] != 1 {
		t.Errorf("causes = %v, expected comet:2 rock:1", m.causes)
	}
	if m.stats == nil || m.stats.GamesCount != 3 {
		t.Errorf("stats = %+v, expected 3 games", m.stats)
	}
}

func TestScoreboardToggleRecent(t *testing.T) {
	m := newTestScoreboard(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	if m.view != viewRecent {
		t.Fatalf("view = %v, expected Recent", m.view)
	}
	if m.scores[0].Score != 17 {
		t.Errorf("recent view starts with %d, expected latest run 17", m.scores[0].Score)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).view != viewBest {
		t.Error("second tab should return to Best")
	}
}

func TestScoreboardViewShowsStats(t *testing.T) {
	m := newTestScoreboard(t)
	out := m.View()

	for _, want := range []string{"Star Runner", "Ended by", "comet"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := newTestScoreboard(t)

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}

	quit, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !quit.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.scores) != 0 {
		t.Errorf("scores without a store = %d, expected 0", len(m.scores))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say no runs are recorded")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "-"},
		{59 * time.Second, "0:59"},
		{75 * time.Second, "1:15"},
		{1500 * time.Millisecond, "0:02"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.expected {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}
