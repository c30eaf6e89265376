package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-runner/internal/core"
)

func newTestMenu() MenuModel {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = []MenuItem{
		{GameID: "starrunner", Title: "Star Runner", Controls: "←→↑↓ steer", HighScore: 42},
		{GameID: "fake", Title: "Fake"},
	}
	return m
}

func sendMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := newTestMenu()

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, expected to stop at last item", m.cursor)
	}
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	if sel := m.Selected(); sel == nil || sel.GameID != "starrunner" {
		t.Errorf("Selected() = %+v, expected starrunner", sel)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	if !sendMenu(newTestMenu(), tea.KeyMsg{Type: tea.KeyTab}).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
	if !sendMenu(newTestMenu(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}).IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := sendMenu(newTestMenu(), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuViewShowsBestAndControls(t *testing.T) {
	out := newTestMenu().View()
	for _, want := range []string{"Star Runner", "(best 42)", "steer"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
