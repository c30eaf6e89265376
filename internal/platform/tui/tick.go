// Package tui runs games in the terminal with Bubble Tea.
// It owns the frame clock, key mapping, menus and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickRate caps the frame rate; terminals cannot redraw much faster.
const maxTickRate = 120

// TickMsg is sent once per simulated frame.
type TickMsg time.Time

// frameInterval converts a tick rate to the delay between frames,
// clamping it to [1, maxTickRate].
func frameInterval(tickRate int) time.Duration {
	tickRate = max(1, min(tickRate, maxTickRate))
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
