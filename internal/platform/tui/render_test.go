package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/star-runner/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, '*', core.ColorBrightYellow)
	s.DrawTextColored(0, 1, "xyz", core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "*", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q: %q", want, out)
		}
	}
}

func TestRenderScreenPlainRow(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "abcd")

	if got := RenderScreen(s); got != "abcd" {
		t.Errorf("RenderScreen = %q, expected %q", got, "abcd")
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{30, time.Second / 30},
		{0, time.Second},
		{-5, time.Second},
		{1000, time.Second / maxTickRate},
	}

	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.expected {
			t.Errorf("frameInterval(%d) = %v, expected %v", tt.rate, got, tt.expected)
		}
	}
}
