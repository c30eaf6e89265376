package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-runner/internal/core"
)

// cellStyles holds one lipgloss style per palette color, indexed by color.
var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	colors := core.Colors()
	styles := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		styles[i] = lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is emitted as runs of same-colored cells so a frame costs one
// escape sequence per color change, not per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				writeRun(&sb, &run, current)
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		writeRun(&sb, &run, current)
	}
	return sb.String()
}

// writeRun flushes the pending run in its color and empties it.
func writeRun(sb, run *strings.Builder, c core.Color) {
	if run.Len() == 0 {
		return
	}
	if c == core.ColorDefault {
		sb.WriteString(run.String())
	} else {
		sb.WriteString(styleFor(c).Render(run.String()))
	}
	run.Reset()
}
