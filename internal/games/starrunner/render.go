package starrunner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/star-runner/internal/core"
)

// Row 0 is the HUD; the world is projected onto the rows below it.
const hudRows = 1

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == nil {
		return
	}

	// Check for screen too small
	if g.screenTooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderEntities(dst)
	g.renderPlayer(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// project maps a world box onto the playfield rows of dst.
func (g *Game) project(dst *core.Screen, r core.RectF) core.Rect {
	world := g.cfg.World
	cells := r.Cells(world.Width, world.Height, dst.Width(), dst.Height()-hudRows)
	cells.Y += hudRows
	return cells
}

// renderEntities draws everything but the player. Comets fill their whole
// box so their growth shows; other kinds are a single glyph.
func (g *Game) renderEntities(dst *core.Screen) {
	s := g.state
	for _, p := range s.policies {
		for _, h := range s.Live[p.Kind] {
			e, ok := s.Arena.Get(h)
			if !ok {
				continue
			}
			box := g.project(dst, s.Hitbox(e))
			if box.Y < hudRows {
				continue
			}
			if p.Kind == KindComet {
				dst.FillRect(box, p.Glyph, p.Color)
				continue
			}
			dst.SetColored(box.X+box.W/2, box.Y+box.H/2, p.Glyph, p.Color)
		}
	}
}

// renderPlayer draws the ship facing its last horizontal direction.
func (g *Game) renderPlayer(dst *core.Screen) {
	s := g.state
	box := g.project(dst, s.CharacterBox())
	glyph := PlayerGlyphRight
	if s.Character.FacingLeft {
		glyph = PlayerGlyphLeft
	}
	color := core.ColorBrightWhite
	if s.SpeedBoost.InForce(s.Now) {
		color = core.ColorBrightCyan
	}
	y := box.Y + box.H/2
	if y < hudRows {
		return
	}
	dst.SetColored(box.X+box.W/2, y, glyph, color)
}

// renderHUD draws the label on the left and active effects on the right.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state
	if !s.GameOver {
		dst.DrawTextColored(1, 0, s.Label, core.ColorBrightWhite)
	}

	var effects []string
	if s.SpeedBoost.InForce(s.Now) {
		effects = append(effects, "BOOST")
	}
	if s.Frenzy.Active {
		effects = append(effects, "FRENZY")
	}
	if len(effects) > 0 {
		text := strings.Join(effects, " ")
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(text)-1, 0, text, core.ColorBrightYellow)
	}
}

// renderOverlay draws pause and game over boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.state.GameOver:
		subtitle := fmt.Sprintf("FINAL SCORE: %d  |  Press R to restart", g.state.Score)
		drawCenteredBox(dst, Verdict(g.state.Score), subtitle)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := core.Min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+core.Max(1, (boxW-titleLen)/2), boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+core.Max(1, (boxW-subtitleLen)/2), boxY+3, subtitle)
}
