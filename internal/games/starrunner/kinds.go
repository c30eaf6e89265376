package starrunner

import (
	"github.com/vovakirdan/star-runner/internal/config"
	"github.com/vovakirdan/star-runner/internal/core"
)

// Kind identifies what an entity is.
type Kind int

const (
	KindStar Kind = iota
	KindComet
	KindLightning
	KindFrenzy
	KindReset
	KindRock
	kindCount
)

// String returns the name of the kind, used for logs and game over causes.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindComet:
		return "comet"
	case KindLightning:
		return "lightning"
	case KindFrenzy:
		return "frenzy"
	case KindReset:
		return "reset"
	case KindRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Falls reports whether entities of this kind drop straight down and are
// reaped at the bottom edge. Rocks home in on the player instead.
func (k Kind) Falls() bool {
	return k != KindRock && k < kindCount
}

// Anchor says which point of the sprite its position refers to.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorMidTop        // X is the horizontal center, Y the top edge
)

// KindPolicy is one row of the spawn table.
type KindPolicy struct {
	Kind     Kind
	Glyph    rune
	Color    core.Color
	Range    int // Roll upper bound, inclusive
	Target   int // Roll value that spawns
	Cap      int // Max live entities of this kind
	Drop     float64
	Scale    float64
	Anchor   Anchor
	MinScore int // Spawn only when the score is above this; 0 never gates
}

// Unlocked reports whether the score allows this kind to spawn.
func (p KindPolicy) Unlocked(score int) bool {
	return p.MinScore <= 0 || score > p.MinScore
}

// Player glyphs by facing.
const (
	PlayerGlyphLeft  = '◄'
	PlayerGlyphRight = '►'
)

// buildPolicies returns the spawn table in spawn order.
func buildPolicies(t config.SpawnTable) []KindPolicy {
	row := func(k Kind, glyph rune, c core.Color, a Anchor, sc config.SpawnConfig) KindPolicy {
		return KindPolicy{
			Kind:     k,
			Glyph:    glyph,
			Color:    c,
			Range:    sc.Range,
			Target:   sc.Target,
			Cap:      sc.Cap,
			Drop:     sc.Drop,
			Scale:    sc.Scale,
			Anchor:   a,
			MinScore: sc.MinScore,
		}
	}

	return []KindPolicy{
		row(KindStar, '*', core.ColorBrightYellow, AnchorMidTop, t.Star),
		row(KindComet, '@', core.ColorOrange, AnchorMidTop, t.Comet),
		row(KindLightning, 'ϟ', core.ColorBrightCyan, AnchorCenter, t.Lightning),
		row(KindFrenzy, '$', core.ColorBrightGreen, AnchorMidTop, t.Frenzy),
		row(KindRock, '●', core.ColorGray, AnchorCenter, t.Rock),
		row(KindReset, '↺', core.ColorBrightMagenta, AnchorCenter, t.Reset),
	}
}
