package starrunner

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-runner/internal/config"
	"github.com/vovakirdan/star-runner/internal/core"
)

// Character is the player's ship.
type Character struct {
	X, Y       float64 // Center, world units
	SpeedX     float64 // Signed horizontal speed per tick
	SpeedY     float64 // Signed vertical speed per tick, positive is up
	FacingLeft bool
	Scale      float64
}

// Effect is a timed power-up.
type Effect struct {
	Active   bool
	Start    time.Time
	Duration time.Duration
}

// InForce reports whether the effect is active and has not run out.
func (e Effect) InForce(now time.Time) bool {
	return e.Active && now.Sub(e.Start) < e.Duration
}

// State is everything one game session owns. Every frame system gets it
// by pointer; nothing about a session lives in package variables.
type State struct {
	Cfg   config.StarRunnerConfig
	Now   time.Time // Session time of the current frame, pauses excluded
	Arena *Arena

	Character Character
	Score     int

	// Live holds each kind's handles in spawn order.
	Live [kindCount][]Handle

	SpeedBoost Effect
	Frenzy     Effect

	LastCometScale     float64
	LastRockSpeed      float64
	CometScaleInterval int
	RockSpeedInterval  int // Stored only

	Label    string
	GameOver bool
	Cause    string // Kind that ended the session
	Frames   int

	policies []KindPolicy
	scaler   config.StepScaler
	rng      *rand.Rand
	log      *log.Logger
}

// NewState creates a fresh session record.
func NewState(cfg config.StarRunnerConfig, seed int64, now time.Time) *State {
	s := &State{
		Cfg:   cfg,
		Now:   now,
		Arena: NewArena(),
		Character: Character{
			X:          cfg.World.Width / 2,
			Y:          cfg.World.Height * cfg.Player.StartYRatio,
			FacingLeft: true,
			Scale:      cfg.Player.Scale,
		},
		SpeedBoost:         Effect{Duration: cfg.SpeedBoostDuration()},
		Frenzy:             Effect{Duration: cfg.FrenzyDuration()},
		LastCometScale:     cfg.Scaling.CometResetScale,
		LastRockSpeed:      cfg.Rocks.Speed,
		CometScaleInterval: cfg.Scaling.CometInterval,
		RockSpeedInterval:  cfg.Scaling.RockInterval,
		policies:           buildPolicies(cfg.Spawns),
		scaler:             config.NewCometScaler(cfg.Scaling),
		rng:                rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		log:                logger,
	}
	s.Label = scoreLabel(0)
	return s
}

// Policy returns the spawn table row for a kind.
func (s *State) Policy(k Kind) KindPolicy {
	for _, p := range s.policies {
		if p.Kind == k {
			return p
		}
	}
	return KindPolicy{Kind: k, Scale: 1}
}

// Count returns how many entities of a kind are alive.
func (s *State) Count(k Kind) int {
	return len(s.Live[k])
}

// spawn creates an entity of the given kind at the top of the world.
func (s *State) spawn(k Kind) Handle {
	p := s.Policy(k)
	e := Entity{
		Kind:      k,
		X:         s.rng.Float64() * s.Cfg.World.Width,
		Y:         0,
		Scale:     p.Scale,
		CreatedAt: s.Now,
	}
	if k == KindRock {
		e.Speed = s.LastRockSpeed
	}
	h := s.Arena.Spawn(e)
	s.Live[k] = append(s.Live[k], h)
	return h
}

// size returns the hitbox edge for a scale.
func (s *State) size(scale float64) float64 {
	return s.Cfg.World.SpriteSize * scale
}

// Hitbox returns the world-space box of an entity.
func (s *State) Hitbox(e *Entity) core.RectF {
	sz := s.size(e.Scale)
	if s.Policy(e.Kind).Anchor == AnchorMidTop {
		return core.NewRectF(e.X-sz/2, e.Y, sz, sz)
	}
	return core.NewRectF(e.X-sz/2, e.Y-sz/2, sz, sz)
}

// CharacterBox returns the world-space box of the player.
func (s *State) CharacterBox() core.RectF {
	sz := s.size(s.Character.Scale)
	return core.NewRectF(s.Character.X-sz/2, s.Character.Y-sz/2, sz, sz)
}

// Colliding reports whether the player overlaps the entity.
func (s *State) Colliding(h Handle) bool {
	e, ok := s.Arena.Get(h)
	if !ok {
		return false
	}
	return s.CharacterBox().Intersects(s.Hitbox(e))
}

// collidesAny reports whether the player overlaps any entity of a kind.
func (s *State) collidesAny(k Kind) bool {
	for _, h := range s.Live[k] {
		if s.Colliding(h) {
			return true
		}
	}
	return false
}

// remove destroys every handle in drop exactly once and keeps the rest of
// the kind's collection in order.
func (s *State) remove(k Kind, drop map[Handle]struct{}) {
	if len(drop) == 0 {
		return
	}
	kept := s.Live[k][:0]
	for _, h := range s.Live[k] {
		if _, gone := drop[h]; !gone {
			kept = append(kept, h)
			continue
		}
		if err := s.Arena.Destroy(h); err != nil {
			s.log.Error("destroy failed", "kind", k, "handle", h, "error", err)
		}
	}
	s.Live[k] = kept
}

func scoreLabel(score int) string {
	return "Score: " + strconv.Itoa(score)
}
