// Package config provides YAML-based configuration loading and difficulty
// presets for Star Runner.
package config

import "time"

// StarRunnerConfig contains all tuning for the Star Runner game.
// Distances are in world units; the platform projects the world onto
// whatever terminal size it has.
type StarRunnerConfig struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Spawns   SpawnTable     `yaml:"spawns"`
	Effects  EffectsConfig  `yaml:"effects"`
	Rocks    RockConfig     `yaml:"rocks"`
	Scaling  ScalingConfig  `yaml:"scaling"`
	Controls ControlsConfig `yaml:"controls"`
}

// WorldConfig defines the logical playfield.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpriteSize float64 `yaml:"sprite_size"` // Hitbox edge of a scale-1 sprite
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed           float64 `yaml:"speed"`            // Units per tick while a key is held
	BoostMultiplier float64 `yaml:"boost_multiplier"` // Horizontal speed factor during speed boost
	Scale           float64 `yaml:"scale"`
	StartYRatio     float64 `yaml:"start_y_ratio"` // Starting height as a fraction of world height
}

// SpawnConfig tunes one entity kind.
// Each tick a number in [1, Range] is drawn; the kind spawns when it equals
// Target and fewer than Cap are alive. A positive MinScore additionally
// holds the kind back until the score is above it.
type SpawnConfig struct {
	Range    int     `yaml:"range"`
	Target   int     `yaml:"target"`
	Cap      int     `yaml:"cap"`
	Drop     float64 `yaml:"drop"` // Units fallen per tick (unused for rocks)
	Scale    float64 `yaml:"scale"`
	MinScore int     `yaml:"min_score"`
}

// SpawnTable holds per-kind spawn settings.
type SpawnTable struct {
	Star      SpawnConfig `yaml:"star"`
	Comet     SpawnConfig `yaml:"comet"`
	Lightning SpawnConfig `yaml:"lightning"`
	Frenzy    SpawnConfig `yaml:"frenzy"`
	Reset     SpawnConfig `yaml:"reset"`
	Rock      SpawnConfig `yaml:"rock"`
}

// EffectsConfig defines timed power-up durations.
type EffectsConfig struct {
	SpeedBoostSeconds float64 `yaml:"speed_boost_seconds"`
	FrenzySeconds     float64 `yaml:"frenzy_seconds"`
}

// RockConfig defines homing rock behavior.
type RockConfig struct {
	Speed           float64 `yaml:"speed"`
	LifetimeSeconds float64 `yaml:"lifetime_seconds"`
}

// ScalingConfig defines the comet growth step function and the values the
// reset power-up restores.
type ScalingConfig struct {
	CometBaseFactor float64 `yaml:"comet_base_factor"`
	CometInterval   int     `yaml:"comet_interval"` // 0 disables comet growth
	CometResetScale float64 `yaml:"comet_reset_scale"`
	RockResetSpeed  float64 `yaml:"rock_reset_speed"`
	RockInterval    int     `yaml:"rock_interval"` // Stored only; nothing speeds rocks up
}

// ControlsConfig tunes input handling.
type ControlsConfig struct {
	// ReleaseAfterMS is how long a movement key may go without an
	// auto-repeat before it counts as released. 0 keeps keys latched.
	ReleaseAfterMS int `yaml:"release_after_ms"`
}

// SpeedBoostDuration returns the speed boost length.
func (c StarRunnerConfig) SpeedBoostDuration() time.Duration {
	return seconds(c.Effects.SpeedBoostSeconds)
}

// FrenzyDuration returns the frenzy length.
func (c StarRunnerConfig) FrenzyDuration() time.Duration {
	return seconds(c.Effects.FrenzySeconds)
}

// RockLifetime returns how long a rock lives before it is removed.
func (c StarRunnerConfig) RockLifetime() time.Duration {
	return seconds(c.Rocks.LifetimeSeconds)
}

// ReleaseAfter returns the key release inference window.
func (c StarRunnerConfig) ReleaseAfter() time.Duration {
	return time.Duration(c.Controls.ReleaseAfterMS) * time.Millisecond
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// return "" which means "leave the config alone".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
