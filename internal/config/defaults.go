package config

import (
	_ "embed"
)

//go:embed defaults/starrunner.yaml
var defaultStarRunnerYAML []byte

// DefaultStarRunnerConfig returns the built-in tuning. It matches the
// embedded YAML and is the fallback when that fails to parse.
func DefaultStarRunnerConfig() StarRunnerConfig {
	return StarRunnerConfig{
		World: WorldConfig{
			Width:      800,
			Height:     600,
			SpriteSize: 30,
		},
		Player: PlayerConfig{
			Speed:           10,
			BoostMultiplier: 2,
			Scale:           1.2,
			StartYRatio:     2.0 / 3.0,
		},
		Spawns: SpawnTable{
			Star:      SpawnConfig{Range: 75, Target: 50, Cap: 9, Drop: 8, Scale: 1},
			Comet:     SpawnConfig{Range: 40, Target: 25, Cap: 14, Drop: 8, Scale: 1.3},
			Lightning: SpawnConfig{Range: 300, Target: 100, Cap: 2, Drop: 11, Scale: 1},
			Frenzy:    SpawnConfig{Range: 750, Target: 375, Cap: 3, Drop: 11, Scale: 1},
			Reset:     SpawnConfig{Range: 600, Target: 300, Cap: 3, Drop: 11, Scale: 1},
			Rock:      SpawnConfig{Range: 100, Target: 25, Cap: 6, Scale: 1, MinScore: 15},
		},
		Effects: EffectsConfig{
			SpeedBoostSeconds: 7,
			FrenzySeconds:     3,
		},
		Rocks: RockConfig{
			Speed:           3,
			LifetimeSeconds: 10,
		},
		Scaling: ScalingConfig{
			CometBaseFactor: 1.05,
			CometInterval:   20,
			CometResetScale: 1.3,
			RockResetSpeed:  3,
			RockInterval:    30,
		},
		Controls: ControlsConfig{
			ReleaseAfterMS: 700,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `--dump-config` style
// tooling and tests.
func DefaultYAML() []byte {
	return defaultStarRunnerYAML
}
