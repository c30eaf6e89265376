package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration that would break the simulation.
var ErrInvalid = errors.New("config: invalid")

// fileName is the config file looked up in the user and local directories.
const fileName = "starrunner.yaml"

// LoadStarRunner loads Star Runner configuration.
// Search order: customPath -> ~/.starrunner/configs/starrunner.yaml ->
// ./configs/starrunner.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadStarRunner(customPath string) (StarRunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultStarRunnerConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", fileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultStarRunnerConfig()
	if err := yaml.Unmarshal(defaultStarRunnerYAML, &cfg); err != nil {
		return DefaultStarRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes one YAML file over the defaults and validates it.
func loadFile(path string) (StarRunnerConfig, error) {
	cfg := DefaultStarRunnerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starrunner", "configs", filename)
}

// Validate rejects values the update loop cannot run with.
func (c StarRunnerConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive, got %gx%g", ErrInvalid, c.World.Width, c.World.Height)
	}
	if c.World.SpriteSize <= 0 {
		return fmt.Errorf("%w: sprite_size must be positive", ErrInvalid)
	}

	spawns := map[string]SpawnConfig{
		"star":      c.Spawns.Star,
		"comet":     c.Spawns.Comet,
		"lightning": c.Spawns.Lightning,
		"frenzy":    c.Spawns.Frenzy,
		"reset":     c.Spawns.Reset,
		"rock":      c.Spawns.Rock,
	}
	for name, s := range spawns {
		if s.Range < 1 {
			return fmt.Errorf("%w: spawns.%s.range must be at least 1", ErrInvalid, name)
		}
		if s.Target < 1 || s.Target > s.Range {
			return fmt.Errorf("%w: spawns.%s.target must be in [1, %d]", ErrInvalid, name, s.Range)
		}
		if s.Cap < 0 {
			return fmt.Errorf("%w: spawns.%s.cap must not be negative", ErrInvalid, name)
		}
	}

	if c.Scaling.CometInterval < 0 {
		return fmt.Errorf("%w: scaling.comet_interval must not be negative", ErrInvalid)
	}
	if c.Controls.ReleaseAfterMS < 0 {
		return fmt.Errorf("%w: controls.release_after_ms must not be negative", ErrInvalid)
	}
	return nil
}

// ApplyStarRunnerPreset modifies the config based on a difficulty preset.
// Presets only touch the comet and rock spawn rates and the comet growth
// switch; everything else stays as loaded.
func ApplyStarRunnerPreset(cfg *StarRunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawns.Comet.Range = cfg.Spawns.Comet.Range * 3 / 2
		cfg.Spawns.Rock.Range = cfg.Spawns.Rock.Range * 3 / 2
	case DifficultyHard:
		cfg.Spawns.Comet.Range = stretch(cfg.Spawns.Comet, 3, 4)
		cfg.Spawns.Rock.Range = stretch(cfg.Spawns.Rock, 3, 4)
	case DifficultyFixed:
		cfg.Scaling.CometInterval = 0
	}
}

// stretch scales a spawn range by num/den without dropping below the target,
// which would make the kind impossible to spawn.
func stretch(s SpawnConfig, num, den int) int {
	r := s.Range * num / den
	if r < s.Target {
		r = s.Target
	}
	return r
}
