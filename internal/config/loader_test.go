package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadStarRunner("")
	if err != nil {
		t.Fatalf("LoadStarRunner() failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultStarRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultStarRunnerConfig() disagree:\n%+v\n%+v", cfg, DefaultStarRunnerConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawns:\n  star:\n    range: 10\n    target: 5\n    cap: 20\n    drop: 4\n    scale: 1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStarRunner(path)
	if err != nil {
		t.Fatalf("LoadStarRunner() failed: %v", err)
	}

	if cfg.Spawns.Star.Range != 10 || cfg.Spawns.Star.Cap != 20 {
		t.Errorf("star spawn not overridden: %+v", cfg.Spawns.Star)
	}
	// Untouched keys keep their defaults
	if cfg.Spawns.Comet.Cap != 14 {
		t.Errorf("comet cap = %d, expected default 14", cfg.Spawns.Comet.Cap)
	}
	if cfg.World.Width != 800 {
		t.Errorf("world width = %g, expected default 800", cfg.World.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadStarRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStarRunner(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  width: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadStarRunner(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("negative world width error = %v, expected ErrInvalid", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".starrunner", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "starrunner.yaml"), []byte("rocks:\n  lifetime_seconds: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStarRunner("")
	if err != nil {
		t.Fatalf("LoadStarRunner() failed: %v", err)
	}
	if cfg.Rocks.LifetimeSeconds != 4 {
		t.Errorf("lifetime = %g, expected 4 from user config", cfg.Rocks.LifetimeSeconds)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StarRunnerConfig)
		ok     bool
	}{
		{"defaults", func(*StarRunnerConfig) {}, true},
		{"zero height", func(c *StarRunnerConfig) { c.World.Height = 0 }, false},
		{"zero sprite", func(c *StarRunnerConfig) { c.World.SpriteSize = 0 }, false},
		{"zero range", func(c *StarRunnerConfig) { c.Spawns.Comet.Range = 0 }, false},
		{"target above range", func(c *StarRunnerConfig) { c.Spawns.Star.Target = 76 }, false},
		{"negative cap", func(c *StarRunnerConfig) { c.Spawns.Rock.Cap = -1 }, false},
		{"comet growth disabled", func(c *StarRunnerConfig) { c.Scaling.CometInterval = 0 }, true},
		{"latched controls", func(c *StarRunnerConfig) { c.Controls.ReleaseAfterMS = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStarRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultStarRunnerConfig()
	ApplyStarRunnerPreset(&easy, DifficultyEasy)
	if easy.Spawns.Comet.Range != 60 || easy.Spawns.Rock.Range != 150 {
		t.Errorf("easy ranges = %d/%d, expected 60/150", easy.Spawns.Comet.Range, easy.Spawns.Rock.Range)
	}

	hard := DefaultStarRunnerConfig()
	ApplyStarRunnerPreset(&hard, DifficultyHard)
	if hard.Spawns.Comet.Range != 30 || hard.Spawns.Rock.Range != 75 {
		t.Errorf("hard ranges = %d/%d, expected 30/75", hard.Spawns.Comet.Range, hard.Spawns.Rock.Range)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	fixed := DefaultStarRunnerConfig()
	ApplyStarRunnerPreset(&fixed, DifficultyFixed)
	if NewCometScaler(fixed.Scaling).IsEnabled() {
		t.Error("fixed preset should disable comet growth")
	}

	normal := DefaultStarRunnerConfig()
	ApplyStarRunnerPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultStarRunnerConfig()) {
		t.Error("normal preset should not change anything")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error(`ParsePreset("hard") should be DifficultyHard`)
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultStarRunnerConfig()
	if cfg.SpeedBoostDuration().Seconds() != 7 {
		t.Errorf("speed boost = %v, expected 7s", cfg.SpeedBoostDuration())
	}
	if cfg.FrenzyDuration().Seconds() != 3 {
		t.Errorf("frenzy = %v, expected 3s", cfg.FrenzyDuration())
	}
	if cfg.RockLifetime().Seconds() != 10 {
		t.Errorf("rock lifetime = %v, expected 10s", cfg.RockLifetime())
	}
	if cfg.ReleaseAfter().Milliseconds() != 700 {
		t.Errorf("release window = %v, expected 700ms", cfg.ReleaseAfter())
	}
}

func TestCometScalerSteps(t *testing.T) {
	s := NewCometScaler(DefaultStarRunnerConfig().Scaling)

	tests := []struct {
		score  int
		factor float64
		fires  bool
	}{
		{0, 0, false},
		{19, 0, false},
		{20, 2.10, true},
		{25, 0, false},
		{40, 3.15, true},
		{60, 4.20, true},
	}

	for _, tc := range tests {
		got, fires := s.Factor(tc.score)
		if fires != tc.fires {
			t.Errorf("Factor(%d) fires = %v, expected %v", tc.score, fires, tc.fires)
			continue
		}
		if fires && math.Abs(got-tc.factor) > 1e-9 {
			t.Errorf("Factor(%d) = %f, expected %f", tc.score, got, tc.factor)
		}
	}
}
