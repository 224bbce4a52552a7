package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.cube/configs/cube.yaml -> ./configs/cube.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cube.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "cube.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCubeYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only
// needs to name the values it changes.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cube", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	var errs []error

	cube := c.Cube
	if cube.MinSize <= 0 || cube.MaxSize < cube.MinSize {
		errs = append(errs, fmt.Errorf("cube size range [%g, %g] is invalid", cube.MinSize, cube.MaxSize))
	}
	if cube.StartSize < cube.MinSize || cube.StartSize > cube.MaxSize {
		errs = append(errs, fmt.Errorf("cube start_size %g outside [%g, %g]", cube.StartSize, cube.MinSize, cube.MaxSize))
	}
	if cube.StartPoint <= 0 {
		errs = append(errs, fmt.Errorf("cube start_point must be positive, got %g", cube.StartPoint))
	}
	if cube.Damping <= 0 || cube.Damping > 1 {
		errs = append(errs, fmt.Errorf("cube damping must be in (0, 1], got %g", cube.Damping))
	}
	if c.Capture.GrowFactor <= 1 {
		errs = append(errs, fmt.Errorf("capture grow_factor must be > 1, got %g", c.Capture.GrowFactor))
	}
	if c.Capture.ShrinkFactor <= 0 || c.Capture.ShrinkFactor >= 1 {
		errs = append(errs, fmt.Errorf("capture shrink_factor must be in (0, 1), got %g", c.Capture.ShrinkFactor))
	}

	errs = append(errs, c.Life.validate("life")...)
	errs = append(errs, c.Enemy.validate("enemy")...)
	if c.Enemy.Count < 0 {
		errs = append(errs, fmt.Errorf("enemy count must not be negative, got %d", c.Enemy.Count))
	}
	if err := c.Enemy.SessionSpeed.validate(); err != nil {
		errs = append(errs, fmt.Errorf("enemy session_speed: %w", err))
	}

	if c.Terminal.KeyReleaseTicks < 1 {
		errs = append(errs, fmt.Errorf("terminal key_release_ticks must be at least 1, got %d", c.Terminal.KeyReleaseTicks))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (a ActorConfig) validate(name string) []error {
	var errs []error
	if a.Size <= 0 {
		errs = append(errs, fmt.Errorf("%s size must be positive, got %g", name, a.Size))
	}
	for _, area := range []struct {
		label string
		area  Area
	}{
		{"play_area", a.PlayArea},
		{"respawn_area", a.RespawnArea},
		{"reset_area", a.ResetArea},
	} {
		if area.area.MaxX < area.area.MinX || area.area.MaxY < area.area.MinY {
			errs = append(errs, fmt.Errorf("%s %s is empty", name, area.label))
		}
	}
	if err := a.RespawnSpeed.validate(); err != nil {
		errs = append(errs, fmt.Errorf("%s respawn_speed: %w", name, err))
	}
	if err := a.ResetSpeed.validate(); err != nil {
		errs = append(errs, fmt.Errorf("%s reset_speed: %w", name, err))
	}
	return errs
}

func (r Range) validate() error {
	if r.Max < r.Min {
		return fmt.Errorf("max %g below min %g", r.Max, r.Min)
	}
	if r.Step < 0 {
		return fmt.Errorf("step %g is negative", r.Step)
	}
	return nil
}
