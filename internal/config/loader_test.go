package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// Decode into a zero value so every field must come from the file
	var cfg GameConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded defaults differ from DefaultGameConfig()\nyaml: %+v\ncode: %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	data := []byte(`
cube:
  thrust: 0.25
enemy:
  count: 2
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Cube.Thrust != 0.25 {
		t.Errorf("Thrust = %g, expected 0.25", cfg.Cube.Thrust)
	}
	if cfg.Enemy.Count != 2 {
		t.Errorf("Enemy.Count = %d, expected 2", cfg.Enemy.Count)
	}

	// Unspecified values keep their defaults
	if cfg.Cube.StartPoint != 300 {
		t.Errorf("StartPoint = %g, expected default 300", cfg.Cube.StartPoint)
	}
	if cfg.Enemy.Size != 20 {
		t.Errorf("Enemy.Size = %g, expected default 20", cfg.Enemy.Size)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cube: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	data := []byte(`
cube:
  damping: 1.5
capture:
  grow_factor: 0.9
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject invalid values")
	}
	for _, want := range []string{"damping", "grow_factor"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q: %v", want, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GameConfig)
		errMsg string
	}{
		{
			name:   "inverted size range",
			modify: func(c *GameConfig) { c.Cube.MaxSize = 5 },
			errMsg: "cube size range",
		},
		{
			name:   "shrink factor above one",
			modify: func(c *GameConfig) { c.Capture.ShrinkFactor = 1.2 },
			errMsg: "shrink_factor",
		},
		{
			name:   "empty respawn area",
			modify: func(c *GameConfig) { c.Life.RespawnArea.MaxX = 0 },
			errMsg: "life respawn_area is empty",
		},
		{
			name:   "negative enemy count",
			modify: func(c *GameConfig) { c.Enemy.Count = -1 },
			errMsg: "enemy count",
		},
		{
			name:   "inverted session speed",
			modify: func(c *GameConfig) { c.Enemy.SessionSpeed = Range{Min: 1, Max: -1} },
			errMsg: "session_speed",
		},
		{
			name:   "zero key release ticks",
			modify: func(c *GameConfig) { c.Terminal.KeyReleaseTicks = 0 },
			errMsg: "key_release_ticks",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.modify(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tc.errMsg)
			}
		})
	}
}

func TestAreaBounds(t *testing.T) {
	b := Area{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}.Bounds()
	if b.MinX != 1 || b.MinY != 2 || b.MaxX != 3 || b.MaxY != 4 {
		t.Errorf("Bounds() = %+v", b)
	}
}
