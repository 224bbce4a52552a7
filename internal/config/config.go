// Package config provides YAML-based game configuration loading
// for the cube game.
package config

import "github.com/vovakirdan/cube-chase/internal/core"

// GameConfig contains every tunable of the game.
type GameConfig struct {
	Cube     CubeConfig     `yaml:"cube"`
	Capture  CaptureConfig  `yaml:"capture"`
	Life     ActorConfig    `yaml:"life"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	HUD      HUDConfig      `yaml:"hud"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// CubeConfig defines the player cube's physics and limits.
type CubeConfig struct {
	StartY        float64 `yaml:"start_y"` // Cube starts horizontally centered at this height
	StartSize     float64 `yaml:"start_size"`
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	StartPoint    float64 `yaml:"start_point"`
	Thrust        float64 `yaml:"thrust"`  // Velocity change per tick while a booster is on
	Damping       float64 `yaml:"damping"` // Velocity multiplier per tick on an axis with no booster
	Margin        Margin  `yaml:"margin"`
	PointBarWidth float64 `yaml:"point_bar_width"`
}

// Margin is the inset from each screen edge the cube may not cross.
type Margin struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// CaptureConfig defines how collisions change the cube.
type CaptureConfig struct {
	GrowFactor   float64 `yaml:"grow_factor"`   // Size multiplier on life capture
	ShrinkFactor float64 `yaml:"shrink_factor"` // Size multiplier on enemy contact
}

// ActorConfig defines a roaming actor (life or enemy).
type ActorConfig struct {
	Size         float64 `yaml:"size"`
	PlayArea     Area    `yaml:"play_area"`     // Leaving this area triggers a respawn
	RespawnArea  Area    `yaml:"respawn_area"`  // Where out-of-bounds actors reappear
	ResetArea    Area    `yaml:"reset_area"`    // Where actors appear on reset / capture
	RespawnSpeed Range   `yaml:"respawn_speed"` // Per-axis speed after leaving the play area
	ResetSpeed   Range   `yaml:"reset_speed"`   // Per-axis speed after reset
}

// EnemyConfig defines the enemy group.
type EnemyConfig struct {
	ActorConfig  `yaml:",inline"`
	Count        int   `yaml:"count"`
	SessionSpeed Range `yaml:"session_speed"` // Range of the shared diagonal speed
}

// HUDConfig defines on-screen text.
type HUDConfig struct {
	TimeFormat   string  `yaml:"time_format"`
	TimeSize     float64 `yaml:"time_size"`
	BannerText   string  `yaml:"banner_text"`
	BannerSize   float64 `yaml:"banner_size"`
	BannerMargin float64 `yaml:"banner_margin"` // Inset of the game-over panel from the screen edge
}

// TerminalConfig defines terminal driver behavior.
type TerminalConfig struct {
	// KeyReleaseTicks is how many ticks without a repeat before a held key
	// is considered released. Terminals do not report key releases.
	KeyReleaseTicks int `yaml:"key_release_ticks"`
}

// Area is an inclusive rectangle of positions.
type Area struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Bounds converts the area to core bounds.
func (a Area) Bounds() core.Bounds {
	return core.Bounds{MinX: a.MinX, MinY: a.MinY, MaxX: a.MaxX, MaxY: a.MaxY}
}

// Range is a quantized interval of values: Min, Min+Step, ..., Max.
// A zero Step means the range is continuous.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}
