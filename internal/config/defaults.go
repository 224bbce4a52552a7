package config

import (
	_ "embed"
)

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/cube.yaml and is used if the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	playArea := Area{MinX: 15, MinY: 10, MaxX: 790, MaxY: 590}

	return GameConfig{
		Cube: CubeConfig{
			StartY:     100,
			StartSize:  10,
			MinSize:    10,
			MaxSize:    300,
			StartPoint: 300,
			Thrust:     0.1,
			Damping:    0.90,
			Margin: Margin{
				Left:   15,
				Right:  10,
				Top:    10,
				Bottom: 10,
			},
			PointBarWidth: 8,
		},
		Capture: CaptureConfig{
			GrowFactor:   1.1,
			ShrinkFactor: 0.8,
		},
		Life: ActorConfig{
			Size:         10,
			PlayArea:     playArea,
			RespawnArea:  Area{MinX: 20, MinY: 20, MaxX: 570, MaxY: 570},
			ResetArea:    Area{MinX: 20, MinY: 20, MaxX: 780, MaxY: 580},
			RespawnSpeed: Range{Min: -2.0, Max: 2.0, Step: 0.01},
			ResetSpeed:   Range{Min: 0.5, Max: 5.0, Step: 0.1},
		},
		Enemy: EnemyConfig{
			ActorConfig: ActorConfig{
				Size:        20,
				PlayArea:    playArea,
				RespawnArea: Area{MinX: 30, MinY: 30, MaxX: 570, MaxY: 570},
				ResetArea:   Area{MinX: 30, MinY: 30, MaxX: 770, MaxY: 570},
			},
			Count:        4,
			SessionSpeed: Range{Min: -0.5, Max: 0.5, Step: 0.01},
		},
		HUD: HUDConfig{
			TimeFormat:   "Time %d seconds",
			TimeSize:     25,
			BannerText:   "YOU WIN!",
			BannerSize:   50,
			BannerMargin: 60,
		},
		Terminal: TerminalConfig{
			KeyReleaseTicks: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCubeYAML
}
