package config

import (
	_ "embed"
)

//go:embed defaults/skyland.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/skyland.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  600,
			Height: 400,
		},
		TickRate: 30,
		Seed:     0,
		Lives: LivesConfig{
			Max: 3,
			Cap: 0,
		},
		Scoring: ScoringConfig{
			PerTick:  1,
			PerBonus: 10,
		},
		Obstacles: ObstacleConfig{
			Speed:  5,
			Gap:    150,
			Width:  50,
			MinTop: 50,
			MaxTop: 250,
		},
		Bonus: BonusConfig{
			CooldownTicks: 50,
			Width:         20,
			Height:        10,
		},
		Avatar: AvatarConfig{
			StartX: 20,
			StartY: 350,
			Step:   10,
		},
		Clouds: CloudConfig{
			Drift:  1,
			Width:  60,
			Height: 30,
			Positions: []Point{
				{X: 50, Y: 50},
				{X: 250, Y: 100},
				{X: 450, Y: 80},
				{X: 150, Y: 200},
				{X: 350, Y: 150},
			},
		},
		Settings: SettingsConfig{
			Difficulty: "easy",
			Sound:      true,
		},
	}
}
