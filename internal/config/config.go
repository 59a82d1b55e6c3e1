// Package config provides YAML-based game configuration loading and
// validation for Skyland.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config contains every tunable of the simulation.
// The core treats all of these as injected parameters.
type Config struct {
	Screen    ScreenConfig   `yaml:"screen"`
	TickRate  int            `yaml:"tick_rate"` // Simulation ticks per second
	Seed      int64          `yaml:"seed"`      // RNG seed, 0 = derive from time
	Lives     LivesConfig    `yaml:"lives"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Bonus     BonusConfig    `yaml:"bonus"`
	Avatar    AvatarConfig   `yaml:"avatar"`
	Clouds    CloudConfig    `yaml:"clouds"`
	Settings  SettingsConfig `yaml:"settings"`
}

// ScreenConfig defines the world size in world units.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LivesConfig defines the life budget of a run.
type LivesConfig struct {
	Max int `yaml:"max"` // Lives at the start of a run
	Cap int `yaml:"cap"` // Upper bound for bonus lives, 0 = uncapped
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	PerTick  int `yaml:"per_tick"`
	PerBonus int `yaml:"per_bonus"`
}

// ObstacleConfig defines obstacle pair geometry and motion.
type ObstacleConfig struct {
	Speed  int `yaml:"speed"`   // Leftward movement per tick, shared by bonuses
	Gap    int `yaml:"gap"`     // Vertical gap between top and bottom rect
	Width  int `yaml:"width"`   // Width of both rects
	MinTop int `yaml:"min_top"` // Smallest sampled top height
	MaxTop int `yaml:"max_top"` // Largest sampled top height
}

// BonusConfig defines bonus size and spawn cadence.
type BonusConfig struct {
	CooldownTicks int `yaml:"cooldown_ticks"`
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
}

// AvatarConfig defines the avatar start position and step.
type AvatarConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Step   int `yaml:"step"`
}

// CloudConfig defines the decorative cloud layer.
type CloudConfig struct {
	Drift     int     `yaml:"drift"` // Horizontal movement per tick, 0 = static
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Positions []Point `yaml:"positions"`
}

// Point is a top-left world position.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SettingsConfig is a placeholder for player preferences.
// Nothing in the simulation reads it yet.
type SettingsConfig struct {
	Difficulty string `yaml:"difficulty"`
	Sound      bool   `yaml:"sound"`
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
