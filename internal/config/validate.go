package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is wrapped by every validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Validate checks the configuration and reports every problem it finds.
// Values are never clamped here: a bad value is a programming or user error.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: %w: "+format, append([]any{ErrInvalidConfiguration}, args...)...))
	}
	positive := func(name string, v int) {
		if v <= 0 {
			bad("%s must be positive, got %d", name, v)
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("tick_rate", c.TickRate)
	positive("lives.max", c.Lives.Max)
	positive("obstacles.speed", c.Obstacles.Speed)
	positive("obstacles.gap", c.Obstacles.Gap)
	positive("obstacles.width", c.Obstacles.Width)
	positive("bonus.cooldown_ticks", c.Bonus.CooldownTicks)
	positive("bonus.width", c.Bonus.Width)
	positive("bonus.height", c.Bonus.Height)
	positive("avatar.step", c.Avatar.Step)
	positive("clouds.width", c.Clouds.Width)
	positive("clouds.height", c.Clouds.Height)

	if c.Lives.Cap < 0 {
		bad("lives.cap must not be negative, got %d", c.Lives.Cap)
	} else if c.Lives.Cap > 0 && c.Lives.Cap < c.Lives.Max {
		bad("lives.cap (%d) must be 0 or at least lives.max (%d)", c.Lives.Cap, c.Lives.Max)
	}

	if c.Scoring.PerTick < 0 {
		bad("scoring.per_tick must not be negative, got %d", c.Scoring.PerTick)
	}
	if c.Scoring.PerBonus < 0 {
		bad("scoring.per_bonus must not be negative, got %d", c.Scoring.PerBonus)
	}

	if c.Screen.Height > 0 && c.Obstacles.Gap >= c.Screen.Height {
		bad("obstacles.gap (%d) must be smaller than screen.height (%d)", c.Obstacles.Gap, c.Screen.Height)
	}
	if c.Obstacles.MinTop < 0 {
		bad("obstacles.min_top must not be negative, got %d", c.Obstacles.MinTop)
	}
	if c.Obstacles.MinTop > c.Obstacles.MaxTop {
		bad("obstacles.min_top (%d) must not exceed obstacles.max_top (%d)", c.Obstacles.MinTop, c.Obstacles.MaxTop)
	}

	if c.Screen.Width > 0 && c.Bonus.Width > c.Screen.Width {
		bad("bonus.width (%d) must fit in screen.width (%d)", c.Bonus.Width, c.Screen.Width)
	}
	if c.Screen.Height > 0 && c.Bonus.Height > c.Screen.Height {
		bad("bonus.height (%d) must fit in screen.height (%d)", c.Bonus.Height, c.Screen.Height)
	}

	if c.Avatar.StartX < 0 || c.Avatar.StartX >= c.Screen.Width {
		bad("avatar.start_x (%d) must lie inside [0, %d)", c.Avatar.StartX, c.Screen.Width)
	}
	if c.Avatar.StartY <= 0 || c.Avatar.StartY >= c.Screen.Height {
		bad("avatar.start_y (%d) must lie inside (0, %d)", c.Avatar.StartY, c.Screen.Height)
	}

	return errors.Join(errs...)
}
