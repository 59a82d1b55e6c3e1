package game

import (
	"math/rand"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

// Bonus is a collectible that drifts left at obstacle speed.
type Bonus struct {
	Rect core.Rect
}

// BonusSpawner owns the live bonuses and emits a new one every cooldown ticks.
type BonusSpawner struct {
	bonuses   []Bonus
	rng       *rand.Rand
	cfg       config.BonusConfig
	speed     int
	screenW   int
	screenH   int
	countdown int // Ticks until the next spawn, 0 = spawn now
	spawned   int // Bonuses created since the last reset
}

// NewBonusSpawner creates an empty spawner whose first bonus appears on the first update.
func NewBonusSpawner(cfg config.Config, rng *rand.Rand) *BonusSpawner {
	return &BonusSpawner{
		rng:     rng,
		cfg:     cfg.Bonus,
		speed:   cfg.Obstacles.Speed,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
	}
}

// Reset drops every bonus and rearms the countdown.
func (s *BonusSpawner) Reset() {
	s.bonuses = s.bonuses[:0]
	s.countdown = 0
	s.spawned = 0
}

// Update moves bonuses left, drops the ones that left the screen and spawns
// a new bonus when the countdown runs out.
func (s *BonusSpawner) Update() {
	kept := s.bonuses[:0]
	for _, b := range s.bonuses {
		b.Rect.X -= s.speed
		if b.Rect.Right() < 0 {
			continue
		}
		kept = append(kept, b)
	}
	s.bonuses = kept

	if s.countdown > 0 {
		s.countdown--
	}
	if s.countdown == 0 {
		s.spawn()
		s.countdown = s.cfg.CooldownTicks
	}
}

// spawn places a bonus at a random position fully inside the screen.
func (s *BonusSpawner) spawn() {
	x := s.rng.Intn(s.screenW - s.cfg.Width + 1)
	y := s.rng.Intn(s.screenH - s.cfg.Height + 1)
	s.bonuses = append(s.bonuses, Bonus{Rect: core.NewRect(x, y, s.cfg.Width, s.cfg.Height)})
	s.spawned++
}

// Collect removes every bonus touched by one of the hitboxes and returns how many were taken.
func (s *BonusSpawner) Collect(hitboxes [3]core.Rect) int {
	taken := 0
	kept := s.bonuses[:0]
	for _, b := range s.bonuses {
		if touchesAny(b.Rect, hitboxes) {
			taken++
			continue
		}
		kept = append(kept, b)
	}
	s.bonuses = kept
	return taken
}

// Bonuses returns the live bonuses. The slice is owned by the spawner.
func (s *BonusSpawner) Bonuses() []Bonus {
	return s.bonuses
}

// Spawned returns how many bonuses were created since the last reset.
func (s *BonusSpawner) Spawned() int {
	return s.spawned
}

// Countdown returns the ticks left before the next spawn.
func (s *BonusSpawner) Countdown() int {
	return s.countdown
}

func touchesAny(r core.Rect, hitboxes [3]core.Rect) bool {
	for _, hb := range hitboxes {
		if r.Intersects(hb) {
			return true
		}
	}
	return false
}
