package game

import (
	"math/rand"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

// ObstaclePair is a top and a bottom column separated by a fixed vertical gap.
// For every pair: TopHeight() + gap + BottomHeight() == screen height.
type ObstaclePair struct {
	Top    core.Rect
	Bottom core.Rect
}

// newObstaclePair builds a pair at x whose top column is top units tall.
func newObstaclePair(x, width, screenH, gap, top int) ObstaclePair {
	bottom := screenH - gap - top
	return ObstaclePair{
		Top:    core.NewRect(x, 0, width, top),
		Bottom: core.NewRect(x, screenH-bottom, width, bottom),
	}
}

// TopHeight returns the height of the top column.
func (p ObstaclePair) TopHeight() int {
	return p.Top.H
}

// BottomHeight returns the height of the bottom column.
func (p ObstaclePair) BottomHeight() int {
	return p.Bottom.H
}

// GapHeight returns the free space between the two columns.
func (p ObstaclePair) GapHeight() int {
	return p.Bottom.Y - p.Top.Bottom()
}

// Right returns the x-coordinate of the pair's right edge.
func (p ObstaclePair) Right() int {
	return p.Top.Right()
}

// Intersects reports whether r overlaps either column.
func (p ObstaclePair) Intersects(r core.Rect) bool {
	return r.Intersects(p.Top) || r.Intersects(p.Bottom)
}

func (p *ObstaclePair) shift(dx int) {
	p.Top.X += dx
	p.Bottom.X += dx
}

// ObstacleSpawner owns the obstacle pairs and recycles them one at a time:
// a pair that leaves the screen on the left is replaced by exactly one new pair
// at the right edge.
type ObstacleSpawner struct {
	pairs   []ObstaclePair
	rng     *rand.Rand
	cfg     config.ObstacleConfig
	screenW int
	screenH int
	spawned int // Pairs created since the last reset
}

// NewObstacleSpawner creates an empty spawner. Call Reset to seed the first pair.
func NewObstacleSpawner(cfg config.Config, rng *rand.Rand) *ObstacleSpawner {
	return &ObstacleSpawner{
		pairs:   make([]ObstaclePair, 0, 2),
		rng:     rng,
		cfg:     cfg.Obstacles,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
	}
}

// Reset removes all pairs and seeds a fresh one at the right edge.
func (s *ObstacleSpawner) Reset() {
	s.pairs = s.pairs[:0]
	s.spawned = 0
	s.spawn()
}

// Clear removes all pairs without seeding a new one.
func (s *ObstacleSpawner) Clear() {
	s.pairs = s.pairs[:0]
}

// Update moves every pair left and replaces the ones that left the screen.
// Returns the number of pairs that were recycled this tick.
func (s *ObstacleSpawner) Update() int {
	for i := range s.pairs {
		s.pairs[i].shift(-s.cfg.Speed)
	}

	recycled := 0
	kept := s.pairs[:0]
	for _, p := range s.pairs {
		if p.Right() < 0 {
			recycled++
			continue
		}
		kept = append(kept, p)
	}
	s.pairs = kept

	for i := 0; i < recycled; i++ {
		s.spawn()
	}
	if len(s.pairs) == 0 {
		s.spawn()
	}
	return recycled
}

// spawn appends a new pair at the right edge of the screen.
func (s *ObstacleSpawner) spawn() {
	p := newObstaclePair(s.screenW, s.cfg.Width, s.screenH, s.cfg.Gap, s.sampleTop())
	s.pairs = append(s.pairs, p)
	s.spawned++
}

// sampleTop draws a top height uniformly from [MinTop, MaxTop] and clamps it
// so the bottom column never gets a negative height.
func (s *ObstacleSpawner) sampleTop() int {
	top := s.cfg.MinTop
	if span := s.cfg.MaxTop - s.cfg.MinTop; span > 0 {
		top += s.rng.Intn(span + 1)
	}
	return core.Clamp(top, 0, s.screenH-s.cfg.Gap)
}

// Pairs returns the current pairs. The slice is owned by the spawner.
func (s *ObstacleSpawner) Pairs() []ObstaclePair {
	return s.pairs
}

// Spawned returns how many pairs were created since the last reset.
func (s *ObstacleSpawner) Spawned() int {
	return s.spawned
}
