package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

func TestAvatarHitboxLayout(t *testing.T) {
	a := NewAvatar(20, 350, 10)
	boxes := a.Hitboxes()

	expected := [3]core.Rect{
		core.NewRect(20, 350, 10, 10),
		core.NewRect(15, 360, 10, 20),
		core.NewRect(20, 380, 10, 10),
	}
	if boxes != expected {
		t.Errorf("Hitboxes() = %v, expected %v", boxes, expected)
	}
	if a.Head() != expected[HitboxHead] {
		t.Errorf("Head() = %v, expected %v", a.Head(), expected[HitboxHead])
	}
	if a.Legs() != expected[HitboxLegs] {
		t.Errorf("Legs() = %v, expected %v", a.Legs(), expected[HitboxLegs])
	}

	bounds := core.NewRect(15, 350, 15, 40)
	if a.Bounds() != bounds {
		t.Errorf("Bounds() = %v, expected %v", a.Bounds(), bounds)
	}
}

func TestAvatarMove(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		wantY int
	}{
		{"up", DirectionUp, 340},
		{"down", DirectionDown, 360},
		{"none", DirectionNone, 350},
		{"unknown", Direction(42), 350},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAvatar(20, 350, 10)
			before := a.Hitboxes()
			a.Move(tc.dir)

			x, y := a.Position()
			if x != 20 || y != tc.wantY {
				t.Errorf("Position() = (%d,%d), expected (20,%d)", x, y, tc.wantY)
			}

			// The cluster moves rigidly
			after := a.Hitboxes()
			dy := tc.wantY - 350
			for i := range before {
				if after[i] != before[i].Translate(0, dy) {
					t.Errorf("hitbox %d = %v, expected %v", i, after[i], before[i].Translate(0, dy))
				}
			}
		})
	}
}

func TestAvatarMoveIsNotClamped(t *testing.T) {
	a := NewAvatar(20, 350, 10)
	for i := 0; i < 40; i++ {
		a.Move(DirectionUp)
	}
	if a.Head().Y != -50 {
		t.Errorf("Head().Y = %d, expected -50", a.Head().Y)
	}
}

func TestAvatarReset(t *testing.T) {
	a := NewAvatar(20, 350, 10)
	a.Move(DirectionUp)
	a.Move(DirectionUp)
	if a.AtStart() {
		t.Fatal("avatar should have left the start position")
	}

	a.Reset()
	if !a.AtStart() {
		t.Errorf("AtStart() = false after Reset, expected true")
	}
}

func spawnerConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 7
	return cfg
}

func TestObstacleGapInvariant(t *testing.T) {
	tests := []struct {
		name   string
		minTop int
		maxTop int
	}{
		{"default range", 50, 250},
		{"fixed top", 100, 100},
		{"range needs clamping", 200, 390},
		{"zero top allowed", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := spawnerConfig()
			cfg.Obstacles.MinTop = tc.minTop
			cfg.Obstacles.MaxTop = tc.maxTop
			cfg.Obstacles.Speed = 50

			s := NewObstacleSpawner(cfg, rand.New(rand.NewSource(cfg.Seed)))
			s.Reset()

			seen := 0
			for i := 0; i < 500; i++ {
				for _, p := range s.Pairs() {
					sum := p.TopHeight() + cfg.Obstacles.Gap + p.BottomHeight()
					if sum != cfg.Screen.Height {
						t.Fatalf("top+gap+bottom = %d, expected %d (pair %+v)", sum, cfg.Screen.Height, p)
					}
					if p.BottomHeight() < 0 || p.TopHeight() < 0 {
						t.Fatalf("negative column in pair %+v", p)
					}
					if p.GapHeight() != cfg.Obstacles.Gap {
						t.Fatalf("GapHeight() = %d, expected %d", p.GapHeight(), cfg.Obstacles.Gap)
					}
					if p.Bottom.Bottom() != cfg.Screen.Height {
						t.Fatalf("bottom column ends at %d, expected %d", p.Bottom.Bottom(), cfg.Screen.Height)
					}
				}
				s.Update()
				seen++
			}
			if s.Spawned() < 2 {
				t.Errorf("Spawned() = %d after %d updates, expected recycling", s.Spawned(), seen)
			}
		})
	}
}

func TestObstacleTopSampledInRange(t *testing.T) {
	cfg := spawnerConfig()
	s := NewObstacleSpawner(cfg, rand.New(rand.NewSource(cfg.Seed)))

	for i := 0; i < 1000; i++ {
		top := s.sampleTop()
		if top < cfg.Obstacles.MinTop || top > cfg.Obstacles.MaxTop {
			t.Fatalf("sampleTop() = %d, expected within [%d, %d]", top, cfg.Obstacles.MinTop, cfg.Obstacles.MaxTop)
		}
	}
}

func TestObstacleRecycledOneAtATime(t *testing.T) {
	cfg := spawnerConfig()
	s := NewObstacleSpawner(cfg, rand.New(rand.NewSource(cfg.Seed)))
	s.Reset()

	if len(s.Pairs()) != 1 {
		t.Fatalf("len(Pairs()) = %d after Reset, expected 1", len(s.Pairs()))
	}
	if s.Pairs()[0].Top.X != cfg.Screen.Width {
		t.Errorf("seeded pair X = %d, expected %d", s.Pairs()[0].Top.X, cfg.Screen.Width)
	}

	// Right edge starts at 650 and moves 5 per tick: it passes 0 on tick 131
	for i := 0; i < 130; i++ {
		if n := s.Update(); n != 0 {
			t.Fatalf("Update() recycled %d pairs on tick %d, expected 0", n, i+1)
		}
	}
	if s.Spawned() != 1 {
		t.Fatalf("Spawned() = %d, expected 1", s.Spawned())
	}
	if right := s.Pairs()[0].Right(); right != 0 {
		t.Fatalf("Right() = %d, expected 0", right)
	}

	if n := s.Update(); n != 1 {
		t.Fatalf("Update() recycled %d pairs, expected 1", n)
	}
	if len(s.Pairs()) != 1 {
		t.Errorf("len(Pairs()) = %d, expected 1", len(s.Pairs()))
	}
	if s.Spawned() != 2 {
		t.Errorf("Spawned() = %d, expected 2", s.Spawned())
	}
	if s.Pairs()[0].Top.X != cfg.Screen.Width {
		t.Errorf("replacement X = %d, expected %d", s.Pairs()[0].Top.X, cfg.Screen.Width)
	}
}

func TestObstacleEmptyCollectionIsReseeded(t *testing.T) {
	cfg := spawnerConfig()
	s := NewObstacleSpawner(cfg, rand.New(rand.NewSource(cfg.Seed)))
	s.Clear()

	s.Update()
	if len(s.Pairs()) != 1 {
		t.Errorf("len(Pairs()) = %d, expected 1", len(s.Pairs()))
	}
}

func TestObstaclePairIntersects(t *testing.T) {
	p := newObstaclePair(100, 50, 400, 150, 100)

	tests := []struct {
		name string
		r    core.Rect
		want bool
	}{
		{"inside top", core.NewRect(110, 50, 10, 10), true},
		{"inside bottom", core.NewRect(110, 300, 10, 10), true},
		{"in the gap", core.NewRect(110, 150, 10, 10), false},
		{"touching top edge", core.NewRect(110, 100, 10, 10), false},
		{"touching left side", core.NewRect(90, 50, 10, 10), false},
		{"one unit into bottom", core.NewRect(110, 241, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Intersects(tc.r); got != tc.want {
				t.Errorf("Intersects(%v) = %v, expected %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestBonusCountdown(t *testing.T) {
	cfg := spawnerConfig()
	s := NewBonusSpawner(cfg, rand.New(rand.NewSource(cfg.Seed)))

	s.Update()
	if s.Spawned() != 1 {
		t.Fatalf("Spawned() = %d after the first update, expected 1", s.Spawned())
	}
	if s.Countdown() != cfg.Bonus.CooldownTicks {
		t.Errorf("Countdown() = %d, expected %d", s.Countdown(), cfg.Bonus.CooldownTicks)
	}

	for i := 0; i < cfg.Bonus.CooldownTicks-1; i++ {
		s.Update()
	}
	if s.Spawned() != 1 {
		t.Fatalf("Spawned() = %d before the cooldown ran out, expected 1", s.Spawned())
	}

	s.Update()
	if s.Spawned() != 2 {
		t.Errorf("Spawned() = %d after the cooldown, expected 2", s.Spawned())
	}
}

func TestBonusSpawnsInBounds(t *testing.T) {
	cfg := spawnerConfig()
	cfg.Bonus.CooldownTicks = 1
	s := NewBonusSpawner(cfg, rand.New(rand.NewSource(cfg.Seed)))
	screen := core.NewRect(0, 0, cfg.Screen.Width, cfg.Screen.Height)

	for i := 0; i < 500; i++ {
		s.Update()
		bonuses := s.Bonuses()
		b := bonuses[len(bonuses)-1].Rect
		if b.X < 0 || b.Y < 0 || b.Right() > screen.Right() || b.Bottom() > screen.Bottom() {
			t.Fatalf("bonus %v spawned outside %v", b, screen)
		}
		if b.W != cfg.Bonus.Width || b.H != cfg.Bonus.Height {
			t.Fatalf("bonus size = %dx%d, expected %dx%d", b.W, b.H, cfg.Bonus.Width, cfg.Bonus.Height)
		}
	}
}

func TestBonusDroppedOffScreen(t *testing.T) {
	cfg := spawnerConfig()
	s := NewBonusSpawner(cfg, rand.New(rand.NewSource(cfg.Seed)))
	s.countdown = 1000
	s.bonuses = []Bonus{{Rect: core.NewRect(-15, 100, 20, 10)}}

	s.Update()
	if len(s.Bonuses()) != 1 {
		t.Fatalf("bonus with right edge 0 should stay, got %d bonuses", len(s.Bonuses()))
	}
	s.Update()
	if len(s.Bonuses()) != 0 {
		t.Errorf("len(Bonuses()) = %d, expected 0 once past the left edge", len(s.Bonuses()))
	}
	if s.Spawned() != 0 {
		t.Errorf("dropped bonus should not be replaced, Spawned() = %d", s.Spawned())
	}
}

func TestBonusCollect(t *testing.T) {
	cfg := spawnerConfig()
	s := NewBonusSpawner(cfg, rand.New(rand.NewSource(cfg.Seed)))
	a := NewAvatar(20, 350, 10)
	torso := a.Hitboxes()[HitboxTorso]

	s.bonuses = []Bonus{
		{Rect: torso},
		{Rect: core.NewRect(300, 100, 20, 10)},
		{Rect: a.Head().Translate(5, 5)},
	}

	if n := s.Collect(a.Hitboxes()); n != 2 {
		t.Errorf("Collect() = %d, expected 2", n)
	}
	if len(s.Bonuses()) != 1 || s.Bonuses()[0].Rect.X != 300 {
		t.Errorf("Bonuses() = %v, expected only the far bonus", s.Bonuses())
	}
}

func TestLandDrift(t *testing.T) {
	tests := []struct {
		name  string
		drift int
		x     int
		wantX int
	}{
		{"static", 0, 100, 100},
		{"drift right", 1, 100, 101},
		{"wrap right edge", 1, 599, -60},
		{"stay while partly visible", 1, 500, 501},
		{"drift left", -2, 100, 98},
		{"wrap left edge", -1, -59, 600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Clouds.Drift = tc.drift
			cfg.Clouds.Positions = []config.Point{{X: tc.x, Y: 50}}

			l := NewLand(cfg)
			l.Update()
			if got := l.Clouds()[0].Rect.X; got != tc.wantX {
				t.Errorf("X = %d, expected %d", got, tc.wantX)
			}
		})
	}
}

func TestLandReset(t *testing.T) {
	cfg := config.Default()
	l := NewLand(cfg)
	if len(l.Clouds()) != len(cfg.Clouds.Positions) {
		t.Fatalf("len(Clouds()) = %d, expected %d", len(l.Clouds()), len(cfg.Clouds.Positions))
	}

	for i := 0; i < 100; i++ {
		l.Update()
	}
	l.Reset()

	for i, c := range l.Clouds() {
		p := cfg.Clouds.Positions[i]
		if c.Rect.X != p.X || c.Rect.Y != p.Y {
			t.Errorf("cloud %d at (%d,%d), expected (%d,%d)", i, c.Rect.X, c.Rect.Y, p.X, p.Y)
		}
	}
}
