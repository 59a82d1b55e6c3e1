package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

func TestDetect(t *testing.T) {
	const screenH = 400
	farPair := newObstaclePair(400, 50, screenH, 150, 100)

	tests := []struct {
		name   string
		y      int // avatar logical y, x is fixed at 20
		pairs  []ObstaclePair
		clouds []Cloud
		want   Hits
	}{
		{"clear", 200, []ObstaclePair{farPair}, nil, Hits{}},
		{"head at top edge", 0, nil, nil, Hits{Boundary: true}},
		{"head above top edge", -1, nil, nil, Hits{Boundary: true}},
		{"head one below top edge", 1, nil, nil, Hits{}},
		{"legs at bottom edge", 360, nil, nil, Hits{Boundary: true}},
		{"legs one above bottom edge", 359, nil, nil, Hits{}},
		{"top column", 50, []ObstaclePair{newObstaclePair(0, 50, screenH, 150, 100)}, nil, Hits{Obstacle: true}},
		{"bottom column", 250, []ObstaclePair{newObstaclePair(0, 50, screenH, 150, 100)}, nil, Hits{Obstacle: true}},
		{"inside the gap", 110, []ObstaclePair{newObstaclePair(0, 50, screenH, 150, 100)}, nil, Hits{}},
		{"cloud", 200, nil, []Cloud{{Rect: core.NewRect(10, 190, 60, 30)}}, Hits{Cloud: true}},
		{"cloud touching only", 200, nil, []Cloud{{Rect: core.NewRect(30, 190, 60, 30)}}, Hits{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAvatar(20, tc.y, 10)
			got := Detect(a.Hitboxes(), tc.pairs, tc.clouds, screenH)
			if got != tc.want {
				t.Errorf("Detect() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestDetectTorsoOverhang(t *testing.T) {
	// Only the torso sticks out to the left of the logical x
	a := NewAvatar(20, 200, 10)
	pair := newObstaclePair(-40, 56, 400, 150, 250)

	hits := Detect(a.Hitboxes(), []ObstaclePair{pair}, nil, 400)
	if !hits.Obstacle {
		t.Errorf("Detect() = %+v, expected the torso to hit the top column", hits)
	}
}

func newResolveFixture(cfg config.Config) (*Avatar, *BonusSpawner, Resolver) {
	av := NewAvatar(cfg.Avatar.StartX, cfg.Avatar.StartY, cfg.Avatar.Step)
	bonuses := NewBonusSpawner(cfg, rand.New(rand.NewSource(1)))
	r := Resolver{ScreenH: cfg.Screen.Height, PerBonus: cfg.Scoring.PerBonus, LivesCap: cfg.Lives.Cap}
	return av, bonuses, r
}

func TestResolveBoundaryCostsLifeAndResets(t *testing.T) {
	cfg := config.Default()
	av, bonuses, r := newResolveFixture(cfg)
	tally := Tally{Score: 5, Lives: 3}

	av.y = -1
	out := r.Resolve(av, nil, nil, bonuses, &tally)

	if !out.Boundary || !out.LifeLost || out.Exhausted {
		t.Errorf("Outcome = %+v, expected a boundary life loss", out)
	}
	if tally.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", tally.Lives)
	}
	if !av.AtStart() {
		t.Errorf("avatar should be back at start")
	}
	if tally.Score != 5 {
		t.Errorf("Score = %d, expected 5 (resolver does not add tick score)", tally.Score)
	}
}

func TestResolveObstacleAndBoundaryCostOneLife(t *testing.T) {
	cfg := config.Default()
	av, bonuses, r := newResolveFixture(cfg)
	tally := Tally{Lives: 3}

	av.y = 0
	pair := newObstaclePair(0, 50, 400, 150, 100)
	out := r.Resolve(av, []ObstaclePair{pair}, nil, bonuses, &tally)

	if !out.Boundary || !out.Obstacle {
		t.Errorf("Outcome = %+v, expected both boundary and obstacle", out)
	}
	if tally.Lives != 2 {
		t.Errorf("Lives = %d, expected exactly one life lost", tally.Lives)
	}
}

func TestResolveExhaustionSkipsRemainingChecks(t *testing.T) {
	cfg := config.Default()
	av, bonuses, r := newResolveFixture(cfg)
	tally := Tally{Score: 40, Lives: 1}

	av.y = -1
	bonuses.bonuses = []Bonus{{Rect: av.Hitboxes()[HitboxTorso]}}
	out := r.Resolve(av, nil, nil, bonuses, &tally)

	if !out.Exhausted {
		t.Fatalf("Outcome = %+v, expected exhaustion", out)
	}
	if tally.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", tally.Lives)
	}
	if out.Collected != 0 || len(bonuses.Bonuses()) != 1 {
		t.Errorf("a finished run must not collect bonuses")
	}
	if av.AtStart() {
		t.Errorf("avatar should stay where the run ended")
	}
}

func TestResolveCloudIsSoftReset(t *testing.T) {
	cfg := config.Default()
	av, bonuses, r := newResolveFixture(cfg)
	tally := Tally{Lives: 3}

	av.Move(DirectionUp)
	cloud := Cloud{Rect: av.Hitboxes()[HitboxHead]}
	out := r.Resolve(av, nil, []Cloud{cloud}, bonuses, &tally)

	if !out.SoftReset || out.LifeLost {
		t.Errorf("Outcome = %+v, expected a soft reset only", out)
	}
	if tally.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", tally.Lives)
	}
	if !av.AtStart() {
		t.Errorf("avatar should be back at start")
	}
}

func TestResolveChecksBonusesAfterReset(t *testing.T) {
	cfg := config.Default()
	av, bonuses, r := newResolveFixture(cfg)
	tally := Tally{Lives: 3}

	startTorso := av.Hitboxes()[HitboxTorso]
	bonuses.bonuses = []Bonus{{Rect: startTorso}}
	av.y = -1

	out := r.Resolve(av, nil, nil, bonuses, &tally)
	if !out.LifeLost || out.Collected != 1 {
		t.Errorf("Outcome = %+v, expected a life loss and then a pickup at the start position", out)
	}
	if tally.Lives != 3 {
		t.Errorf("Lives = %d, expected 3 (lost one, gained one)", tally.Lives)
	}
	if tally.Score != cfg.Scoring.PerBonus {
		t.Errorf("Score = %d, expected %d", tally.Score, cfg.Scoring.PerBonus)
	}
}

func TestResolveBonusLivesCap(t *testing.T) {
	tests := []struct {
		name      string
		cap       int
		lives     int
		bonuses   int
		wantLives int
	}{
		{"uncapped", 0, 3, 2, 5},
		{"below cap", 5, 3, 1, 4},
		{"reaches cap", 5, 4, 3, 5},
		{"already at cap", 3, 3, 1, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Lives.Cap = tc.cap
			av, bonuses, r := newResolveFixture(cfg)
			tally := Tally{Lives: tc.lives}

			head := av.Head()
			for i := 0; i < tc.bonuses; i++ {
				bonuses.bonuses = append(bonuses.bonuses, Bonus{Rect: head.Translate(i, 0)})
			}

			out := r.Resolve(av, nil, nil, bonuses, &tally)
			if out.Collected != tc.bonuses {
				t.Errorf("Collected = %d, expected %d", out.Collected, tc.bonuses)
			}
			if tally.Lives != tc.wantLives {
				t.Errorf("Lives = %d, expected %d", tally.Lives, tc.wantLives)
			}
			if tally.Score != tc.bonuses*cfg.Scoring.PerBonus {
				t.Errorf("Score = %d, expected %d", tally.Score, tc.bonuses*cfg.Scoring.PerBonus)
			}
		})
	}
}
