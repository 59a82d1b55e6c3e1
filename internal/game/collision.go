package game

import "github.com/vovakirdan/skyland/internal/core"

// Hits is what the avatar touches at one position.
type Hits struct {
	Boundary bool // Head at or above the top edge, or legs at or below the bottom edge
	Obstacle bool // Any hitbox overlaps a column of any pair
	Cloud    bool // Any hitbox overlaps a cloud
}

// Harmful reports whether the hits cost a life.
func (h Hits) Harmful() bool {
	return h.Boundary || h.Obstacle
}

// Detect checks hitboxes against the screen edges, obstacle pairs and clouds.
// It never mutates anything.
func Detect(hitboxes [3]core.Rect, pairs []ObstaclePair, clouds []Cloud, screenH int) Hits {
	var h Hits

	h.Boundary = hitboxes[HitboxHead].Y <= 0 || hitboxes[HitboxLegs].Bottom() >= screenH

	for _, p := range pairs {
		for _, hb := range hitboxes {
			if p.Intersects(hb) {
				h.Obstacle = true
				break
			}
		}
		if h.Obstacle {
			break
		}
	}

	for _, c := range clouds {
		if touchesAny(c.Rect, hitboxes) {
			h.Cloud = true
			break
		}
	}

	return h
}

// Tally is the score and life budget the resolver works on.
type Tally struct {
	Score int
	Lives int
}

// Outcome records the effects applied during one resolution.
type Outcome struct {
	Boundary  bool // Boundary collision this tick
	Obstacle  bool // Obstacle collision this tick
	LifeLost  bool // One life was taken
	Exhausted bool // Lives reached zero, the run is over
	SoftReset bool // A cloud sent the avatar back without costing a life
	Collected int  // Bonuses picked up
}

// Resolver turns overlaps into effects on the avatar, the bonuses and the tally.
type Resolver struct {
	ScreenH  int
	PerBonus int
	LivesCap int // 0 = uncapped
}

// Resolve runs the collision checks in a fixed order:
// boundary and obstacle (life loss, then reset or exhaustion), cloud (soft reset),
// then bonus pickup. Each later check sees the avatar where the earlier one left it.
// Once lives are exhausted nothing else is evaluated.
func (r Resolver) Resolve(av *Avatar, pairs []ObstaclePair, clouds []Cloud, bonuses *BonusSpawner, tally *Tally) Outcome {
	var out Outcome

	hits := Detect(av.Hitboxes(), pairs, nil, r.ScreenH)
	out.Boundary = hits.Boundary
	out.Obstacle = hits.Obstacle

	if hits.Harmful() {
		tally.Lives--
		out.LifeLost = true
		if tally.Lives <= 0 {
			tally.Lives = 0
			out.Exhausted = true
			return out
		}
		av.Reset()
	}

	if Detect(av.Hitboxes(), nil, clouds, r.ScreenH).Cloud {
		av.Reset()
		out.SoftReset = true
	}

	out.Collected = bonuses.Collect(av.Hitboxes())
	if out.Collected > 0 {
		tally.Score += out.Collected * r.PerBonus
		tally.Lives += out.Collected
		if r.LivesCap > 0 && tally.Lives > r.LivesCap {
			tally.Lives = r.LivesCap
		}
	}

	return out
}
