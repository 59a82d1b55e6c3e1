package game

import "github.com/vovakirdan/skyland/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it never affects the session.
type Snapshot struct {
	State     State
	Tick      uint64
	Score     int
	Lives     int
	HighScore int
	Paused    bool
	GameOver  bool

	Avatar    [3]core.Rect
	Obstacles []ObstaclePair
	Bonuses   []core.Rect
	Clouds    []core.Rect

	BonusesCollected int
	LivesLost        int
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:            s.state,
		Tick:             s.tick,
		Score:            s.tally.Score,
		Lives:            s.tally.Lives,
		HighScore:        s.highScore,
		Paused:           s.state == StatePaused,
		GameOver:         s.state == StateGameOver,
		Avatar:           s.avatar.Hitboxes(),
		Obstacles:        append([]ObstaclePair(nil), s.obstacles.Pairs()...),
		BonusesCollected: s.bonusesCollected,
		LivesLost:        s.livesLost,
	}

	bonuses := s.bonuses.Bonuses()
	snap.Bonuses = make([]core.Rect, len(bonuses))
	for i, b := range bonuses {
		snap.Bonuses[i] = b.Rect
	}

	clouds := s.land.Clouds()
	snap.Clouds = make([]core.Rect, len(clouds))
	for i, c := range clouds {
		snap.Clouds[i] = c.Rect
	}

	return snap
}
