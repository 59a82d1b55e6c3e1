package game

import (
	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

// Cloud is a hazard that costs no life: touching one sends the avatar back to start.
type Cloud struct {
	Rect core.Rect
}

// Land holds the cloud layer. Clouds either stay put or drift horizontally
// and wrap around the screen once fully out of view.
type Land struct {
	clouds  []Cloud
	initial []Cloud
	drift   int
	screenW int
}

// NewLand creates the cloud layer from the configured positions.
func NewLand(cfg config.Config) *Land {
	initial := make([]Cloud, 0, len(cfg.Clouds.Positions))
	for _, p := range cfg.Clouds.Positions {
		initial = append(initial, Cloud{Rect: core.NewRect(p.X, p.Y, cfg.Clouds.Width, cfg.Clouds.Height)})
	}
	l := &Land{
		initial: initial,
		drift:   cfg.Clouds.Drift,
		screenW: cfg.Screen.Width,
	}
	l.Reset()
	return l
}

// Reset puts every cloud back at its configured position.
func (l *Land) Reset() {
	l.clouds = append(l.clouds[:0], l.initial...)
}

// Update drifts the clouds by one tick.
func (l *Land) Update() {
	if l.drift == 0 {
		return
	}
	for i := range l.clouds {
		r := &l.clouds[i].Rect
		r.X += l.drift
		switch {
		case l.drift > 0 && r.X >= l.screenW:
			r.X -= l.screenW + r.W
		case l.drift < 0 && r.Right() <= 0:
			r.X += l.screenW + r.W
		}
	}
}

// Clouds returns the current clouds. The slice is owned by the land.
func (l *Land) Clouds() []Cloud {
	return l.clouds
}
