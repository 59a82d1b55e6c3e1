package game

import "github.com/vovakirdan/skyland/internal/core"

// Direction is a vertical avatar move.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// Hitbox indices into Avatar.Hitboxes.
const (
	HitboxHead = iota
	HitboxTorso
	HitboxLegs
	hitboxCount
)

// Hitbox layout relative to the avatar's logical position.
// The torso is wider than it looks: it sticks out 5 units to the left.
var hitboxLayout = [hitboxCount]core.Rect{
	HitboxHead:  core.NewRect(0, 0, 10, 10),
	HitboxTorso: core.NewRect(-5, 10, 10, 20),
	HitboxLegs:  core.NewRect(0, 30, 10, 10),
}

// Avatar is the player-controlled figure: head, torso and legs moving as one
// rigid cluster. Only the logical position changes; the offsets never do.
type Avatar struct {
	x, y   int // Logical position (top-left of the head)
	startX int
	startY int
	step   int // Vertical distance of one move
}

// NewAvatar creates an avatar at its start position.
func NewAvatar(startX, startY, step int) *Avatar {
	a := &Avatar{
		startX: startX,
		startY: startY,
		step:   step,
	}
	a.Reset()
	return a
}

// Move shifts the whole cluster one step up or down.
// Other directions are ignored. The avatar is never clamped to the screen:
// leaving it is a collision, not a wall.
func (a *Avatar) Move(dir Direction) {
	switch dir {
	case DirectionUp:
		a.y -= a.step
	case DirectionDown:
		a.y += a.step
	}
}

// Reset puts the cluster back at its start position.
func (a *Avatar) Reset() {
	a.x = a.startX
	a.y = a.startY
}

// Position returns the logical position.
func (a *Avatar) Position() (int, int) {
	return a.x, a.y
}

// AtStart reports whether the avatar is at its start position.
func (a *Avatar) AtStart() bool {
	return a.x == a.startX && a.y == a.startY
}

// Hitboxes returns head, torso and legs in world coordinates.
func (a *Avatar) Hitboxes() [3]core.Rect {
	var boxes [3]core.Rect
	for i, r := range hitboxLayout {
		boxes[i] = r.Translate(a.x, a.y)
	}
	return boxes
}

// Head returns the head hitbox.
func (a *Avatar) Head() core.Rect {
	return hitboxLayout[HitboxHead].Translate(a.x, a.y)
}

// Legs returns the legs hitbox.
func (a *Avatar) Legs() core.Rect {
	return hitboxLayout[HitboxLegs].Translate(a.x, a.y)
}

// Bounds returns the smallest rectangle containing every hitbox.
func (a *Avatar) Bounds() core.Rect {
	boxes := a.Hitboxes()
	minX, minY := boxes[0].X, boxes[0].Y
	maxX, maxY := boxes[0].Right(), boxes[0].Bottom()
	for _, r := range boxes[1:] {
		minX = core.Min(minX, r.X)
		minY = core.Min(minY, r.Y)
		maxX = core.Max(maxX, r.Right())
		maxY = core.Max(maxY, r.Bottom())
	}
	return core.NewRect(minX, minY, maxX-minX, maxY-minY)
}
