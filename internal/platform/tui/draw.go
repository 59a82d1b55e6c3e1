package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyland/internal/core"
	"github.com/vovakirdan/skyland/internal/game"
)

// Glyphs used for world entities.
const (
	cloudChar    = '░'
	obstacleChar = '█'
	bonusChar    = '◆'
	headChar     = '●'
	torsoChar    = '█'
	legsChar     = '▌'
)

// Viewport maps world coordinates onto a grid of terminal cells.
type Viewport struct {
	cols   int
	rows   int
	scaleX float64 // cols / world width
	scaleY float64 // rows / world height
}

// NewViewport creates a viewport stretching a worldW x worldH world over cols x rows cells.
func NewViewport(cols, rows, worldW, worldH int) Viewport {
	v := Viewport{cols: cols, rows: rows}
	if worldW > 0 {
		v.scaleX = float64(cols) / float64(worldW)
	}
	if worldH > 0 {
		v.scaleY = float64(rows) / float64(worldH)
	}
	return v
}

// Rect converts a world rectangle to the cells it covers.
// A non-empty world rectangle always covers at least one cell so small
// entities never disappear on a small terminal.
func (v Viewport) Rect(r core.Rect) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	x0 := int(math.Floor(float64(r.X) * v.scaleX))
	y0 := int(math.Floor(float64(r.Y) * v.scaleY))
	x1 := int(math.Ceil(float64(r.Right()) * v.scaleX))
	y1 := int(math.Ceil(float64(r.Bottom()) * v.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Draw renders a snapshot of a worldW x worldH world onto dst.
// Back to front: clouds, obstacles, bonuses, avatar, HUD, overlays.
func Draw(dst *core.Screen, snap game.Snapshot, worldW, worldH int) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := NewViewport(dst.Width(), dst.Height(), worldW, worldH)

	for _, c := range snap.Clouds {
		dst.FillRect(vp.Rect(c), cloudChar, core.ColorWhite)
	}

	for _, p := range snap.Obstacles {
		dst.FillRect(vp.Rect(p.Top), obstacleChar, core.ColorGreen)
		dst.FillRect(vp.Rect(p.Bottom), obstacleChar, core.ColorGreen)
	}

	for _, b := range snap.Bonuses {
		dst.FillRect(vp.Rect(b), bonusChar, core.ColorBrightYellow)
	}

	// Torso first: the head and legs stay visible when cells overlap
	dst.FillRect(vp.Rect(snap.Avatar[game.HitboxTorso]), torsoChar, core.ColorRed)
	dst.FillRect(vp.Rect(snap.Avatar[game.HitboxHead]), headChar, core.ColorSandy)
	dst.FillRect(vp.Rect(snap.Avatar[game.HitboxLegs]), legsChar, core.ColorBlue)

	drawHUD(dst, snap)

	switch snap.State {
	case game.StateIdle:
		drawMessageBox(dst, core.ColorBrightCyan,
			"S K Y L A N D",
			"Dodge the columns, avoid the clouds, grab the diamonds",
			"Press R or Enter to start")
	case game.StatePaused:
		drawMessageBox(dst, core.ColorBrightYellow,
			"PAUSED",
			"Press Space to resume")
	case game.StateGameOver:
		drawMessageBox(dst, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  High score: %d", snap.Score, snap.HighScore),
			fmt.Sprintf("Bonuses: %d  Ticks: %d", snap.BonusesCollected, snap.Tick),
			"R to restart  H for history")
	}
}

// drawHUD writes score, lives and high score on the top row.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Lives: %d ", snap.Score, snap.Lives)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" High: %d ", snap.HighScore)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightYellow)
}

// drawMessageBox draws a framed box with centered lines in the middle of the screen.
func drawMessageBox(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := core.Min(width+4, dst.Width())
	boxH := core.Min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
