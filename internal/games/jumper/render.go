package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
	jcore "github.com/vovakirdan/tui-jumper/internal/games/jumper/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	BreakingChar = '▚'
	BrokenChar   = '░'
	SpringChar   = '^'
	PlayerChar   = '█'
	PlayerEyes   = '▀'
	EnemyFill    = '▒'
	HoleChar     = '@'
	HoleFill     = '░'
	BulletChar   = '•'
	WallChar     = '│'
)

// EnemyFace is drawn across the middle row of an enemy.
const EnemyFace = "<@>"

// Viewport maps world coordinates onto the play area of a screen.
// Row 0 is the HUD and the last row is the touch bar.
type Viewport struct {
	Left, Top     int // Play area origin in cells
	Width, Height int // Play area size in cells
	ScaleX        float64
	ScaleY        float64
}

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// NewViewport fits a canvasW×canvasH world into a screenW×screenH terminal,
// keeping the world's proportions and centering it horizontally.
func NewViewport(screenW, screenH int, canvasW, canvasH float64) Viewport {
	h := max(screenH-2, 1)
	scaleY := float64(h) / canvasH
	scaleX := scaleY * cellAspect
	if canvasW*scaleX > float64(screenW) {
		scaleX = float64(screenW) / canvasW
	}
	w := max(int(canvasW*scaleX), 1)
	return Viewport{
		Left:   (screenW - w) / 2,
		Top:    1,
		Width:  w,
		Height: h,
		ScaleX: scaleX,
		ScaleY: scaleY,
	}
}

// Project converts a world point to a screen cell.
func (v Viewport) Project(x, y, cameraY float64) (int, int) {
	col := v.Left + int(math.Floor(x*v.ScaleX))
	row := v.Top + int(math.Floor((y-cameraY)*v.ScaleY))
	return col, row
}

// ProjectRect converts a world box to a cell rectangle at least one cell in size.
func (v Viewport) ProjectRect(r core.RectF, cameraY float64) core.Rect {
	x0, y0 := v.Project(r.X, r.Y, cameraY)
	x1, y1 := v.Project(r.Right(), r.Bottom(), cameraY)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Contains reports whether a cell lies inside the play area.
func (v Viewport) Contains(x, y int) bool {
	return v.Bounds().Contains(x, y)
}

// Bounds returns the play area as a rectangle.
func (v Viewport) Bounds() core.Rect {
	return core.NewRect(v.Left, v.Top, v.Width, v.Height)
}

// set writes a cell only if it is inside the play area.
func (v Viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.Contains(x, y) {
		dst.SetColor(x, y, r, c)
	}
}

func (v Viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			v.set(dst, x, y, ch, c)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	v := NewViewport(dst.Width(), dst.Height(), g.tuning.CanvasW, g.tuning.CanvasH)
	w := g.world
	cam := w.CameraY()

	drawWalls(dst, v)
	for _, p := range w.Platforms() {
		drawPlatform(dst, v, p, cam)
	}
	for _, o := range w.Obstacles() {
		drawObstacle(dst, v, o, cam)
	}
	for _, e := range w.Enemies() {
		drawEnemy(dst, v, e, cam)
	}
	drawPlayer(dst, v, w.Player(), cam)
	for _, b := range w.Bullets() {
		x, y := v.Project(b.X, b.Y, cam)
		v.set(dst, x, y, BulletChar, core.ColorBrightRed)
	}

	g.drawHUD(dst)
	switch w.Phase() {
	case jcore.PhasePaused:
		drawBanner(dst, v, core.ColorBrightYellow, "PAUSED", "P to resume")
	case jcore.PhaseOver:
		drawBanner(dst, v, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score %d", w.Score()), "R restart  Q quit")
	}
	core.LayoutTouchBar(dst.Width(), dst.Height()).Draw(dst, g.held)
}

func drawWalls(dst *core.Screen, v Viewport) {
	for y := v.Top; y < v.Top+v.Height; y++ {
		if v.Left > 0 {
			dst.SetColor(v.Left-1, y, WallChar, core.ColorDarkGray)
		}
		dst.SetColor(v.Left+v.Width, y, WallChar, core.ColorDarkGray)
	}
}

func drawPlatform(dst *core.Screen, v Viewport, p jcore.Platform, cam float64) {
	r := v.ProjectRect(p.Rect(), cam)
	switch p.Kind {
	case jcore.PlatformSpring:
		v.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), PlatformChar, core.ColorGreen)
		v.set(dst, r.X+r.W/2, r.Y-1, SpringChar, core.ColorBrightYellow)
	case jcore.PlatformBreaking:
		if p.Broken {
			v.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), BrokenChar, core.ColorGray)
		} else {
			v.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), BreakingChar, core.ColorBrown)
		}
	default:
		v.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), PlatformChar, core.ColorGreen)
	}
}

func drawPlayer(dst *core.Screen, v Viewport, p jcore.Player, cam float64) {
	r := v.ProjectRect(p.Rect(), cam)
	v.fill(dst, r, PlayerChar, core.ColorYellow)
	if r.W >= 3 {
		v.set(dst, r.X+1, r.Y, PlayerEyes, core.ColorDefault)
		v.set(dst, r.Right()-2, r.Y, PlayerEyes, core.ColorDefault)
	}
}

func drawEnemy(dst *core.Screen, v Viewport, e jcore.Enemy, cam float64) {
	r := v.ProjectRect(e.Rect(), cam)
	v.fill(dst, r, EnemyFill, core.ColorBlue)
	mid := r.Y + r.H/2
	x := r.X + (r.W-len(EnemyFace))/2
	for i, ch := range EnemyFace {
		v.set(dst, x+i, mid, ch, core.ColorBrightBlue)
	}
}

func drawObstacle(dst *core.Screen, v Viewport, o jcore.Obstacle, cam float64) {
	r := v.ProjectRect(o.Rect(), cam)
	v.fill(dst, r, HoleFill, core.ColorDarkGray)
	v.set(dst, r.X+r.W/2, r.Y+r.H/2, HoleChar, core.ColorGray)
}

// drawHUD writes score, stage and hints on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	left := fmt.Sprintf(" Score: %d  Stage %d: %s", w.Score(), w.Stage(), w.StageLabel())
	dst.DrawTextColor(0, 0, left, core.ColorBrightGreen)

	hint := "←/→ move  SPACE shoot  P pause  Q quit "
	if x := dst.Width() - len([]rune(hint)); x > len([]rune(left)) {
		dst.DrawTextColor(x, 0, hint, core.ColorGray)
	}
}

// drawBanner draws a boxed message centered in the play area.
func drawBanner(dst *core.Screen, v Viewport, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = v.Left + (v.Width-box.W)/2
	box.Y = v.Top + (v.Height-box.H)/2

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, c)
	}
}
