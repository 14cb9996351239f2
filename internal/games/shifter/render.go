package shifter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/shape-shifter/internal/core"
)

// Layout: two HUD rows, the boxed play area, one hint row.
const (
	hudRows    = 2
	minScreenW = 40
	minScreenH = 16
)

const controlsHint = "1-2-3: Shape | ARROWS: Move | SPACE: Fire | P: Pause"

// viewport maps world pixels onto the inner cells of the play-area box.
type viewport struct {
	inner  core.Rect
	worldW int
	worldH int
}

func (v viewport) cellX(x int) int { return v.inner.X + core.Scale(x, v.worldW, v.inner.W) }
func (v viewport) cellY(y int) int { return v.inner.Y + core.Scale(y, v.worldH, v.inner.H) }

func (v viewport) cellW(w int) int { return max(1, core.Scale(w, v.worldW, v.inner.W)) }
func (v viewport) cellH(h int) int { return max(1, core.Scale(h, v.worldH, v.inner.H)) }

// fill draws a world-space box clipped to the play area.
func (v viewport) fill(dst *core.Screen, x, y, w, h int, r rune, c core.Color) {
	cx, cy := v.cellX(x), v.cellY(y)
	for dy := range v.cellH(h) {
		for dx := range v.cellW(w) {
			if v.inner.Contains(cx+dx, cy+dy) {
				dst.SetColored(cx+dx, cy+dy, r, c)
			}
		}
	}
}

// Draw renders a snapshot into the screen buffer. It only reads the
// snapshot.
func Draw(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorText)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDim)
		return
	}

	box := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-1)
	dst.DrawBox(box, core.ColorGrid)
	vp := viewport{
		inner:  core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2),
		worldW: snap.Width,
		worldH: snap.Height,
	}

	switch snap.Phase {
	case PhaseStart:
		drawStartScreen(dst, snap)
	case PhaseGameOver:
		drawHUD(dst, snap)
		drawGameOver(dst, snap)
	default:
		drawHUD(dst, snap)
		drawWorld(dst, vp, snap)
		if snap.Transition.Active {
			drawTransition(dst, vp, snap)
		}
		if snap.Paused {
			drawPaused(dst)
		}
	}

	dst.DrawTextCentered(dst.Height()-1, controlsHint, core.ColorDim)
}

// bar renders a fixed-width gauge such as [█████░░░░░].
func bar(width int, frac float64) string {
	frac = core.ClampF(frac, 0, 1)
	filled := int(frac * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func drawHUD(dst *core.Screen, snap *Snapshot) {
	p := snap.Player

	left := fmt.Sprintf("LEVEL: %d  SCORE: %d  LIVES: ", snap.Level.Number, snap.Score)
	dst.DrawTextColored(1, 0, left, core.ColorText)
	hearts := strings.Repeat("♥", p.Lives)
	dst.DrawTextColored(1+len([]rune(left)), 0, hearts, core.ColorHealthRed)

	shape := "SHAPE: " + p.Kind.String()
	dst.DrawTextColored(dst.Width()-len(shape)-1, 0, shape, p.Kind.PlayerColor())

	health := 0.0
	if p.MaxHealth > 0 {
		health = float64(p.Health) / float64(p.MaxHealth)
	}
	hp := fmt.Sprintf("HP %s %d/%d", bar(10, health), p.Health, p.MaxHealth)
	hpColor := core.ColorSuccessGreen
	if health < 0.3 {
		hpColor = core.ColorHealthRed
	}
	dst.DrawTextColored(1, 1, hp, hpColor)

	next := fmt.Sprintf("NEXT %s %d/%d", bar(10, snap.Progress), snap.Points, snap.Level.PointsToAdvance)
	dst.DrawTextColored(dst.Width()-len([]rune(next))-1, 1, next, core.ColorAccentYellow)
}

func drawWorld(dst *core.Screen, vp viewport, snap *Snapshot) {
	// Fade the field out as the transition overlay darkens.
	hide := snap.Transition.Active && snap.Transition.Alpha >= 0.75
	dim := snap.Transition.Active && snap.Transition.Alpha >= 0.25
	if hide {
		return
	}
	color := func(c core.Color) core.Color {
		if dim {
			return core.ColorDim
		}
		return c
	}

	for _, pu := range snap.PowerUps {
		vp.fill(dst, pu.X, pu.Y, PowerUpSize, PowerUpSize, pu.Type.Glyph(), color(pu.Type.Color()))
	}

	for _, e := range snap.Enemies {
		c := e.Kind.EnemyColor()
		if e.Health < e.MaxHealth {
			c = core.ColorHealthRed
		}
		vp.fill(dst, e.X, e.Y, ShapeSize, ShapeSize, e.Kind.Glyph(), color(c))
	}

	for _, pr := range snap.Projectiles {
		cx, cy := vp.cellX(pr.X), vp.cellY(pr.Y)
		if vp.inner.Contains(cx, cy) {
			dst.SetColored(cx, cy, '|', color(pr.Kind.PlayerColor()))
		}
	}

	p := snap.Player
	pc := p.Kind.PlayerColor()
	// Blink while invulnerable.
	if p.Invulnerable && (snap.Now/100)%2 == 0 {
		pc = core.ColorText
	}
	vp.fill(dst, p.X, p.Y, ShapeSize, ShapeSize, p.Kind.Glyph(), color(pc))
}

func drawTransition(dst *core.Screen, vp viewport, snap *Snapshot) {
	info := snap.Transition.Shown
	mid := vp.inner.Y + vp.inner.H/2 - 2

	dst.DrawTextCentered(mid, fmt.Sprintf("LEVEL %d", info.Number), core.ColorAccentYellow)
	for i, line := range info.Lines() {
		dst.DrawTextCentered(mid+2+i, line, core.ColorText)
	}
}

func drawPaused(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "GAME PAUSED", core.ColorText)
	dst.DrawTextCentered(mid+1, "PRESS P TO RESUME", core.ColorDim)
}

func drawStartScreen(dst *core.Screen, snap *Snapshot) {
	y := dst.Height()/3 - 1
	dst.DrawTextCentered(y, "SHAPE SHIFTER", core.ColorAccentYellow)
	dst.DrawTextCentered(y+1, "LEVEL-BASED ARCADE SHOOTER", core.ColorText)

	lines := []string{
		"CONTROLS:",
		"ARROWS/WASD: Move",
		"SPACE: Fire",
		"1-2-3: Change Shape",
		"P: Pause Game",
		"Match your shape to the enemy for a critical hit!",
	}
	for i, line := range lines {
		dst.DrawTextCentered(y+3+i, line, core.ColorText)
	}

	if snap.Level.Number > 1 {
		dst.DrawTextCentered(y+4+len(lines), fmt.Sprintf("STARTING AT LEVEL %d", snap.Level.Number), core.ColorAccentYellow)
	}
	// Blink once a second.
	if (snap.Elapsed/500)%2 == 0 {
		dst.DrawTextCentered(y+6+len(lines), "PRESS ENTER TO START", core.ColorSuccessGreen)
	}
}

func drawGameOver(dst *core.Screen, snap *Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "GAME OVER", core.ColorHealthRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("FINAL SCORE: %d", snap.Score), core.ColorText)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("HIGHEST LEVEL: %d", snap.HighestLevel), core.ColorText)
	dst.DrawTextCentered(mid+3, "PRESS ENTER TO RESTART", core.ColorSuccessGreen)
}
