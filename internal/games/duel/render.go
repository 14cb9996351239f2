package duel

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/games/shifter"
)

const (
	hudRows    = 2
	minScreenW = 40
	minScreenH = 16
)

const controlsHint = "P1: ARROWS SPACE 1-2-3 | P2: WASD F Z-X-C | P: Pause"

// arena maps world pixels onto the inner cells of the play-area box.
type arena struct {
	inner  core.Rect
	worldW int
	worldH int
}

func (a arena) cell(x, y int) (int, int) {
	return a.inner.X + core.Scale(x, a.worldW, a.inner.W), a.inner.Y + core.Scale(y, a.worldH, a.inner.H)
}

// fill draws a world-space square clipped to the play area.
func (a arena) fill(dst *core.Screen, x, y, size int, r rune, c core.Color) {
	cx, cy := a.cell(x, y)
	w := max(1, core.Scale(size, a.worldW, a.inner.W))
	h := max(1, core.Scale(size, a.worldH, a.inner.H))
	for dy := range h {
		for dx := range w {
			if a.inner.Contains(cx+dx, cy+dy) {
				dst.SetColored(cx+dx, cy+dy, r, c)
			}
		}
	}
}

// Draw renders a snapshot into the screen buffer.
func Draw(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorText)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDim)
		return
	}

	box := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-1)
	dst.DrawBox(box, core.ColorGrid)
	a := arena{
		inner:  core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2),
		worldW: snap.Width,
		worldH: snap.Height,
	}

	switch snap.Phase {
	case PhaseStart:
		drawStartScreen(dst, snap)
	case PhaseGameOver:
		drawHUD(dst, snap)
		drawResult(dst, snap)
	default:
		drawHUD(dst, snap)
		drawArena(dst, a, snap)
		if snap.Phase == PhasePaused {
			mid := dst.Height() / 2
			dst.DrawTextCentered(mid-1, "GAME PAUSED", core.ColorText)
			dst.DrawTextCentered(mid+1, "PRESS P TO RESUME", core.ColorDim)
		}
	}

	dst.DrawTextCentered(dst.Height()-1, controlsHint, core.ColorDim)
}

// fighterStatus renders one player's HUD line.
func fighterStatus(seat Seat, f Fighter, now int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "P%d %c %s %d", int(seat)+1, f.Kind.Glyph(), healthBar(f.Health), f.Health)
	if f.Shielded(now) {
		b.WriteString(" ◊")
	}
	if f.Boosted(now) {
		b.WriteString(" »")
	}
	return b.String()
}

func healthBar(health int) string {
	filled := core.Clamp(health, 0, MaxHealth) * 10 / MaxHealth
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}

func healthColor(health int) core.Color {
	if health*10 < MaxHealth*3 {
		return core.ColorHealthRed
	}
	return core.ColorSuccessGreen
}

func drawHUD(dst *core.Screen, snap *Snapshot) {
	p1, p2 := snap.Fighters[PlayerOne], snap.Fighters[PlayerTwo]

	dst.DrawTextColored(1, 0, fighterStatus(PlayerOne, p1, snap.Now), healthColor(p1.Health))
	right := fighterStatus(PlayerTwo, p2, snap.Now)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, healthColor(p2.Health))

	dst.DrawTextCentered(1, fmt.Sprintf("LEVEL %d  WINS %d-%d", snap.Level, snap.Wins[PlayerOne], snap.Wins[PlayerTwo]), core.ColorAccentYellow)
}

func drawArena(dst *core.Screen, a arena, snap *Snapshot) {
	for _, p := range snap.Pickups {
		a.fill(dst, p.X, p.Y, shifter.PowerUpSize, p.Type.Glyph(), p.Type.Color())
	}

	for _, d := range snap.Drones {
		c := d.Kind.EnemyColor()
		if d.Health < d.MaxHealth {
			c = core.ColorHealthRed
		}
		a.fill(dst, d.X, d.Y, shifter.ShapeSize, d.Kind.Glyph(), c)
	}

	for _, s := range snap.Shots {
		cx, cy := a.cell(s.X, s.Y)
		if a.inner.Contains(cx, cy) {
			dst.SetColored(cx, cy, '|', s.Kind.PlayerColor())
		}
	}

	for seat, f := range snap.Fighters {
		c := f.Kind.PlayerColor()
		if f.Shielded(snap.Now) || (snap.Now < f.InvulnerableUntil && (snap.Now/100)%2 == 0) {
			c = core.ColorText
		}
		a.fill(dst, f.X, f.Y, shifter.ShapeSize, f.Kind.Glyph(), c)
		// Seat number on the top-left cell tells the fighters apart.
		if cx, cy := a.cell(f.X, f.Y); a.inner.Contains(cx, cy) {
			dst.SetColored(cx, cy, rune('1'+seat), c)
		}
	}
}

func drawStartScreen(dst *core.Screen, snap *Snapshot) {
	y := dst.Height()/3 - 1
	dst.DrawTextCentered(y, "SHAPE SHIFTER DUEL", core.ColorAccentYellow)
	dst.DrawTextCentered(y+1, "TWO PLAYERS, ONE KEYBOARD", core.ColorText)

	lines := []string{
		"PLAYER 1: ARROWS move, SPACE fire, 1-2-3 shape",
		"PLAYER 2: WASD move, F fire, Z-X-C shape",
		"P: Pause Game",
		"Match a drone's shape to hit it for double damage.",
		"Bring your opponent's health to zero to win!",
	}
	for i, line := range lines {
		dst.DrawTextCentered(y+3+i, line, core.ColorText)
	}
	if snap.Level > 1 {
		dst.DrawTextCentered(y+4+len(lines), fmt.Sprintf("LEVEL %d", snap.Level), core.ColorAccentYellow)
	}
	// Blink once a second.
	if (snap.Elapsed/500)%2 == 0 {
		dst.DrawTextCentered(y+6+len(lines), "PRESS ENTER TO START", core.ColorSuccessGreen)
	}
}

func drawResult(dst *core.Screen, snap *Snapshot) {
	mid := dst.Height() / 2
	color := core.ColorAccentYellow
	if snap.Result == PlayerOneWins {
		color = snap.Fighters[PlayerOne].Kind.PlayerColor()
	} else if snap.Result == PlayerTwoWins {
		color = snap.Fighters[PlayerTwo].Kind.PlayerColor()
	}
	dst.DrawTextCentered(mid-2, snap.Result.String(), color)
	dst.DrawTextCentered(mid, fmt.Sprintf("WINS %d - %d", snap.Wins[PlayerOne], snap.Wins[PlayerTwo]), core.ColorText)
	dst.DrawTextCentered(mid+2, "PRESS ENTER FOR A REMATCH", core.ColorSuccessGreen)
}
