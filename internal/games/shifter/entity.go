package shifter

import (
	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
)

// Entity geometry and fixed stats, in world pixels.
const (
	ShapeSize        = config.PlayerSize // Player and enemy width/height
	PowerUpSize      = 15                // Power-up width/height
	ProjectileDamage = 5                 // Damage of a non-critical hit
	ProjectileSpeed  = 20                // Pixels per tick, upward
	EnemyBaseSpeed   = 2.0               // Pixels per tick before level scaling
	PowerUpFallSpeed = 1.5               // Pixels per tick
)

// Shape is the closed set of shape kinds shared by players, enemies and
// projectiles.
type Shape int

const (
	Circle Shape = iota
	Triangle
	Cube
	shapeCount
)

// shapeStats holds the per-kind constants.
var shapeStats = [shapeCount]struct {
	name        string
	glyph       rune
	baseHealth  int
	baseDamage  int
	difficulty  int
	enemyColor  core.Color
	playerColor core.Color
}{
	Circle:   {"Circle", '●', 30, 5, 1, core.ColorEnemyCircle, core.ColorPlayerCircle},
	Triangle: {"Triangle", '▲', 40, 8, 2, core.ColorEnemyTriangle, core.ColorPlayerTriangle},
	Cube:     {"Cube", '■', 50, 10, 3, core.ColorEnemyCube, core.ColorPlayerCube},
}

// Valid reports whether s is one of the three kinds.
func (s Shape) Valid() bool {
	return s >= Circle && s < shapeCount
}

// String returns the shape name.
func (s Shape) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return shapeStats[s].name
}

// Glyph returns the display character.
func (s Shape) Glyph() rune {
	if !s.Valid() {
		return '?'
	}
	return shapeStats[s].glyph
}

// BaseHealth returns the unscaled enemy health for the kind.
func (s Shape) BaseHealth() int { return shapeStats[s].baseHealth }

// BaseDamage returns the unscaled enemy contact damage for the kind.
func (s Shape) BaseDamage() int { return shapeStats[s].baseDamage }

// Difficulty returns the score weight of the kind (1, 2 or 3).
func (s Shape) Difficulty() int { return shapeStats[s].difficulty }

// EnemyColor returns the palette color for enemies of this kind.
func (s Shape) EnemyColor() core.Color { return shapeStats[s].enemyColor }

// PlayerColor returns the palette color for the player in this kind.
func (s Shape) PlayerColor() core.Color { return shapeStats[s].playerColor }

// ShapeForAction maps a shape-change intent to its shape.
func ShapeForAction(a core.Action) (Shape, bool) {
	switch a {
	case core.ActionShapeCircle:
		return Circle, true
	case core.ActionShapeTriangle:
		return Triangle, true
	case core.ActionShapeCube:
		return Cube, true
	default:
		return 0, false
	}
}

// Player is the player-controlled shape.
type Player struct {
	X, Y              int
	Kind              Shape
	Health            int
	MaxHealth         int
	Lives             int
	Speed             int
	InvulnerableUntil int64 // Simulation ms; the player is invulnerable while now < this
}

// Bounds returns the player's hitbox.
func (p Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, ShapeSize, ShapeSize)
}

// Invulnerable reports whether contact damage is ignored at now.
func (p Player) Invulnerable(now int64) bool {
	return now < p.InvulnerableUntil
}

// Enemy is a falling enemy shape. Stats are scaled once at spawn.
type Enemy struct {
	X, Y       int
	Kind       Shape
	Health     int
	MaxHealth  int
	Damage     int
	Speed      float64
	Difficulty int
	yExact     float64 // Sub-pixel vertical position
}

// NewEnemy creates an enemy of the given kind at (x, 0), scaled by the
// level's multipliers.
func NewEnemy(kind Shape, x int, lvl Level) Enemy {
	mustf(kind.Valid(), "invalid enemy kind %d", kind)
	mustf(x >= 0, "enemy x must be non-negative, got %d", x)
	if !kind.Valid() {
		kind = Circle
	}
	hp := lvl.ScaleHealth(kind.BaseHealth())
	return Enemy{
		X:          max(x, 0),
		Kind:       kind,
		Health:     hp,
		MaxHealth:  hp,
		Damage:     lvl.ScaleDamage(kind.BaseDamage()),
		Speed:      lvl.ScaleSpeed(EnemyBaseSpeed),
		Difficulty: kind.Difficulty(),
	}
}

// At returns the enemy moved to (x, y), resetting its sub-pixel position.
func (e Enemy) At(x, y int) Enemy {
	e.X, e.Y, e.yExact = x, y, float64(y)
	return e
}

// Bounds returns the enemy's hitbox.
func (e Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, ShapeSize, ShapeSize)
}

// Move advances the enemy one tick. Y truncates the sub-pixel position.
func (e Enemy) Move() Enemy {
	e.yExact += e.Speed
	e.Y = int(e.yExact)
	return e
}

// Projectile is a player shot. It carries the shape the player had when
// firing, which decides critical hits.
type Projectile struct {
	X, Y   int
	DX, DY int
	Kind   Shape
	Damage int
}

// Move advances the projectile one tick.
func (p Projectile) Move() Projectile {
	p.X += p.DX
	p.Y += p.DY
	return p
}

// Hits reports whether the projectile's point lies inside the enemy box,
// edges included.
func (p Projectile) Hits(e Enemy) bool {
	return e.Bounds().ContainsInclusive(p.X, p.Y)
}

// PowerUpType identifies a power-up effect.
type PowerUpType int

const (
	PowerUpHealth PowerUpType = iota
	PowerUpShield
	PowerUpSpeed
	powerUpTypeCount
)

// String returns the power-up name.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpHealth:
		return "Health"
	case PowerUpShield:
		return "Shield"
	case PowerUpSpeed:
		return "Speed"
	default:
		return "Unknown"
	}
}

// Glyph returns the display character for a power-up type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpHealth:
		return '+'
	case PowerUpShield:
		return '◊'
	case PowerUpSpeed:
		return '»'
	default:
		return '?'
	}
}

// Color returns the palette color for a power-up type.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerUpHealth:
		return core.ColorSuccessGreen
	case PowerUpShield:
		return core.ColorAccentYellow
	case PowerUpSpeed:
		return core.ColorSpeedBlue
	default:
		return core.ColorText
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	X, Y   int
	Type   PowerUpType
	Speed  float64
	yExact float64
}

// NewPowerUp creates a power-up at (x, y).
func NewPowerUp(t PowerUpType, x, y int) PowerUp {
	return PowerUp{X: x, Y: y, Type: t, Speed: PowerUpFallSpeed, yExact: float64(y)}
}

// Bounds returns the power-up's hitbox.
func (p PowerUp) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, PowerUpSize, PowerUpSize)
}

// Move advances the power-up one tick.
func (p PowerUp) Move() PowerUp {
	p.yExact += p.Speed
	p.Y = int(p.yExact)
	return p
}
