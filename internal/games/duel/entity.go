package duel

import (
	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/games/shifter"
)

// Fixed duel rules, in world pixels and simulation ms.
const (
	MaxHealth         = 100
	MoveStep          = 5 // Pixels per move intent
	BoostedMoveStep   = 8
	ShotSpeed         = 8 // Pixels per tick, toward the opponent
	ShotDamage        = 10
	HealthPickup      = 25
	SpeedBoostMs      = 5000
	PowerUpIntervalMs = 10000
	PowerUpLifetimeMs = 10000

	startOffset    = 100 // Fighters start this far from their own edge
	spawnMargin    = 100 // Enemies spawn at least this far from the walls
	spawnClearance = 100 // and never this close to a fighter
	spawnAttempts  = 10
	maxDriftTenths = 15 // Enemy drift per axis, in tenths of a pixel per tick
	baseMaxEnemies = 5
	enemyCap       = 10
	baseSpawnMs    = 3000
	spawnStepMs    = 300
	minSpawnMs     = 1000
)

// Seat identifies one of the two players.
type Seat int

const (
	PlayerOne Seat = iota // Bottom of the arena, fires upward
	PlayerTwo             // Top of the arena, fires downward
)

// String returns the seat's banner name.
func (s Seat) String() string {
	if s == PlayerTwo {
		return "PLAYER 2"
	}
	return "PLAYER 1"
}

// Opponent returns the other seat.
func (s Seat) Opponent() Seat {
	return 1 - s
}

// Fighter is one player's shape.
type Fighter struct {
	X, Y              int
	Kind              shifter.Shape
	Health            int
	ShieldUntil       int64 // Simulation ms; all damage is ignored before this
	BoostUntil        int64
	InvulnerableUntil int64 // Set by enemy contact; shots still land
	LastShotAt        int64
	Hits              int // Shots that damaged the opponent
	Kills             int
}

// Bounds returns the fighter's hitbox.
func (f Fighter) Bounds() core.Rect {
	return core.NewRect(f.X, f.Y, shifter.ShapeSize, shifter.ShapeSize)
}

// Shielded reports whether the fighter ignores damage at now.
func (f Fighter) Shielded(now int64) bool { return now < f.ShieldUntil }

// Boosted reports whether the speed boost is active at now.
func (f Fighter) Boosted(now int64) bool { return now < f.BoostUntil }

// Step returns the distance covered by one move intent at now.
func (f Fighter) Step(now int64) int {
	if f.Boosted(now) {
		return BoostedMoveStep
	}
	return MoveStep
}

// Drone is an enemy shape drifting around the arena. It keeps the level
// scaled stats of a shifter enemy and moves on a sub-pixel velocity.
type Drone struct {
	shifter.Enemy
	FX, FY float64
	DX, DY float64
}

// newDrone creates a drone of kind at (x, y) with the given velocity.
func newDrone(kind shifter.Shape, x, y int, dx, dy float64, lvl shifter.Level) Drone {
	return Drone{
		Enemy: shifter.NewEnemy(kind, x, lvl).At(x, y),
		FX:    float64(x),
		FY:    float64(y),
		DX:    dx,
		DY:    dy,
	}
}

// Move advances the drone one tick, bouncing off the arena walls.
func (d Drone) Move(width, height int) Drone {
	maxX := float64(width - shifter.ShapeSize)
	maxY := float64(height - shifter.ShapeSize)

	d.FX += d.DX
	if d.FX < 0 || d.FX > maxX {
		d.DX = -d.DX
		d.FX = core.ClampF(d.FX, 0, maxX)
	}
	d.FY += d.DY
	if d.FY < 0 || d.FY > maxY {
		d.DY = -d.DY
		d.FY = core.ClampF(d.FY, 0, maxY)
	}
	d.Enemy = d.Enemy.At(int(d.FX), int(d.FY))
	return d
}

// Shot is a projectile with the seat that fired it.
type Shot struct {
	shifter.Projectile
	Owner Seat
}

// HitsFighter reports whether the shot's point lies inside f, edges
// included.
func (s Shot) HitsFighter(f Fighter) bool {
	return f.Bounds().ContainsInclusive(s.X, s.Y)
}

// Pickup is a power-up lying in the arena until collected or expired.
type Pickup struct {
	shifter.PowerUp
	ExpiresAt int64
}
