package shifter

import "fmt"

// Level derives difficulty parameters from a level number and tracks the
// points earned toward the next level. Everything except the point counter
// is a pure function of the number.
type Level struct {
	number        int
	currentPoints int
}

// NewLevel creates level n with zero progress. Numbers below 1 are a
// contract violation and are treated as level 1.
func NewLevel(n int) Level {
	mustf(n >= 1, "level number must be >= 1, got %d", n)
	if n < 1 {
		n = 1
	}
	return Level{number: n}
}

// Number returns the level number (1-based).
func (l Level) Number() int {
	return l.number
}

// PlayerMaxHealth is 100 + 20 per level, capped at 200.
func (l Level) PlayerMaxHealth() int {
	return min(100+(l.number-1)*20, 200)
}

// EnemySpawnIntervalMs is 1500 - 100 per level, floored at 300.
func (l Level) EnemySpawnIntervalMs() int {
	return max(1500-(l.number-1)*100, 300)
}

// PointsToAdvance is 500 + 300 per level.
func (l Level) PointsToAdvance() int {
	return 500 + (l.number-1)*300
}

// CurrentPoints returns the points earned on this level so far.
func (l Level) CurrentPoints() int {
	return l.currentPoints
}

// Scaling percentages. Kept as integers so scaled stats truncate exactly.
func (l Level) healthPct() int { return 100 + (l.number-1)*20 }
func (l Level) damagePct() int { return 100 + (l.number-1)*15 }
func (l Level) speedPct() int  { return 100 + (l.number-1)*10 }

// EnemyHealthMul returns the enemy health multiplier (1 + 0.20 per level).
func (l Level) EnemyHealthMul() float64 {
	return float64(l.healthPct()) / 100
}

// EnemyDamageMul returns the enemy damage multiplier (1 + 0.15 per level).
func (l Level) EnemyDamageMul() float64 {
	return float64(l.damagePct()) / 100
}

// EnemySpeedMul returns the enemy speed multiplier (1 + 0.10 per level).
func (l Level) EnemySpeedMul() float64 {
	return float64(l.speedPct()) / 100
}

// ScaleHealth applies the health multiplier to a base value.
func (l Level) ScaleHealth(base int) int {
	return base * l.healthPct() / 100
}

// ScaleDamage applies the damage multiplier to a base value.
func (l Level) ScaleDamage(base int) int {
	return base * l.damagePct() / 100
}

// ScaleSpeed applies the speed multiplier to a base value.
func (l Level) ScaleSpeed(base float64) float64 {
	return base * float64(l.speedPct()) / 100
}

// AddPoints adds p to the level progress and reports whether the level is
// complete. It never resets; the caller replaces the level on completion.
func (l *Level) AddPoints(p int) bool {
	mustf(p >= 0, "points must be non-negative, got %d", p)
	l.currentPoints += max(p, 0)
	return l.currentPoints >= l.PointsToAdvance()
}

// Progress returns currentPoints / pointsToAdvance, capped at 1.
func (l Level) Progress() float64 {
	return min(float64(l.currentPoints)/float64(l.PointsToAdvance()), 1)
}

// RandomEnemyKind picks one of the three shapes uniformly.
func (l Level) RandomEnemyKind(rng *SimpleRNG) Shape {
	return Shape(rng.Intn(int(shapeCount)))
}

// RandomEnemyX picks a spawn X in [0, maxX).
func (l Level) RandomEnemyX(rng *SimpleRNG, maxX int) int {
	return rng.Intn(maxX)
}

// Info describes the level for overlays and transition screens.
func (l Level) Info() LevelInfo {
	return LevelInfo{
		Number:          l.number,
		PlayerMaxHealth: l.PlayerMaxHealth(),
		EnemyHealthPct:  l.healthPct() - 100,
		EnemyDamagePct:  l.damagePct() - 100,
		SpawnIntervalMs: l.EnemySpawnIntervalMs(),
		PointsToAdvance: l.PointsToAdvance(),
	}
}

// LevelInfo is a read-only summary of a level.
type LevelInfo struct {
	Number          int
	PlayerMaxHealth int
	EnemyHealthPct  int // Bonus over base, e.g. 20 for +20%
	EnemyDamagePct  int
	SpawnIntervalMs int
	PointsToAdvance int
}

// Lines returns the human-readable description shown between levels.
func (i LevelInfo) Lines() []string {
	return []string{
		fmt.Sprintf("MAX HEALTH: %d", i.PlayerMaxHealth),
		fmt.Sprintf("ENEMY HEALTH: +%d%%", i.EnemyHealthPct),
		fmt.Sprintf("ENEMY DAMAGE: +%d%%", i.EnemyDamagePct),
	}
}
