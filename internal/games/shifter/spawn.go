package shifter

// Spawn margins: enemy X is drawn from [0, width-50), power-up X from
// [0, width-30).
const (
	enemySpawnMargin   = 50
	powerUpSpawnMargin = 30
)

// Spawner drives enemy spawning at the current level's cadence through the
// session schedule.
type Spawner struct {
	sched    *Schedule
	event    EventID
	interval int
}

// NewSpawner creates a stopped spawner bound to a schedule.
func NewSpawner(sched *Schedule) *Spawner {
	return &Spawner{sched: sched}
}

// Start (re)starts the spawner: the first spawn is due one full interval
// after now. A running spawner is restarted at the new cadence.
func (sp *Spawner) Start(now int64, intervalMs int) {
	mustf(intervalMs > 0, "spawn interval must be positive, got %d", intervalMs)
	sp.Stop()
	sp.interval = max(intervalMs, 1)
	sp.event = sp.sched.Add(EventSpawn, now+int64(sp.interval))
}

// Stop cancels the pending spawn. Safe to call when already stopped.
func (sp *Spawner) Stop() {
	if sp.event != 0 {
		sp.sched.Cancel(sp.event)
		sp.event = 0
	}
}

// Running reports whether a spawn is pending.
func (sp *Spawner) Running() bool {
	return sp.event != 0 && sp.sched.Pending(sp.event)
}

// Interval returns the current cadence in ms.
func (sp *Spawner) Interval() int {
	return sp.interval
}

// Fired handles a popped spawn event and schedules the next one at a fixed
// rate. It returns false for events that do not belong to this spawner.
func (sp *Spawner) Fired(ev ScheduledEvent) bool {
	if ev.Kind != EventSpawn || ev.ID != sp.event {
		return false
	}
	sp.event = sp.sched.Add(EventSpawn, ev.Due+int64(sp.interval))
	return true
}

// SpawnResult is what a single spawn tick produces.
type SpawnResult struct {
	Enemy      Enemy
	PowerUp    PowerUp
	HasPowerUp bool
}

// rollSpawn creates the enemy for one spawn tick, scaled by the level that
// is current at spawn time, plus an occasional random power-up.
func rollSpawn(lvl Level, rng *SimpleRNG, width, powerUpChance int) SpawnResult {
	kind := lvl.RandomEnemyKind(rng)
	x := lvl.RandomEnemyX(rng, width-enemySpawnMargin)

	res := SpawnResult{Enemy: NewEnemy(kind, x, lvl)}
	if rng.Chance(powerUpChance) {
		px := rng.Intn(width - powerUpSpawnMargin)
		pt := PowerUpType(rng.Intn(int(powerUpTypeCount)))
		res.PowerUp = NewPowerUp(pt, px, 0)
		res.HasPowerUp = true
	}
	return res
}
