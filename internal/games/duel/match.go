package duel

import (
	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/games/shifter"
)

// Phase is the top-level duel state.
type Phase string

const (
	PhaseStart    Phase = "start"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "gameover"
)

// Result is the outcome of a finished duel.
type Result int

const (
	Undecided Result = iota
	ResultDraw
	PlayerOneWins
	PlayerTwoWins
)

// String returns the end-of-game banner.
func (r Result) String() string {
	switch r {
	case ResultDraw:
		return "DRAW!"
	case PlayerOneWins:
		return "PLAYER 1 WINS!"
	case PlayerTwoWins:
		return "PLAYER 2 WINS!"
	default:
		return ""
	}
}

// Match is one arena shared by two fighters. It reuses the shooter's
// level scaling, enemy stats, event schedule and RNG so both modes play
// by the same numbers. It is not safe for concurrent use.
type Match struct {
	cfg   config.ShifterConfig
	seed  int64
	level shifter.Level

	phase    Phase
	fighters [2]Fighter
	drones   []Drone
	shots    []Shot
	pickups  []Pickup
	result   Result
	wins     [2]int

	now   int64
	ticks uint64

	rng     *shifter.SimpleRNG
	sched   *shifter.Schedule
	enemies *shifter.Spawner
	powerUp *shifter.Spawner

	events []core.Event
}

// NewMatch creates a match in the Start phase. cfg must be valid; level
// below 1 means level 1.
func NewMatch(cfg config.ShifterConfig, seed int64, level int) *Match {
	sched := shifter.NewSchedule()
	m := &Match{
		cfg:     cfg,
		seed:    seed,
		level:   shifter.NewLevel(max(level, 1)),
		phase:   PhaseStart,
		rng:     shifter.NewSimpleRNG(seed),
		sched:   sched,
		enemies: shifter.NewSpawner(sched),
		powerUp: shifter.NewSpawner(sched),
	}
	m.fighters = m.freshFighters()
	return m
}

// freshFighters places both players centred on their own side.
func (m *Match) freshFighters() [2]Fighter {
	w, h := m.cfg.PlayArea.Width, m.cfg.PlayArea.Height
	x := (w - shifter.ShapeSize) / 2
	maxY := h - shifter.ShapeSize
	half := shifter.ShapeSize / 2

	var fs [2]Fighter
	fs[PlayerOne] = Fighter{X: x, Y: core.Clamp(h-startOffset-half, 0, maxY), Kind: shifter.Circle, Health: MaxHealth}
	fs[PlayerTwo] = Fighter{X: x, Y: core.Clamp(startOffset-half, 0, maxY), Kind: shifter.Circle, Health: MaxHealth}
	return fs
}

// MaxEnemies returns how many drones may share the arena at the level.
func MaxEnemies(level int) int {
	return min(baseMaxEnemies+level, enemyCap)
}

// SpawnIntervalMs returns the drone spawn cadence at the level.
func SpawnIntervalMs(level int) int {
	return max(baseSpawnMs-level*spawnStepMs, minSpawnMs)
}

// Step advances the match by one fixed tick and returns what happened.
func (m *Match) Step(in core.InputFrame) []core.Event {
	m.events = nil
	m.ticks++

	for _, a := range in.Actions() {
		switch a {
		case core.ActionConfirm:
			if m.phase == PhaseStart || m.phase == PhaseGameOver {
				m.reset()
			}
		case core.ActionPause:
			m.togglePause()
		}
	}

	if m.phase != PhasePlaying {
		return m.events
	}

	m.now += int64(m.cfg.Timing.TickMs)
	m.fireDueEvents()
	m.applyIntents(in)
	m.update()
	return m.events
}

func (m *Match) emit(name string, value int) {
	m.events = append(m.events, core.Event{Name: name, Value: value})
}

func (m *Match) reset() {
	m.sched.Clear()
	m.enemies.Stop()
	m.powerUp.Stop()

	m.fighters = m.freshFighters()
	for i := range m.fighters {
		m.fighters[i].LastShotAt = m.now - int64(m.cfg.Timing.ShotDelayMs)
	}
	m.drones = nil
	m.shots = nil
	m.pickups = nil
	m.result = Undecided

	m.phase = PhasePlaying
	m.startSpawners()
	m.emit(shifter.EvStart, m.level.Number())
}

func (m *Match) startSpawners() {
	m.enemies.Start(m.now, SpawnIntervalMs(m.level.Number()))
	m.powerUp.Start(m.now, PowerUpIntervalMs)
}

// togglePause freezes or resumes the match. Resuming restarts both
// spawners a full interval out.
func (m *Match) togglePause() {
	switch m.phase {
	case PhasePlaying:
		m.phase = PhasePaused
		m.enemies.Stop()
		m.powerUp.Stop()
		m.emit(shifter.EvPause, 0)
	case PhasePaused:
		m.phase = PhasePlaying
		m.startSpawners()
		m.emit(shifter.EvResume, 0)
	}
}

func (m *Match) fireDueEvents() {
	for {
		ev, ok := m.sched.PopDue(m.now)
		if !ok {
			return
		}
		switch {
		case m.enemies.Fired(ev):
			m.spawnDrone()
		case m.powerUp.Fired(ev):
			m.spawnPickup()
		}
	}
}

// spawnDrone adds a drone at a random point clear of both fighters. The
// spawn is skipped when the arena is full or no clear point turns up.
func (m *Match) spawnDrone() {
	if len(m.drones) >= MaxEnemies(m.level.Number()) {
		return
	}
	w, h := m.cfg.PlayArea.Width, m.cfg.PlayArea.Height
	kind := m.level.RandomEnemyKind(m.rng)

	for range spawnAttempts {
		x := m.randomCoord(w)
		y := m.randomCoord(h)
		if !m.clearOfFighters(x, y) {
			continue
		}
		dx := float64(m.rng.Intn(2*maxDriftTenths+1)-maxDriftTenths) / 10
		dy := float64(m.rng.Intn(2*maxDriftTenths+1)-maxDriftTenths) / 10
		m.drones = append(m.drones, newDrone(kind, x, y, dx, dy, m.level))
		m.emit(shifter.EvSpawn, int(kind))
		return
	}
}

// randomCoord returns a drone coordinate along an axis of the given size,
// keeping away from the walls where the arena allows it.
func (m *Match) randomCoord(size int) int {
	span := size - shifter.ShapeSize
	margin := min(spawnMargin, span/4)
	return margin + m.rng.Intn(max(span-2*margin, 1))
}

func (m *Match) clearOfFighters(x, y int) bool {
	for _, f := range m.fighters {
		if abs(x-f.X) < spawnClearance && abs(y-f.Y) < spawnClearance {
			return false
		}
	}
	return true
}

func (m *Match) spawnPickup() {
	t := shifter.PowerUpType(m.rng.Intn(int(shifter.PowerUpSpeed) + 1))
	x := m.rng.Intn(m.cfg.PlayArea.Width - shifter.PowerUpSize)
	y := m.rng.Intn(m.cfg.PlayArea.Height - shifter.PowerUpSize)
	m.pickups = append(m.pickups, Pickup{
		PowerUp:   shifter.NewPowerUp(t, x, y),
		ExpiresAt: m.now + PowerUpLifetimeMs,
	})
	m.emit(shifter.EvPowerUpSpawn, int(t))
}

// control splits an intent into the seat it belongs to and the
// single-player action it stands for.
func control(a core.Action) (Seat, core.Action, bool) {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire,
		core.ActionShapeCircle, core.ActionShapeTriangle, core.ActionShapeCube:
		return PlayerOne, a, true
	case core.ActionP2Left:
		return PlayerTwo, core.ActionLeft, true
	case core.ActionP2Right:
		return PlayerTwo, core.ActionRight, true
	case core.ActionP2Up:
		return PlayerTwo, core.ActionUp, true
	case core.ActionP2Down:
		return PlayerTwo, core.ActionDown, true
	case core.ActionP2Fire:
		return PlayerTwo, core.ActionFire, true
	case core.ActionP2Circle:
		return PlayerTwo, core.ActionShapeCircle, true
	case core.ActionP2Triangle:
		return PlayerTwo, core.ActionShapeTriangle, true
	case core.ActionP2Cube:
		return PlayerTwo, core.ActionShapeCube, true
	default:
		return 0, core.ActionNone, false
	}
}

// applyIntents applies both players' intents in arrival order.
func (m *Match) applyIntents(in core.InputFrame) {
	for _, a := range in.Actions() {
		seat, action, ok := control(a)
		if !ok {
			continue
		}
		f := &m.fighters[seat]
		step := f.Step(m.now)
		switch action {
		case core.ActionLeft:
			m.move(f, -step, 0)
		case core.ActionRight:
			m.move(f, step, 0)
		case core.ActionUp:
			m.move(f, 0, -step)
		case core.ActionDown:
			m.move(f, 0, step)
		case core.ActionFire:
			m.fire(seat)
		default:
			if kind, ok := shifter.ShapeForAction(action); ok {
				f.Kind = kind
			}
		}
	}
}

func (m *Match) move(f *Fighter, dx, dy int) {
	f.X = core.Clamp(f.X+dx, 0, m.cfg.PlayArea.Width-shifter.ShapeSize)
	f.Y = core.Clamp(f.Y+dy, 0, m.cfg.PlayArea.Height-shifter.ShapeSize)
}

// fire launches one shot from the fighter's front edge toward the
// opponent, at most once per shot delay.
func (m *Match) fire(seat Seat) {
	f := &m.fighters[seat]
	if m.now-f.LastShotAt < int64(m.cfg.Timing.ShotDelayMs) {
		return
	}
	f.LastShotAt = m.now

	shot := Shot{
		Projectile: shifter.Projectile{X: f.X + shifter.ShapeSize/2, Kind: f.Kind, Damage: ShotDamage},
		Owner:      seat,
	}
	if seat == PlayerOne {
		shot.Y, shot.DY = f.Y-1, -ShotSpeed
	} else {
		shot.Y, shot.DY = f.Y+shifter.ShapeSize+1, ShotSpeed
	}
	m.shots = append(m.shots, shot)
	m.emit(shifter.EvFire, int(seat))
}

// update moves every entity, resolves hits and pickups, and ends the
// match once a fighter is out of health.
func (m *Match) update() {
	w, h := m.cfg.PlayArea.Width, m.cfg.PlayArea.Height

	for i := range m.drones {
		m.drones[i] = m.drones[i].Move(w, h)
	}

	arena := core.NewRect(0, 0, w, h)
	shots := m.shots[:0]
	for _, s := range m.shots {
		s.Projectile = s.Move()
		if !arena.ContainsInclusive(s.X, s.Y) {
			continue
		}
		if m.resolveShot(s) {
			continue
		}
		shots = append(shots, s)
	}
	m.shots = shots

	m.pickups = filter(m.pickups, func(p Pickup) bool { return m.now < p.ExpiresAt })

	for seat := range m.fighters {
		m.touchDrones(Seat(seat))
		m.collectPickups(Seat(seat))
	}

	m.checkOver()
}

// resolveShot applies a shot to the first drone it hits, or else to the
// opponent. It reports whether the shot was used up.
func (m *Match) resolveShot(s Shot) bool {
	for i, d := range m.drones {
		if !s.Hits(d.Enemy) {
			continue
		}
		dmg := s.Damage
		if s.Kind == d.Kind {
			dmg *= 2
		}
		m.drones[i].Health -= dmg
		if m.drones[i].Health <= 0 {
			m.drones = append(m.drones[:i], m.drones[i+1:]...)
			m.fighters[s.Owner].Kills++
			m.emit(shifter.EvKill, int(s.Owner))
		}
		return true
	}

	opp := s.Owner.Opponent()
	if !s.HitsFighter(m.fighters[opp]) {
		return false
	}
	if m.damage(opp, s.Damage) {
		m.fighters[s.Owner].Hits++
	}
	return true
}

// touchDrones applies contact damage from the first drone overlapping the
// fighter, then opens the invulnerability window.
func (m *Match) touchDrones(seat Seat) {
	f := &m.fighters[seat]
	if m.now < f.InvulnerableUntil {
		return
	}
	for _, d := range m.drones {
		if !f.Bounds().Intersects(d.Bounds()) {
			continue
		}
		if m.damage(seat, d.Damage) {
			f.InvulnerableUntil = m.now + int64(m.cfg.Timing.InvulnerableMs)
		}
		return
	}
}

// damage takes dmg off a fighter's health unless it is shielded, and
// reports whether it did.
func (m *Match) damage(seat Seat, dmg int) bool {
	f := &m.fighters[seat]
	if f.Shielded(m.now) {
		return false
	}
	f.Health = max(f.Health-dmg, 0)
	m.emit(shifter.EvHit, int(seat))
	return true
}

func (m *Match) collectPickups(seat Seat) {
	f := &m.fighters[seat]
	m.pickups = filter(m.pickups, func(p Pickup) bool {
		if !f.Bounds().Intersects(p.Bounds()) {
			return true
		}
		switch p.Type {
		case shifter.PowerUpHealth:
			f.Health = min(f.Health+HealthPickup, MaxHealth)
		case shifter.PowerUpShield:
			f.ShieldUntil = max(f.ShieldUntil, m.now+int64(m.cfg.Timing.ShieldMs))
		case shifter.PowerUpSpeed:
			f.BoostUntil = max(f.BoostUntil, m.now+SpeedBoostMs)
		}
		m.emit(shifter.EvPowerUp, int(p.Type))
		return false
	})
}

func (m *Match) checkOver() {
	out1 := m.fighters[PlayerOne].Health <= 0
	out2 := m.fighters[PlayerTwo].Health <= 0
	switch {
	case out1 && out2:
		m.result = ResultDraw
	case out2:
		m.result = PlayerOneWins
		m.wins[PlayerOne]++
	case out1:
		m.result = PlayerTwoWins
		m.wins[PlayerTwo]++
	default:
		return
	}

	m.phase = PhaseGameOver
	m.enemies.Stop()
	m.powerUp.Stop()
	m.emit(shifter.EvGameOver, int(m.result))
}

// filter keeps the elements for which keep returns true, in place.
func filter[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Phase returns the current phase.
func (m *Match) Phase() Phase { return m.phase }

// Result returns the outcome of the last finished duel.
func (m *Match) Result() Result { return m.result }

// Wins returns how many duels each seat has won in this match.
func (m *Match) Wins() [2]int { return m.wins }

// Fighter returns a copy of the seat's fighter.
func (m *Match) Fighter(seat Seat) Fighter { return m.fighters[seat] }

// Level returns the level the match is played at.
func (m *Match) Level() shifter.Level { return m.level }

// Now returns the simulation clock in ms.
func (m *Match) Now() int64 { return m.now }

// Ticks returns the number of Step calls so far.
func (m *Match) Ticks() uint64 { return m.ticks }

// Seed returns the RNG seed the match was created with.
func (m *Match) Seed() int64 { return m.seed }

// Config returns the match configuration.
func (m *Match) Config() config.ShifterConfig { return m.cfg }
