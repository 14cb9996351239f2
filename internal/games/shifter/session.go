package shifter

import (
	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
)

// Phase is the top-level game state.
type Phase string

const (
	PhaseStart         Phase = "start"         // Title screen, waiting for confirm
	PhasePlaying       Phase = "playing"       // Simulation running
	PhasePaused        Phase = "paused"        // Simulation clock frozen
	PhaseTransitioning Phase = "transitioning" // Fading between levels
	PhaseGameOver      Phase = "gameover"      // No lives left, waiting for confirm
)

// Event names reported by Step.
const (
	EvStart         = "start"
	EvPause         = "pause"
	EvResume        = "resume"
	EvSpawn         = "spawn"
	EvPowerUpSpawn  = "powerup_spawn"
	EvFire          = "fire"
	EvHit           = "hit"
	EvLifeLost      = "life_lost"
	EvKill          = "kill"
	EvCriticalKill  = "critical_kill"
	EvPowerUp       = "powerup"
	EvSpeedRevert   = "speed_revert"
	EvLevelComplete = "level_complete"
	EvLevelUp       = "level_up"
	EvGameOver      = "game_over"
)

// Session is the aggregate root of a game: it owns every entity
// collection, the current level, the simulation clock and the event
// schedule. It is not safe for concurrent use; the platform drives it from
// a single loop.
type Session struct {
	cfg        config.ShifterConfig
	seed       int64
	startLevel int

	phase       Phase
	resumePhase Phase // Phase to return to when unpausing

	player       Player
	enemies      []Enemy
	projectiles  []Projectile
	powerUps     []PowerUp
	level        Level
	highestLevel int
	score        int
	lastShotAt   int64

	now   int64  // Simulation ms; frozen unless Playing or Transitioning
	ticks uint64 // Step calls, including frozen ones

	rng             *SimpleRNG
	sched           *Schedule
	spawner         *Spawner
	transition      Transition
	transitionEvent EventID

	events []core.Event
}

// NewSession creates a session in the Start phase. cfg must be valid;
// startLevel below 1 means level 1.
func NewSession(cfg config.ShifterConfig, seed int64, startLevel int) *Session {
	sched := NewSchedule()
	s := &Session{
		cfg:        cfg,
		seed:       seed,
		startLevel: max(startLevel, 1),
		phase:      PhaseStart,
		rng:        NewSimpleRNG(seed),
		sched:      sched,
		spawner:    NewSpawner(sched),
	}
	s.level = NewLevel(s.startLevel)
	s.highestLevel = s.startLevel
	s.player = s.freshPlayer()
	return s
}

func (s *Session) freshPlayer() Player {
	return Player{
		X:         s.cfg.Player.StartX,
		Y:         s.cfg.Player.StartY,
		Kind:      Circle,
		Health:    s.level.PlayerMaxHealth(),
		MaxHealth: s.level.PlayerMaxHealth(),
		Lives:     s.cfg.Player.Lives,
		Speed:     s.cfg.Player.Speed,
	}
}

func (s *Session) rules() Rules {
	return Rules{
		Width:            s.cfg.PlayArea.Width,
		Height:           s.cfg.PlayArea.Height,
		InvulnerableMs:   s.cfg.Timing.InvulnerableMs,
		ShieldMs:         s.cfg.Timing.ShieldMs,
		HealthDropChance: s.cfg.Drops.HealthDropChance,
	}
}

// Step advances the session by one fixed tick with the intents collected
// since the previous tick, and returns what happened.
func (s *Session) Step(in core.InputFrame) []core.Event {
	s.events = nil
	s.ticks++

	// Phase intents first: they decide whether the clock runs at all.
	for _, a := range in.Actions() {
		switch a {
		case core.ActionConfirm:
			if s.phase == PhaseStart || s.phase == PhaseGameOver {
				s.reset()
			}
		case core.ActionPause:
			s.togglePause()
		}
	}

	if s.phase != PhasePlaying && s.phase != PhaseTransitioning {
		return s.events
	}

	s.now += int64(s.cfg.Timing.TickMs)
	s.fireDueEvents()

	if s.phase != PhasePlaying {
		return s.events
	}

	s.applyIntents(in)
	s.update()
	return s.events
}

func (s *Session) emit(name string, value int) {
	s.events = append(s.events, core.Event{Name: name, Value: value})
}

// reset is the Start->Playing and GameOver->Playing path.
func (s *Session) reset() {
	s.sched.Clear()
	s.spawner.Stop()
	s.transition.Cancel()
	s.transitionEvent = 0

	s.level = NewLevel(s.startLevel)
	s.highestLevel = s.startLevel
	s.score = 0
	s.player = s.freshPlayer()
	s.enemies = nil
	s.projectiles = nil
	s.powerUps = nil
	s.lastShotAt = s.now - int64(s.cfg.Timing.ShotDelayMs)

	s.phase = PhasePlaying
	s.spawner.Start(s.now, s.level.EnemySpawnIntervalMs())
	s.emit(EvStart, s.level.Number())
}

// togglePause pauses a running game or resumes a paused one. Pausing stops
// the spawner; resuming restarts it a full interval out.
func (s *Session) togglePause() {
	switch s.phase {
	case PhasePlaying, PhaseTransitioning:
		s.resumePhase = s.phase
		s.phase = PhasePaused
		s.spawner.Stop()
		s.emit(EvPause, 0)
	case PhasePaused:
		s.phase = s.resumePhase
		s.spawner.Start(s.now, s.level.EnemySpawnIntervalMs())
		s.emit(EvResume, 0)
	}
}

// fireDueEvents runs every scheduled event due at the current time.
func (s *Session) fireDueEvents() {
	for {
		ev, ok := s.sched.PopDue(s.now)
		if !ok {
			return
		}
		switch ev.Kind {
		case EventSpawn:
			if s.spawner.Fired(ev) && s.phase == PhasePlaying {
				s.spawn()
			}
		case EventTransitionTick:
			if ev.ID != s.transitionEvent {
				continue
			}
			s.transitionEvent = 0
			if s.transition.Advance() {
				s.completeTransition(ev.Due)
			} else {
				s.transitionEvent = s.sched.Add(EventTransitionTick, ev.Due+int64(s.cfg.Timing.TransitionStepMs))
			}
		case EventSpeedRevert:
			s.player = revertSpeedBoost(s.player, s.cfg.Player.Speed)
			s.emit(EvSpeedRevert, s.player.Speed)
		}
	}
}

func (s *Session) spawn() {
	res := rollSpawn(s.level, s.rng, s.cfg.PlayArea.Width, s.cfg.Drops.PowerUpChance)
	s.enemies = append(s.enemies, res.Enemy)
	s.emit(EvSpawn, int(res.Enemy.Kind))
	if res.HasPowerUp {
		s.powerUps = append(s.powerUps, res.PowerUp)
		s.emit(EvPowerUpSpawn, int(res.PowerUp.Type))
	}
}

// applyIntents applies movement, fire and shape changes in arrival order.
func (s *Session) applyIntents(in core.InputFrame) {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			s.move(-s.player.Speed, 0)
		case core.ActionRight:
			s.move(s.player.Speed, 0)
		case core.ActionUp:
			s.move(0, -s.player.Speed)
		case core.ActionDown:
			s.move(0, s.player.Speed)
		case core.ActionFire:
			s.fire()
		case core.ActionShapeCircle, core.ActionShapeTriangle, core.ActionShapeCube:
			kind, _ := ShapeForAction(a)
			s.player.Kind = kind
		}
	}
}

func (s *Session) move(dx, dy int) {
	s.player.X = core.Clamp(s.player.X+dx, 0, s.cfg.PlayArea.Width-ShapeSize)
	s.player.Y = core.Clamp(s.player.Y+dy, 0, s.cfg.PlayArea.Height-ShapeSize)
}

func (s *Session) fire() {
	if s.now-s.lastShotAt < int64(s.cfg.Timing.ShotDelayMs) {
		return
	}
	shots := Volley(s.player, s.level.Number())
	s.projectiles = append(s.projectiles, shots...)
	s.lastShotAt = s.now
	s.emit(EvFire, len(shots))
}

// Volley returns the projectiles fired by the player at the given level:
// one shot, two more from level 2, two more from level 3 and two angled
// shots from level 5.
func Volley(p Player, level int) []Projectile {
	cx := p.X + ShapeSize/2 - 2
	shot := func(x, y, dx, dy int) Projectile {
		return Projectile{X: x, Y: y, DX: dx, DY: dy, Kind: p.Kind, Damage: ProjectileDamage}
	}

	shots := []Projectile{shot(cx, p.Y, 0, -ProjectileSpeed)}
	if level >= 2 {
		shots = append(shots,
			shot(cx-8, p.Y, 0, -ProjectileSpeed),
			shot(cx+8, p.Y, 0, -ProjectileSpeed))
	}
	if level >= 3 {
		shots = append(shots,
			shot(cx-4, p.Y-5, 0, -ProjectileSpeed),
			shot(cx+4, p.Y-5, 0, -ProjectileSpeed))
	}
	if level >= 5 {
		shots = append(shots,
			shot(cx-12, p.Y, -1, -(ProjectileSpeed-1)),
			shot(cx+12, p.Y, 1, -(ProjectileSpeed-1)))
	}
	return shots
}

// update moves every entity, resolves collisions and applies the outcome.
func (s *Session) update() {
	w := World{
		Now:         s.now,
		Player:      s.player,
		Enemies:     s.enemies,
		Projectiles: s.projectiles,
		PowerUps:    s.powerUps,
		Level:       s.level,
	}
	w = advanceEntities(w, s.cfg.PlayArea.Height)
	w, out := Resolve(w, s.rng, s.rules())

	s.player = w.Player
	s.enemies = w.Enemies
	s.projectiles = w.Projectiles
	s.powerUps = w.PowerUps
	s.level = w.Level
	s.score += out.Points

	for range out.Hits {
		s.emit(EvHit, s.player.Health)
	}
	for range out.LivesLost {
		s.emit(EvLifeLost, s.player.Lives)
	}
	for _, k := range out.Kills {
		if k.Critical {
			s.emit(EvCriticalKill, k.Points)
		} else {
			s.emit(EvKill, k.Points)
		}
	}
	for _, t := range out.Collected {
		if t == PowerUpSpeed {
			s.sched.Add(EventSpeedRevert, s.now+int64(s.cfg.Timing.SpeedBoostMs))
		}
		s.emit(EvPowerUp, int(t))
	}

	if out.GameOver {
		s.gameOver()
		return
	}
	if out.LevelComplete {
		s.startTransition()
	}
}

// startTransition begins the fade to the next level. Called again while a
// fade is running, it restarts the fade.
func (s *Session) startTransition() {
	next := NewLevel(s.level.Number() + 1)
	s.highestLevel = max(s.highestLevel, next.Number())

	s.transition.Start(s.level, next)
	s.sched.Cancel(s.transitionEvent)
	s.transitionEvent = s.sched.Add(EventTransitionTick, s.now+int64(s.cfg.Timing.TransitionStepMs))
	s.phase = PhaseTransitioning
	s.emit(EvLevelComplete, next.Number())
}

// completeTransition swaps in the next level once the fade has finished.
func (s *Session) completeTransition(at int64) {
	s.level = s.transition.Target()
	s.player.MaxHealth = s.level.PlayerMaxHealth()
	s.player.Health = s.player.MaxHealth
	s.player.X = s.cfg.Player.StartX
	s.player.Y = s.cfg.Player.StartY
	s.enemies = nil
	s.spawner.Start(at, s.level.EnemySpawnIntervalMs())
	s.phase = PhasePlaying
	s.emit(EvLevelUp, s.level.Number())
}

func (s *Session) gameOver() {
	s.phase = PhaseGameOver
	s.spawner.Stop()
	s.sched.Cancel(s.transitionEvent)
	s.transitionEvent = 0
	s.transition.Cancel()
	s.emit(EvGameOver, s.score)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns a copy of the current level.
func (s *Session) Level() Level { return s.level }

// HighestLevel returns the highest level reached in the current game.
func (s *Session) HighestLevel() int { return s.highestLevel }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Now returns the simulation clock in ms.
func (s *Session) Now() int64 { return s.now }

// Ticks returns the number of Step calls so far.
func (s *Session) Ticks() uint64 { return s.ticks }

// Seed returns the RNG seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }

// StartLevel returns the level the reset path starts at.
func (s *Session) StartLevel() int { return s.startLevel }

// Config returns the session configuration.
func (s *Session) Config() config.ShifterConfig { return s.cfg }
