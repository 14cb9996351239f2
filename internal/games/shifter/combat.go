package shifter

// World is the set of entities the resolver works on. Resolve never
// mutates the slices it receives; it returns freshly built ones.
type World struct {
	Now         int64
	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	PowerUps    []PowerUp
	Level       Level
}

// Rules are the tunable constants the resolver needs.
type Rules struct {
	Width            int
	Height           int
	InvulnerableMs   int
	ShieldMs         int
	HealthDropChance int // Percent per kill
}

// Kill records one enemy destroyed by a projectile.
type Kill struct {
	Enemy    Enemy
	Critical bool
	Points   int
}

// Outcome summarizes what happened during one resolve pass.
type Outcome struct {
	Hits          int // Contact hits that dealt damage
	DamageTaken   int
	LivesLost     int
	GameOver      bool
	Escaped       int // Enemies that left through the bottom
	Kills         []Kill
	Points        int
	LevelComplete bool
	Collected     []PowerUpType
	HealthDrops   int
}

// advanceEntities moves every entity one tick and drops projectiles and
// power-ups that left the play area. Enemies past the bottom are removed by
// the resolver.
func advanceEntities(w World, height int) World {
	enemies := make([]Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		enemies = append(enemies, e.Move())
	}

	projectiles := make([]Projectile, 0, len(w.Projectiles))
	for _, p := range w.Projectiles {
		p = p.Move()
		if p.Y < 0 || p.Y > height {
			continue
		}
		projectiles = append(projectiles, p)
	}

	powerUps := make([]PowerUp, 0, len(w.PowerUps))
	for _, pu := range w.PowerUps {
		pu = pu.Move()
		if pu.Y > height {
			continue
		}
		powerUps = append(powerUps, pu)
	}

	w.Enemies = enemies
	w.Projectiles = projectiles
	w.PowerUps = powerUps
	return w
}

// Resolve settles all collisions for one tick in a fixed order:
// player/enemy contact, enemies past the bottom, projectile hits, then
// power-up pickups. Within each pass entities are visited in spawn order.
// rng is only consulted for health drops.
func Resolve(w World, rng *SimpleRNG, r Rules) (World, Outcome) {
	var out Outcome
	next := w

	// Player <-> enemy. Invulnerability is checked per enemy, so only the
	// first overlapping enemy of a tick lands a hit.
	player := w.Player
	for _, e := range w.Enemies {
		if player.Invulnerable(w.Now) || !player.Bounds().Intersects(e.Bounds()) {
			continue
		}
		var died, over bool
		player, died, over = takeDamage(player, e.Damage, w.Now, w.Level, r.InvulnerableMs)
		out.Hits++
		out.DamageTaken += e.Damage
		if died {
			out.LivesLost++
		}
		if over {
			out.GameOver = true
		}
	}

	// Enemies past the bottom leave without scoring.
	enemies := make([]Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.Y > r.Height {
			out.Escaped++
			continue
		}
		enemies = append(enemies, e)
	}

	// Projectile <-> enemy. A projectile hits at most one enemy.
	level := w.Level
	powerUps := make([]PowerUp, 0, len(w.PowerUps)+1)
	powerUps = append(powerUps, w.PowerUps...)
	dead := make([]bool, len(enemies))
	projectiles := make([]Projectile, 0, len(w.Projectiles))

	for _, p := range w.Projectiles {
		consumed := false
		for i := range enemies {
			if dead[i] || !p.Hits(enemies[i]) {
				continue
			}
			consumed = true

			e := &enemies[i]
			critical := p.Kind == e.Kind
			dmg := p.Damage
			if critical {
				dmg = e.MaxHealth
			}
			e.Health = max(e.Health-dmg, 0)

			if e.Health <= 0 {
				dead[i] = true
				pts := 10 * e.Difficulty
				if critical {
					pts = 20 * e.Difficulty
				}
				out.Kills = append(out.Kills, Kill{Enemy: *e, Critical: critical, Points: pts})
				out.Points += pts
				if level.AddPoints(pts) {
					out.LevelComplete = true
				}
				if rng.Chance(r.HealthDropChance) {
					powerUps = append(powerUps, NewPowerUp(PowerUpHealth, e.X, e.Y))
					out.HealthDrops++
				}
			}
			break
		}
		if !consumed {
			projectiles = append(projectiles, p)
		}
	}

	survivors := enemies[:0]
	for i, e := range enemies {
		if !dead[i] {
			survivors = append(survivors, e)
		}
	}

	// Player <-> power-up.
	remaining := make([]PowerUp, 0, len(powerUps))
	for _, pu := range powerUps {
		if player.Bounds().Intersects(pu.Bounds()) {
			player = applyPowerUp(player, pu.Type, w.Now, level, r.ShieldMs)
			out.Collected = append(out.Collected, pu.Type)
			continue
		}
		remaining = append(remaining, pu)
	}

	next.Player = player
	next.Enemies = survivors
	next.Projectiles = projectiles
	next.PowerUps = remaining
	next.Level = level
	return next, out
}

// takeDamage applies contact damage and opens the invulnerability window.
// Health floors at 0; draining it costs a life and refills health unless
// that was the last life.
func takeDamage(p Player, dmg int, now int64, lvl Level, invulnerableMs int) (Player, bool, bool) {
	mustf(dmg >= 0, "damage must be non-negative, got %d", dmg)
	p.Health = max(p.Health-max(dmg, 0), 0)
	p.InvulnerableUntil = now + int64(invulnerableMs)

	if p.Health > 0 {
		return p, false, false
	}
	p.Lives = max(p.Lives-1, 0)
	if p.Lives == 0 {
		return p, true, true
	}
	p.Health = lvl.PlayerMaxHealth()
	return p, true, false
}
