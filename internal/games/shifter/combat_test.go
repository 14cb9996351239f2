package shifter

import "testing"

func testRules() Rules {
	return Rules{
		Width:            500,
		Height:           500,
		InvulnerableMs:   1500,
		ShieldMs:         5000,
		HealthDropChance: 0,
	}
}

func testPlayer() Player {
	return Player{X: 250, Y: 400, Kind: Circle, Health: 100, MaxHealth: 100, Lives: 3, Speed: 8}
}

func TestResolveCriticalHit(t *testing.T) {
	enemy := NewEnemy(Circle, 100, NewLevel(1)).At(100, 100)
	w := World{
		Now:         1000,
		Player:      testPlayer(),
		Enemies:     []Enemy{enemy},
		Projectiles: []Projectile{{X: 110, Y: 110, DY: -20, Kind: Circle, Damage: ProjectileDamage}},
		Level:       NewLevel(1),
	}

	next, out := Resolve(w, NewSimpleRNG(1), testRules())

	if len(next.Enemies) != 0 {
		t.Errorf("critical hit should kill, %d enemies left", len(next.Enemies))
	}
	if len(next.Projectiles) != 0 {
		t.Error("projectile should be consumed")
	}
	if out.Points != 20 || len(out.Kills) != 1 || !out.Kills[0].Critical {
		t.Errorf("expected one critical kill worth 20, got %+v", out)
	}
	if next.Level.CurrentPoints() != 20 {
		t.Errorf("level points = %d, expected 20", next.Level.CurrentPoints())
	}
	// Inputs are untouched
	if w.Enemies[0].Health != 30 || len(w.Projectiles) != 1 {
		t.Error("Resolve must not mutate its input slices")
	}
}

func TestResolveCriticalAlwaysKills(t *testing.T) {
	for _, n := range []int{1, 5, 20} {
		for _, kind := range []Shape{Circle, Triangle, Cube} {
			enemy := NewEnemy(kind, 0, NewLevel(n)).At(200, 200)
			w := World{
				Player:      testPlayer(),
				Enemies:     []Enemy{enemy},
				Projectiles: []Projectile{{X: 215, Y: 215, Kind: kind, Damage: ProjectileDamage}},
				Level:       NewLevel(n),
			}
			_, out := Resolve(w, NewSimpleRNG(1), testRules())
			if len(out.Kills) != 1 || out.Points != 20*kind.Difficulty() {
				t.Errorf("level %d %s: critical kill = %+v", n, kind, out)
			}
		}
	}
}

func TestResolveNormalHit(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		wantKill   bool
		wantHealth int
		wantPoints int
	}{
		{"damages", 30, false, 25, 0},
		{"kills at exactly zero", 5, true, 0, 10},
		{"kills with overkill", 3, true, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enemy := NewEnemy(Circle, 0, NewLevel(1)).At(100, 100)
			enemy.Health = tt.health
			w := World{
				Player:      testPlayer(),
				Enemies:     []Enemy{enemy},
				Projectiles: []Projectile{{X: 100, Y: 100, Kind: Triangle, Damage: ProjectileDamage}},
				Level:       NewLevel(1),
			}
			next, out := Resolve(w, NewSimpleRNG(1), testRules())

			if got := len(out.Kills) == 1; got != tt.wantKill {
				t.Fatalf("kill = %v, expected %v", got, tt.wantKill)
			}
			if out.Points != tt.wantPoints {
				t.Errorf("points = %d, expected %d", out.Points, tt.wantPoints)
			}
			if !tt.wantKill && next.Enemies[0].Health != tt.wantHealth {
				t.Errorf("health = %d, expected %d", next.Enemies[0].Health, tt.wantHealth)
			}
			if tt.wantKill && out.Kills[0].Enemy.Health != 0 {
				t.Errorf("health should floor at 0, got %d", out.Kills[0].Enemy.Health)
			}
			if len(next.Projectiles) != 0 {
				t.Error("projectile should be consumed on hit")
			}
		})
	}
}

func TestResolveProjectileHitsFirstEnemyOnly(t *testing.T) {
	a := NewEnemy(Cube, 0, NewLevel(1)).At(100, 100)
	b := NewEnemy(Cube, 0, NewLevel(1)).At(105, 105)
	w := World{
		Player:      testPlayer(),
		Enemies:     []Enemy{a, b},
		Projectiles: []Projectile{{X: 110, Y: 110, Kind: Circle, Damage: ProjectileDamage}},
		Level:       NewLevel(1),
	}
	next, _ := Resolve(w, NewSimpleRNG(1), testRules())

	if next.Enemies[0].Health != 45 || next.Enemies[1].Health != 50 {
		t.Errorf("only the first enemy in spawn order should be hit, healths = %d, %d",
			next.Enemies[0].Health, next.Enemies[1].Health)
	}
}

func TestResolveProjectileEdgesInclusive(t *testing.T) {
	enemy := NewEnemy(Circle, 0, NewLevel(1)).At(100, 100)
	for _, pt := range [][2]int{{100, 100}, {130, 130}, {130, 100}, {100, 130}} {
		w := World{
			Player:      testPlayer(),
			Enemies:     []Enemy{enemy},
			Projectiles: []Projectile{{X: pt[0], Y: pt[1], Kind: Circle, Damage: ProjectileDamage}},
			Level:       NewLevel(1),
		}
		if _, out := Resolve(w, NewSimpleRNG(1), testRules()); len(out.Kills) != 1 {
			t.Errorf("projectile at %v should hit the enemy box edge", pt)
		}
	}

	w := World{
		Player:      testPlayer(),
		Enemies:     []Enemy{enemy},
		Projectiles: []Projectile{{X: 131, Y: 100, Kind: Circle, Damage: ProjectileDamage}},
		Level:       NewLevel(1),
	}
	if next, _ := Resolve(w, NewSimpleRNG(1), testRules()); len(next.Projectiles) != 1 {
		t.Error("projectile outside the box should miss")
	}
}

func TestResolveContactDamage(t *testing.T) {
	p := testPlayer()
	p.Health = 10
	enemy := NewEnemy(Circle, 0, NewLevel(1)).At(p.X, p.Y)

	w := World{Now: 2000, Player: p, Enemies: []Enemy{enemy}, Level: NewLevel(1)}
	next, out := Resolve(w, NewSimpleRNG(1), testRules())

	if next.Player.Health != 5 || next.Player.Lives != 3 {
		t.Errorf("health/lives = %d/%d, expected 5/3", next.Player.Health, next.Player.Lives)
	}
	if !next.Player.Invulnerable(2000) || next.Player.InvulnerableUntil != 3500 {
		t.Errorf("player should be invulnerable until 3500, got %d", next.Player.InvulnerableUntil)
	}
	if out.Hits != 1 {
		t.Errorf("hits = %d, expected 1", out.Hits)
	}

	// Another hit inside the window is blocked.
	w = World{Now: 2100, Player: next.Player, Enemies: next.Enemies, Level: NewLevel(1)}
	again, out := Resolve(w, NewSimpleRNG(1), testRules())
	if again.Player.Health != 5 || out.Hits != 0 {
		t.Errorf("invulnerable player took damage: health=%d hits=%d", again.Player.Health, out.Hits)
	}

	// Window elapsed.
	w.Now = 3500
	later, out := Resolve(w, NewSimpleRNG(1), testRules())
	if out.Hits != 1 || later.Player.Lives != 2 || later.Player.Health != 100 {
		t.Errorf("after the window: hits=%d lives=%d health=%d, expected 1/2/100",
			out.Hits, later.Player.Lives, later.Player.Health)
	}
}

func TestResolveOverlappingEnemiesHitOnce(t *testing.T) {
	p := testPlayer()
	p.Health = 10
	var enemies []Enemy
	for i := range 4 {
		enemies = append(enemies, NewEnemy(Cube, 0, NewLevel(1)).At(p.X+i, p.Y+i))
	}

	next, out := Resolve(World{Player: p, Enemies: enemies, Level: NewLevel(1)}, NewSimpleRNG(1), testRules())
	if out.Hits != 1 || next.Player.Health != 100 || next.Player.Lives != 2 {
		t.Errorf("expected a single lethal hit: hits=%d health=%d lives=%d", out.Hits, next.Player.Health, next.Player.Lives)
	}
	if out.LivesLost != 1 {
		t.Errorf("lives lost = %d, expected 1", out.LivesLost)
	}
}

func TestResolveLastLifeGameOver(t *testing.T) {
	p := testPlayer()
	p.Health = 3
	p.Lives = 1
	enemy := NewEnemy(Cube, 0, NewLevel(1)).At(p.X, p.Y)

	next, out := Resolve(World{Player: p, Enemies: []Enemy{enemy}, Level: NewLevel(1)}, NewSimpleRNG(1), testRules())
	if !out.GameOver {
		t.Fatal("expected game over")
	}
	if next.Player.Lives != 0 || next.Player.Health != 0 {
		t.Errorf("lives/health = %d/%d, expected 0/0", next.Player.Lives, next.Player.Health)
	}
}

func TestResolveEnemyPastBottom(t *testing.T) {
	w := World{
		Player: testPlayer(),
		Enemies: []Enemy{
			NewEnemy(Circle, 0, NewLevel(1)).At(10, 500),
			NewEnemy(Circle, 0, NewLevel(1)).At(10, 501),
		},
		Level: NewLevel(1),
	}
	next, out := Resolve(w, NewSimpleRNG(1), testRules())
	if len(next.Enemies) != 1 || next.Enemies[0].Y != 500 {
		t.Errorf("only the enemy below y=500 should leave, remaining %+v", next.Enemies)
	}
	if out.Escaped != 1 || out.Points != 0 {
		t.Errorf("escape should not score: %+v", out)
	}
}

func TestResolvePowerUps(t *testing.T) {
	lvl := NewLevel(1)
	tests := []struct {
		name  string
		typ   PowerUpType
		setup func(*Player)
		check func(*testing.T, Player)
	}{
		{"health adds 25", PowerUpHealth, func(p *Player) { p.Health = 50 }, func(t *testing.T, p Player) {
			if p.Health != 75 {
				t.Errorf("health = %d, expected 75", p.Health)
			}
		}},
		{"health caps at level max", PowerUpHealth, func(p *Player) { p.Health = 90 }, func(t *testing.T, p Player) {
			if p.Health != 100 {
				t.Errorf("health = %d, expected 100", p.Health)
			}
		}},
		{"shield opens 5s window", PowerUpShield, func(p *Player) { p.InvulnerableUntil = 1200 }, func(t *testing.T, p Player) {
			if p.InvulnerableUntil != 6000 {
				t.Errorf("invulnerable until %d, expected 6000", p.InvulnerableUntil)
			}
		}},
		{"shield keeps a longer window", PowerUpShield, func(p *Player) { p.InvulnerableUntil = 9000 }, func(t *testing.T, p Player) {
			if p.InvulnerableUntil != 9000 {
				t.Errorf("invulnerable until %d, expected 9000", p.InvulnerableUntil)
			}
		}},
		{"speed adds 2", PowerUpSpeed, nil, func(t *testing.T, p Player) {
			if p.Speed != 10 {
				t.Errorf("speed = %d, expected 10", p.Speed)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			if tt.setup != nil {
				tt.setup(&p)
			}
			w := World{
				Now:      1000,
				Player:   p,
				PowerUps: []PowerUp{NewPowerUp(tt.typ, p.X+5, p.Y+5), NewPowerUp(tt.typ, 10, 10)},
				Level:    lvl,
			}
			next, out := Resolve(w, NewSimpleRNG(1), testRules())
			if len(out.Collected) != 1 || out.Collected[0] != tt.typ {
				t.Fatalf("collected = %v, expected [%s]", out.Collected, tt.typ)
			}
			if len(next.PowerUps) != 1 {
				t.Errorf("collected power-up should be removed, %d left", len(next.PowerUps))
			}
			tt.check(t, next.Player)
		})
	}
}

func TestResolveLevelComplete(t *testing.T) {
	lvl := NewLevel(1)
	lvl.AddPoints(490)
	w := World{
		Player:      testPlayer(),
		Enemies:     []Enemy{NewEnemy(Circle, 0, lvl).At(50, 50)},
		Projectiles: []Projectile{{X: 60, Y: 60, Kind: Circle, Damage: ProjectileDamage}},
		Level:       lvl,
	}
	next, out := Resolve(w, NewSimpleRNG(1), testRules())
	if !out.LevelComplete {
		t.Error("510/500 points should complete the level")
	}
	if next.Level.CurrentPoints() != 510 {
		t.Errorf("level points = %d, expected 510", next.Level.CurrentPoints())
	}
}

func TestResolveHealthDrop(t *testing.T) {
	rules := testRules()
	rules.HealthDropChance = 100
	w := World{
		Player:      testPlayer(),
		Enemies:     []Enemy{NewEnemy(Triangle, 0, NewLevel(1)).At(40, 60)},
		Projectiles: []Projectile{{X: 50, Y: 70, Kind: Triangle, Damage: ProjectileDamage}},
		Level:       NewLevel(1),
	}
	next, out := Resolve(w, NewSimpleRNG(1), rules)
	if out.HealthDrops != 1 || len(next.PowerUps) != 1 {
		t.Fatalf("expected one health drop, got %d (%d power-ups)", out.HealthDrops, len(next.PowerUps))
	}
	drop := next.PowerUps[0]
	if drop.Type != PowerUpHealth || drop.X != 40 || drop.Y != 60 {
		t.Errorf("drop = %+v, expected Health at (40, 60)", drop)
	}
}

func TestAdvanceEntities(t *testing.T) {
	w := World{
		Enemies: []Enemy{NewEnemy(Circle, 0, NewLevel(1)).At(0, 0)},
		Projectiles: []Projectile{
			{X: 10, Y: 100, DY: -20},
			{X: 10, Y: 15, DY: -20}, // leaves through the top
			{X: 10, Y: 100, DX: 1, DY: -19},
		},
		PowerUps: []PowerUp{NewPowerUp(PowerUpShield, 0, 0), NewPowerUp(PowerUpShield, 0, 500)},
	}

	next := advanceEntities(w, 500)

	if next.Enemies[0].Y != 2 {
		t.Errorf("enemy y = %d, expected 2", next.Enemies[0].Y)
	}
	if len(next.Projectiles) != 2 || next.Projectiles[0].Y != 80 || next.Projectiles[1].X != 11 {
		t.Errorf("projectiles = %+v", next.Projectiles)
	}
	if len(next.PowerUps) != 1 || next.PowerUps[0].Y != 1 {
		t.Errorf("power-ups = %+v", next.PowerUps)
	}
	if w.Enemies[0].Y != 0 {
		t.Error("advanceEntities must not mutate its input")
	}
}

func TestEnemySubPixelMovement(t *testing.T) {
	e := NewEnemy(Circle, 0, NewLevel(6)) // speed 3.0
	for range 10 {
		e = e.Move()
	}
	if e.Y != 30 {
		t.Errorf("after 10 ticks at 3px y = %d, expected 30", e.Y)
	}

	pu := NewPowerUp(PowerUpHealth, 0, 0)
	pu = pu.Move().Move().Move()
	if pu.Y != 4 {
		t.Errorf("power-up y after 3 ticks = %d, expected 4", pu.Y)
	}
}
