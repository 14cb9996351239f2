package shifter

// Power-up effect amounts.
const (
	healthPowerUpAmount = 25
	speedPowerUpBoost   = 2
)

// applyPowerUp returns the player after collecting a power-up at now.
// The speed boost's expiry is scheduled by the caller.
func applyPowerUp(p Player, t PowerUpType, now int64, lvl Level, shieldMs int) Player {
	switch t {
	case PowerUpHealth:
		p.Health = min(p.Health+healthPowerUpAmount, lvl.PlayerMaxHealth())
	case PowerUpShield:
		p.InvulnerableUntil = max(p.InvulnerableUntil, now+int64(shieldMs))
	case PowerUpSpeed:
		p.Speed += speedPowerUpBoost
	}
	return p
}

// revertSpeedBoost undoes one speed boost. Each pickup schedules its own
// revert, so stacked boosts unwind one at a time and never drop below the
// baseline.
func revertSpeedBoost(p Player, baseline int) Player {
	p.Speed = max(baseline, p.Speed-speedPowerUpBoost)
	return p
}
