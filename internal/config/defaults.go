package config

import (
	_ "embed"
)

//go:embed defaults/shifter.yaml
var defaultShifterYAML []byte

// DefaultShifterConfig returns the default Shape Shifter configuration.
// It mirrors defaults/shifter.yaml and is used when the embedded file
// cannot be parsed.
func DefaultShifterConfig() ShifterConfig {
	return ShifterConfig{
		PlayArea: PlayAreaConfig{
			Width:  500,
			Height: 500,
		},
		Player: PlayerConfig{
			StartX: 250,
			StartY: 400,
			Speed:  8,
			Lives:  3,
		},
		Timing: TimingConfig{
			TickMs:           16,
			ShotDelayMs:      200,
			InvulnerableMs:   1500,
			ShieldMs:         5000,
			SpeedBoostMs:     10000,
			TransitionStepMs: 50,
		},
		Drops: DropConfig{
			PowerUpChance:    10,
			HealthDropChance: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shifter":
		return defaultShifterYAML
	default:
		return nil
	}
}
