// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"gopkg.in/yaml.v3"
)

// PlayerSize is the side of the player's square hitbox in world pixels.
const PlayerSize = 30

// ShifterConfig contains all configuration for Shape Shifter.
// Difficulty formulas are fixed; only geometry, timers and drop rates are tunable.
type ShifterConfig struct {
	PlayArea PlayAreaConfig `yaml:"play_area"`
	Player   PlayerConfig   `yaml:"player"`
	Timing   TimingConfig   `yaml:"timing"`
	Drops    DropConfig     `yaml:"drops"`
}

// PlayAreaConfig defines the world bounds in pixels.
type PlayAreaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's spawn point and baseline stats.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Speed  int `yaml:"speed"` // Pixels per move intent
	Lives  int `yaml:"lives"`
}

// TimingConfig defines every simulation timer in milliseconds.
type TimingConfig struct {
	TickMs           int `yaml:"tick_ms"`
	ShotDelayMs      int `yaml:"shot_delay_ms"`
	InvulnerableMs   int `yaml:"invulnerable_ms"`
	ShieldMs         int `yaml:"shield_ms"`
	SpeedBoostMs     int `yaml:"speed_boost_ms"`
	TransitionStepMs int `yaml:"transition_step_ms"`
}

// DropConfig defines random drop chances as percentages (0-100).
type DropConfig struct {
	PowerUpChance    int `yaml:"powerup_chance"`     // Per spawn tick
	HealthDropChance int `yaml:"health_drop_chance"` // Per enemy kill
}

// Accepted simulation tick lengths. The platform ticks once per tick_ms of
// real time, so this is also the frame interval.
const (
	MinTickMs = 5
	MaxTickMs = 100
)

// TickInterval returns the real-time length of one simulation tick.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMs) * time.Millisecond
}

// Validate reports every field that would break the simulation.
func (c ShifterConfig) Validate() error {
	var errs []error

	if c.PlayArea.Width < 60 || c.PlayArea.Height < 60 {
		errs = append(errs, fmt.Errorf("play area %dx%d is smaller than 60x60", c.PlayArea.Width, c.PlayArea.Height))
	}
	maxX, maxY := c.PlayArea.Width-PlayerSize, c.PlayArea.Height-PlayerSize
	if c.Player.StartX < 0 || c.Player.StartX > maxX || c.Player.StartY < 0 || c.Player.StartY > maxY {
		errs = append(errs, fmt.Errorf("player start (%d,%d) outside [0,%d]x[0,%d]",
			c.Player.StartX, c.Player.StartY, max(maxX, 0), max(maxY, 0)))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %d", c.Player.Speed))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player lives must be positive, got %d", c.Player.Lives))
	}

	timers := []struct {
		name string
		val  int
	}{
		{"tick_ms", c.Timing.TickMs},
		{"shot_delay_ms", c.Timing.ShotDelayMs},
		{"invulnerable_ms", c.Timing.InvulnerableMs},
		{"shield_ms", c.Timing.ShieldMs},
		{"speed_boost_ms", c.Timing.SpeedBoostMs},
		{"transition_step_ms", c.Timing.TransitionStepMs},
	}
	for _, tm := range timers {
		if tm.val <= 0 {
			errs = append(errs, fmt.Errorf("timing.%s must be positive, got %d", tm.name, tm.val))
		}
	}

	if c.Timing.TickMs > 0 && (c.Timing.TickMs < MinTickMs || c.Timing.TickMs > MaxTickMs) {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be in [%d,%d], got %d", MinTickMs, MaxTickMs, c.Timing.TickMs))
	}

	if c.Drops.PowerUpChance < 0 || c.Drops.PowerUpChance > 100 {
		errs = append(errs, fmt.Errorf("drops.powerup_chance out of range: %d", c.Drops.PowerUpChance))
	}
	if c.Drops.HealthDropChance < 0 || c.Drops.HealthDropChance > 100 {
		errs = append(errs, fmt.Errorf("drops.health_drop_chance out of range: %d", c.Drops.HealthDropChance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid shifter config: %w", errors.Join(errs...))
	}
	return nil
}

// Digest returns a short stable fingerprint of the config.
// Recorded runs store it so a replay can tell it is using different settings.
func (c ShifterConfig) Digest() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return ""
	}
	h := fnv.New64a()
	h.Write(data) //nolint:errcheck // hash.Hash never returns an error
	return fmt.Sprintf("%016x", h.Sum64())
}
