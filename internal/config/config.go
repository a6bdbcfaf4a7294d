// Package config provides YAML-based game configuration loading for Dino Run.
package config

import "time"

// DinoRunConfig contains all tunables for the game.
type DinoRunConfig struct {
	Timing   Timing   `yaml:"timing"`
	Spawn    Spawn    `yaml:"spawn"`
	Player   Player   `yaml:"player"`
	Gameplay Gameplay `yaml:"gameplay"`
	Notify   Notify   `yaml:"notify"`
}

// Timing defines the real-time pacing of the game.
type Timing struct {
	TickMS int `yaml:"tick_ms"` // Period of the simulation tick
	JumpMS int `yaml:"jump_ms"` // Time spent at the jump apex
}

// TickInterval returns the tick period as a duration.
func (t Timing) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// JumpDuration returns the jump delay as a duration.
func (t Timing) JumpDuration() time.Duration {
	return time.Duration(t.JumpMS) * time.Millisecond
}

// Spawn defines per-tick spawn probabilities.
type Spawn struct {
	ProjectileChance float64 `yaml:"projectile_chance"`
	CoinChance       float64 `yaml:"coin_chance"`
}

// Player defines where a round starts. The player always starts on the ground row.
type Player struct {
	StartX int `yaml:"start_x"`
}

// Gameplay holds rule switches.
type Gameplay struct {
	// RestartResumes makes restart clear the game-over flag.
	// When false, restart resets the board but leaves the game over.
	RestartResumes bool `yaml:"restart_resumes"`
}

// Notify configures the outbound movement notification.
type Notify struct {
	Enabled   bool   `yaml:"enabled"`
	URL       string `yaml:"url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Timeout returns the request timeout as a duration.
func (n Notify) Timeout() time.Duration {
	return time.Duration(n.TimeoutMS) * time.Millisecond
}
