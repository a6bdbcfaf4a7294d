package config

import (
	_ "embed"
)

//go:embed defaults/dinorun.yaml
var defaultDinoRunYAML []byte

// DefaultDinoRunConfig returns the hardcoded default configuration.
// It mirrors defaults/dinorun.yaml and is used if the embedded file cannot be parsed.
func DefaultDinoRunConfig() DinoRunConfig {
	return DinoRunConfig{
		Timing: Timing{
			TickMS: 100,
			JumpMS: 500,
		},
		Spawn: Spawn{
			ProjectileChance: 0.1,
			CoinChance:       0.1,
		},
		Player: Player{
			StartX: 8,
		},
		Gameplay: Gameplay{
			RestartResumes: false,
		},
		Notify: Notify{
			Enabled:   true,
			URL:       "http://192.168.4.1/move",
			TimeoutMS: 2000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDinoRunYAML
}
