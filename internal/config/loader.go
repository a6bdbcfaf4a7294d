package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "dinorun.yaml"

// GridWidth is the number of columns a start position must fit in.
const GridWidth = 16

// LoadDinoRun loads the game configuration.
// Search order: customPath -> ~/.dinorun/configs/dinorun.yaml -> ./configs/dinorun.yaml -> embedded default
func LoadDinoRun(customPath string) (DinoRunConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", ConfigFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDinoRunYAML)
	if err != nil {
		return DefaultDinoRunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and validates a single config file.
// Keys missing from the file keep their default values.
func LoadFile(path string) (DinoRunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DinoRunConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return DinoRunConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (DinoRunConfig, error) {
	cfg := DefaultDinoRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value in the config.
func (c DinoRunConfig) Validate() error {
	var errs []error

	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.JumpMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.jump_ms must be positive, got %d", c.Timing.JumpMS))
	}
	if c.Spawn.ProjectileChance < 0 || c.Spawn.ProjectileChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.projectile_chance must be in [0, 1], got %g", c.Spawn.ProjectileChance))
	}
	if c.Spawn.CoinChance < 0 || c.Spawn.CoinChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.coin_chance must be in [0, 1], got %g", c.Spawn.CoinChance))
	}
	if c.Player.StartX < 0 || c.Player.StartX >= GridWidth {
		errs = append(errs, fmt.Errorf("player.start_x must be in [0, %d], got %d", GridWidth-1, c.Player.StartX))
	}
	if c.Notify.Enabled {
		if u, err := url.Parse(c.Notify.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("notify.url must be an absolute URL, got %q", c.Notify.URL))
		}
		if c.Notify.TimeoutMS <= 0 {
			errs = append(errs, fmt.Errorf("notify.timeout_ms must be positive, got %d", c.Notify.TimeoutMS))
		}
	}

	return errors.Join(errs...)
}

// Locate returns the config file LoadDinoRun would read, or "" when it would
// fall back to the embedded default.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dinorun", "configs", filename)
}
