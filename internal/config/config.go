// Package config loads the optional config.toml next to the database. Every
// field has a working default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"habitual/internal/constants"
	"habitual/internal/eligibility"
	"habitual/internal/report"
	"habitual/internal/scoring"
)

type Config struct {
	Scoring     scoring.Config     `toml:"scoring"`
	Eligibility eligibility.Config `toml:"eligibility"`
	Rewards     []report.Tier      `toml:"rewards"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Scoring:     scoring.DefaultConfig(),
		Eligibility: eligibility.DefaultConfig(),
		Rewards:     report.DefaultTiers(),
	}
}

// Path returns the config file location for a database path: config.toml in
// the same directory.
func Path(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), constants.ConfigFileName)
}

// Load reads the config file at path, filling unset sections with defaults.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.Rewards) == 0 {
		cfg.Rewards = report.DefaultTiers()
	}
	return cfg, nil
}
