// Package config holds application settings: dataset locations, the query
// history database path, and the default result limit. Values come from
// Default(), optionally overridden by a YAML file, then by CLI flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application settings (in-memory representation).
type Config struct {
	NEOPath string `yaml:"neo_path"` // NEO dataset (CSV)
	CADPath string `yaml:"cad_path"` // close-approach dataset (JSON)
	DBPath  string `yaml:"db_path"`  // query history store (SQLite)
	Limit   int    `yaml:"limit"`    // default max results for query output
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		NEOPath: "data/neos.csv",
		CADPath: "data/cad.json",
		DBPath:  "neoscout.db",
		Limit:   10,
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Limit < 0 {
		return nil, fmt.Errorf("config: limit must not be negative, got %d", cfg.Limit)
	}
	return cfg, nil
}
