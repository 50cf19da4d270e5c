// Package config loads the smokefree TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/utils"
)

// Config holds all application configuration.
type Config struct {
	Storage       StorageConfig       `toml:"storage"`
	Logging       LoggingConfig       `toml:"logging"`
	Display       DisplayConfig       `toml:"display"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// StorageConfig selects the document store.
type StorageConfig struct {
	Backend string `toml:"backend"`
	// Path is a file path for sqlite/json, or a connection string without
	// credentials for postgres.
	Path string `toml:"path"`
}

// LoggingConfig controls the rotating log file.
type LoggingConfig struct {
	Debug      bool `toml:"debug"`
	MaxSizeMB  int  `toml:"max_size_mb"`
	MaxBackups int  `toml:"max_backups"`
	MaxAgeDays int  `toml:"max_age_days"`
}

type DisplayConfig struct {
	Currency string `toml:"currency"`
	Timezone string `toml:"timezone"`
}

type NotificationsConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: constants.BackendSQLite,
			Path:    constants.DefaultDBPath,
		},
		Logging: LoggingConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Display: DisplayConfig{
			Currency: constants.DefaultCurrency,
			Timezone: constants.DefaultTimezone,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
	}
}

// Load reads the config at path, falling back to defaults when the file does
// not exist. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	path = utils.ExpandPath(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	path = utils.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks values that would otherwise fail much later.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case constants.BackendSQLite, constants.BackendJSON, constants.BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend %q (want sqlite, json or postgres)", c.Storage.Backend)
	}
	if !utils.ValidateTimezone(c.Display.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Display.Timezone)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging limits must not be negative")
	}
	return nil
}

// Location resolves the display timezone.
func (c Config) Location() *time.Location {
	loc, err := utils.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
