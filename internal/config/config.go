package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the full renoplan configuration
type Config struct {
	State   StateConfig   `json:"state"`
	Backup  BackupConfig  `json:"backup"`
	Display DisplayConfig `json:"display"`
}

// StateConfig controls where the durable records live
type StateConfig struct {
	Dir string `json:"dir"`
}

// BackupConfig controls export/import behaviour
type BackupConfig struct {
	Dir string `json:"dir"`
}

// DisplayConfig contains dashboard settings
type DisplayConfig struct {
	// ReferenceDate pins "today" for deadline countdowns (YYYY-MM-DD).
	// Empty means the live clock.
	ReferenceDate string `json:"referenceDate"`
	UpcomingCount int    `json:"upcomingCount"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		State: StateConfig{
			Dir: filepath.Join(homeDir, ".renoplan"),
		},
		Backup: BackupConfig{
			Dir: ".",
		},
		Display: DisplayConfig{
			ReferenceDate: "",
			UpcomingCount: 7,
		},
	}
}

// LoadConfig loads configuration from .renoplan.json in dir, falling back
// to defaults when the file is absent. Missing fields are merged with
// defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".renoplan.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.State.Dir == "" {
		cfg.State.Dir = defaults.State.Dir
	}
	if cfg.Backup.Dir == "" {
		cfg.Backup.Dir = defaults.Backup.Dir
	}
	if cfg.Display.UpcomingCount == 0 {
		cfg.Display.UpcomingCount = defaults.Display.UpcomingCount
	}

	return cfg
}

// ReferenceTime resolves the countdown reference date: the pinned date if
// configured and parseable, otherwise now.
func (c *Config) ReferenceTime(now time.Time) time.Time {
	if c.Display.ReferenceDate == "" {
		return now
	}
	ref, err := time.Parse("2006-01-02", c.Display.ReferenceDate)
	if err != nil {
		return now
	}
	return ref
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
