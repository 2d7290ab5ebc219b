// Package config provides YAML-backed application configuration for
// programs embedding the engine: week view hour bounds and expansion
// cache tuning.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lfmelo/agenda/schedule"
)

// CalendarConfig controls the grid views.
type CalendarConfig struct {
	// WeekFirstHour / WeekLastHour are the inclusive hour bounds of the
	// week view rows.
	WeekFirstHour int `yaml:"week_first_hour"`
	WeekLastHour  int `yaml:"week_last_hour"`
}

// CacheConfig controls the expansion result cache.
type CacheConfig struct {
	Enabled        bool `yaml:"enabled"`
	TTLMinutes     int  `yaml:"ttl_minutes"`
	MaxEntries     int  `yaml:"max_entries"`
	CleanupMinutes int  `yaml:"cleanup_minutes"`
}

// Config is the top-level application configuration.
type Config struct {
	Calendar CalendarConfig `yaml:"calendar"`
	Cache    CacheConfig    `yaml:"cache"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			WeekFirstHour: 7,
			WeekLastHour:  19,
		},
		Cache: CacheConfig{
			Enabled:        true,
			TTLMinutes:     15,
			MaxEntries:     256,
			CleanupMinutes: 5,
		},
	}
}

// Normalize fills in missing or out-of-range values so partially
// filled configs still behave correctly.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	if c.Calendar.WeekFirstHour < 0 || c.Calendar.WeekLastHour > 23 ||
		c.Calendar.WeekFirstHour > c.Calendar.WeekLastHour ||
		(c.Calendar.WeekFirstHour == 0 && c.Calendar.WeekLastHour == 0) {
		c.Calendar = defaults.Calendar
	}
	if c.Cache.TTLMinutes <= 0 {
		c.Cache.TTLMinutes = defaults.Cache.TTLMinutes
	}
	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = defaults.Cache.MaxEntries
	}
	if c.Cache.CleanupMinutes <= 0 {
		c.Cache.CleanupMinutes = defaults.Cache.CleanupMinutes
	}
}

// EngineConfig maps the cache section onto a schedule.EngineConfig.
func (c *Config) EngineConfig() schedule.EngineConfig {
	if !c.Cache.Enabled {
		return schedule.DisabledCacheConfig
	}
	return schedule.EngineConfig{
		CacheEnabled: true,
		Cache: schedule.CacheConfig{
			TTL:             time.Duration(c.Cache.TTLMinutes) * time.Minute,
			MaxEntries:      c.Cache.MaxEntries,
			CleanupInterval: time.Duration(c.Cache.CleanupMinutes) * time.Minute,
		},
	}
}

// Load loads configuration from the given YAML path. A missing file is
// created with defaults on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration to the given path, creating the parent
// directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
