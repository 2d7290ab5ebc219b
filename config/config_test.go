package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "first run must write the default config file")
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Calendar.WeekFirstHour = 8
	cfg.Calendar.WeekLastHour = 22
	cfg.Cache.Enabled = false
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestNormalize_RepairsInvalidHours(t *testing.T) {
	cfg := &Config{Calendar: CalendarConfig{WeekFirstHour: 22, WeekLastHour: 3}}
	cfg.Normalize()
	assert.Equal(t, 7, cfg.Calendar.WeekFirstHour)
	assert.Equal(t, 19, cfg.Calendar.WeekLastHour)
	assert.Equal(t, 15, cfg.Cache.TTLMinutes)
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	engineCfg := cfg.EngineConfig()
	assert.True(t, engineCfg.CacheEnabled)
	assert.Equal(t, 15*time.Minute, engineCfg.Cache.TTL)
	assert.Equal(t, 256, engineCfg.Cache.MaxEntries)

	cfg.Cache.Enabled = false
	assert.False(t, cfg.EngineConfig().CacheEnabled)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calendar:\n  - not\n  - a-struct\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
