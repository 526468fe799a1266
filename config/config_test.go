package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), cfg.Sim.Seed)
	assert.Equal(t, 500, cfg.Sim.Capacity)
	assert.Equal(t, 1, cfg.Sim.Depth)
	assert.Equal(t, 50, cfg.Sim.TickMillis)
	assert.False(t, cfg.Sim.Hellfire)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "missile-journal.db", cfg.Journal.Path)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 40, cfg.Level.Width)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missile.toml")
	body := `
[sim]
seed = 99
depth = 16
hellfire = true

[log]
level = "debug"

[level]
width = 64
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(99), cfg.Sim.Seed)
	assert.Equal(t, 16, cfg.Sim.Depth)
	assert.True(t, cfg.Sim.Hellfire)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 64, cfg.Level.Width)
	assert.Equal(t, 40, cfg.Level.Height)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VIMISSILE_SIM_CAPACITY", "12")
	t.Setenv("VIMISSILE_JOURNAL_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Sim.Capacity)
	assert.True(t, cfg.Journal.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/missile.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidDepth(t *testing.T) {
	t.Setenv("VIMISSILE_SIM_DEPTH", "40")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sim.depth")
}
