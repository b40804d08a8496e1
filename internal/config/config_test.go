package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600))
	return dir
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "8050", cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "spacex_launch_dash.csv", cfg.Dataset.Path)
	assert.True(t, cfg.Charts.ScatterSiteFilter)
	assert.Equal(t, "127.0.0.1:8050", cfg.Addr())
}

func TestLoad_FileValues(t *testing.T) {
	dir := writeConfig(t, `
host: 0.0.0.0
port: "9000"
log:
  level: debug
dataset:
  path: data/launches.csv
charts:
  scatter_site_filter: false
  width: 800
  height: 500
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "data/launches.csv", cfg.Dataset.Path)
	assert.False(t, cfg.Charts.ScatterSiteFilter)
	assert.Equal(t, 800, cfg.Charts.Width)
	assert.Equal(t, 500, cfg.Charts.Height)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "port: \"9000\"\n")
	t.Setenv("SPACEX_PORT", "9100")
	t.Setenv("SPACEX_DATASET_PATH", "/tmp/other.csv")
	t.Setenv("SPACEX_CHARTS_SCATTER_SITE_FILTER", "false")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "/tmp/other.csv", cfg.Dataset.Path)
	assert.False(t, cfg.Charts.ScatterSiteFilter)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		dir := writeConfig(t, "port: [unterminated\n")
		_, err := Load(dir)
		assert.Error(t, err)
	})
	t.Run("bad chart size", func(t *testing.T) {
		dir := writeConfig(t, "charts:\n  width: 0\n")
		_, err := Load(dir)
		assert.ErrorContains(t, err, "charts size")
	})
}
