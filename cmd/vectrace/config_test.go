package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplevector/vector"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, vector.DefaultMaxCapacity, cfg.MaxCapacity)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "pushes: 100\nreserve: 8\nformat: yaml\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Pushes)
	require.Equal(t, 8, cfg.Reserve)
	require.Equal(t, formatYAML, cfg.Format)
	require.Equal(t, "info", cfg.LogLevel) // untouched default
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "pushes: 1\nunknown_field: true\n"))
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.apply(overrides{pushes: -1, reserve: 4, maxCapacity: -1, format: "", logLevel: "debug"})

	require.Equal(t, DefaultConfig().Pushes, cfg.Pushes)
	require.Equal(t, 4, cfg.Reserve)
	require.Equal(t, vector.DefaultMaxCapacity, cfg.MaxCapacity)
	require.Equal(t, formatTable, cfg.Format)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"pushes", func(c *Config) { c.Pushes = -1 }, errBadPushes},
		{"reserve", func(c *Config) { c.Reserve = -1 }, errBadReserve},
		{"ceiling", func(c *Config) { c.MaxCapacity = -1 }, errBadCeiling},
		{"format", func(c *Config) { c.Format = "json" }, errBadFormat},
		{"log level", func(c *Config) { c.LogLevel = "trace" }, errBadLogLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}
