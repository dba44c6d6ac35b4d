package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	p := cfg.params()
	require.Equal(t, 25, p.Ants)
	require.Equal(t, 5, p.Elite)
	require.Equal(t, 40, p.Iterations)
	require.Equal(t, 0.63, p.Decay)
	require.Equal(t, 1.71, p.Alpha)
	require.Equal(t, 1.01, p.Beta)
	require.NoError(t, p.Validate())
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ants": 12, "decay": 0.3, "store": "sqlite"}`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Ants)
	require.Equal(t, 0.3, cfg.Decay)
	require.Equal(t, "sqlite", cfg.Store)
	require.Equal(t, 5, cfg.Elite, "absent keys keep defaults")
	require.Equal(t, 40, cfg.Iterations)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	_, err = loadConfig(path)
	require.Error(t, err)
}

func TestRunFlags_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ants": 30, "elite": 6, "beta": 4}`), 0o644))

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	resolve := runFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-ants", "7", "-exact", "-db", "x.db"}))

	cfg, err := resolve()
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Ants, "flag wins over file")
	require.Equal(t, 6, cfg.Elite, "file wins over default")
	require.Equal(t, 4.0, cfg.Beta)
	require.True(t, cfg.Exact)
	require.Equal(t, "x.db", cfg.DBPath)
	require.Equal(t, 40, cfg.Iterations)
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)

	lvl, err = parseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)

	_, err = parseLevel("loud")
	require.Error(t, err)
}
