package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/tetramino/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse("tetramino", nil, env(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseEnvironment(t *testing.T) {
	cfg, err := config.Parse("tetramino", nil, env(map[string]string{
		"TETRAMINO_FRONTEND":  "Terminal",
		"TETRAMINO_SEED":      "1234",
		"LOG_LEVEL":           "debug",
		"TETRAMINO_LOG_FILE":  "/tmp/tetramino.log",
		"TETRAMINO_SOUND_DIR": "/usr/share/tetramino",
		"TETRAMINO_VOLUME":    "0.25",
		"TETRAMINO_MUTE":      "true",
		"TETRAMINO_DEMO":      "1",
		"TETRAMINO_SCALE":     "3",
		"TETRAMINO_TPS":       "30",
	}))
	require.NoError(t, err)

	assert.Equal(t, config.FrontendTerminal, cfg.Frontend)
	assert.EqualValues(t, 1234, cfg.Seed)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/tmp/tetramino.log", cfg.LogFile)
	assert.Equal(t, "/usr/share/tetramino", cfg.SoundDir)
	assert.InDelta(t, 0.25, cfg.Volume, 1e-9)
	assert.True(t, cfg.Mute)
	assert.True(t, cfg.Demo)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, 30, cfg.TPS)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	lookup := env(map[string]string{
		"TETRAMINO_SEED":      "1",
		"LOG_LEVEL":           "debug",
		"TETRAMINO_LOG_LEVEL": "warn",
	})

	cfg, err := config.Parse("tetramino", []string{"-seed", "9", "-frontend", "terminal", "-debug"}, lookup)
	require.NoError(t, err)
	assert.EqualValues(t, 9, cfg.Seed)
	assert.Equal(t, config.FrontendTerminal, cfg.Frontend)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel, "prefixed variable wins")
	assert.True(t, cfg.Debug)

	cfg, err = config.Parse("tetramino", []string{"-log-level", "error"}, lookup)
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, cfg.LogLevel)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]struct {
		args []string
		env  map[string]string
	}{
		"bad seed":       {env: map[string]string{"TETRAMINO_SEED": "-4"}},
		"bad bool":       {env: map[string]string{"TETRAMINO_MUTE": "loud"}},
		"bad env level":  {env: map[string]string{"LOG_LEVEL": "chatty"}},
		"bad flag level": {args: []string{"-log-level", "chatty"}},
		"unknown flag":   {args: []string{"-nope"}},
		"frontend":       {args: []string{"-frontend", "vr"}},
		"volume":         {args: []string{"-volume", "1.5"}},
		"scale":          {args: []string{"-scale", "0"}},
		"tps":            {env: map[string]string{"TETRAMINO_TPS": "0"}},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse("tetramino", c.args, env(c.env))
			assert.Error(t, err)
		})
	}
}

func TestEnvErrorNamesVariable(t *testing.T) {
	_, err := config.Parse("tetramino", nil, env(map[string]string{"TETRAMINO_SCALE": "big"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TETRAMINO_SCALE")
}

func TestLoadDotenv(t *testing.T) {
	for _, key := range []string{"TETRAMINO_SCALE", "TETRAMINO_MUTE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("TETRAMINO_SCALE=3\nTETRAMINO_MUTE=true\n"), 0o600))

	cfg, err := config.Load("tetramino", []string{"-scale", "4"}, file, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.True(t, cfg.Mute)
	assert.Equal(t, 4, cfg.Scale)
}

func TestParseHelp(t *testing.T) {
	_, err := config.Parse("tetramino", []string{"-h"}, env(nil))
	assert.ErrorIs(t, err, flag.ErrHelp)
}
