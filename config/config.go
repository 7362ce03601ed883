// Package config resolves runtime settings from .env files, TETRAMINO_*
// environment variables and command line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Frontend selects how the game is presented.
type Frontend string

const (
	FrontendWindow   Frontend = "window"
	FrontendTerminal Frontend = "terminal"
)

// Config holds every runtime setting.
type Config struct {
	Frontend Frontend
	// Seed for piece generation. Zero draws a random seed.
	Seed     uint64
	LogLevel zerolog.Level
	// LogFile receives logs instead of stderr when set.
	LogFile  string
	SoundDir string
	Volume   float64
	Mute     bool
	Debug    bool
	Demo     bool
	Scale    int
	TPS      int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Frontend: FrontendWindow,
		LogLevel: zerolog.InfoLevel,
		SoundDir: "resources",
		Volume:   1,
		Scale:    2,
		TPS:      60,
	}
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads the given .env files (".env" when none are named), then the
// process environment, then args.
func Load(name string, args []string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return Parse(name, args, os.LookupEnv)
}

// Parse builds a Config from lookup and args without touching the process
// environment.
func Parse(name string, args []string, lookup LookupFunc) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	level := cfg.LogLevel.String()
	frontend := string(cfg.Frontend)

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&frontend, "frontend", frontend, "Presentation: window or terminal.")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for piece generation, 0 for random.")
	flags.StringVar(&level, "log-level", level, "Log level: trace, debug, info, warn, error.")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr.")
	flags.StringVar(&cfg.SoundDir, "sound-dir", cfg.SoundDir, "Directory holding the sound files.")
	flags.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Master volume between 0 and 1.")
	flags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable audio.")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the debug overlay (window frontend).")
	flags.BoolVar(&cfg.Demo, "demo", cfg.Demo, "Let the autopilot play.")
	flags.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window scale factor.")
	flags.IntVar(&cfg.TPS, "tps", cfg.TPS, "Game updates per second.")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = lvl
	cfg.Frontend = Frontend(strings.ToLower(frontend))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	var frontend, level string
	str("TETRAMINO_FRONTEND", &frontend)
	str("LOG_LEVEL", &level)
	str("TETRAMINO_LOG_LEVEL", &level)
	str("TETRAMINO_LOG_FILE", &c.LogFile)
	str("TETRAMINO_SOUND_DIR", &c.SoundDir)

	if frontend != "" {
		c.Frontend = Frontend(strings.ToLower(frontend))
	}
	if level != "" {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		c.LogLevel = lvl
	}

	parsers := []struct {
		key   string
		parse func(string) error
	}{
		{"TETRAMINO_SEED", func(v string) (err error) { c.Seed, err = strconv.ParseUint(v, 10, 64); return }},
		{"TETRAMINO_VOLUME", func(v string) (err error) { c.Volume, err = strconv.ParseFloat(v, 64); return }},
		{"TETRAMINO_MUTE", func(v string) (err error) { c.Mute, err = strconv.ParseBool(v); return }},
		{"TETRAMINO_DEBUG", func(v string) (err error) { c.Debug, err = strconv.ParseBool(v); return }},
		{"TETRAMINO_DEMO", func(v string) (err error) { c.Demo, err = strconv.ParseBool(v); return }},
		{"TETRAMINO_SCALE", func(v string) (err error) { c.Scale, err = strconv.Atoi(v); return }},
		{"TETRAMINO_TPS", func(v string) (err error) { c.TPS, err = strconv.Atoi(v); return }},
	}
	for _, p := range parsers {
		v, ok := lookup(p.key)
		if !ok || v == "" {
			continue
		}
		if err := p.parse(v); err != nil {
			return fmt.Errorf("%s: %w", p.key, err)
		}
	}
	return nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %v out of range [0, 1]", c.Volume)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps must be at least 1, got %d", c.TPS)
	}
	return nil
}
