package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/tetramino/audio"
	"github.com/plus3/tetramino/board"
	"github.com/plus3/tetramino/config"
	"github.com/plus3/tetramino/debugui"
	"github.com/plus3/tetramino/game"
	"github.com/plus3/tetramino/view"
	"github.com/plus3/tetramino/view/ebitenview"
	"github.com/plus3/tetramino/view/termview"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		code := configExitCode(err)
		if code != 0 {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("tetramino exited")
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// configExitCode maps a config error to the process exit code. A help
// request has already printed usage and is not a failure.
func configExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// setupLogging points the global logger at stderr, or at cfg.LogFile. The
// terminal frontend owns the screen, so it logs to a file or nowhere.
func setupLogging(cfg config.Config) (*os.File, error) {
	zerolog.SetGlobalLevel(cfg.LogLevel)

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	var file *os.File
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out, file = f, f
	case cfg.Frontend == config.FrontendTerminal:
		out = io.Discard
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return file, nil
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().
		Str("frontend", string(cfg.Frontend)).
		Uint64("seed", seed).
		Bool("demo", cfg.Demo).
		Msg("starting tetramino")

	player := audio.NewPlayer(audio.Config{
		Dir:    cfg.SoundDir,
		Volume: cfg.Volume,
		Mute:   cfg.Mute,
	}, log.With().Str("component", "audio").Logger())
	if !cfg.Mute {
		if err := player.Start(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		}
	}
	defer player.Close()

	session := game.New(
		game.WithRandomizer(board.NewRandomizer(seed)),
		game.WithSink(player),
		game.WithLogger(log.With().Str("component", "game").Logger()),
	)

	var pilot *game.Autopilot
	if cfg.Demo {
		pilot = game.NewAutopilot(board.NewRandomizer(seed + 1))
	}

	switch cfg.Frontend {
	case config.FrontendTerminal:
		return runTerminal(cfg, session, pilot)
	default:
		return runWindow(cfg, session, pilot)
	}
}

func runTerminal(cfg config.Config, session *game.Session, pilot *game.Autopilot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fe := termview.New(screen, session, termview.Options{
		TPS:   cfg.TPS,
		Pilot: pilot,
		Log:   log.With().Str("component", "terminal").Logger(),
	})
	return fe.Run(ctx)
}

func runWindow(cfg config.Config, session *game.Session, pilot *game.Autopilot) error {
	opts := ebitenview.Options{
		Title: "Tetramino",
		Scale: cfg.Scale,
		TPS:   cfg.TPS,
		Pilot: pilot,
		Log:   log.With().Str("component", "window").Logger(),
	}

	if cfg.Debug {
		l := view.DefaultLayout
		overlay := debugui.NewOverlay(opts.Title, l.Width*cfg.Scale, l.Height*cfg.Scale)
		overlay.AddSessionWindows(session)
		opts.Overlay = overlay
	}

	return ebitenview.Run(ebitenview.New(session, opts))
}
