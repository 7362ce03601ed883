// Command tetramino-soak plays many autopilot games as fast as possible and
// reports per-frame update cost, game statistics and memory use.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/tetramino/board"
	"github.com/plus3/tetramino/game"
)

// simClock advances by a fixed step per frame, so gravity runs at game
// speed while the loop runs as fast as the CPU allows.
type simClock struct {
	now time.Time
}

func (c *simClock) Now() time.Time { return c.now }

func main() {
	games := flag.Int("games", 100, "Number of games to play.")
	seed := flag.Uint64("seed", 1, "Seed for pieces and autopilot, 0 for random.")
	maxFrames := flag.Int("max-frames", 100000, "Frame limit per game.")
	tps := flag.Int("tps", 60, "Simulated updates per second.")
	interval := flag.Int("interval", 6, "Frames between autopilot decisions.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Include GC pause totals in the report.")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if *games < 1 || *maxFrames < 1 || *tps < 1 {
		log.Fatal().Msg("games, max-frames and tps must be positive")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	report := &Report{
		Games:          *games,
		Seed:           *seed,
		MaxFrames:      *maxFrames,
		TPS:            *tps,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Int("games", *games).Uint64("seed", *seed).Msg("starting soak")
	start := time.Now()
	step := time.Second / time.Duration(*tps)

	for i := range *games {
		result := play(*seed+uint64(i), *maxFrames, *interval, step, report)
		report.add(result)
		log.Debug().
			Int("game", i).
			Int("pieces", result.Pieces).
			Int("lines", result.Lines).
			Int64("frames", result.Frames).
			Bool("finished", !result.Active).
			Msg("game done")
	}

	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	log.Info().Dur("elapsed", report.TotalTime).Msg("soak finished")

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}

func play(seed uint64, maxFrames, interval int, step time.Duration, report *Report) game.Stats {
	clock := &simClock{now: time.Unix(0, 0)}
	s := game.New(
		game.WithRandomizer(board.NewRandomizer(seed)),
		game.WithClock(clock),
		game.WithSink(game.SinkFunc(func(sound game.Sound) { report.Sounds[sound]++ })),
	)
	pilot := game.NewAutopilot(board.NewRandomizer(^seed))
	pilot.Interval = interval

	dt := step.Seconds()
	for range maxFrames {
		if !s.Active() {
			break
		}
		clock.now = clock.now.Add(step)
		pilot.Drive(s)

		updateStart := time.Now()
		s.Update(dt)
		report.UpdateTime.Add(time.Since(updateStart))
	}
	return s.Stats()
}
