// Package game runs the board rules as an ordered set of systems on the ecs
// scheduler and exposes them through Session.
package game

import (
	"github.com/plus3/tetramino/board"
	"github.com/plus3/tetramino/ecs"
	"github.com/rs/zerolog"
)

// Session is one game from the first spawn to game over. It is not safe for
// concurrent use; frontends call it from their frame loop.
type Session struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	field    *ecs.Singleton[Field]
	falling  *ecs.Singleton[Falling]
	upcoming *ecs.Singleton[Upcoming]
	status   *ecs.Singleton[Status]
	inbox    *ecs.Singleton[Inbox]

	rng   board.Randomizer
	clock board.Clock
	sink  SoundSink
	log   zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRandomizer sets the source for piece descriptors. Defaults to an
// entropy-seeded PCG generator.
func WithRandomizer(rng board.Randomizer) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock sets the clock driving gravity. Defaults to the wall clock.
func WithClock(clock board.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithSink sets the receiver of sound events.
func WithSink(sink SoundSink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithLogger sets the logger. Defaults to a disabled logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New starts a session: it fills the queue, spawns the first piece and
// starts the soundtrack.
func New(opts ...Option) *Session {
	s := &Session{
		clock: board.SystemClock,
		sink:  nopSink{},
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = board.NewRandomizer(0)
	}

	s.storage = ecs.NewStorage()
	s.field = ecs.NewSingleton[Field](s.storage)
	s.falling = ecs.NewSingleton[Falling](s.storage)
	s.upcoming = ecs.NewSingleton[Upcoming](s.storage)
	s.status = ecs.NewSingleton[Status](s.storage)
	s.inbox = ecs.NewSingleton[Inbox](s.storage)
	ecs.NewSingleton[Outbox](s.storage)

	s.scheduler = ecs.NewScheduler(s.storage)
	s.scheduler.Register(&InputSystem{Log: s.log.With().Str("system", "input").Logger()})
	s.scheduler.Register(&GravitySystem{})
	s.scheduler.Register(&PlacementSystem{Log: s.log.With().Str("system", "placement").Logger()})
	s.scheduler.Register(&GameOverSystem{Log: s.log.With().Str("system", "game-over").Logger()})
	s.scheduler.Register(&EventSystem{Sink: s.sink})

	s.reset()
	s.sink.Play(SoundSoundtrack)
	return s
}

func (s *Session) reset() {
	field := s.field.Get()
	field.Grid = board.Grid{}

	s.upcoming.Get().Queue = board.NewQueue(s.rng)
	s.falling.Get().Piece = board.NewPiece(&field.Grid, s.clock, board.NewDescriptor(s.rng), board.SlowDelay)
	*s.status.Get() = Status{Active: true}
	s.inbox.Get().Commands = nil

	s.log.Debug().Msg("session started")
}

// Restart clears the field and starts over with fresh pieces. The
// soundtrack keeps playing.
func (s *Session) Restart() {
	s.reset()
}

// Enqueue buffers cmd for the next Update. Commands are applied once each,
// in the order received.
func (s *Session) Enqueue(cmd Command) {
	inbox := s.inbox.Get()
	inbox.Commands = append(inbox.Commands, cmd)
}

// Update runs one frame. dt is the frame time in seconds.
func (s *Session) Update(dt float64) {
	s.scheduler.Once(dt)
}

// Active reports whether the game is still running.
func (s *Session) Active() bool {
	return s.status.Get().Active
}

// Stats is a summary of a session's progress.
type Stats struct {
	Frames int64
	Pieces int
	Lines  int
	Filled int
	Active bool
}

// Stats returns the current counters.
func (s *Session) Stats() Stats {
	status := s.status.Get()
	return Stats{
		Frames: s.scheduler.GetStats().Frames,
		Pieces: status.Pieces,
		Lines:  status.Lines,
		Filled: s.field.Get().Grid.Filled(),
		Active: status.Active,
	}
}

// SchedulerStats returns per-system timings.
func (s *Session) SchedulerStats() *ecs.SchedulerStats {
	return s.scheduler.GetStats()
}

// StorageStats lists the resources backing the session.
func (s *Session) StorageStats() ecs.StorageStats {
	return s.storage.CollectStats()
}

// Snapshot is a read-only view of a session for renderers.
type Snapshot struct {
	// Grid is the field with the falling piece and its shadow painted in.
	Grid   board.Grid
	Next   [board.QueueLen]board.Descriptor
	Tiles  [4]board.Position
	Shadow [4]board.Position
	Active bool
	Stats  Stats
}

// Snapshot composes the current frame without touching session state.
func (s *Session) Snapshot() Snapshot {
	falling := s.falling.Get()
	return Snapshot{
		Grid:   falling.Piece.Overlay(),
		Next:   s.upcoming.Get().Queue.Items(),
		Tiles:  falling.Piece.Tiles,
		Shadow: falling.Piece.Shadow,
		Active: s.status.Get().Active,
		Stats:  s.Stats(),
	}
}
