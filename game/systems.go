package game

import (
	"github.com/plus3/tetramino/ecs"
	"github.com/rs/zerolog"
)

// InputSystem applies the buffered commands in arrival order.
type InputSystem struct {
	Falling ecs.Singleton[Falling]
	Inbox   ecs.Singleton[Inbox]
	Outbox  ecs.Singleton[Outbox]
	Status  ecs.Singleton[Status]

	Log zerolog.Logger
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	inbox := s.Inbox.Get()
	commands := inbox.Commands
	inbox.Commands = inbox.Commands[:0]

	if !s.Status.Get().Active {
		return
	}

	piece := &s.Falling.Get().Piece
	outbox := s.Outbox.Get()

	for _, cmd := range commands {
		switch cmd {
		case CommandSoftDropFast:
			piece.Fast()
			continue
		case CommandSoftDropSlow:
			piece.Slow()
			continue
		}

		// A placed piece waits for the placement step.
		if piece.Placed {
			s.Log.Trace().Stringer("command", cmd).Msg("dropped command for placed piece")
			continue
		}

		switch cmd {
		case CommandLeft:
			if piece.MoveLeft() {
				outbox.emit(SoundMove)
			}
		case CommandRight:
			if piece.MoveRight() {
				outbox.emit(SoundMove)
			}
		case CommandRotate:
			if piece.Rotate() {
				outbox.emit(SoundRotate)
			}
		case CommandHardDrop:
			piece.Fall()
			outbox.emit(SoundFall)
		}
	}
}

// GravitySystem runs the gravity tick of the falling piece.
type GravitySystem struct {
	Falling ecs.Singleton[Falling]
	Status  ecs.Singleton[Status]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	if !s.Status.Get().Active {
		return
	}

	piece := &s.Falling.Get().Piece
	if piece.Placed {
		return
	}
	piece.MoveDown()
}

// PlacementSystem commits a placed piece, clears full rows and spawns the
// next piece from the queue.
type PlacementSystem struct {
	Field    ecs.Singleton[Field]
	Falling  ecs.Singleton[Falling]
	Upcoming ecs.Singleton[Upcoming]
	Outbox   ecs.Singleton[Outbox]
	Status   ecs.Singleton[Status]

	Log zerolog.Logger
}

func (s *PlacementSystem) Execute(frame *ecs.UpdateFrame) {
	status := s.Status.Get()
	piece := &s.Falling.Get().Piece
	if !status.Active || !piece.Placed {
		return
	}

	piece.UpdateShadow()
	if !piece.AddToGrid() {
		s.Log.Warn().Interface("tiles", piece.Tiles).Msg("placed piece overlaps the field, not committed")
	}
	status.Pieces++

	if cleared := s.Field.Get().Grid.ClearLines(); cleared > 0 {
		status.Lines += cleared
		piece.UpdateShadow()
		s.Outbox.Get().emit(SoundLineClear)
		s.Log.Debug().Int("rows", cleared).Int("lines", status.Lines).Msg("lines cleared")
	}

	next := s.Upcoming.Get().Queue.Advance()
	piece.Reset(next, piece.FallDelay)
	s.Log.Trace().
		Stringer("shape", next.Shape).
		Stringer("color", next.Color).
		Msg("spawned piece")
}

// GameOverSystem ends the session once any tile of the piece sits above the board.
type GameOverSystem struct {
	Falling ecs.Singleton[Falling]
	Outbox  ecs.Singleton[Outbox]
	Status  ecs.Singleton[Status]

	Log zerolog.Logger
}

func (s *GameOverSystem) Execute(frame *ecs.UpdateFrame) {
	status := s.Status.Get()
	if !status.Active {
		return
	}

	for _, tile := range s.Falling.Get().Piece.Tiles {
		if tile.Row < 0 {
			status.Active = false
			s.Outbox.Get().emit(SoundGameOver)
			s.Log.Info().
				Int("pieces", status.Pieces).
				Int("lines", status.Lines).
				Msg("game over")
			return
		}
	}
}

// EventSystem hands the sounds raised this frame to the sink once every
// system has run.
type EventSystem struct {
	Outbox ecs.Singleton[Outbox]

	Sink SoundSink
}

func (s *EventSystem) Execute(frame *ecs.UpdateFrame) {
	outbox := s.Outbox.Get()
	if len(outbox.Sounds) == 0 {
		return
	}

	sounds := append([]Sound(nil), outbox.Sounds...)
	outbox.Sounds = outbox.Sounds[:0]

	sink := s.Sink
	frame.Commands.Defer(func() {
		for _, sound := range sounds {
			sink.Play(sound)
		}
	})
}
