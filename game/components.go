package game

import "github.com/plus3/tetramino/board"

// Field is the persistent playing grid.
type Field struct {
	Grid board.Grid
}

// Falling holds the piece under player control.
type Falling struct {
	Piece board.Piece
}

// Upcoming holds the preview queue.
type Upcoming struct {
	Queue board.Queue
}

// Status tracks whether the session is still being played, plus counters.
type Status struct {
	Active bool
	Pieces int
	Lines  int
}

// Inbox buffers commands until the next frame.
type Inbox struct {
	Commands []Command
}

// Outbox collects the sounds raised during a frame.
type Outbox struct {
	Sounds []Sound
}

func (o *Outbox) emit(s Sound) {
	o.Sounds = append(o.Sounds, s)
}
