package game

import "github.com/plus3/tetramino/board"

var autopilotWeights = [...]struct {
	cmd    Command
	weight int
}{
	{CommandLeft, 3},
	{CommandRight, 3},
	{CommandRotate, 2},
	{CommandHardDrop, 1},
	{CommandSoftDropFast, 1},
	{CommandSoftDropSlow, 1},
}

// Autopilot plays random moves. It drives the demo mode and the soak tool.
type Autopilot struct {
	// Interval is the number of frames between decisions.
	Interval int

	rng   board.Randomizer
	total int
	frame int
}

// NewAutopilot returns an autopilot deciding every 6 frames.
func NewAutopilot(rng board.Randomizer) *Autopilot {
	a := &Autopilot{Interval: 6, rng: rng}
	for _, w := range autopilotWeights {
		a.total += w.weight
	}
	return a
}

// Next returns the command for this frame, if any.
func (a *Autopilot) Next() (Command, bool) {
	a.frame++
	if a.Interval > 1 && a.frame%a.Interval != 0 {
		return 0, false
	}

	pick := a.rng.IntN(a.total)
	for _, w := range autopilotWeights {
		if pick < w.weight {
			return w.cmd, true
		}
		pick -= w.weight
	}
	return 0, false
}

// Drive enqueues the next decision, if any, into s.
func (a *Autopilot) Drive(s *Session) {
	if cmd, ok := a.Next(); ok {
		s.Enqueue(cmd)
	}
}
