package board

import "time"

// Clock supplies the current time to a Timer.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Timer is a two-sample stopwatch: Stop samples the clock, Start moves the
// reference point to the last sample, and Elapsed is the distance between them.
type Timer struct {
	clock Clock
	start time.Time
	stop  time.Time
}

// NewTimer creates a timer whose reference point is the current time.
func NewTimer(clock Clock) Timer {
	if clock == nil {
		clock = SystemClock
	}
	now := clock.Now()
	return Timer{clock: clock, start: now, stop: now}
}

// Start moves the reference point to the last sample.
func (t *Timer) Start() {
	t.start = t.stop
}

// Stop samples the clock.
func (t *Timer) Stop() {
	t.stop = t.clock.Now()
}

// Elapsed returns the time between the reference point and the last sample.
func (t *Timer) Elapsed() time.Duration {
	return t.stop.Sub(t.start)
}
