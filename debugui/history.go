package debugui

import "time"

// FrameHistory is a fixed ring of frame times in milliseconds.
type FrameHistory struct {
	values []float32
	next   int
	count  int
}

func NewFrameHistory(frames int) *FrameHistory {
	if frames < 1 {
		frames = 1
	}
	return &FrameHistory{values: make([]float32, frames)}
}

// Record stores d, overwriting the oldest sample once the ring is full.
func (h *FrameHistory) Record(d time.Duration) {
	h.values[h.next] = float32(d.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.values)
	if h.count < len(h.values) {
		h.count++
	}
}

// Values returns the samples oldest first.
func (h *FrameHistory) Values() []float32 {
	out := make([]float32, 0, h.count)
	if h.count < len(h.values) {
		return append(out, h.values[:h.count]...)
	}
	out = append(out, h.values[h.next:]...)
	return append(out, h.values[:h.next]...)
}

// Average is the mean of the recorded samples, or 0 before the first one.
func (h *FrameHistory) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.values[:h.count] {
		sum += v
	}
	return sum / float32(h.count)
}

// Max is the largest recorded sample.
func (h *FrameHistory) Max() float32 {
	var m float32
	for _, v := range h.values[:h.count] {
		m = max(m, v)
	}
	return m
}

// FrameTimer measures wall time between calls to Tick.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now(), now: time.Now}
}

// Tick returns the time since the previous Tick.
func (t *FrameTimer) Tick() time.Duration {
	now := t.now()
	d := now.Sub(t.last)
	t.last = now
	return d
}
