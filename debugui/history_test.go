package debugui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameHistoryPartial(t *testing.T) {
	h := NewFrameHistory(4)
	assert.Empty(t, h.Values())
	assert.Zero(t, h.Average())

	h.Record(10 * time.Millisecond)
	h.Record(20 * time.Millisecond)

	assert.Equal(t, []float32{10, 20}, h.Values())
	assert.InDelta(t, 15, h.Average(), 1e-4)
	assert.InDelta(t, 20, h.Max(), 1e-4)
}

func TestFrameHistoryWraps(t *testing.T) {
	h := NewFrameHistory(3)
	for _, ms := range []int{1, 2, 3, 4, 5} {
		h.Record(time.Duration(ms) * time.Millisecond)
	}

	assert.Equal(t, []float32{3, 4, 5}, h.Values())
	assert.InDelta(t, 4, h.Average(), 1e-4)
	assert.InDelta(t, 5, h.Max(), 1e-4)
}

func TestFrameHistoryMinimumSize(t *testing.T) {
	h := NewFrameHistory(0)
	h.Record(time.Millisecond)
	h.Record(2 * time.Millisecond)
	assert.Equal(t, []float32{2}, h.Values())
}

func TestFrameTimerTick(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	timer := &FrameTimer{last: base, now: func() time.Time { return now }}

	now = base.Add(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, timer.Tick())

	now = now.Add(17 * time.Millisecond)
	assert.Equal(t, 17*time.Millisecond, timer.Tick())
}
