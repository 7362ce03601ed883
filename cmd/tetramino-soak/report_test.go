package main

import (
	"strings"
	"testing"
	"time"

	"github.com/plus3/tetramino/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats
	for _, d := range []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond} {
		s.Add(d)
	}
	s.Finalize()

	assert.EqualValues(t, 3, s.Count)
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestPlayEndsGames(t *testing.T) {
	report := &Report{Games: 3, TPS: 60, MaxFrames: 200000}
	for seed := uint64(1); seed <= 3; seed++ {
		report.add(play(seed, report.MaxFrames, 1, time.Second/60, report))
	}

	assert.Equal(t, 3, report.Finished)
	assert.Positive(t, report.Pieces)
	assert.Equal(t, 3, report.Sounds[game.SoundSoundtrack])
	assert.Equal(t, 3, report.Sounds[game.SoundGameOver])
	assert.Equal(t, report.Frames, report.UpdateTime.Count)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{Games: 2, Seed: 7, TPS: 60, Finished: 2, Frames: 120, Lines: 4, BestLines: 3}
	report.Sounds[game.SoundLineClear] = 3
	report.UpdateTime.Add(time.Microsecond)
	report.UpdateTime.Finalize()

	var out strings.Builder
	require.NoError(t, report.Generate(&out))

	text := out.String()
	assert.Contains(t, text, "**Finished:** 2 of 2")
	assert.Contains(t, text, "(2s of play)")
	assert.Contains(t, text, "**Lines:** 4 (best game: 3)")
	assert.Contains(t, text, "- line-clear: 3")
	assert.NotContains(t, text, "GC Pause")
}
