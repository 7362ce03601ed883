package game_test

import (
	"time"

	"github.com/plus3/tetramino/game"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// constRand always draws v, so every descriptor is identical.
type constRand int

func (r constRand) IntN(n int) int { return int(r) % n }

// onlyO draws sky O pieces.
const onlyO = constRand(4)

type recordingSink struct {
	sounds []game.Sound
}

func (r *recordingSink) Play(s game.Sound) {
	r.sounds = append(r.sounds, s)
}

func (r *recordingSink) take() []game.Sound {
	out := r.sounds
	r.sounds = nil
	return out
}
