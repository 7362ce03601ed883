package ebitenview

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetramino/game"
	"github.com/stretchr/testify/assert"
)

type fakeKeys struct {
	held     map[ebiten.Key]int
	released map[ebiten.Key]bool
}

func (k fakeKeys) Duration(key ebiten.Key) int { return k.held[key] }

func (k fakeKeys) JustReleased(key ebiten.Key) bool { return k.released[key] }

func held(durations map[ebiten.Key]int) fakeKeys {
	return fakeKeys{held: durations, released: map[ebiten.Key]bool{}}
}

func TestReadKeysMapping(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want []game.Command
	}{
		{"idle", held(nil), nil},
		{"left", held(map[ebiten.Key]int{ebiten.KeyLeft: 1}), []game.Command{game.CommandLeft}},
		{"right", held(map[ebiten.Key]int{ebiten.KeyRight: 1}), []game.Command{game.CommandRight}},
		{"rotate", held(map[ebiten.Key]int{ebiten.KeyUp: 1}), []game.Command{game.CommandRotate}},
		{"hard drop", held(map[ebiten.Key]int{ebiten.KeySpace: 1}), []game.Command{game.CommandHardDrop}},
		{"down pressed", held(map[ebiten.Key]int{ebiten.KeyDown: 1}), []game.Command{game.CommandSoftDropFast}},
		{"down held", held(map[ebiten.Key]int{ebiten.KeyDown: 40}), nil},
		{"rotate held", held(map[ebiten.Key]int{ebiten.KeyUp: 2}), nil},
		{
			"down released",
			fakeKeys{released: map[ebiten.Key]bool{ebiten.KeyDown: true}},
			[]game.Command{game.CommandSoftDropSlow},
		},
		{
			"chord",
			held(map[ebiten.Key]int{ebiten.KeyLeft: 1, ebiten.KeyUp: 1, ebiten.KeySpace: 1}),
			[]game.Command{game.CommandLeft, game.CommandRotate, game.CommandHardDrop},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := readKeys(tt.keys)
			assert.Equal(t, tt.want, in.commands)
			assert.False(t, in.quit)
		})
	}
}

func TestReadKeysRepeat(t *testing.T) {
	var moves []int
	for d := 1; d <= repeatDelay+3*repeatInterval; d++ {
		in := readKeys(held(map[ebiten.Key]int{ebiten.KeyRight: d}))
		if len(in.commands) > 0 {
			moves = append(moves, d)
		}
	}

	assert.Equal(t, []int{
		1,
		repeatDelay + repeatInterval,
		repeatDelay + 2*repeatInterval,
		repeatDelay + 3*repeatInterval,
	}, moves)
}

func TestReadKeysQuitAndRestart(t *testing.T) {
	in := readKeys(held(map[ebiten.Key]int{ebiten.KeyEscape: 1, ebiten.KeyLeft: 1}))
	assert.True(t, in.quit)
	assert.Empty(t, in.commands)

	in = readKeys(held(map[ebiten.Key]int{ebiten.KeyR: 1}))
	assert.True(t, in.restart)
	assert.False(t, in.quit)
}
