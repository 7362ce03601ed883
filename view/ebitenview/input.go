package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetramino/game"
)

// Key repeat timing in ticks, close to a desktop keyboard's auto-repeat.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

type keySource interface {
	Duration(key ebiten.Key) int
	JustReleased(key ebiten.Key) bool
}

type inpututilKeys struct{}

func (inpututilKeys) Duration(key ebiten.Key) int { return inpututil.KeyPressDuration(key) }

func (inpututilKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

type keyInput struct {
	commands []game.Command
	quit     bool
	restart  bool
}

func pressed(keys keySource, key ebiten.Key) bool {
	return keys.Duration(key) == 1
}

func pressedOrRepeated(keys keySource, key ebiten.Key) bool {
	d := keys.Duration(key)
	if d == 1 {
		return true
	}
	return d > repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// readKeys maps this tick's keyboard state to commands. Left and Right
// repeat while held, Down switches gravity speed on press and release.
func readKeys(keys keySource) keyInput {
	var in keyInput

	if pressed(keys, ebiten.KeyEscape) {
		in.quit = true
		return in
	}
	if pressed(keys, ebiten.KeyR) {
		in.restart = true
	}

	if pressedOrRepeated(keys, ebiten.KeyLeft) {
		in.commands = append(in.commands, game.CommandLeft)
	}
	if pressedOrRepeated(keys, ebiten.KeyRight) {
		in.commands = append(in.commands, game.CommandRight)
	}
	if pressed(keys, ebiten.KeyDown) {
		in.commands = append(in.commands, game.CommandSoftDropFast)
	}
	if keys.JustReleased(ebiten.KeyDown) {
		in.commands = append(in.commands, game.CommandSoftDropSlow)
	}
	if pressed(keys, ebiten.KeyUp) {
		in.commands = append(in.commands, game.CommandRotate)
	}
	if pressed(keys, ebiten.KeySpace) {
		in.commands = append(in.commands, game.CommandHardDrop)
	}
	return in
}
