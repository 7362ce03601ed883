package game

// Command is a discrete movement request from an input source.
type Command uint8

const (
	CommandLeft Command = iota
	CommandRight
	CommandSoftDropFast
	CommandSoftDropSlow
	CommandRotate
	CommandHardDrop
)

var commandNames = [...]string{"left", "right", "soft-drop-fast", "soft-drop-slow", "rotate", "hard-drop"}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Sound names a fire-and-forget audio event.
type Sound uint8

const (
	SoundMove Sound = iota
	SoundRotate
	SoundFall
	// SoundLineClear restarts the effect when it is already playing.
	SoundLineClear
	SoundGameOver
	// SoundSoundtrack loops for the rest of the session.
	SoundSoundtrack
)

// SoundCount is the number of distinct sounds.
const SoundCount = 6

var soundNames = [SoundCount]string{"move", "rotate", "fall", "line-clear", "game-over", "soundtrack"}

func (s Sound) String() string {
	if int(s) < SoundCount {
		return soundNames[s]
	}
	return "unknown"
}

// SoundSink receives sound events at the end of each frame. Play must not block.
type SoundSink interface {
	Play(Sound)
}

// SinkFunc adapts a function to a SoundSink.
type SinkFunc func(Sound)

func (f SinkFunc) Play(s Sound) { f(s) }

type nopSink struct{}

func (nopSink) Play(Sound) {}
