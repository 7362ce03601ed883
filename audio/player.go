// Package audio plays game sounds through the system speaker with beep.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/plus3/tetramino/game"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Format is the format every clip is converted to.
var Format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Files maps each sound to its file name inside the sound directory.
var Files = [game.SoundCount]string{
	game.SoundMove:       "move.wav",
	game.SoundRotate:     "rotate.wav",
	game.SoundFall:       "fall.wav",
	game.SoundLineClear:  "line_clear.wav",
	game.SoundGameOver:   "end_game.wav",
	game.SoundSoundtrack: "soundtrack.mp3",
}

// Volumes are the per-sound gains before the master volume is applied.
var Volumes = [game.SoundCount]float64{
	game.SoundMove:       1,
	game.SoundRotate:     0.15,
	game.SoundFall:       0.15,
	game.SoundLineClear:  0.6,
	game.SoundGameOver:   0.15,
	game.SoundSoundtrack: 1,
}

// Config configures a Player.
type Config struct {
	// Dir is searched for Files. Missing files are synthesized.
	Dir    string
	Volume float64
	Mute   bool
}

// Source records where a clip came from.
type Source string

const (
	SourceFile  Source = "file"
	SourceSynth Source = "synth"
)

// Player is a game.SoundSink backed by a beep mixer. It is safe for
// concurrent use.
type Player struct {
	mu sync.Mutex

	cfg     Config
	log     zerolog.Logger
	mixer   *beep.Mixer
	clips   [game.SoundCount]*beep.Buffer
	sources [game.SoundCount]Source

	lineClear  *beep.Ctrl
	soundtrack *beep.Ctrl
	speakerOn  bool
}

// NewPlayer loads every clip. Clips that cannot be read from cfg.Dir are
// synthesized and the failure is logged. The speaker is not started.
func NewPlayer(cfg Config, log zerolog.Logger) *Player {
	p := &Player{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
	}

	for i := range p.clips {
		sound := game.Sound(i)
		clip, err := loadClip(filepath.Join(cfg.Dir, Files[sound]))
		if err == nil {
			p.clips[i], p.sources[i] = clip, SourceFile
			continue
		}

		ev := log.Debug()
		if !errors.Is(err, fs.ErrNotExist) {
			ev = log.Warn()
		}
		ev.Err(err).Stringer("sound", sound).Msg("using synthesized sound")

		buf := beep.NewBuffer(Format)
		buf.Append(synthesize(sound, sampleRate))
		p.clips[i], p.sources[i] = buf, SourceSynth
	}
	return p
}

// Start opens the speaker and connects the mixer to it.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.speakerOn {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.speakerOn = true
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.locked(func() { p.mixer.Clear() })
	p.lineClear, p.soundtrack = nil, nil
	if p.speakerOn {
		speaker.Close()
		p.speakerOn = false
	}
}

// Source reports where the clip for sound was loaded from.
func (p *Player) Source(sound game.Sound) Source {
	return p.sources[sound]
}

// Playing returns the number of streams in the mixer.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	p.locked(func() { n = p.mixer.Len() })
	return n
}

// Play starts sound. The soundtrack starts once and loops. A line clear
// cuts off the previous one.
func (p *Player) Play(sound game.Sound) {
	if p.cfg.Mute || int(sound) >= game.SoundCount {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	clip := p.clips[sound]
	vol := Volumes[sound] * p.cfg.Volume

	switch sound {
	case game.SoundSoundtrack:
		if p.soundtrack != nil {
			return
		}
		p.soundtrack = &beep.Ctrl{Streamer: newVolume(beep.Loop(-1, clip.Streamer(0, clip.Len())), vol)}
		p.add(p.soundtrack)

	case game.SoundLineClear:
		if p.lineClear != nil {
			prev := p.lineClear
			p.locked(func() { prev.Streamer = nil })
		}
		p.lineClear = &beep.Ctrl{Streamer: newVolume(clip.Streamer(0, clip.Len()), vol)}
		p.add(p.lineClear)

	default:
		p.add(newVolume(clip.Streamer(0, clip.Len()), vol))
	}
}

func (p *Player) add(s beep.Streamer) {
	p.locked(func() { p.mixer.Add(s) })
}

// locked runs fn under the speaker lock once the speaker is mixing.
func (p *Player) locked(fn func()) {
	if p.speakerOn {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// loadClip decodes a wav or mp3 file into a buffer in Format.
func loadClip(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch filepath.Ext(path) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%s: unsupported format", path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	buf := beep.NewBuffer(Format)
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return buf, nil
}
