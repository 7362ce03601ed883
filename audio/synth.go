package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/tetramino/game"
)

// tone is a sine note shaped by a linear attack and release.
func tone(rate beep.SampleRate, freq float64, d, attack, release time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return newEnvelope(beep.Take(rate.N(d), sine), rate.N(d), rate.N(attack), rate.N(release))
}

func rest(rate beep.SampleRate, d time.Duration) beep.Streamer {
	return beep.Silence(rate.N(d))
}

// synthesize returns a short generated stand-in for a missing sound file.
// Every streamer it returns ends.
func synthesize(sound game.Sound, rate beep.SampleRate) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	switch sound {
	case game.SoundMove:
		return tone(rate, 660, ms(35), ms(2), ms(20))
	case game.SoundRotate:
		return beep.Seq(
			tone(rate, 784, ms(30), ms(2), ms(10)),
			tone(rate, 988, ms(40), ms(2), ms(25)),
		)
	case game.SoundFall:
		return beep.Mix(
			tone(rate, 110, ms(120), ms(2), ms(100)),
			tone(rate, 220, ms(80), ms(2), ms(60)),
		)
	case game.SoundLineClear:
		return beep.Seq(
			tone(rate, 523.25, ms(70), ms(5), ms(20)),
			tone(rate, 659.25, ms(70), ms(5), ms(20)),
			tone(rate, 783.99, ms(70), ms(5), ms(20)),
			tone(rate, 1046.5, ms(160), ms(5), ms(120)),
		)
	case game.SoundGameOver:
		return beep.Seq(
			tone(rate, 392, ms(180), ms(5), ms(60)),
			tone(rate, 311.13, ms(180), ms(5), ms(60)),
			tone(rate, 261.63, ms(420), ms(5), ms(350)),
		)
	case game.SoundSoundtrack:
		return soundtrack(rate)
	}
	return rest(rate, ms(1))
}

// soundtrack is one bar of a slow arpeggio; the player loops it.
func soundtrack(rate beep.SampleRate) beep.Streamer {
	const beat = 300 * time.Millisecond
	notes := []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		parts = append(parts, newVolume(tone(rate, freq, beat, 10*time.Millisecond, 200*time.Millisecond), 0.35))
	}
	return beep.Seq(parts...)
}

// envelope fades a streamer in and out over fixed sample counts.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, false
		}

		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
