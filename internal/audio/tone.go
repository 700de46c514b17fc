package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/waitroom/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

var cueNotes = map[core.Cue][]note{
	core.CueJump:      {{freq: 520, dur: 60 * time.Millisecond}, {freq: 780, dur: 60 * time.Millisecond}},
	core.CueEat:       {{freq: 880, dur: 70 * time.Millisecond}},
	core.CueBounce:    {{freq: 330, dur: 40 * time.Millisecond, wave: WaveSquare}},
	core.CueCountdown: {{freq: 440, dur: 120 * time.Millisecond}},
	core.CueGo:        {{freq: 880, dur: 250 * time.Millisecond}},
	core.CueGameOver: {
		{freq: 392, dur: 150 * time.Millisecond},
		{freq: 262, dur: 300 * time.Millisecond, wave: WaveSquare},
	},
}

// tone is a fixed-length oscillator with a linear release over its last
// quarter.
type tone struct {
	freq   float64
	wave   Wave
	rate   beep.SampleRate
	phase  float64
	pos    int
	total  int
	fadeAt int
}

func newTone(n note, rate beep.SampleRate) *tone {
	total := rate.N(n.dur)
	return &tone{freq: n.freq, wave: n.wave, rate: rate, total: total, fadeAt: total - total/4}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, false
		}
		var v float64
		switch t.wave {
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		if t.pos >= t.fadeAt {
			v *= float64(t.total-t.pos) / float64(t.total-t.fadeAt)
		}
		samples[i][0], samples[i][1] = v, v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Render returns the streamer for a cue at the given volume (0..1), or nil
// for a cue without sound.
func Render(c core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = newTone(n, rate)
	}
	return withVolume(beep.Seq(parts...), volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}

// Length returns how long a cue plays.
func Length(c core.Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}
