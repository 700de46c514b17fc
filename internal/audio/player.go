// Package audio plays the short sound cues emitted by the games.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound cues.
type Player interface {
	Play(c core.Cue)
	Close()
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(core.Cue) {}
func (Nop) Close()        {}

// Speaker mixes cues onto the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	open   bool
}

// Open returns a player for the sound settings. Sound is optional: when it is
// disabled or no device can be opened, a Nop player is returned.
func Open(cfg config.SoundConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Nop{}
	}
	s := &Speaker{mixer: &beep.Mixer{}, volume: cfg.Volume}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		if logger != nil {
			logger.Warn("sound disabled", "error", err)
		}
		return Nop{}
	}
	speaker.Play(s.mixer)
	s.open = true
	return s
}

// Play queues the cue on the mixer.
func (s *Speaker) Play(c core.Cue) {
	st := Render(c, sampleRate, s.volume)
	if st == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		s.mixer.Add(st)
	}
}

// Close silences the mixer.
func (s *Speaker) Close() {
	speaker.Lock()
	defer speaker.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.mixer.Clear()
	s.open = false
}
