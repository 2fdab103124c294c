// Package feedback plays short sounds for clicks and misses.
package feedback

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)

	tickFreq     = 1760.0
	tickDuration = 25 * time.Millisecond

	buzzFreq     = 120.0
	buzzDuration = 150 * time.Millisecond
)

// Player reports grid outcomes to the user.
type Player interface {
	// Click is played after a pointer click.
	Click()
	// Miss is played when a combo addresses no cell.
	Miss()
	// Close stops playback.
	Close()
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Click() {}
func (Silent) Miss()  {}
func (Silent) Close() {}

// Options configures New.
type Options struct {
	Enabled bool
	// Volume in [0, 1].
	Volume float64
	Log    *logrus.Entry
}

// New returns a speaker-backed Player, or Silent when sound is disabled
// or the speaker cannot be opened.
func New(opts Options) Player {
	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	if !opts.Enabled {
		return Silent{}
	}

	s := NewSound(opts.Volume)
	if err := s.Init(); err != nil {
		log.WithError(err).Warn("audio feedback unavailable")
		return Silent{}
	}
	log.WithField("volume", opts.Volume).Debug("audio feedback enabled")
	return s
}

// Sound plays generated tones through the speaker.
type Sound struct {
	mu          sync.Mutex
	initialized bool
	mixer       *beep.Mixer
	volume      float64

	open func(beep.SampleRate, int) error
	play func(...beep.Streamer)
}

// NewSound creates a Sound. Init opens the speaker.
func NewSound(volume float64) *Sound {
	return &Sound{
		mixer:  &beep.Mixer{},
		volume: volume,
		open:   speaker.Init,
		play:   speaker.Play,
	}
}

// Init opens the speaker and starts the mixer.
func (s *Sound) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := s.open(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}
	s.play(s.mixer)
	s.initialized = true
	return nil
}

// Click plays a short high tick.
func (s *Sound) Click() {
	s.add(func() (beep.Streamer, error) { return Tick(sampleRate) })
}

// Miss plays a low buzz.
func (s *Sound) Miss() {
	s.add(func() (beep.Streamer, error) { return Buzz(sampleRate), nil })
}

func (s *Sound) add(build func() (beep.Streamer, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	st, err := build()
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(withVolume(st, s.volume))
	speaker.Unlock()
}

// Close silences the mixer.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Tick returns the click sound.
func Tick(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, tickFreq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(tickDuration), withVolume(sine, 0.5)), nil
}

// Buzz returns the miss sound.
func Buzz(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(buzzDuration), &buzz{sr: sr, freq: buzzFreq})
}

// buzz is a sine with two harmonics and a short fade in.
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *buzz) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		v := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		v += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		v += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		v *= math.Min(t/0.02, 1)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}
