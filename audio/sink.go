// Package audio synthesizes combat sound cues through beep
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ballarena/parameter"
)

// Sink plays synthesized cues on the system speaker
// Without a working device every cue is dropped silently
type Sink struct {
	mu      sync.Mutex
	cfg     Config
	rate    beep.SampleRate
	mixer   *beep.Mixer
	running bool
	muted   bool
	last    time.Time
	now     func() time.Time
	log     logrus.FieldLogger

	played  uint64
	dropped uint64
}

// NewSink builds an idle sink, call Start to open the device
func NewSink(cfg Config, log logrus.FieldLogger) *Sink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Sink{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		now:   time.Now,
		log:   log,
	}
}

// Start opens the speaker, a failure disables audio and is returned for logging
func (s *Sink) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || !s.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(parameter.AudioBufferDuration)); err != nil {
		s.log.WithError(err).Warn("audio device unavailable, continuing silent")
		return err
	}
	speaker.Play(s.mixer)
	s.running = true
	s.log.WithField("rate", int(s.rate)).Debug("audio started")
	return nil
}

// Close silences pending cues
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.running = false
}

// ToggleMute flips mute and returns the new state
func (s *Sink) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

// Stats returns played and rate-limited cue counts
func (s *Sink) Stats() (played, dropped uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.played, s.dropped
}

// WeaponHit plays the variant's hit voice, pitched up by the combo count
func (s *Sink) WeaponHit(hitCount int, variant string) {
	v := voiceFor(variant)
	from := v.pitch(hitCount)
	s.play(newTone(v.wave, from, from*v.drop, v.gain, s.rate.N(v.length), s.rate))
}

// ProjectileFire plays a short noise swoosh
func (s *Sink) ProjectileFire() {
	s.play(newTone(Noise, parameter.FireSoundFrom, parameter.FireSoundTo, parameter.FireSoundGain, s.rate.N(parameter.FireSoundDuration), s.rate))
}

func (s *Sink) play(t beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || s.muted {
		return
	}
	now := s.now()
	if now.Sub(s.last) < s.cfg.MinGap {
		s.dropped++
		return
	}
	s.last = now
	s.played++

	vol := &effects.Volume{
		Streamer: t,
		Base:     2,
		Volume:   math.Log2(max(s.cfg.Volume, 1e-3)),
		Silent:   s.cfg.Volume <= 0,
	}
	speaker.Lock()
	s.mixer.Add(vol)
	speaker.Unlock()
}
