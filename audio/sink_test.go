package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// newTestSink returns a sink marked running without touching the device
func newTestSink(t *testing.T) (*Sink, *time.Time) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	s := NewSink(DefaultConfig(), logger)
	s.running = true
	clock := time.Unix(0, 0)
	s.now = func() time.Time { return clock }
	return s, &clock
}

// TestSinkDropsWhenStopped verifies cues are ignored before Start
func TestSinkDropsWhenStopped(t *testing.T) {
	s := NewSink(DefaultConfig(), logrus.New())
	s.WeaponHit(3, "sword")
	s.ProjectileFire()
	if played, _ := s.Stats(); played != 0 {
		t.Errorf("Expected nothing played, got %d", played)
	}
	if s.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer, got %d", s.mixer.Len())
	}
}

// TestSinkRateLimit verifies cues closer than MinGap are dropped
func TestSinkRateLimit(t *testing.T) {
	s, clock := newTestSink(t)

	s.WeaponHit(1, "sword")
	s.WeaponHit(2, "sword")
	*clock = clock.Add(s.cfg.MinGap)
	s.ProjectileFire()

	played, dropped := s.Stats()
	if played != 2 || dropped != 1 {
		t.Errorf("Expected 2 played and 1 dropped, got %d and %d", played, dropped)
	}
}

// TestSinkMute verifies muted sinks stay silent
func TestSinkMute(t *testing.T) {
	s, _ := newTestSink(t)
	if !s.ToggleMute() {
		t.Fatal("Expected muted after toggle")
	}
	s.WeaponHit(1, "hammer")
	if played, _ := s.Stats(); played != 0 {
		t.Errorf("Muted sink played %d cues", played)
	}
}

// TestSinkProducesSamples verifies a queued cue renders audible samples
func TestSinkProducesSamples(t *testing.T) {
	s, _ := newTestSink(t)
	s.WeaponHit(5, "sword")

	buf := make([][2]float64, 512)
	n, ok := s.mixer.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Mixer stream returned n=%d ok=%v", n, ok)
	}
	peak := 0.0
	for _, smp := range buf {
		peak = max(peak, smp[0], -smp[0])
	}
	if peak == 0 {
		t.Error("Expected non-silent output")
	}
}

// TestToneLength verifies a tone ends after its sample count
func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := newTone(Sine, 100, 50, 1, 100, rate)
	buf := make([][2]float64, 64)

	total := 0
	for {
		n, ok := tn.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 100 {
		t.Errorf("Expected 100 samples, got %d", total)
	}
}

// TestVoicePitchCapped verifies combo pitch stops rising at the cap
func TestVoicePitchCapped(t *testing.T) {
	v := voiceFor("sword")
	if v.pitch(0) != 1200 || v.pitch(1) != 1280 {
		t.Errorf("Unexpected pitch ladder %v, %v", v.pitch(0), v.pitch(1))
	}
	if v.pitch(100) != v.pitch(v.maxCombo) {
		t.Error("Pitch exceeded combo cap")
	}
	if voiceFor("unknown") != defaultVoice {
		t.Error("Unknown variant should use default voice")
	}
}

// TestConfigFromEnv verifies environment overrides
func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BALLARENA_AUDIO", "false")
	t.Setenv("BALLARENA_VOLUME", "150")
	cfg := ConfigFromEnv()
	if cfg.Enabled || cfg.Volume != 1 {
		t.Errorf("Expected disabled at full volume, got %+v", cfg)
	}
}
