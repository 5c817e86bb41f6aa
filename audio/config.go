package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/ballarena/parameter"
)

// Config controls the sound sink
type Config struct {
	Enabled    bool
	Volume     float64
	MinGap     time.Duration
	SampleRate int
}

// DefaultConfig returns audio enabled at moderate volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioDefaultVolume,
		MinGap:     parameter.AudioMinSoundGap,
		SampleRate: parameter.AudioSampleRate,
	}
}

// ConfigFromEnv reads BALLARENA_AUDIO and BALLARENA_VOLUME (0-100) over the defaults
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("BALLARENA_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("BALLARENA_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Volume = min(max(float64(n)/100, 0), 1)
		}
	}
	return cfg
}
