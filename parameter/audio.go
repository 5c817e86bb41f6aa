package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMinSoundGap between consecutive cues, closer cues are dropped
	AudioMinSoundGap = 25 * time.Millisecond

	// AudioDefaultVolume is linear gain in [0, 1]
	AudioDefaultVolume = 0.6
)

// Projectile Fire Sound
const (
	FireSoundFrom     = 1800.0
	FireSoundTo       = 900.0
	FireSoundGain     = 0.1
	FireSoundDuration = 80 * time.Millisecond
)
