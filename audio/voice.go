package audio

import "time"

// voice describes the synthesized hit sound of a variant
// Pitch rises by step for every landed hit, capped at maxCombo
type voice struct {
	wave     Wave
	base     float64
	step     float64
	drop     float64
	length   time.Duration
	gain     float64
	maxCombo int
}

var defaultVoice = voice{wave: Sine, base: 1200, step: 80, drop: 0.6, length: 100 * time.Millisecond, gain: 0.22, maxCombo: 20}

var voices = map[string]voice{
	"sword":    defaultVoice,
	"dagger":   {wave: Triangle, base: 1800, step: 60, drop: 0.7, length: 60 * time.Millisecond, gain: 0.18, maxCombo: 20},
	"hammer":   {wave: Sine, base: 150, step: 15, drop: 0.2, length: 150 * time.Millisecond, gain: 0.35, maxCombo: 20},
	"axe":      {wave: Square, base: 320, step: 20, drop: 0.4, length: 120 * time.Millisecond, gain: 0.15, maxCombo: 20},
	"stone":    {wave: Sine, base: 90, step: 6, drop: 0.3, length: 180 * time.Millisecond, gain: 0.35, maxCombo: 20},
	"spark":    {wave: Square, base: 2200, step: 90, drop: 0.5, length: 70 * time.Millisecond, gain: 0.12, maxCombo: 20},
	"storm":    {wave: Noise, base: 400, step: 10, drop: 0.5, length: 200 * time.Millisecond, gain: 0.2, maxCombo: 20},
	"wind":     {wave: Noise, base: 800, step: 20, drop: 0.6, length: 120 * time.Millisecond, gain: 0.15, maxCombo: 20},
	"ice":      {wave: Triangle, base: 2600, step: 50, drop: 0.8, length: 120 * time.Millisecond, gain: 0.15, maxCombo: 20},
	"unarmed":  {wave: Sine, base: 220, step: 25, drop: 0.4, length: 90 * time.Millisecond, gain: 0.3, maxCombo: 20},
	"metal":    {wave: Square, base: 900, step: 30, drop: 0.9, length: 140 * time.Millisecond, gain: 0.12, maxCombo: 20},
	"poseidon": {wave: Sine, base: 260, step: 20, drop: 0.5, length: 160 * time.Millisecond, gain: 0.3, maxCombo: 20},
}

func voiceFor(variant string) voice {
	if v, ok := voices[variant]; ok {
		return v
	}
	return defaultVoice
}

// pitch returns the start frequency for the given hit count
func (v voice) pitch(hitCount int) float64 {
	return v.base + float64(min(hitCount, v.maxCombo))*v.step
}
