package combat

import "github.com/lixenwraith/ballarena/vmath"

// EntityID is a stable identity for balls, projectiles and hazards within one World
type EntityID uint64

// Side is team affiliation, friendly fire is never applied
type Side int

// Rand is the opaque uniform source in [0,1) consumed by the engine
type Rand interface {
	Float64() float64
}

// VisualSink receives fire-and-forget particle requests
type VisualSink interface {
	Emit(x, y float64, count int, color string)
	Explode(x, y float64, count int, color string)
}

// AudioSink receives fire-and-forget sound cues
type AudioSink interface {
	WeaponHit(hitCount int, variant string)
	ProjectileFire()
}

// Emit forwards to the visual sink when one is attached
func (w *World) Emit(at vmath.Vec2, count int, color string) {
	if w.Visual != nil {
		w.Visual.Emit(at.X, at.Y, count, color)
	}
}

// Explode forwards to the visual sink when one is attached
func (w *World) Explode(at vmath.Vec2, count int, color string) {
	if w.Visual != nil {
		w.Visual.Explode(at.X, at.Y, count, color)
	}
}

// PlayHit forwards a weapon hit cue when an audio sink is attached
func (w *World) PlayHit(hitCount int, variant string) {
	if w.Audio != nil {
		w.Audio.WeaponHit(hitCount, variant)
	}
}

// PlayFire forwards a projectile launch cue when an audio sink is attached
func (w *World) PlayFire() {
	if w.Audio != nil {
		w.Audio.ProjectileFire()
	}
}

// Random returns the next value of the attached source, 0.5 when absent
func (w *World) Random() float64 {
	if w.Rand == nil {
		return 0.5
	}
	return w.Rand.Float64()
}

// RandomRange returns a value in [lo, hi)
func (w *World) RandomRange(lo, hi float64) float64 {
	return lo + w.Random()*(hi-lo)
}
