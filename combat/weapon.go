package combat

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ballarena/vmath"
)

// Weapon is the lifecycle contract every variant implements
type Weapon interface {
	// State exposes the shared weapon fields
	State() *WeaponState
	// Update advances timers and motion once per tick
	Update(w *World)
	// CanHit gates contact and melee hits this tick
	CanHit() bool
	// OnHit applies damage and effects to target, then records the hit
	OnHit(w *World, target *Ball)
	// ApplyScaling recomputes derived stats from HitCount and SuperActive
	ApplyScaling()
	// ActivateSuper applies the one-time super change
	ActivateSuper(w *World)
	// TipPosition is the world-space attack point
	TipPosition() vmath.Vec2
}

// ProjectileHitter is implemented by weapons reacting when their projectile lands
type ProjectileHitter interface {
	OnProjectileHit(w *World, p *Projectile, target *Ball)
}

// Striker is implemented by weapons with non-segment attack shapes
// Strike tests target against every attack part and applies any hits
type Striker interface {
	Strike(w *World, target *Ball) bool
}

// Scaling is the named display value of a weapon's scaling stat
type Scaling struct {
	Name  string
	Value float64
}

// WeaponState is the data shared by every variant
type WeaponState struct {
	Owner   *Ball
	Variant string
	Color   string

	BaseDamage float64
	Damage     float64
	BaseReach  float64
	Reach      float64

	Angle         float64
	RotationSpeed float64

	Cooldown       int
	HitCount       int
	SuperActive    bool
	SuperThreshold int

	Scaling Scaling

	CanParry    bool
	Unparryable bool
	Ranged      bool

	// DamageDealt accumulates health removed by direct hits, for statistics
	DamageDealt float64
}

// Tip returns owner position offset by reach along angle
func (s *WeaponState) Tip() vmath.Vec2 {
	return s.Owner.Pos.Add(vmath.FromAngle(s.Angle, s.Reach))
}

// PointAlong returns the point at fraction f of reach along the current angle
func (s *WeaponState) PointAlong(f float64) vmath.Vec2 {
	return s.Owner.Pos.Add(vmath.FromAngle(s.Angle, s.Reach*f))
}

// IsBodyContact reports weapons that hit by ball-ball contact
func (s *WeaponState) IsBodyContact() bool {
	return s.Reach == 0
}

// RecordHit performs hit bookkeeping shared by melee, projectile and hazard hits:
// increments HitCount, rescales, checks the super latch and cues audio
// Hits credited to a weapon whose owner has died are dropped
func RecordHit(w *World, wp Weapon) {
	s := wp.State()
	if s.Owner == nil || !s.Owner.Alive {
		return
	}
	s.HitCount++
	wp.ApplyScaling()
	CheckSuper(w, wp)
	w.PlayHit(s.HitCount, s.Variant)
}

// CheckSuper latches SuperActive the first time HitCount reaches the threshold
// and runs ActivateSuper exactly once. Idempotent afterwards.
func CheckSuper(w *World, wp Weapon) bool {
	s := wp.State()
	if s.SuperActive || s.HitCount < s.SuperThreshold {
		return false
	}
	if w.Config != nil && !w.Config.SupersEnabled {
		return false
	}
	s.SuperActive = true
	wp.ActivateSuper(w)
	wp.ApplyScaling()
	if s.Owner != nil {
		w.Explode(s.Owner.Pos, 15, s.Color)
	}
	w.Logger().WithFields(logrus.Fields{
		"frame":  w.Frame,
		"weapon": s.Variant,
		"hits":   s.HitCount,
	}).Info("super activated")
	return true
}
