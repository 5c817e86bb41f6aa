// Package weapon implements the weapon variants and the process-wide registry
package weapon

import (
	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/vmath"
)

// profile is the static description a variant hands to newBase
type profile struct {
	variant   string
	damage    float64
	reach     float64
	rotation  float64
	threshold int
	scaling   string
	noParry   bool
	ranged    bool
}

// Base carries the shared state and default behavior of every variant
// Default motion is steady rotation, default gate is the hit cooldown
type Base struct {
	combat.WeaponState

	baseRotation float64
	// Spin is the rotation sense, +1 or -1
	Spin float64
}

func newBase(owner *combat.Ball, w *combat.World, p profile) Base {
	threshold := p.threshold
	if threshold <= 0 {
		threshold = w.Config.SuperThreshold
	}
	damage := p.damage
	if damage == 0 {
		damage = parameter.WeaponBaseDamage
	}
	return Base{
		WeaponState: combat.WeaponState{
			Owner:          owner,
			Variant:        p.variant,
			Color:          w.Config.Color(p.variant),
			BaseDamage:     damage,
			Damage:         damage,
			BaseReach:      p.reach,
			Reach:          p.reach,
			Angle:          w.Random() * vmath.TwoPi,
			RotationSpeed:  p.rotation,
			SuperThreshold: threshold,
			Scaling:        combat.Scaling{Name: p.scaling},
			CanParry:       !p.noParry,
			Ranged:         p.ranged,
		},
		baseRotation: p.rotation,
		Spin:         1,
	}
}

// State exposes the shared weapon fields
func (b *Base) State() *combat.WeaponState { return &b.WeaponState }

// Update advances rotation and the hit cooldown
func (b *Base) Update(*combat.World) {
	b.spin()
	b.tickCooldown()
}

// CanHit reports whether the hit cooldown has elapsed
func (b *Base) CanHit() bool { return b.Cooldown <= 0 }

// TipPosition is owner position plus reach along the current angle
func (b *Base) TipPosition() vmath.Vec2 { return b.Tip() }

// ApplyScaling is a no-op for variants without derived stats
func (b *Base) ApplyScaling() {}

// ActivateSuper is a no-op for variants without a super change
func (b *Base) ActivateSuper(*combat.World) {}

func (b *Base) spin() {
	b.Angle = vmath.WrapAngle(b.Angle + b.RotationSpeed*b.Spin)
}

func (b *Base) tickCooldown() {
	if b.Cooldown > 0 {
		b.Cooldown--
	}
}

// deal applies damage attributed to the owner and tracks statistics
func (b *Base) deal(target *combat.Ball, amount float64) float64 {
	applied := target.TakeDamageFrom(amount, b.Owner)
	b.DamageDealt += applied
	return applied
}

// record resets the cooldown, credits the hit and emits hit particles
func (b *Base) record(w *combat.World, self combat.Weapon, target *combat.Ball) {
	b.Cooldown = w.Config.WeaponHitCooldown
	combat.RecordHit(w, self)
	w.Emit(target.Pos, 5, b.Color)
}

// strike is the plain hit: damage at current value then bookkeeping
func (b *Base) strike(w *combat.World, self combat.Weapon, target *combat.Ball) {
	b.deal(target, b.Damage)
	b.record(w, self, target)
}

// enemies returns living opponents of the owner
func (b *Base) enemies(w *combat.World) []*combat.Ball {
	return w.Enemies(b.Owner.Side)
}

// enemiesWithin returns living opponents within radius of the owner
func (b *Base) enemiesWithin(w *combat.World, radius float64) []*combat.Ball {
	return w.EnemiesWithin(b.Owner.Pos, radius, b.Owner.Side)
}

// shove pushes target away from the owner
func (b *Base) shove(target *combat.Ball, force float64) {
	knockFrom(target, b.Owner.Pos, force)
}

// aim returns the angle toward the nearest enemy, or the current angle when none remain
func (b *Base) aim(w *combat.World) (float64, *combat.Ball) {
	t := w.NearestEnemy(b.Owner)
	if t == nil {
		return b.Angle, nil
	}
	return t.Pos.Sub(b.Owner.Pos).Angle(), t
}

// launch builds a projectile at from travelling along angle, the caller adds it to the world
func (b *Base) launch(self combat.Weapon, from vmath.Vec2, angle, speed float64) *combat.Projectile {
	return combat.NewProjectile(self, from, vmath.FromAngle(angle, speed))
}

// drop spawns a hazard at pos clamped inside the arena
func (b *Base) drop(w *combat.World, self combat.Weapon, pos vmath.Vec2, radius float64) *combat.Hazard {
	h := combat.NewHazard(self, w.Arena().ClampInside(pos, radius))
	h.Radius = radius
	return h
}
