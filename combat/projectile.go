package combat

import (
	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

// Projectile is a short-lived ranged attack with ballistic motion
type Projectile struct {
	physics.Body

	ID     EntityID
	Side   Side
	Owner  *Ball
	Weapon Weapon
	Color  string

	Damage   float64
	Lifespan int
	// Bounces is the number of wall reflections left, the next wall contact with none left removes it
	Bounces  int
	Piercing bool

	// Homing steers velocity toward the nearest enemy by this fraction per tick
	Homing float64
	// BounceFalloff is the fraction of damage lost on each reflection
	BounceFalloff float64

	Alive bool
	hit   map[EntityID]struct{}
}

// NewProjectile builds a projectile owned by wp's owner with package defaults for zero fields
func NewProjectile(wp Weapon, pos, vel vmath.Vec2) *Projectile {
	s := wp.State()
	p := &Projectile{
		Body:     physics.Body{Pos: pos, Vel: vel, Radius: parameter.ProjectileRadius},
		Owner:    s.Owner,
		Weapon:   wp,
		Color:    s.Color,
		Damage:   parameter.ProjectileDamage,
		Lifespan: parameter.ProjectileLifespan,
	}
	if s.Owner != nil {
		p.Side = s.Owner.Side
	}
	return p
}

// Update advances one tick: homing, motion, wall bounce budget, hits, then expiry
// Hits are resolved before the lifespan check so a final-frame hit lands
func (p *Projectile) Update(w *World) {
	if !p.Alive {
		return
	}

	if p.Homing > 0 {
		p.steer(w)
	}
	physics.Integrate(&p.Body)

	if side := physics.WallContact(p.Pos, p.Radius, w.Arena()); side != physics.WallNone {
		if p.Bounces <= 0 {
			p.Alive = false
			return
		}
		physics.ReflectWalls(&p.Body, side, w.Arena(), 1)
		p.Bounces--
		p.Damage *= 1 - p.BounceFalloff
		// A reflected shot may strike the same target again
		clear(p.hit)
	}

	p.checkHits(w)

	p.Lifespan--
	if p.Lifespan <= 0 {
		p.Alive = false
	}
}

// HasHit reports whether target was already struck by this piercing projectile
func (p *Projectile) HasHit(id EntityID) bool {
	_, ok := p.hit[id]
	return ok
}

func (p *Projectile) steer(w *World) {
	var target *Ball
	best := 0.0
	for _, b := range w.Balls {
		if !b.Alive || b.Side == p.Side {
			continue
		}
		d := vmath.DistanceSq(p.Pos, b.Pos)
		if target == nil || d < best {
			target, best = b, d
		}
	}
	if target == nil {
		return
	}
	speed := p.Vel.Magnitude()
	desired := vmath.Direction(p.Pos, target.Pos).Scale(speed)
	p.Vel = p.Vel.Lerp(desired, p.Homing)
	// Keep speed constant while turning
	if mag := p.Vel.Magnitude(); mag > 0 {
		p.Vel = p.Vel.Scale(speed / mag)
	}
}

func (p *Projectile) checkHits(w *World) {
	for _, b := range w.Balls {
		if !p.Alive {
			return
		}
		if !b.Alive || b.Side == p.Side || b == p.Owner {
			continue
		}
		if p.Piercing && p.HasHit(b.ID) {
			continue
		}
		if !physics.CircleCircle(p.Pos, p.Radius, b.Pos, b.Radius) {
			continue
		}

		applied := b.TakeDamageFrom(p.Damage, p.Owner)
		w.Emit(p.Pos, 4, p.Color)
		if p.Weapon != nil {
			p.Weapon.State().DamageDealt += applied
			if hook, ok := p.Weapon.(ProjectileHitter); ok {
				hook.OnProjectileHit(w, p, b)
			}
			RecordHit(w, p.Weapon)
		}

		if p.Piercing {
			if p.hit == nil {
				p.hit = make(map[EntityID]struct{})
			}
			p.hit[b.ID] = struct{}{}
		} else {
			p.Alive = false
		}
	}
}
