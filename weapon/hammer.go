package weapon

import "github.com/lixenwraith/ballarena/combat"

const (
	hammerAccel    = 0.0012
	hammerDecel    = 0.0008
	hammerMinSpeed = 0.018
	hammerMaxSpeed = 0.07
)

// Hammer swings in accelerate/decelerate cycles, hits raise the peak speed
// Super makes it unparryable and jumps straight to peak speed
type Hammer struct {
	Base
	maxSpeed     float64
	speed        float64
	accelerating bool
}

func newHammer(owner *combat.Ball, w *combat.World) combat.Weapon {
	h := &Hammer{
		Base: newBase(owner, w, profile{
			variant: "hammer", damage: 5, reach: 78, rotation: 0.03, threshold: 10, scaling: "Max RPM",
		}),
		speed:        0.03,
		accelerating: true,
	}
	h.ApplyScaling()
	return h
}

func (h *Hammer) Update(*combat.World) {
	if h.accelerating {
		h.speed += hammerAccel
		if h.speed >= h.maxSpeed {
			h.accelerating = false
		}
	} else {
		h.speed -= hammerDecel
		if h.speed <= hammerMinSpeed {
			h.accelerating = true
		}
	}
	h.RotationSpeed = h.speed
	h.spin()
	h.tickCooldown()
}

func (h *Hammer) OnHit(w *combat.World, target *combat.Ball) { h.strike(w, h, target) }

func (h *Hammer) ApplyScaling() {
	h.maxSpeed = hammerMaxSpeed + float64(h.HitCount)*0.005
	h.Damage = h.BaseDamage
	if h.SuperActive {
		h.Damage += 3
	}
	h.Scaling.Value = float64(roundInt(h.maxSpeed * 1000))
}

func (h *Hammer) ActivateSuper(*combat.World) {
	h.Unparryable = true
	h.speed = h.maxSpeed
	h.accelerating = false
}
