package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

// Hephaestus hammers forge marks into its targets, marks amplify all later damage
// Rotation breathes between a floor and a ceiling that both rise with hits
type Hephaestus struct {
	Base
	marks        int
	speed        float64
	minSpeed     float64
	maxSpeed     float64
	accelerating bool
}

func newHephaestus(owner *combat.Ball, w *combat.World) combat.Weapon {
	h := &Hephaestus{
		Base: newBase(owner, w, profile{
			variant: "hephaestus", damage: 6, reach: 75, rotation: 0.04, threshold: 12, scaling: "Marks",
		}),
		speed:        0.04,
		accelerating: true,
	}
	owner.Mass *= 1.05
	h.ApplyScaling()
	return h
}

func (h *Hephaestus) Update(w *combat.World) {
	if h.accelerating {
		h.speed += 0.0012
		if h.speed >= h.maxSpeed {
			h.accelerating = false
		}
	} else {
		h.speed -= 0.0008
		if h.speed <= h.minSpeed {
			h.accelerating = true
		}
	}
	h.RotationSpeed = h.speed
	h.Base.Update(w)
}

func (h *Hephaestus) OnHit(w *combat.World, target *combat.Ball) {
	h.strike(w, h, target)
	target.AddForgeMarks(h.marks)
	if h.SuperActive {
		hz := h.drop(w, h, target.Pos, 30)
		hz.Damage = 1.5
		hz.TickRate = 20
		hz.Lifespan = 180
		w.AddHazard(hz)
	}
}

func (h *Hephaestus) ApplyScaling() {
	h.Damage = h.BaseDamage + math.Floor(float64(h.HitCount)*0.45)
	h.marks = 1 + h.HitCount/4
	h.maxSpeed = math.Min(0.12, 0.075+float64(h.HitCount)*0.004)
	h.minSpeed = math.Min(0.05, 0.025+float64(h.HitCount)*0.002)
	if h.SuperActive {
		h.Damage += 4
		h.maxSpeed *= 1.4
		h.minSpeed *= 1.4
	}
	h.Scaling.Value = float64(h.marks)
}

func (h *Hephaestus) ActivateSuper(w *combat.World) {
	h.Unparryable = true
	h.Owner.GrowMaxHP(10)
	for i := range 4 {
		a := float64(i) / 4 * vmath.TwoPi
		hz := h.drop(w, h, h.Owner.Pos.Add(vmath.FromAngle(a, 50)), 25)
		hz.Damage = 2
		hz.TickRate = 25
		hz.Lifespan = 240
		w.AddHazard(hz)
	}
}

// Marks is the forge marks applied per hit
func (h *Hephaestus) Marks() int { return h.marks }
