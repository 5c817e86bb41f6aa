package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

const hadesAura = 3.0

// Hades emits a periodic death pulse that damages, heals and pulls
// Super inverts the pull into repulsion and widens the pulse
type Hades struct {
	Base
	pulseTimer int
	pullTimer  int
	pulseRate  int
	radius     float64
	pulse      float64
	pull       float64
	heal       float64
}

func newHades(owner *combat.Ball, w *combat.World) combat.Weapon {
	h := &Hades{Base: newBase(owner, w, profile{
		variant: "hades", damage: 2, threshold: 10, scaling: "Pulse", noParry: true,
	})}
	owner.Mass *= 1.1
	owner.SetMaxHP(math.Round(w.Config.MaxHP * 1.15))
	h.ApplyScaling()
	return h
}

// ContactAura widens body contact slightly
func (h *Hades) ContactAura() float64 { return hadesAura }

func (h *Hades) Update(w *combat.World) {
	h.tickCooldown()
	h.pulseTimer++
	h.pullTimer++

	if h.pullTimer >= 8 {
		h.pullTimer = 0
		reach := h.radius * 1.5
		for _, t := range h.enemiesWithin(w, reach) {
			dist := t.Pos.Sub(h.Owner.Pos).Magnitude()
			factor := h.pull * (1 - dist/reach)
			if h.SuperActive {
				knockFrom(t, h.Owner.Pos, factor)
			} else {
				pullTo(t, h.Owner.Pos, factor)
			}
		}
	}

	if h.pulseTimer >= h.pulseRate {
		h.pulseTimer = 0
		h.deathPulse(w)
	}
}

func (h *Hades) deathPulse(w *combat.World) {
	hitAny := false
	force := -2.0
	if h.SuperActive {
		force = 4
	}
	for _, t := range h.enemiesWithin(w, h.radius) {
		h.deal(t, h.pulse)
		knockFrom(t, h.Owner.Pos, force)
		hitAny = true
		combat.RecordHit(w, h)
	}
	if hitAny {
		h.Owner.Heal(h.heal)
	}
	w.Emit(h.Owner.Pos, 6, h.Color)
}

func (h *Hades) OnHit(w *combat.World, target *combat.Ball) { h.strike(w, h, target) }

func (h *Hades) ApplyScaling() {
	h.pulse = 4 + math.Floor(float64(h.HitCount)*0.25)
	h.pull = math.Min(0.35, 0.14+float64(h.HitCount)*0.025)
	h.heal = 3 + math.Floor(float64(h.HitCount)/6)
	h.Damage = h.BaseDamage + math.Floor(float64(h.HitCount)*0.25)
	h.pulseRate = 110
	h.radius = 75
	if h.SuperActive {
		h.pulse += 2
		h.radius = 85
		h.pulseRate = 90
		h.pull *= 1.3
		h.heal++
	}
	h.Scaling.Value = h.pulse
}

func (h *Hades) ActivateSuper(w *combat.World) {
	h.Owner.GrowMaxHP(10)
	for _, t := range h.enemies(w) {
		h.shove(t, 6)
	}
}
