package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

// Anubis hits harder the closer its owner is to death
// Super bleeds the owner one point per second down to a floor of one
type Anubis struct {
	Base
	drainTimer int
}

func newAnubis(owner *combat.Ball, w *combat.World) combat.Weapon {
	a := &Anubis{Base: newBase(owner, w, profile{
		variant: "anubis", damage: 2.5, reach: 75, rotation: 0.06, threshold: 10, scaling: "Reaper",
	})}
	a.ApplyScaling()
	return a
}

func (a *Anubis) Update(w *combat.World) {
	a.Base.Update(w)
	if a.SuperActive {
		a.drainTimer++
		if a.drainTimer >= 60 {
			a.drainTimer = 0
			if a.Owner.HP > 1 {
				a.Owner.HP = math.Max(1, a.Owner.HP-1)
			}
		}
	}
	a.ApplyScaling()
}

// multiplier is full-health damage scaled by 100 over current health
func (a *Anubis) multiplier() float64 {
	return 100 / math.Max(1, a.Owner.HP)
}

func (a *Anubis) OnHit(w *combat.World, target *combat.Ball) {
	a.ApplyScaling()
	a.strike(w, a, target)
}

func (a *Anubis) ApplyScaling() {
	m := a.multiplier()
	a.Damage = (a.BaseDamage + math.Floor(float64(a.HitCount)*0.4)) * m
	a.Scaling.Value = math.Round(m*10) / 10
}
