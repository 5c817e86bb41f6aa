package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

// Ice chills the target's velocity on hit
// Super grows the owner into a glacier and nearly freezes every enemy
type Ice struct {
	Base
	chill float64
}

func newIce(owner *combat.Ball, w *combat.World) combat.Weapon {
	i := &Ice{Base: newBase(owner, w, profile{
		variant: "ice", damage: 3, reach: 75, rotation: 0.05, threshold: 10, scaling: "Slow",
	})}
	i.ApplyScaling()
	return i
}

func (i *Ice) OnHit(w *combat.World, target *combat.Ball) {
	i.deal(target, i.Damage)
	target.Vel = target.Vel.Scale(i.chill)
	i.record(w, i, target)
}

func (i *Ice) ApplyScaling() {
	i.chill = math.Max(0.3, 0.7-float64(i.HitCount)*0.03)
	i.Damage = i.BaseDamage + math.Floor(float64(i.HitCount)*0.5)
	i.RotationSpeed = i.baseRotation
	if i.SuperActive {
		i.chill = 0.15
		i.Damage += 4
		i.RotationSpeed *= 1.3
	}
	i.Scaling.Value = i.chill
}

func (i *Ice) ActivateSuper(w *combat.World) {
	i.Owner.Radius = math.Round(w.Config.BallRadius * 1.8)
	i.Owner.Mass *= 2.5
	i.Owner.GrowMaxHP(20)
	for _, t := range i.enemies(w) {
		t.Vel = t.Vel.Scale(0.1)
		i.deal(t, 5)
	}
}

// Chill is the velocity multiplier applied to struck targets
func (i *Ice) Chill() float64 { return i.chill }
