package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

// Wind spins faster per hit and shoves targets away
// Super opens a vortex that pulls and swirls nearby enemies
type Wind struct {
	Base
	timer int
}

func newWind(owner *combat.Ball, w *combat.World) combat.Weapon {
	wd := &Wind{Base: newBase(owner, w, profile{
		variant: "wind", damage: 2, reach: 55, rotation: 0.09, threshold: 10, scaling: "RPM",
	})}
	wd.ApplyScaling()
	return wd
}

func (wd *Wind) Update(w *combat.World) {
	wd.Base.Update(w)
	wd.timer++
	if !wd.SuperActive {
		return
	}
	for _, t := range wd.enemiesWithin(w, wd.Owner.Radius+120) {
		dir := wd.Owner.Pos.Sub(t.Pos).Normalize()
		t.Vel = t.Vel.Add(dir.Scale(0.6)).Add(dir.Perp().Scale(0.3))
	}
	if wd.timer%25 == 0 {
		for _, t := range wd.enemiesWithin(w, wd.Owner.Radius+35) {
			t.TakeDamageFrom(2, wd.Owner)
		}
	}
}

func (wd *Wind) OnHit(w *combat.World, target *combat.Ball) {
	wd.deal(target, wd.Damage)
	wd.shove(target, 3)
	wd.record(w, wd, target)
}

func (wd *Wind) ApplyScaling() {
	wd.RotationSpeed = wd.baseRotation + float64(wd.HitCount)*0.006
	wd.Damage = wd.BaseDamage + math.Floor(float64(wd.HitCount)*0.3)
	wd.Reach = wd.BaseReach
	if wd.SuperActive {
		wd.RotationSpeed *= 3
		wd.Damage += 4
		wd.Reach += 15
	}
	wd.Scaling.Value = float64(roundInt(wd.RotationSpeed * 1000))
}

func (wd *Wind) ActivateSuper(w *combat.World) {
	for _, t := range wd.enemies(w) {
		wd.shove(t, 6)
		t.TakeDamageFrom(4, wd.Owner)
	}
}
