package weapon

import "github.com/lixenwraith/ballarena/combat"

// Axe rolls for a critical hit, chance grows 2 points per hit
type Axe struct {
	Base
	critChance float64
	// LastCrit reports whether the most recent hit was critical
	LastCrit bool
}

func newAxe(owner *combat.Ball, w *combat.World) combat.Weapon {
	a := &Axe{Base: newBase(owner, w, profile{
		variant: "axe", damage: 4, reach: 72, rotation: 0.045, threshold: 12, scaling: "Crit %",
	})}
	a.ApplyScaling()
	return a
}

func (a *Axe) OnHit(w *combat.World, target *combat.Ball) {
	dmg := a.Damage
	a.LastCrit = w.Random()*100 < a.critChance
	if a.LastCrit {
		dmg += a.critChance * 0.5
		w.Explode(target.Pos, 8, a.Color)
	}
	a.deal(target, dmg)
	a.record(w, a, target)
}

func (a *Axe) ApplyScaling() {
	a.critChance = 5 + float64(a.HitCount)*2
	a.Damage = a.BaseDamage
	if a.SuperActive {
		a.critChance += 20
		a.Damage += 2
	}
	a.Scaling.Value = a.critChance
}
