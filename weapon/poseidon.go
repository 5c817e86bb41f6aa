package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

// Poseidon is a heavy trident with strong knockback and a lasting slow
// Super floods the arena from the bottom, each later hit raises the water
type Poseidon struct {
	Base
	knockback float64
	flooding  bool
	waterLine float64
}

const (
	floodRise  = 0.05
	floodLimit = 0.2
	floodDrag  = 0.97
)

func newPoseidon(owner *combat.Ball, w *combat.World) combat.Weapon {
	p := &Poseidon{Base: newBase(owner, w, profile{
		variant: "poseidon", damage: 9, reach: 90, rotation: 0.085, threshold: 8, scaling: "Tidal",
	})}
	owner.SetMaxHP(math.Round(w.Config.MaxHP * 1.2))
	owner.Mass *= 1.1
	p.ApplyScaling()
	return p
}

func (p *Poseidon) Update(w *combat.World) {
	p.Base.Update(w)
	if !p.flooding {
		return
	}
	for _, t := range p.enemies(w) {
		if t.Pos.Y+t.Radius > p.waterLine {
			t.Vel = t.Vel.Scale(floodDrag)
		}
	}
}

func (p *Poseidon) OnHit(w *combat.World, target *combat.Ball) {
	p.strike(w, p, target)
	p.shove(target, p.knockback)
	target.ApplySlow(0.3, 120)
	if p.flooding {
		p.rise(w)
	}
}

func (p *Poseidon) rise(w *combat.World) {
	a := w.Arena()
	p.waterLine = math.Max(a.Y+a.Height*floodLimit, p.waterLine-a.Height*floodRise)
}

func (p *Poseidon) ApplyScaling() {
	p.Damage = p.BaseDamage + math.Floor(float64(p.HitCount)*0.8)
	p.knockback = math.Min(8, 4.5+float64(p.HitCount)*0.35)
	p.RotationSpeed = p.baseRotation
	if p.SuperActive {
		p.Damage += 3
		p.knockback += 3
		p.RotationSpeed *= 1.5
	}
	p.Scaling.Value = math.Round(p.knockback*10) / 10
}

func (p *Poseidon) ActivateSuper(w *combat.World) {
	p.flooding = true
	p.waterLine = w.Arena().Bottom()
	for _, t := range p.enemies(w) {
		p.shove(t, 8)
		p.deal(t, 5)
	}
}

// WaterLine reports the flood surface height, ok is false before the super
func (p *Poseidon) WaterLine() (y float64, ok bool) { return p.waterLine, p.flooding }
