package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

// Poison stacks poison on every hit, stack size grows with hits
type Poison struct {
	Base
	venom int
}

func newPoison(owner *combat.Ball, w *combat.World) combat.Weapon {
	p := &Poison{Base: newBase(owner, w, profile{
		variant: "poison", damage: 2, reach: 55, rotation: 0.05, threshold: 10, scaling: "Venom",
	})}
	p.ApplyScaling()
	return p
}

func (p *Poison) OnHit(w *combat.World, target *combat.Ball) {
	p.deal(target, p.Damage)
	target.AddPoison(p.venom)
	p.record(w, p, target)
}

func (p *Poison) ApplyScaling() {
	p.venom = min(8, 1+p.HitCount/2)
	p.Damage = p.BaseDamage + math.Floor(float64(p.HitCount)*0.3)
	if p.SuperActive {
		p.venom += 4
		p.Damage += 3
	}
	p.Scaling.Value = float64(p.venom)
}

// ActivateSuper releases a ring of ten globs and drenches every enemy
func (p *Poison) ActivateSuper(w *combat.World) {
	for i := range 10 {
		a := float64(i) / 10 * vmath.TwoPi
		from := p.Owner.Pos.Add(vmath.FromAngle(a, p.Owner.Radius))
		pr := p.launch(p, from, a, 5)
		pr.Radius = 4
		pr.Damage = 4
		pr.Lifespan = 100
		pr.Bounces = 1
		w.AddProjectile(pr)
	}
	for _, t := range p.enemies(w) {
		t.AddPoison(8)
		p.deal(t, 4)
	}
}

// Venom is the poison stacks applied per hit
func (p *Poison) Venom() int { return p.venom }
