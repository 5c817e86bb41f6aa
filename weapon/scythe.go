package weapon

import "github.com/lixenwraith/ballarena/combat"

// Scythe poisons on hit, stacks applied grow with hit count
type Scythe struct {
	Base
	poison int
}

func newScythe(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Scythe{Base: newBase(owner, w, profile{
		variant: "scythe", damage: 2, reach: 78, rotation: 0.05, threshold: 8, scaling: "Poison",
	})}
	s.ApplyScaling()
	return s
}

func (s *Scythe) OnHit(w *combat.World, target *combat.Ball) {
	s.deal(target, s.Damage)
	target.AddPoison(s.poison)
	s.record(w, s, target)
}

func (s *Scythe) ApplyScaling() {
	s.poison = 1 + s.HitCount
	s.Damage = s.BaseDamage
	s.RotationSpeed = s.baseRotation
	if s.SuperActive {
		s.Damage += 2
		s.RotationSpeed *= 1.5
	}
	s.Scaling.Value = float64(s.poison)
}
