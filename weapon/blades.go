package weapon

import "github.com/lixenwraith/ballarena/combat"

// Sword gains one damage per hit, super doubles its swing speed
type Sword struct{ Base }

func newSword(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Sword{Base: newBase(owner, w, profile{
		variant: "sword", damage: 3, reach: 80, rotation: 0.06, threshold: 10, scaling: "Damage",
	})}
	s.ApplyScaling()
	return s
}

func (s *Sword) OnHit(w *combat.World, target *combat.Ball) { s.strike(w, s, target) }

func (s *Sword) ApplyScaling() {
	s.Damage = s.BaseDamage + float64(s.HitCount)
	s.RotationSpeed = s.baseRotation
	if s.SuperActive {
		s.RotationSpeed *= 2
	}
	s.Scaling.Value = s.Damage
}

// Dagger spins faster with every hit, super triples its reach
type Dagger struct{ Base }

func newDagger(owner *combat.Ball, w *combat.World) combat.Weapon {
	d := &Dagger{Base: newBase(owner, w, profile{
		variant: "dagger", damage: 2, reach: 62, rotation: 0.08, threshold: 10, scaling: "Atk Speed",
	})}
	d.ApplyScaling()
	return d
}

func (d *Dagger) OnHit(w *combat.World, target *combat.Ball) { d.strike(w, d, target) }

func (d *Dagger) ApplyScaling() {
	d.RotationSpeed = d.baseRotation + float64(d.HitCount)*0.008
	d.Reach = d.BaseReach
	d.Damage = d.BaseDamage
	if d.SuperActive {
		d.Reach = d.BaseReach * 3
		d.Damage = d.BaseDamage + 2
	}
	d.Scaling.Value = float64(roundInt(d.RotationSpeed * 1000))
}

// Spear lengthens by 4 per hit
type Spear struct{ Base }

func newSpear(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Spear{Base: newBase(owner, w, profile{
		variant: "spear", damage: 3, reach: 95, rotation: 0.045, threshold: 12, scaling: "Length",
	})}
	s.ApplyScaling()
	return s
}

func (s *Spear) OnHit(w *combat.World, target *combat.Ball) { s.strike(w, s, target) }

func (s *Spear) ApplyScaling() {
	s.Reach = s.BaseReach + float64(s.HitCount)*4
	s.Damage = s.BaseDamage + float64(s.HitCount)*0.5
	s.RotationSpeed = s.baseRotation
	if s.SuperActive {
		s.Damage += 3
		s.RotationSpeed *= 1.5
	}
	s.Scaling.Value = float64(roundInt(s.Reach))
}
