package weapon

import "github.com/lixenwraith/ballarena/combat"

const (
	shurikenFireRate = 70
	shurikenSpeed    = 4.0
	shurikenRadius   = 5.0
	shurikenLife     = 300
)

// Shuriken throws a ricocheting star, each hit adds one wall bounce
// Super halves the throw interval and makes stars pierce
type Shuriken struct {
	Base
	bounces  int
	fireRate int
	timer    int
}

func newShuriken(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Shuriken{Base: newBase(owner, w, profile{
		variant: "shuriken", damage: 2, reach: 45, rotation: 0.04, threshold: 10, scaling: "Bounces", ranged: true,
	})}
	s.ApplyScaling()
	return s
}

func (s *Shuriken) Update(w *combat.World) {
	s.Base.Update(w)
	s.timer++
	if s.timer >= s.fireRate {
		s.timer = 0
		p := s.launch(s, s.Tip(), s.Angle, shurikenSpeed)
		p.Damage = s.Damage
		p.Radius = shurikenRadius
		p.Lifespan = shurikenLife
		p.Bounces = s.bounces
		p.Piercing = s.SuperActive
		w.AddProjectile(p)
	}
}

func (s *Shuriken) CanHit() bool { return false }

func (s *Shuriken) OnHit(*combat.World, *combat.Ball) {}

func (s *Shuriken) ApplyScaling() {
	s.bounces = 1 + s.HitCount
	s.fireRate = shurikenFireRate
	if s.SuperActive {
		s.fireRate = max(25, shurikenFireRate/2)
	}
	s.Scaling.Value = float64(s.bounces)
}
