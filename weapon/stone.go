package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

// Stone is a heavy body-contact brawler, mass grows per hit
// Super grows the body and stomps periodically
type Stone struct {
	Base
	refRadius float64
	refMass   float64
	stomp     int
}

func newStone(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Stone{
		Base: newBase(owner, w, profile{
			variant: "stone", damage: 4, threshold: 10, scaling: "Mass", noParry: true,
		}),
		refRadius: w.Config.BallRadius,
		refMass:   w.Config.BallMass,
	}
	owner.Radius = math.Round(s.refRadius * 1.3)
	s.ApplyScaling()
	return s
}

func (s *Stone) Update(w *combat.World) {
	s.tickCooldown()
	if !s.SuperActive {
		return
	}
	s.stomp++
	if s.stomp%50 != 0 {
		return
	}
	for _, t := range s.enemiesWithin(w, s.Owner.Radius+40) {
		t.TakeDamageFrom(3, s.Owner)
		s.shove(t, 5)
	}
	w.Explode(s.Owner.Pos, 12, s.Color)
}

func (s *Stone) OnHit(w *combat.World, target *combat.Ball) {
	s.deal(target, s.Damage)
	s.shove(target, 4+s.Owner.Mass)
	s.record(w, s, target)
}

func (s *Stone) ApplyScaling() {
	growth := 1.5 + float64(s.HitCount)*0.15
	if s.SuperActive {
		growth *= 4
	}
	s.Owner.Mass = s.Owner.Radius / s.refRadius * s.refMass * growth
	s.Damage = s.BaseDamage + math.Floor(float64(s.HitCount)*0.5)
	if s.SuperActive {
		s.Damage += 6
	}
	s.Scaling.Value = math.Round(s.Owner.Mass*10) / 10
}

func (s *Stone) ActivateSuper(w *combat.World) {
	s.Owner.Radius = math.Round(s.refRadius * 2.5)
	s.Owner.GrowMaxHP(40)
	s.stomp = 0
	for _, t := range s.enemies(w) {
		t.TakeDamageFrom(6, s.Owner)
		s.shove(t, 8)
	}
}
