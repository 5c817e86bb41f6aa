package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

// Storm strikes a thunderclap around the target on every third hit
// Super makes every hit a wider, heavier thunderclap
type Storm struct {
	Base
	thunder float64
	radius  float64
}

func newStorm(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Storm{Base: newBase(owner, w, profile{
		variant: "storm", damage: 4, reach: 75, rotation: 0.045, threshold: 10, scaling: "Thunder",
	})}
	s.ApplyScaling()
	return s
}

func (s *Storm) OnHit(w *combat.World, target *combat.Ball) {
	s.strike(w, s, target)
	if s.SuperActive || s.HitCount%3 == 0 {
		s.thunderclap(w, target.Pos)
	}
}

func (s *Storm) thunderclap(w *combat.World, at vmath.Vec2) {
	for _, t := range w.EnemiesWithin(at, s.radius, s.Owner.Side) {
		s.deal(t, s.thunder)
		knockFrom(t, at, 3)
	}
	w.Explode(at, 10, s.Color)
}

func (s *Storm) ApplyScaling() {
	s.thunder = 3 + math.Floor(float64(s.HitCount)*0.5)
	s.Damage = s.BaseDamage + math.Floor(float64(s.HitCount)*0.4)
	s.radius = 80
	s.RotationSpeed = s.baseRotation
	if s.SuperActive {
		s.thunder += 6
		s.radius = 130
		s.Damage += 4
		s.RotationSpeed *= 1.5
	}
	s.Scaling.Value = s.thunder
}

func (s *Storm) ActivateSuper(w *combat.World) {
	for _, t := range s.enemies(w) {
		s.deal(t, 8)
		s.shove(t, 5)
	}
}

// Thunder is the current thunderclap damage and radius
func (s *Storm) Thunder() (damage, radius float64) { return s.thunder, s.radius }
