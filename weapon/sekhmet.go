package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

// Sekhmet swings twin claws on opposite sides, damage compounds ten percent per hit
// Super trails short-lived blood pools behind both claws
type Sekhmet struct {
	Base
	trail int
}

func newSekhmet(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Sekhmet{Base: newBase(owner, w, profile{
		variant: "sekhmet", damage: 1.5, reach: 62, rotation: 0.085, threshold: 18, scaling: "Frenzy",
	})}
	s.ApplyScaling()
	return s
}

// SecondClaw is the tip of the claw opposite the primary
func (s *Sekhmet) SecondClaw() vmath.Vec2 {
	return s.Owner.Pos.Add(vmath.FromAngle(s.Angle+math.Pi, s.Reach))
}

func (s *Sekhmet) Update(w *combat.World) {
	s.Base.Update(w)
	if !s.SuperActive {
		return
	}
	s.trail++
	if s.trail < 4 {
		return
	}
	s.trail = 0
	for _, tip := range []vmath.Vec2{s.Tip(), s.SecondClaw()} {
		h := s.drop(w, s, tip, 8)
		h.Damage = s.Damage * 0.5
		h.TickRate = 10
		h.Lifespan = 18
		w.AddHazard(h)
	}
}

// Strike tests both claws against target and hits once on the first that connects
func (s *Sekhmet) Strike(w *combat.World, target *combat.Ball) bool {
	if !s.CanHit() {
		return false
	}
	for _, angle := range []float64{s.Angle, s.Angle + math.Pi} {
		inner := s.Owner.Pos.Add(vmath.FromAngle(angle, s.Reach*parameter.WeaponMeleeInnerFraction))
		tip := s.Owner.Pos.Add(vmath.FromAngle(angle, s.Reach))
		if physics.LineCircle(inner, tip, target.Pos, target.Radius) {
			s.OnHit(w, target)
			return true
		}
	}
	return false
}

func (s *Sekhmet) OnHit(w *combat.World, target *combat.Ball) { s.strike(w, s, target) }

func (s *Sekhmet) ApplyScaling() {
	s.Damage = s.BaseDamage * math.Pow(1.1, float64(s.HitCount))
	s.RotationSpeed = math.Min(0.2, s.baseRotation+float64(s.HitCount)*0.002)
	s.Scaling.Value = math.Round(s.Damage*10) / 10
}

func (s *Sekhmet) ActivateSuper(w *combat.World) {
	for _, t := range s.enemies(w) {
		s.deal(t, s.Damage)
	}
}
