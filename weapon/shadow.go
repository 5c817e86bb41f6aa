package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

// Shadow flickers between solid and phased; phased swings are unparryable and hit harder
// Super locks the phase, steals life and opens a pulling void
type Shadow struct {
	Base
	phased     bool
	timer      int
	flicker    int
	multiplier float64
}

const (
	shadowPhased = 60
	shadowSolid  = 90
)

func newShadow(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Shadow{Base: newBase(owner, w, profile{
		variant: "shadow", damage: 3, reach: 65, rotation: 0.055, threshold: 10, scaling: "Power",
	})}
	s.ApplyScaling()
	return s
}

// Phased reports the current phase
func (s *Shadow) Phased() bool { return s.phased }

func (s *Shadow) setPhased(on bool) {
	s.phased = on
	s.Unparryable = on
	s.timer = 0
}

func (s *Shadow) Update(w *combat.World) {
	s.Base.Update(w)
	s.flicker++
	s.timer++

	if s.SuperActive {
		if !s.phased {
			s.setPhased(true)
		}
		for _, t := range s.enemiesWithin(w, s.Owner.Radius+100) {
			pullTo(t, s.Owner.Pos, 0.25)
		}
		if s.flicker%35 == 0 {
			for _, t := range s.enemiesWithin(w, s.Owner.Radius+50) {
				t.TakeDamageFrom(2, s.Owner)
				s.Owner.Heal(2)
			}
		}
		return
	}

	switch {
	case s.phased && s.timer >= shadowPhased:
		s.setPhased(false)
	case !s.phased && s.timer >= shadowSolid:
		s.setPhased(true)
	}
}

func (s *Shadow) OnHit(w *combat.World, target *combat.Ball) {
	dmg := math.Round(s.Damage * s.multiplier)
	if s.phased {
		dmg += 2
	}
	s.deal(target, dmg)
	if s.SuperActive {
		s.Owner.Heal(math.Ceil(dmg * 0.3))
	}
	s.record(w, s, target)
}

func (s *Shadow) ApplyScaling() {
	s.multiplier = 1 + float64(s.HitCount)*0.15
	s.Damage = s.BaseDamage + math.Floor(float64(s.HitCount)*0.3)
	if s.SuperActive {
		s.multiplier += 0.8
		s.Damage += 4
	}
	s.Scaling.Value = math.Round(s.multiplier*10) / 10
}

func (s *Shadow) ActivateSuper(w *combat.World) {
	s.setPhased(true)
	for _, t := range s.enemies(w) {
		t.TakeDamageFrom(5, s.Owner)
		t.Vel = t.Vel.Scale(0.3)
	}
}
