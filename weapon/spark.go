package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

const sparkChainRange = 120

// Spark chains lightning from the struck ball to nearby enemies
// Super charges a static field that grows while the owner is slow
type Spark struct {
	Base
	chains int
	field  float64
	timer  int
}

func newSpark(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Spark{Base: newBase(owner, w, profile{
		variant: "spark", damage: 3, reach: 65, rotation: 0.06, threshold: 10, scaling: "Chains",
	})}
	s.ApplyScaling()
	return s
}

func (s *Spark) Update(w *combat.World) {
	s.Base.Update(w)
	s.timer++
	if !s.SuperActive {
		return
	}
	if speedOf(s.Owner) < 2 {
		s.field = math.Min(130, s.field+1.5)
	} else {
		s.field = math.Max(30, s.field-2)
	}
	if s.timer%20 != 0 {
		return
	}
	for _, t := range s.enemiesWithin(w, s.Owner.Radius+s.field) {
		s.deal(t, 3)
		w.Emit(t.Pos, 4, s.Color)
	}
}

func (s *Spark) OnHit(w *combat.World, target *combat.Ball) {
	s.strike(w, s, target)
	s.chain(w, target)
}

// chain jumps from first to the closest unvisited enemy until chains run out
func (s *Spark) chain(w *combat.World, first *combat.Ball) {
	visited := map[combat.EntityID]bool{s.Owner.ID: true, first.ID: true}
	last := first
	dmg := math.Max(1, math.Floor(s.Damage*0.6))
	for n := s.chains; n > 0; n-- {
		var next *combat.Ball
		best := float64(sparkChainRange)
		for _, t := range s.enemies(w) {
			if visited[t.ID] {
				continue
			}
			if d := t.Pos.Sub(last.Pos).Magnitude(); d < best {
				best, next = d, t
			}
		}
		if next == nil {
			return
		}
		s.deal(next, dmg)
		visited[next.ID] = true
		w.Emit(next.Pos, 4, s.Color)
		last = next
	}
}

func (s *Spark) ApplyScaling() {
	s.chains = min(5, 1+s.HitCount/3)
	s.Damage = s.BaseDamage + math.Floor(float64(s.HitCount)*0.4)
	s.RotationSpeed = s.baseRotation
	if s.SuperActive {
		s.chains += 2
		s.Damage += 3
		s.RotationSpeed *= 1.3
	}
	s.Scaling.Value = float64(s.chains)
}

func (s *Spark) ActivateSuper(w *combat.World) {
	s.field = 50
	for _, t := range s.enemiesWithin(w, 120) {
		s.deal(t, 5)
		w.Explode(t.Pos, 12, s.Color)
	}
}

// Chains is the current number of chain jumps
func (s *Spark) Chains() int { return s.chains }

// Field is the static field radius beyond the owner's body
func (s *Spark) Field() float64 { return s.field }
