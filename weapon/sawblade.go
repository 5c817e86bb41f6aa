package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

const (
	sawOrbitRadius = 55.0
	sawOrbitSpeed  = 0.05
	sawRadius      = 10.0
	sawMax         = 12
)

// Sawblade orbits a ring of saws, one more saw per hit up to 12
// Each saw has its own cooldown, super reverses and doubles the orbit
type Sawblade struct {
	Base
	orbit     float64
	speed     float64
	saws      int
	cooldowns []int
}

func newSawblade(owner *combat.Ball, w *combat.World) combat.Weapon {
	s := &Sawblade{Base: newBase(owner, w, profile{
		variant: "sawblade", damage: 2, reach: sawOrbitRadius, rotation: 0.06, threshold: 8, scaling: "Saws",
	})}
	s.ApplyScaling()
	return s
}

// OrbitDirection is +1 before super and -1 after
func (s *Sawblade) OrbitDirection() float64 {
	if s.SuperActive {
		return -1
	}
	return 1
}

// Saws returns the number of orbiting saws
func (s *Sawblade) Saws() int { return s.saws }

// SawPosition returns the world position of saw i
func (s *Sawblade) SawPosition(i int) vmath.Vec2 {
	offset := float64(i) / float64(s.saws) * 2 * math.Pi
	return s.Owner.Pos.Add(vmath.FromAngle(s.orbit+offset, sawOrbitRadius))
}

func (s *Sawblade) Update(w *combat.World) {
	s.orbit = vmath.WrapAngle(s.orbit + s.speed*s.OrbitDirection())
	s.Angle = s.orbit
	for i := range s.cooldowns {
		if s.cooldowns[i] > 0 {
			s.cooldowns[i]--
		}
	}

	// Saw count may grow mid-loop through a hit; saws added this tick start next tick
	n := s.saws
	for i := 0; i < n; i++ {
		if s.cooldowns[i] > 0 {
			continue
		}
		pos := s.SawPosition(i)
		for _, target := range s.enemies(w) {
			if !physics.CircleCircle(pos, sawRadius, target.Pos, target.Radius) {
				continue
			}
			s.deal(target, s.Damage)
			s.cooldowns[i] = w.Config.WeaponHitCooldown
			combat.RecordHit(w, s)
			w.Emit(pos, 8, s.Color)
			break
		}
	}
}

// CanHit is false, saws resolve their own collisions
func (s *Sawblade) CanHit() bool { return false }

func (s *Sawblade) OnHit(*combat.World, *combat.Ball) {}

// TipPosition reports the first saw for parry checks
func (s *Sawblade) TipPosition() vmath.Vec2 { return s.SawPosition(0) }

func (s *Sawblade) ApplyScaling() {
	s.saws = min(sawMax, 1+s.HitCount)
	for len(s.cooldowns) < s.saws {
		s.cooldowns = append(s.cooldowns, 0)
	}
	s.Damage = s.BaseDamage + math.Floor(float64(s.HitCount)*0.3)
	s.speed = sawOrbitSpeed
	if s.SuperActive {
		s.Damage += 2
		s.speed *= 2
	}
	s.Scaling.Value = float64(s.saws)
}
