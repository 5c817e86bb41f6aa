package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

const (
	metalShieldArc      = math.Pi * 0.6
	metalMaxReduction   = 0.6
	metalSuperReduction = 0.7
	metalReflect        = 0.3
)

// Metal guards its owner with a shield facing the weapon angle
// Reduction grows per hit, super covers every direction and reflects damage
type Metal struct {
	Base
	shield *combat.Mitigation
}

func newMetal(owner *combat.Ball, w *combat.World) combat.Weapon {
	m := &Metal{Base: newBase(owner, w, profile{
		variant: "metal", damage: 3, reach: 60, rotation: 0.04, threshold: 10, scaling: "Guard",
	})}
	m.shield = &combat.Mitigation{Key: "metal_shield", Covers: m.covers}
	owner.AddModifier(m.shield)
	m.ApplyScaling()
	return m
}

// covers accepts sourceless damage and hits arriving within the shield arc
func (m *Metal) covers(h *combat.Hit) bool {
	if m.SuperActive || h.Source == nil {
		return true
	}
	incoming := h.Source.Pos.Sub(m.Owner.Pos)
	if incoming.IsZero() {
		return true
	}
	diff := math.Abs(vmath.WrapAngle(incoming.Angle()-m.Angle+math.Pi) - math.Pi)
	return diff <= metalShieldArc/2
}

// Reduction returns the current damage reduction fraction
func (m *Metal) Reduction() float64 { return m.shield.Reduction }

func (m *Metal) OnHit(w *combat.World, target *combat.Ball) { m.strike(w, m, target) }

func (m *Metal) ApplyScaling() {
	m.shield.Reduction = math.Min(metalMaxReduction, 0.2+float64(m.HitCount)*0.04)
	m.shield.ReflectFraction = 0
	m.Damage = m.BaseDamage + math.Floor(float64(m.HitCount)*0.4)
	if m.SuperActive {
		m.shield.Reduction = metalSuperReduction
		m.shield.ReflectFraction = metalReflect
		m.Damage += 5
	}
	m.Scaling.Value = float64(roundInt(m.shield.Reduction * 100))
}

func (m *Metal) ActivateSuper(w *combat.World) {
	m.Owner.Radius = math.Round(m.Owner.Radius * 1.3)
	m.Owner.Mass *= 2
	m.Owner.GrowMaxHP(20)
	for _, t := range m.enemies(w) {
		m.shove(t, 6)
		t.TakeDamageFrom(4, m.Owner)
	}
}
