package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

const ghostAura = 12.0

// Ghost alternates solid and phased states; phased owners cannot be damaged
// Super makes the phase permanent and drains nearby enemies
type Ghost struct {
	Base
	phased  bool
	timer   int
	flicker int
	phase   int
	solid   int
	drain   float64
}

func newGhost(owner *combat.Ball, w *combat.World) combat.Weapon {
	g := &Ghost{Base: newBase(owner, w, profile{
		variant: "ghost", damage: 2, threshold: 8, scaling: "Phase", noParry: true,
	})}
	g.ApplyScaling()
	return g
}

// ContactAura lets contact hits land across a gap around the ghost
func (g *Ghost) ContactAura() float64 { return ghostAura }

// Phased reports whether the owner is currently intangible
func (g *Ghost) Phased() bool { return g.phased }

func (g *Ghost) setPhased(on bool) {
	g.phased = on
	g.Owner.Invulnerable = on
	g.Unparryable = on
	g.timer = 0
}

func (g *Ghost) Update(w *combat.World) {
	g.tickCooldown()
	g.flicker++
	g.timer++

	if g.SuperActive {
		if !g.phased {
			g.setPhased(true)
		}
		if g.flicker%30 == 0 {
			for _, t := range g.enemiesWithin(w, g.Owner.Radius+60) {
				t.TakeDamageFrom(1+g.drain, g.Owner)
			}
		}
		return
	}

	switch {
	case g.phased && g.timer >= g.phase:
		g.setPhased(false)
	case !g.phased && g.timer >= g.solid:
		g.setPhased(true)
		w.Emit(g.Owner.Pos, 8, g.Color)
	}
}

func (g *Ghost) OnHit(w *combat.World, target *combat.Ball) {
	dmg := g.Damage
	if g.phased {
		dmg += 2
	}
	g.deal(target, dmg)
	g.record(w, g, target)
}

func (g *Ghost) ApplyScaling() {
	g.phase = 90 + g.HitCount*15
	g.solid = max(40, 120-g.HitCount*8)
	g.drain = math.Floor(float64(g.HitCount) * 0.5)
	g.Damage = g.BaseDamage
	if g.SuperActive {
		g.Damage += 3
		g.drain += 2
	}
	g.Scaling.Value = math.Round(float64(g.phase)/60*10) / 10
}

func (g *Ghost) ActivateSuper(*combat.World) {
	g.setPhased(true)
}
