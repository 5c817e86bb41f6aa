package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/physics"
)

// Unarmed hits by body contact for damage proportional to speed
// Each hit lifts the owner's speed ceiling, super removes it
type Unarmed struct {
	Base
	baseMaxSpeed float64
}

func newUnarmed(owner *combat.Ball, w *combat.World) combat.Weapon {
	u := &Unarmed{
		Base: newBase(owner, w, profile{
			variant: "unarmed", damage: 1, threshold: 8, scaling: "Max Spd", noParry: true,
		}),
		baseMaxSpeed: owner.MaxSpeed,
	}
	u.ApplyScaling()
	return u
}

func (u *Unarmed) Update(*combat.World) { u.tickCooldown() }

func (u *Unarmed) OnHit(w *combat.World, target *combat.Ball) {
	dmg := math.Max(1, math.Floor(speedOf(u.Owner)*0.8))
	u.deal(target, dmg)
	u.shove(target, 3)
	u.record(w, u, target)
}

func (u *Unarmed) ApplyScaling() {
	bonus := float64(u.HitCount) * 1.5
	if u.SuperActive {
		bonus = 100
	}
	u.Owner.MaxSpeed = u.baseMaxSpeed + bonus
	u.Scaling.Value = float64(roundInt(u.Owner.MaxSpeed))
}

func (u *Unarmed) ActivateSuper(*combat.World) {
	physics.DampVelocity(&u.Owner.Body, 1.5)
}
