package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

// Nature extends its vine with hits and may root the target
// Super adds a thorn aura and roots everything at once
type Nature struct {
	Base
	rootChance float64
	thorns     float64
	timer      int
}

func newNature(owner *combat.Ball, w *combat.World) combat.Weapon {
	n := &Nature{Base: newBase(owner, w, profile{
		variant: "nature", damage: 2, reach: 50, rotation: 0.045, threshold: 10, scaling: "Reach",
	})}
	n.ApplyScaling()
	return n
}

func (n *Nature) Update(w *combat.World) {
	n.Base.Update(w)
	n.timer++
	if n.thorns <= 0 || n.timer%40 != 0 {
		return
	}
	for _, t := range n.enemiesWithin(w, n.Owner.Radius+20) {
		n.deal(t, n.thorns)
	}
}

func (n *Nature) OnHit(w *combat.World, target *combat.Ball) {
	n.deal(target, n.Damage)
	if w.Random() < n.rootChance {
		root(target)
	}
	n.record(w, n, target)
}

func (n *Nature) ApplyScaling() {
	n.Reach = math.Min(120, n.BaseReach+float64(n.HitCount)*3)
	n.rootChance = math.Min(0.5, 0.15+float64(n.HitCount)*0.03)
	n.Damage = n.BaseDamage + math.Floor(float64(n.HitCount)*0.3)
	if n.SuperActive {
		n.Reach = 140
		n.rootChance = 0.7
		n.Damage += 4
	}
	n.Scaling.Value = n.Reach
}

func (n *Nature) ActivateSuper(w *combat.World) {
	n.thorns = 3
	for _, t := range n.enemies(w) {
		t.Vel = t.Vel.Scale(0.05)
		n.deal(t, 6)
	}
	n.Owner.Heal(15)
}

// RootChance is the probability a hit roots the target
func (n *Nature) RootChance() float64 { return n.rootChance }
