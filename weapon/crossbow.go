package weapon

import "github.com/lixenwraith/ballarena/combat"

const (
	crossbowFireRate      = 60
	crossbowSuperFireRate = 35
	crossbowBoltSpeed     = 7.0
	crossbowBoltLife      = 100
)

// Crossbow fires one aimed bolt per second, bolt damage grows per hit
type Crossbow struct {
	Base
	bolt     float64
	fireRate int
	timer    int
}

func newCrossbow(owner *combat.Ball, w *combat.World) combat.Weapon {
	c := &Crossbow{Base: newBase(owner, w, profile{
		variant: "crossbow", damage: 3, reach: 58, rotation: 0.035, threshold: 10, scaling: "Bolt Dmg", ranged: true,
	})}
	c.ApplyScaling()
	return c
}

func (c *Crossbow) Update(w *combat.World) {
	c.Base.Update(w)
	c.timer++
	if c.timer >= c.fireRate {
		c.timer = 0
		angle, _ := c.aim(w)
		p := c.launch(c, c.Tip(), angle, crossbowBoltSpeed)
		p.Damage = c.bolt
		p.Lifespan = crossbowBoltLife
		w.AddProjectile(p)
	}
}

func (c *Crossbow) CanHit() bool { return false }

func (c *Crossbow) OnHit(*combat.World, *combat.Ball) {}

func (c *Crossbow) ApplyScaling() {
	c.bolt = 3 + float64(c.HitCount)
	c.fireRate = crossbowFireRate
	if c.SuperActive {
		c.bolt += 3
		c.fireRate = crossbowSuperFireRate
	}
	c.Scaling.Value = c.bolt
}
