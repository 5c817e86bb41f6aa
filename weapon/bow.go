package weapon

import "github.com/lixenwraith/ballarena/combat"

const (
	bowFireRate    = 80
	bowSpread      = 0.2
	bowArrowSpeed  = 5.0
	bowArrowRadius = 4.0
	bowArrowLife   = 150
)

// Bow fires a fan of arrows from its tip, one more arrow per hit
type Bow struct {
	Base
	arrows   int
	fireRate int
	timer    int
}

func newBow(owner *combat.Ball, w *combat.World) combat.Weapon {
	b := &Bow{Base: newBase(owner, w, profile{
		variant: "bow", damage: 2, reach: 68, rotation: 0.03, threshold: 8, scaling: "Arrows", ranged: true,
	})}
	b.ApplyScaling()
	return b
}

func (b *Bow) Update(w *combat.World) {
	b.Base.Update(w)
	b.timer++
	if b.timer >= b.fireRate {
		b.timer = 0
		b.fire(w)
	}
}

func (b *Bow) fire(w *combat.World) {
	start := b.Angle - float64(b.arrows-1)*bowSpread/2
	tip := b.Tip()
	for i := 0; i < b.arrows; i++ {
		p := b.launch(b, tip, start+float64(i)*bowSpread, bowArrowSpeed)
		p.Damage = b.Damage
		p.Radius = bowArrowRadius
		p.Lifespan = bowArrowLife
		w.AddProjectile(p)
	}
}

// Arrows returns the current volley size
func (b *Bow) Arrows() int { return b.arrows }

// CanHit is false, arrows resolve their own hits
func (b *Bow) CanHit() bool { return false }

func (b *Bow) OnHit(*combat.World, *combat.Ball) {}

func (b *Bow) ApplyScaling() {
	b.arrows = 1 + b.HitCount
	b.fireRate = bowFireRate
	b.Damage = b.BaseDamage
	if b.SuperActive {
		b.fireRate = max(30, bowFireRate-30)
		b.Damage += 2
	}
	b.Scaling.Value = float64(b.arrows)
}
