package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

const (
	apolloFireRate   = 44
	apolloSpread     = 0.25
	apolloArrowSpeed = 7.0
	apolloBurnTick   = 15
)

// Apollo looses fans of burning arrows, each landed arrow adds a burn
// Super lights fire pools around the owner and makes arrows pierce
type Apollo struct {
	Base
	arrows       int
	burn         float64
	burnDuration int
	fireRate     int
	timer        int
	salvo        volley
}

func newApollo(owner *combat.Ball, w *combat.World) combat.Weapon {
	a := &Apollo{Base: newBase(owner, w, profile{
		variant: "apollo", damage: 4, reach: 58, rotation: 0.04, threshold: 10, scaling: "Arrows", ranged: true,
	})}
	a.ApplyScaling()
	return a
}

func (a *Apollo) Update(w *combat.World) {
	a.Base.Update(w)
	a.timer++
	if a.timer >= a.fireRate {
		a.timer = 0
		a.fire(w)
	}
	if a.salvo.due() {
		a.fire(w)
	}
}

func (a *Apollo) fire(w *combat.World) {
	start := a.Angle - float64(a.arrows-1)*apolloSpread/2
	tip := a.Tip()
	for i := 0; i < a.arrows; i++ {
		p := a.launch(a, tip, start+float64(i)*apolloSpread, apolloArrowSpeed)
		p.Damage = a.Damage
		p.Radius = 3
		p.Lifespan = 90
		p.Piercing = a.SuperActive
		w.AddProjectile(p)
	}
}

// OnProjectileHit sets the target burning
func (a *Apollo) OnProjectileHit(_ *combat.World, _ *combat.Projectile, target *combat.Ball) {
	target.AddBurn(a.burn, a.burnDuration, apolloBurnTick)
}

func (a *Apollo) CanHit() bool { return false }

func (a *Apollo) OnHit(*combat.World, *combat.Ball) {}

func (a *Apollo) ApplyScaling() {
	a.arrows = 3 + a.HitCount/3
	a.burn = math.Min(2.5, 1+float64(a.HitCount)*0.15)
	a.burnDuration = 120
	a.Damage = a.BaseDamage + math.Floor(float64(a.HitCount)*0.25)
	a.fireRate = apolloFireRate
	if a.SuperActive {
		a.Damage += 2
		a.burn += 0.5
		a.burnDuration = 150
		a.fireRate = max(35, apolloFireRate-15)
	}
	a.Scaling.Value = float64(a.arrows)
}

func (a *Apollo) ActivateSuper(w *combat.World) {
	for i := range 3 {
		angle := float64(i)/3*vmath.TwoPi + w.Random()
		dist := 40 + w.Random()*40
		h := a.drop(w, a, a.Owner.Pos.Add(vmath.FromAngle(angle, dist)), 28)
		h.Damage = 1.5
		h.TickRate = 20
		h.Lifespan = 300
		w.AddHazard(h)
	}
	a.salvo.start(8, 2)
}

// Arrows is the current volley size
func (a *Apollo) Arrows() int { return a.arrows }
