package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

const (
	zeusFireRate = 60
	zeusHoming   = 0.02
	zeusFalloff  = 0.25
)

// Zeus hurls homing bolts at the nearest enemy, bounces grow with hits
// Super summons drifting storm clouds and sparks ball lightning on bolt hits
type Zeus struct {
	Base
	bounces  int
	speed    float64
	fireRate int
	timer    int
	salvo    volley
}

func newZeus(owner *combat.Ball, w *combat.World) combat.Weapon {
	z := &Zeus{Base: newBase(owner, w, profile{
		variant: "zeus", damage: 4, reach: 50, rotation: 0.04, threshold: 9, scaling: "Bolts", ranged: true,
	})}
	z.ApplyScaling()
	return z
}

func (z *Zeus) Update(w *combat.World) {
	z.Base.Update(w)
	z.timer++
	if z.timer >= z.fireRate {
		z.timer = 0
		z.fire(w)
	}
	if z.salvo.due() {
		z.fire(w)
	}
}

func (z *Zeus) fire(w *combat.World) {
	angle, target := z.aim(w)
	if target != nil {
		angle += (w.Random() - 0.5) * 0.25
	}
	angle += (w.Random() - 0.5) * 0.15
	from := z.Owner.Pos.Add(vmath.FromAngle(angle, z.Owner.Radius+6))
	p := z.launch(z, from, angle, z.speed)
	p.Damage = z.Damage
	p.Radius = 4
	p.Lifespan = 100
	p.Bounces = z.bounces
	p.Homing = zeusHoming
	p.BounceFalloff = zeusFalloff
	w.AddProjectile(p)
}

// OnProjectileHit occasionally leaves ball lightning where a bolt lands during the super
func (z *Zeus) OnProjectileHit(w *combat.World, _ *combat.Projectile, target *combat.Ball) {
	if !z.SuperActive || w.Random() >= 0.15 {
		return
	}
	h := z.drop(w, z, target.Pos, 20)
	h.Damage = 1
	h.TickRate = 20
	h.Lifespan = 60
	h.Vel = vmath.V((w.Random()-0.5)*2, (w.Random()-0.5)*2)
	w.AddHazard(h)
}

func (z *Zeus) CanHit() bool { return false }

func (z *Zeus) OnHit(*combat.World, *combat.Ball) {}

func (z *Zeus) ApplyScaling() {
	z.bounces = 3 + int(math.Floor(float64(z.HitCount)*0.3))
	z.speed = math.Min(12, 7+float64(z.HitCount)*0.3)
	z.Damage = z.BaseDamage + math.Floor(float64(z.HitCount)*0.4)
	z.fireRate = zeusFireRate
	if z.SuperActive {
		z.Damage += 3
		z.fireRate = max(35, zeusFireRate-20)
	}
	z.Scaling.Value = float64(z.bounces)
}

func (z *Zeus) ActivateSuper(w *combat.World) {
	for i := range 3 {
		a := float64(i)/3*vmath.TwoPi + w.Random()*0.5
		h := z.drop(w, z, z.Owner.Pos.Add(vmath.FromAngle(a, 60)), 28)
		h.Damage = 2
		h.TickRate = 25
		h.Lifespan = 240
		h.Vel = vmath.V((w.Random()-0.5)*1.5, (w.Random()-0.5)*1.5)
		w.AddHazard(h)
	}
	z.salvo.start(5, 4)
}

// Bounces is the wall bounce budget of new bolts
func (z *Zeus) Bounces() int { return z.bounces }
