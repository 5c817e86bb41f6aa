package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

const (
	magmaDropRate      = 60
	magmaSuperDropRate = 30
	magmaMinSpeed      = 1.5
	magmaPoolTick      = 30
)

// Magma leaves lava pools behind while moving and under every target it hits
// Pools are hazards owned by this weapon, oldest pools expire past the cap
type Magma struct {
	Base
	dropTimer int
	poolDmg   float64
	maxPools  int
	poolLife  int
	pools     []*combat.Hazard
}

func newMagma(owner *combat.Ball, w *combat.World) combat.Weapon {
	m := &Magma{Base: newBase(owner, w, profile{
		variant: "magma", damage: 3, threshold: 10, scaling: "Heat", noParry: true,
	})}
	m.ApplyScaling()
	return m
}

func (m *Magma) Update(w *combat.World) {
	m.tickCooldown()
	m.dropTimer++

	rate := magmaDropRate
	if m.SuperActive {
		rate = magmaSuperDropRate
	}
	if m.dropTimer >= rate {
		m.dropTimer = 0
		if speedOf(m.Owner) > magmaMinSpeed {
			m.dropPool(w, m.Owner.Pos)
		}
	}
}

// Pools returns the live pools spawned by this weapon
func (m *Magma) Pools() []*combat.Hazard {
	live := m.pools[:0]
	for _, p := range m.pools {
		if p.Alive {
			live = append(live, p)
		}
	}
	m.pools = live
	return m.pools
}

func (m *Magma) dropPool(w *combat.World, at vmath.Vec2) {
	pools := m.Pools()
	if len(pools) >= m.maxPools {
		pools[0].Expire()
		m.pools = pools[1:]
	}
	h := m.drop(w, m, at, w.RandomRange(20, 30))
	h.Damage = m.poolDmg
	h.TickRate = magmaPoolTick
	h.Lifespan = m.poolLife
	m.pools = append(m.pools, w.AddHazard(h))
}

func (m *Magma) OnHit(w *combat.World, target *combat.Ball) {
	m.deal(target, m.Damage)
	target.AddPoison(1)
	m.record(w, m, target)
	m.dropPool(w, target.Pos)
}

func (m *Magma) ApplyScaling() {
	m.poolDmg = 1 + math.Floor(float64(m.HitCount)*0.4)
	m.Damage = m.BaseDamage + math.Floor(float64(m.HitCount)*0.4)
	m.maxPools = 6
	m.poolLife = 300
	if m.SuperActive {
		m.poolDmg += 3
		m.Damage += 4
		m.maxPools = 20
		m.poolLife = 500
	}
	m.Scaling.Value = m.poolDmg
}

func (m *Magma) ActivateSuper(w *combat.World) {
	// Super values are folded in by ApplyScaling, refresh them before the ring drops
	m.ApplyScaling()
	for i := 0; i < 4; i++ {
		a := float64(i) / 4 * vmath.TwoPi
		m.dropPool(w, m.Owner.Pos.Add(vmath.FromAngle(a, 50)))
	}
	for i := 0; i < 8; i++ {
		a := float64(i)/8*vmath.TwoPi + math.Pi/8
		m.dropPool(w, m.Owner.Pos.Add(vmath.FromAngle(a, 110)))
	}
	for _, t := range m.enemies(w) {
		t.AddPoison(3)
		t.TakeDamageFrom(6, m.Owner)
	}
}
