package combat

import (
	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

// Hazard is a persistent damage zone with per-target hit cooldowns
type Hazard struct {
	ID     EntityID
	Side   Side
	Owner  *Ball
	Weapon Weapon
	Color  string

	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64

	Damage   float64
	TickRate int

	Lifespan    int
	MaxLifespan int

	// Effect runs after each damaging hit, for poison, burn or slow riders
	Effect func(w *World, h *Hazard, target *Ball)

	Alive     bool
	cooldowns map[EntityID]int
}

// NewHazard builds a hazard owned by wp's owner at pos with package defaults
func NewHazard(wp Weapon, pos vmath.Vec2) *Hazard {
	h := &Hazard{
		Pos:      pos,
		Radius:   parameter.HazardRadius,
		Damage:   parameter.HazardDamage,
		TickRate: parameter.HazardTickRate,
		Lifespan: parameter.HazardLifespan,
	}
	if wp != nil {
		s := wp.State()
		h.Weapon = wp
		h.Owner = s.Owner
		h.Color = s.Color
		if s.Owner != nil {
			h.Side = s.Owner.Side
		}
	}
	return h
}

// Update advances one tick: drift, cooldown decay, overlap hits, expiry
// A target overlapping continuously is hit on its first overlapping tick and then every TickRate ticks
func (h *Hazard) Update(w *World) {
	if !h.Alive {
		return
	}

	if !h.Vel.IsZero() {
		body := physics.Body{Pos: h.Pos.Add(h.Vel), Vel: h.Vel, Radius: h.Radius}
		physics.BounceOffWalls(&body, w.Arena(), 1)
		h.Pos, h.Vel = body.Pos, body.Vel
	}

	for id, cd := range h.cooldowns {
		if cd > 0 {
			h.cooldowns[id] = cd - 1
		}
	}

	for _, b := range w.Balls {
		if !b.Alive || b.Side == h.Side {
			continue
		}
		if h.cooldowns[b.ID] > 0 {
			continue
		}
		if !physics.CircleCircle(h.Pos, h.Radius, b.Pos, b.Radius) {
			continue
		}

		if h.cooldowns == nil {
			h.cooldowns = make(map[EntityID]int)
		}
		h.cooldowns[b.ID] = h.TickRate

		applied := b.TakeDamageFrom(h.Damage, h.Owner)
		if h.Effect != nil {
			h.Effect(w, h, b)
		}
		if h.Weapon != nil {
			h.Weapon.State().DamageDealt += applied
			RecordHit(w, h.Weapon)
		}
	}

	h.Lifespan--
	if h.Lifespan <= 0 {
		h.Alive = false
	}
}

// Cooldown returns remaining ticks before target id can be hit again
func (h *Hazard) Cooldown(id EntityID) int {
	return h.cooldowns[id]
}

// Expire marks the hazard for removal at end of tick
func (h *Hazard) Expire() {
	h.Alive = false
}
