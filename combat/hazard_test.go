package combat

import (
	"testing"

	"github.com/lixenwraith/ballarena/vmath"
)

// TestHazardTickRate verifies exactly 3 hits across 3T overlapping frames
func TestHazardTickRate(t *testing.T) {
	for _, rate := range []int{1, 5, 30} {
		w := newTestWorld()
		owner := addBall(w, 50, 50, 0)
		target := addBall(w, 200, 200, 1)

		h := NewHazard(owner.Weapon, vmath.V(200, 200))
		h.TickRate = rate
		h.Damage = 1
		h.Lifespan = 10000
		w.AddHazard(h)

		for i := 0; i < 3*rate; i++ {
			h.Update(w)
		}
		if hits := 100 - target.HP; hits != 3 {
			t.Errorf("tickRate %d: expected 3 hits, got %v", rate, hits)
		}
		if owner.Weapon.State().HitCount != 3 {
			t.Errorf("tickRate %d: expected 3 weapon hits, got %d", rate, owner.Weapon.State().HitCount)
		}
	}
}

// TestHazardSideAndExpiry verifies friendly immunity and lifespan removal
func TestHazardSideAndExpiry(t *testing.T) {
	w := newTestWorld()
	owner := addBall(w, 200, 200, 0)

	h := NewHazard(owner.Weapon, vmath.V(200, 200))
	h.Lifespan = 3
	w.AddHazard(h)
	for i := 0; i < 3; i++ {
		h.Update(w)
	}
	if owner.HP != 100 {
		t.Error("Hazard damaged its own side")
	}
	if h.Alive {
		t.Error("Expected hazard expired")
	}
	if h.MaxLifespan != 3 {
		t.Errorf("Expected MaxLifespan 3, got %d", h.MaxLifespan)
	}
}

// TestHazardDrift verifies drifting hazards reflect off walls
func TestHazardDrift(t *testing.T) {
	w := newTestWorld()
	owner := addBall(w, 50, 50, 0)
	h := NewHazard(owner.Weapon, vmath.V(375, 200))
	h.Vel = vmath.V(10, 0)
	w.AddHazard(h)
	h.Update(w)
	if h.Vel.X >= 0 {
		t.Errorf("Expected reflection, vel=%+v", h.Vel)
	}
	if h.Pos.X+h.Radius > w.Arena().Right() {
		t.Errorf("Hazard outside arena at %v", h.Pos.X)
	}
}

// TestHazardEffect verifies rider effects run per damaging hit
func TestHazardEffect(t *testing.T) {
	w := newTestWorld()
	owner := addBall(w, 50, 50, 0)
	target := addBall(w, 200, 200, 1)
	h := NewHazard(owner.Weapon, target.Pos)
	h.Effect = func(_ *World, _ *Hazard, b *Ball) { b.AddPoison(1) }
	w.AddHazard(h)
	h.Update(w)
	h.Update(w)
	if target.PoisonStacks != 1 {
		t.Errorf("Expected 1 poison stack, got %d", target.PoisonStacks)
	}
}
