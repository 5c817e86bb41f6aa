package combat

import (
	"math"
	"testing"

	"github.com/lixenwraith/ballarena/vmath"
)

// TestTakeDamageClamp verifies health floor and single death transition
func TestTakeDamageClamp(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)

	if got := b.TakeDamage(30); got != 30 {
		t.Errorf("Expected 30 applied, got %v", got)
	}
	if got := b.TakeDamage(500); got != 70 {
		t.Errorf("Expected 70 applied on lethal hit, got %v", got)
	}
	if b.HP != 0 || b.Alive {
		t.Errorf("Expected dead at 0 HP, got hp=%v alive=%v", b.HP, b.Alive)
	}
	if got := b.TakeDamage(10); got != 0 {
		t.Errorf("Dead ball took %v damage", got)
	}
	if b.DamageTaken != 100 {
		t.Errorf("Expected DamageTaken 100, got %v", b.DamageTaken)
	}
}

// TestTakeDamageInvulnerable verifies the invulnerable short-circuit
func TestTakeDamageInvulnerable(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)
	b.Invulnerable = true
	if b.TakeDamage(50) != 0 || b.HP != 100 {
		t.Errorf("Invulnerable ball damaged: hp=%v", b.HP)
	}
}

// TestTakeDamageNaN verifies garbage input is ignored
func TestTakeDamageNaN(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)
	b.TakeDamage(math.NaN())
	b.TakeDamage(-5)
	if b.HP != 100 {
		t.Errorf("Expected untouched HP, got %v", b.HP)
	}
}

// TestModifierPipeline verifies ordering, reduction and reflection
func TestModifierPipeline(t *testing.T) {
	w := newTestWorld()
	attacker := addBall(w, 100, 100, 0)
	target := addBall(w, 150, 100, 1)

	shield := &Mitigation{Key: "shield", Reduction: 0.5, ReflectFraction: 0.3}
	target.AddModifier(shield)
	target.AddForgeMarks(2)

	names := target.Modifiers()
	if len(names) != 2 || names[0] != "forge_marks" || names[1] != "shield" {
		t.Fatalf("Unexpected pipeline order %v", names)
	}

	// 10 * 1.6 = 16 amplified, reflect 16*0.3, then halve
	got := target.TakeDamageFrom(10, attacker)
	if math.Abs(got-8) > 1e-9 {
		t.Errorf("Expected 8 applied, got %v", got)
	}
	if math.Abs(attacker.HP-(100-4.8)) > 1e-9 {
		t.Errorf("Expected reflected 4.8, attacker hp=%v", attacker.HP)
	}

	// Sourceless damage reflects nothing
	attackerHP := attacker.HP
	target.TakeDamage(10)
	if attacker.HP != attackerHP {
		t.Error("Sourceless damage reflected")
	}

	if !target.RemoveModifier("shield") || target.RemoveModifier("shield") {
		t.Error("RemoveModifier should succeed once")
	}
}

// TestMutualReflectTerminates verifies two reflecting shields do not recurse
func TestMutualReflectTerminates(t *testing.T) {
	w := newTestWorld()
	a := addBall(w, 100, 100, 0)
	b := addBall(w, 150, 100, 1)
	a.AddModifier(&Mitigation{Key: "shield", ReflectFraction: 1})
	b.AddModifier(&Mitigation{Key: "shield", ReflectFraction: 1})

	b.TakeDamageFrom(10, a)
	if b.HP != 90 || a.HP != 90 {
		t.Errorf("Expected single reflection, a=%v b=%v", a.HP, b.HP)
	}
}

// TestForgeMarkCap verifies marks saturate
func TestForgeMarkCap(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)
	b.AddForgeMarks(7)
	b.AddForgeMarks(7)
	if b.ForgeMarks != 10 {
		t.Errorf("Expected 10 marks, got %d", b.ForgeMarks)
	}
	if len(b.Modifiers()) != 1 {
		t.Errorf("Expected single forge modifier, got %v", b.Modifiers())
	}
}

// TestPoisonTick verifies poison damage cadence
func TestPoisonTick(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)
	b.AddPoison(4)
	for i := 0; i < 29; i++ {
		b.TickStatus()
	}
	if b.HP != 100 {
		t.Fatalf("Poison ticked early, hp=%v", b.HP)
	}
	b.TickStatus()
	if b.HP != 98 {
		t.Errorf("Expected 98 after first poison tick, got %v", b.HP)
	}
}

// TestBurnExpires verifies a burn counts down every frame and drops when spent
func TestBurnExpires(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)
	b.AddBurn(2, 30, 10)
	for i := 0; i < 100; i++ {
		b.TickStatus()
	}
	if b.HP != 94 {
		t.Errorf("Expected 94 after 3 burn hits, got %v", b.HP)
	}
	if len(b.Burns) != 0 {
		t.Errorf("Expected burns cleared, got %d", len(b.Burns))
	}
}

// TestBurnDuration verifies a 120 frame burn at rate 15 deals 8 hits and ends on frame 120
func TestBurnDuration(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)
	b.AddBurn(1, 120, 15)

	for frame := 1; frame < 120; frame++ {
		b.TickStatus()
		if len(b.Burns) != 1 {
			t.Fatalf("Burn ended early on frame %d", frame)
		}
	}
	b.TickStatus()
	if len(b.Burns) != 0 {
		t.Error("Expected burn gone after frame 120")
	}
	if b.HP != 92 {
		t.Errorf("Expected 8 burn damage, HP %v", b.HP)
	}

	for i := 0; i < 1000; i++ {
		b.TickStatus()
	}
	if b.HP != 92 {
		t.Errorf("Expired burn kept dealing damage, HP %v", b.HP)
	}
}

// TestSlowDecay verifies slow timer resets factor on expiry
func TestSlowDecay(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)
	b.ApplySlow(0.5, 2)
	b.ApplySlow(0.8, 1)
	if b.SlowFactor != 0.5 || b.SlowTimer != 2 {
		t.Errorf("Weaker slow replaced stronger: factor=%v timer=%d", b.SlowFactor, b.SlowTimer)
	}
	b.TickStatus()
	b.TickStatus()
	if b.SlowFactor != 1 || b.SlowTimer != 0 {
		t.Errorf("Slow did not expire: factor=%v timer=%d", b.SlowFactor, b.SlowTimer)
	}
}

// TestMoveSpeedCapAndWalls verifies max speed clamp and wall containment
func TestMoveSpeedCapAndWalls(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 30, 200, 0)
	b.Vel = vmath.V(-100, 0)
	b.Move(w)
	if b.Pos.X != w.Arena().Left()+b.Radius {
		t.Errorf("Expected clamp at left wall, x=%v", b.Pos.X)
	}
	if b.Vel.X < 0 || b.Vel.Magnitude() > b.MaxSpeed+1e-9 {
		t.Errorf("Unexpected velocity %+v", b.Vel)
	}
}

// TestSetRadiusRescalesMass verifies mass follows radius
func TestSetRadiusRescalesMass(t *testing.T) {
	w := newTestWorld()
	b := addBall(w, 100, 100, 0)
	b.SetRadius(b.Radius * 2)
	if math.Abs(b.Mass-2) > 1e-9 {
		t.Errorf("Expected mass 2, got %v", b.Mass)
	}
}
