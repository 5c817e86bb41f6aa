package weapon

import (
	"math"
	"testing"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

const eps = 1e-9

// TestSwordSuperLatchesOnce verifies repeated threshold checks do not refire the super
func TestSwordSuperLatchesOnce(t *testing.T) {
	w := newTestWorld()
	_, wp := arm(t, w, "sword", 100, 100, 0)
	st := wp.State()

	landHits(w, wp, st.SuperThreshold-1)
	if st.SuperActive {
		t.Fatal("Super active before threshold")
	}
	landHits(w, wp, 1)
	if !st.SuperActive {
		t.Fatal("Super not active at threshold")
	}
	if combat.CheckSuper(w, wp) {
		t.Error("CheckSuper fired a second time")
	}
}

// TestDaggerSuperReach verifies the tenth hit triples reach
func TestDaggerSuperReach(t *testing.T) {
	w := newTestWorld()
	_, wp := arm(t, w, "dagger", 100, 100, 0)
	target := dummy(t, w, 150, 100, 1)
	st := wp.State()

	for i := 0; i < 10; i++ {
		st.Cooldown = 0
		wp.OnHit(w, target)
	}
	if st.HitCount != 10 || !st.SuperActive {
		t.Fatalf("Expected super after 10 hits, got hits=%d super=%v", st.HitCount, st.SuperActive)
	}
	if st.Reach != 186 {
		t.Errorf("Expected reach 186, got %v", st.Reach)
	}
	if st.Damage != 4 {
		t.Errorf("Expected damage 4, got %v", st.Damage)
	}
	if target.HP != 80 {
		t.Errorf("Expected target at 80 HP after ten 2-damage hits, got %v", target.HP)
	}
}

// TestSawbladeScaling verifies saw count per hit, the cap and super orbit reversal
func TestSawbladeScaling(t *testing.T) {
	w := newTestWorld()
	w.Config.SupersEnabled = false
	_, wp := arm(t, w, "sawblade", 100, 100, 0)
	saw := wp.(*Sawblade)

	if saw.Saws() != 1 {
		t.Errorf("Expected 1 saw initially, got %d", saw.Saws())
	}
	landHits(w, wp, 5)
	if saw.Saws() != 6 {
		t.Errorf("Expected 6 saws after 5 hits, got %d", saw.Saws())
	}
	landHits(w, wp, 20)
	if saw.Saws() != 12 {
		t.Errorf("Expected saws capped at 12, got %d", saw.Saws())
	}
	if saw.OrbitDirection() != 1 {
		t.Errorf("Expected forward orbit without super, got %v", saw.OrbitDirection())
	}

	w.Config.SupersEnabled = true
	if !combat.CheckSuper(w, wp) {
		t.Fatal("Expected super to latch once enabled")
	}
	if saw.OrbitDirection() != -1 {
		t.Errorf("Expected reversed orbit in super, got %v", saw.OrbitDirection())
	}
}

// TestMetalShieldArc verifies frontal hits are reduced and rear hits pass through
func TestMetalShieldArc(t *testing.T) {
	w := newTestWorld()
	owner, wp := arm(t, w, "metal", 300, 300, 0)
	front := dummy(t, w, 350, 300, 1)
	rear := dummy(t, w, 250, 300, 1)
	wp.State().Angle = 0

	if got := owner.TakeDamageFrom(10, front); math.Abs(got-8) > eps {
		t.Errorf("Expected frontal hit reduced to 8, got %v", got)
	}
	if got := owner.TakeDamageFrom(10, rear); math.Abs(got-10) > eps {
		t.Errorf("Expected rear hit unreduced, got %v", got)
	}
	if got := owner.TakeDamage(10); math.Abs(got-8) > eps {
		t.Errorf("Expected sourceless hit reduced to 8, got %v", got)
	}
}

// TestMetalSuperReflects verifies the super shield reflects to the attacker
func TestMetalSuperReflects(t *testing.T) {
	w := newTestWorld()
	owner, wp := arm(t, w, "metal", 300, 300, 0)
	attacker := dummy(t, w, 250, 300, 1)
	landHits(w, wp, wp.State().SuperThreshold)

	hpBefore := attacker.HP
	got := owner.TakeDamageFrom(10, attacker)
	if math.Abs(got-3) > eps {
		t.Errorf("Expected 70%% reduction to 3, got %v", got)
	}
	if math.Abs(hpBefore-attacker.HP-3) > eps {
		t.Errorf("Expected 3 reflected, attacker lost %v", hpBefore-attacker.HP)
	}
	if m := wp.(*Metal); m.Reduction() != 0.7 {
		t.Errorf("Expected reduction 0.7, got %v", m.Reduction())
	}
}

// TestLanceJoust verifies the charge cycle timing and invulnerability
func TestLanceJoust(t *testing.T) {
	w := newTestWorld()
	owner, wp := arm(t, w, "lance", 100, 300, 0)
	dummy(t, w, 400, 300, 1)
	lance := wp.(*Lance)

	for range lanceJoustInterval - 1 {
		lance.Update(w)
	}
	if lance.Charging() || lance.CanHit() {
		t.Fatal("Lance charging before interval")
	}
	lance.Update(w)
	if !lance.Charging() || !owner.Invulnerable {
		t.Fatal("Expected charge after interval")
	}
	if !lance.CanHit() {
		t.Error("Expected CanHit while charging")
	}
	if math.Abs(owner.Vel.X-lanceJoustSpeed) > eps || math.Abs(owner.Vel.Y) > eps {
		t.Errorf("Expected charge toward target at speed 12, got %+v", owner.Vel)
	}

	for range lanceJoustDuration {
		lance.Update(w)
	}
	if lance.Charging() || owner.Invulnerable {
		t.Error("Expected charge to end after duration")
	}
}

// TestRaCycle verifies damage follows the sun from trough to peak
func TestRaCycle(t *testing.T) {
	w := newTestWorld()
	_, wp := arm(t, w, "ra", 100, 100, 0)
	ra := wp.(*Ra)

	if ra.Damage != raTrough {
		t.Errorf("Expected trough damage at start, got %v", ra.Damage)
	}
	for range raCycle / 2 {
		ra.Update(w)
	}
	if math.Abs(ra.Damage-9) > eps {
		t.Errorf("Expected peak damage 9 at half cycle, got %v", ra.Damage)
	}
	for range raCycle / 2 {
		ra.Update(w)
	}
	if math.Abs(ra.Damage-raTrough) > 1e-6 {
		t.Errorf("Expected trough damage after full cycle, got %v", ra.Damage)
	}

	landHits(w, wp, ra.SuperThreshold)
	ra.Update(w)
	if ra.Phase() != 1 || math.Abs(ra.Damage-ra.peak) > eps {
		t.Errorf("Expected super frozen at peak, phase=%v damage=%v", ra.Phase(), ra.Damage)
	}
}

// TestDuplicatorSplit verifies the original splits allies and clones stay passive
func TestDuplicatorSplit(t *testing.T) {
	w := newTestWorld()
	owner, wp := arm(t, w, "duplicator", 200, 300, 0)
	dummy(t, w, 450, 300, 1)

	for range splitInterval {
		wp.Update(w)
	}
	allies := w.Allies(0)
	if len(allies) != 2 {
		t.Fatalf("Expected 2 allies after split, got %d", len(allies))
	}
	if owner.HP != 50 {
		t.Errorf("Expected parent HP halved to 50, got %v", owner.HP)
	}

	clone := allies[1]
	if clone.Original || clone.HP != 50 || clone.Radius != 18 {
		t.Errorf("Unexpected clone: original=%v hp=%v radius=%v", clone.Original, clone.HP, clone.Radius)
	}
	if _, ok := clone.Weapon.(*Duplicator); !ok {
		t.Fatalf("Expected clone armed with duplicator, got %T", clone.Weapon)
	}
	for range splitInterval {
		clone.Weapon.Update(w)
	}
	if len(w.Allies(0)) != 2 {
		t.Error("Clone drove a split")
	}
	if d := wp.(*Duplicator); d.Copies() != 2 {
		t.Errorf("Expected copies 2, got %d", d.Copies())
	}
}

// TestDuplicatorSuperBonus verifies super health reaches only the next split's clones
func TestDuplicatorSuperBonus(t *testing.T) {
	w := newTestWorld()
	_, wp := arm(t, w, "duplicator", 200, 300, 0)
	dummy(t, w, 450, 300, 1)

	wp.ActivateSuper(w)
	for range splitInterval {
		wp.Update(w)
	}
	allies := w.Allies(0)
	if len(allies) != 2 || allies[1].HP != 60 {
		t.Fatalf("Expected one clone with 60 HP, got %d allies", len(allies))
	}

	for range splitInterval {
		wp.Update(w)
	}
	allies = w.Allies(0)
	if len(allies) != 4 {
		t.Fatalf("Expected 4 allies after second split, got %d", len(allies))
	}
	for _, c := range allies[2:] {
		if c.HP > 30 {
			t.Errorf("Second split clone kept bonus health: %v", c.HP)
		}
	}
}

// TestGhostPhaseCycle verifies phasing toggles intangibility and parry immunity together
func TestGhostPhaseCycle(t *testing.T) {
	w := newTestWorld()
	owner, wp := arm(t, w, "ghost", 200, 300, 0)
	g := wp.(*Ghost)

	for range 120 {
		wp.Update(w)
	}
	if !g.Phased() || !owner.Invulnerable || !g.Unparryable {
		t.Fatalf("Expected phased after solid window: phased=%v invuln=%v unparryable=%v",
			g.Phased(), owner.Invulnerable, g.Unparryable)
	}
	for range 90 {
		wp.Update(w)
	}
	if g.Phased() || owner.Invulnerable || g.Unparryable {
		t.Error("Expected solid again after phase window")
	}
	if g.ContactAura() != 12 {
		t.Errorf("Expected ghost aura 12, got %v", g.ContactAura())
	}
}

// TestAnubisDesperation verifies damage scales inversely with owner health
func TestAnubisDesperation(t *testing.T) {
	w := newTestWorld()
	owner, wp := arm(t, w, "anubis", 100, 100, 0)
	target := dummy(t, w, 150, 100, 1)

	owner.HP = 50
	wp.OnHit(w, target)
	if math.Abs(target.HP-95) > eps {
		t.Errorf("Expected 5 damage at half health, target HP %v", target.HP)
	}
}

// TestSparkChains verifies lightning jumps to the nearest other enemy
func TestSparkChains(t *testing.T) {
	w := newTestWorld()
	_, wp := arm(t, w, "spark", 100, 100, 0)
	first := dummy(t, w, 150, 100, 1)
	near := dummy(t, w, 230, 100, 1)
	far := dummy(t, w, 500, 500, 1)

	wp.OnHit(w, first)
	if first.HP != 97 {
		t.Errorf("Expected 3 damage on primary, got HP %v", first.HP)
	}
	if near.HP >= 100 {
		t.Error("Expected chain to reach nearby enemy")
	}
	if far.HP != 100 {
		t.Errorf("Chain reached out-of-range enemy, HP %v", far.HP)
	}
}

// TestSekhmetSecondClaw verifies the rear claw strikes
func TestSekhmetSecondClaw(t *testing.T) {
	w := newTestWorld()
	_, wp := arm(t, w, "sekhmet", 300, 300, 0)
	behind := dummy(t, w, 250, 300, 1)
	wp.State().Angle = 0

	striker, ok := wp.(combat.Striker)
	if !ok {
		t.Fatal("Expected sekhmet to implement Striker")
	}
	if !striker.Strike(w, behind) {
		t.Fatal("Rear claw missed")
	}
	if behind.HP >= 100 || wp.State().HitCount != 1 {
		t.Errorf("Expected one landed hit, HP=%v hits=%d", behind.HP, wp.State().HitCount)
	}
	if striker.Strike(w, behind) {
		t.Error("Strike ignored the hit cooldown")
	}
}

// TestStatusWeapons verifies the on-hit status effects
func TestStatusWeapons(t *testing.T) {
	w := newTestWorld()

	_, poison := arm(t, w, "poison", 100, 100, 0)
	_, forge := arm(t, w, "hephaestus", 100, 200, 0)
	_, apollo := arm(t, w, "apollo", 100, 300, 0)
	target := dummy(t, w, 200, 200, 1)

	poison.OnHit(w, target)
	if target.PoisonStacks != 1 {
		t.Errorf("Expected 1 poison stack, got %d", target.PoisonStacks)
	}

	forge.OnHit(w, target)
	if target.ForgeMarks != 1 {
		t.Errorf("Expected 1 forge mark, got %d", target.ForgeMarks)
	}

	hook, ok := apollo.(combat.ProjectileHitter)
	if !ok {
		t.Fatal("Expected apollo to implement ProjectileHitter")
	}
	p := combat.NewProjectile(apollo, vmath.V(200, 200), vmath.Vec2{})
	hook.OnProjectileHit(w, p, target)
	if len(target.Burns) != 1 {
		t.Errorf("Expected one burn, got %d", len(target.Burns))
	}
}

// TestVolleySchedule verifies spaced follow-up shots
func TestVolleySchedule(t *testing.T) {
	var v volley
	v.start(3, 2)
	var fired []int
	for tick := range 10 {
		if v.due() {
			fired = append(fired, tick)
		}
	}
	want := []int{0, 3, 6}
	if len(fired) != len(want) {
		t.Fatalf("Expected shots at %v, got %v", want, fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("Shot %d: expected tick %d, got %d", i, want[i], fired[i])
		}
	}
}
