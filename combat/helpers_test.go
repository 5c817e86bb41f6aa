package combat

import (
	"github.com/lixenwraith/ballarena/config"
	"github.com/lixenwraith/ballarena/vmath"
)

// seqRand replays a fixed sequence of values, wrapping around
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// stubWeapon counts lifecycle calls
type stubWeapon struct {
	st        WeaponState
	supers    int
	scalings  int
	projHooks int
}

func (s *stubWeapon) State() *WeaponState     { return &s.st }
func (s *stubWeapon) Update(*World)           {}
func (s *stubWeapon) CanHit() bool            { return s.st.Cooldown <= 0 }
func (s *stubWeapon) ApplyScaling()           { s.scalings++; s.st.Damage = s.st.BaseDamage + float64(s.st.HitCount) }
func (s *stubWeapon) ActivateSuper(*World)    { s.supers++ }
func (s *stubWeapon) TipPosition() vmath.Vec2 { return s.st.Tip() }
func (s *stubWeapon) OnHit(w *World, target *Ball) {
	target.TakeDamageFrom(s.st.Damage, s.st.Owner)
	RecordHit(w, s)
}
func (s *stubWeapon) OnProjectileHit(*World, *Projectile, *Ball) { s.projHooks++ }

func newTestWorld() *World {
	cfg := config.Default()
	cfg.Arena.X, cfg.Arena.Y = 0, 0
	cfg.Arena.Width, cfg.Arena.Height = 400, 400
	return NewWorld(cfg, &seqRand{vals: []float64{0.5}})
}

func addBall(w *World, x, y float64, side Side) *Ball {
	b := NewBall(w, vmath.V(x, y), side, "stub", BallOptions{})
	st := &stubWeapon{st: WeaponState{Owner: b, Variant: "stub", BaseDamage: 3, Damage: 3, SuperThreshold: 10}}
	b.Weapon = st
	return w.AddBall(b)
}
