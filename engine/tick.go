package engine

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

// contactAura is implemented by body-contact weapons that also hit at a short gap
type contactAura interface {
	ContactAura() float64
}

// Step advances the match one tick, returns false once a result is decided
// Order: motion, weapons, weapon wall push, ball collisions with contact hits,
// contact aura, melee, parries, projectiles, hazards, statuses, compaction, win check
func (m *Match) Step() bool {
	if m.result != nil {
		return false
	}
	w := m.World
	w.Frame++

	m.moveBalls()
	m.updateWeapons()
	m.pushWeapons()
	m.collideBalls()
	m.auraHits()
	m.meleeHits()
	m.parry()

	// Index loops: hits may append projectiles or hazards mid-iteration
	for i := 0; i < len(w.Projectiles); i++ {
		w.Projectiles[i].Update(w)
	}
	for i := 0; i < len(w.Hazards); i++ {
		w.Hazards[i].Update(w)
	}
	for i := 0; i < len(w.Balls); i++ {
		w.Balls[i].TickStatus()
	}

	for _, b := range w.Compact() {
		m.log.WithFields(logrus.Fields{
			"frame":   w.Frame,
			"variant": b.Variant,
			"side":    b.Side,
		}).Debug("ball eliminated")
	}

	m.checkWin()
	return m.result == nil
}

func (m *Match) moveBalls() {
	w := m.World
	for i := 0; i < len(w.Balls); i++ {
		if b := w.Balls[i]; b.Alive {
			b.Move(w)
		}
	}
}

func (m *Match) updateWeapons() {
	w := m.World
	for i := 0; i < len(w.Balls); i++ {
		if b := w.Balls[i]; b.Alive && b.Weapon != nil {
			b.Weapon.Update(w)
		}
	}
}

func (m *Match) pushWeapons() {
	w := m.World
	push := w.Config.WallPush()
	if !push.Enabled {
		return
	}
	arena := w.Arena()
	for _, b := range w.Balls {
		if !b.Alive || b.Weapon == nil {
			continue
		}
		st := b.Weapon.State()
		physics.WeaponWallBounce(&b.Body, b.Weapon.TipPosition(), st.Reach, st.Ranged, st.Damage, arena, push)
	}
}

// collideBalls separates and bounces every overlapping pair, body-contact weapons hit on touch
func (m *Match) collideBalls() {
	w := m.World
	e := w.Config.BallRestitution
	for i := 0; i < len(w.Balls); i++ {
		a := w.Balls[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < len(w.Balls); j++ {
			b := w.Balls[j]
			if !b.Alive || !physics.CircleCircle(a.Pos, a.Radius, b.Pos, b.Radius) {
				continue
			}
			impact := a.Vel.Sub(b.Vel).Magnitude()
			physics.SeparateCircles(&a.Body, &b.Body)
			physics.ResolveCircleCircle(&a.Body, &b.Body, e)
			if impact >= 5 {
				w.Emit(a.Pos.Lerp(b.Pos, 0.5), 4, "#FFFFFF")
			}
			if a.Side == b.Side {
				continue
			}
			contact(w, a, b)
			contact(w, b, a)
		}
	}
}

func contact(w *combat.World, attacker, target *combat.Ball) {
	wp := attacker.Weapon
	if wp == nil || !attacker.Alive || !target.Alive {
		return
	}
	if wp.State().IsBodyContact() && wp.CanHit() {
		wp.OnHit(w, target)
	}
}

// auraHits lets contact weapons with an aura land hits across a small gap
func (m *Match) auraHits() {
	w := m.World
	for i := 0; i < len(w.Balls); i++ {
		a := w.Balls[i]
		for j := i + 1; j < len(w.Balls); j++ {
			b := w.Balls[j]
			if !a.Alive || !b.Alive || a.Side == b.Side {
				continue
			}
			if physics.CircleCircle(a.Pos, a.Radius, b.Pos, b.Radius) {
				continue
			}
			dist := vmath.Distance(a.Pos, b.Pos)
			auraContact(w, a, b, dist)
			auraContact(w, b, a, dist)
		}
	}
}

func auraContact(w *combat.World, attacker, target *combat.Ball, dist float64) {
	ca, ok := attacker.Weapon.(contactAura)
	if !ok || !attacker.Alive || !target.Alive {
		return
	}
	wp := attacker.Weapon
	if wp.State().IsBodyContact() && dist < attacker.Radius+target.Radius+ca.ContactAura() && wp.CanHit() {
		wp.OnHit(w, target)
	}
}

// meleeHits tests each reach weapon's outer segment against every enemy
// CanHit is sampled once per attacker, so one swing lands on every enemy it overlaps
// Striker weapons run their own shape test
func (m *Match) meleeHits() {
	w := m.World
	for i := 0; i < len(w.Balls); i++ {
		attacker := w.Balls[i]
		if !attacker.Alive || attacker.Weapon == nil {
			continue
		}
		wp := attacker.Weapon
		st := wp.State()
		if st.IsBodyContact() || st.Ranged {
			continue
		}
		striker, isStriker := wp.(combat.Striker)
		if !isStriker && !wp.CanHit() {
			continue
		}
		inner := st.PointAlong(parameter.WeaponMeleeInnerFraction)
		tip := wp.TipPosition()
		for j := 0; j < len(w.Balls); j++ {
			target := w.Balls[j]
			if target == attacker || !target.Alive || target.Side == attacker.Side {
				continue
			}
			if !attacker.Alive {
				break
			}
			if isStriker {
				striker.Strike(w, target)
				continue
			}
			if physics.LineCircle(inner, tip, target.Pos, target.Radius) {
				wp.OnHit(w, target)
			}
		}
	}
}

// parry knocks apart opposing weapon tips that come within the parry distance
func (m *Match) parry() {
	w := m.World
	limit := w.Config.ParryDistance * w.Config.ParryDistance
	for i := 0; i < len(w.Balls); i++ {
		a := w.Balls[i]
		if !a.Alive || a.Weapon == nil {
			continue
		}
		for j := i + 1; j < len(w.Balls); j++ {
			b := w.Balls[j]
			if !b.Alive || b.Weapon == nil || a.Side == b.Side {
				continue
			}
			s1, s2 := a.Weapon.State(), b.Weapon.State()
			if !s1.CanParry || !s2.CanParry || s1.Unparryable || s2.Unparryable {
				continue
			}
			if vmath.DistanceSq(a.Weapon.TipPosition(), b.Weapon.TipPosition()) >= limit {
				continue
			}
			s1.Angle += (w.Random() - parameter.ParryAngleBias) * parameter.ParryAngleSpread
			s2.Angle -= (w.Random() - parameter.ParryAngleBias) * parameter.ParryAngleSpread
			s1.Cooldown = max(s1.Cooldown, parameter.ParryCooldown)
			s2.Cooldown = max(s2.Cooldown, parameter.ParryCooldown)
			w.Emit(a.Weapon.TipPosition().Lerp(b.Weapon.TipPosition(), 0.5), 6, "#FFFF88")
			m.parries++
		}
	}
}

// checkWin decides the result: a side loses when it has no living ball or its original has fallen
// Both sides losing on the same tick is a draw, so is reaching the frame limit
func (m *Match) checkWin() {
	w := m.World
	leftDown := m.sideDown(Left)
	rightDown := m.sideDown(Right)

	switch {
	case leftDown && rightDown:
		m.finish(Draw)
	case leftDown:
		m.finish(RightWins)
	case rightDown:
		m.finish(LeftWins)
	case w.Config.MaxFrames > 0 && w.Frame >= w.Config.MaxFrames:
		m.finish(Draw)
	}
}

func (m *Match) sideDown(side combat.Side) bool {
	if o := m.originals[side]; o != nil && !o.Alive {
		return true
	}
	return len(m.World.Allies(side)) == 0
}

func (m *Match) finish(o Outcome) {
	m.result = m.summarize(o)
	fields := logrus.Fields{
		"frame":   m.World.Frame,
		"outcome": o.String(),
		"parries": m.parries,
	}
	if o == Draw {
		fields["hp_left"] = math.Round(m.result.Sides[Left].HP)
		fields["hp_right"] = math.Round(m.result.Sides[Right].HP)
	}
	m.log.WithFields(fields).Info("match finished")
}
