package weapon

import (
	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

// knockFrom pushes target away from origin by force, no-op at zero distance
func knockFrom(target *combat.Ball, origin vmath.Vec2, force float64) {
	physics.Knockback(&target.Body, origin, force)
}

// pullTo draws target toward origin by force
func pullTo(target *combat.Ball, origin vmath.Vec2, force float64) {
	physics.Pull(&target.Body, origin, force)
}

// root nearly stops target
func root(target *combat.Ball) {
	physics.DampVelocity(&target.Body, 0.1)
}

// speedOf returns the owner speed of a ball
func speedOf(b *combat.Ball) float64 {
	return physics.Speed(&b.Body)
}

// roundInt rounds half away from zero
func roundInt(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}

// volley schedules a fixed number of extra shots spaced interval ticks apart
type volley struct {
	left     int
	interval int
	timer    int
}

func (v *volley) start(shots, interval int) {
	v.left, v.interval, v.timer = shots, interval, 0
}

// due advances the schedule and reports whether a shot fires this tick
func (v *volley) due() bool {
	if v.left <= 0 {
		return false
	}
	if v.timer > 0 {
		v.timer--
		return false
	}
	v.left--
	v.timer = v.interval
	return true
}
