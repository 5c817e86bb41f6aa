package physics

import "github.com/lixenwraith/ballarena/vmath"

// Integrate advances position by one tick of velocity
func Integrate(b *Body) {
	b.Pos = b.Pos.Add(b.Vel)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(b *Body, dv vmath.Vec2) {
	b.Vel = b.Vel.Add(dv)
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(b *Body, v vmath.Vec2) {
	b.Vel = v
}

// Knockback pushes b away from origin by force along the radial direction
// Coincident centers produce no push
func Knockback(b *Body, origin vmath.Vec2, force float64) {
	dir := vmath.Direction(origin, b.Pos)
	if dir.IsZero() {
		return
	}
	ApplyImpulse(b, dir.Scale(force))
}

// Pull draws b toward origin by force, no-op at zero distance
func Pull(b *Body, origin vmath.Vec2, force float64) {
	Knockback(b, origin, -force)
}

// DampVelocity scales velocity by factor (friction, slow, root)
func DampVelocity(b *Body, factor float64) {
	b.Vel = b.Vel.Scale(factor)
}

// ClampSpeed limits speed to maxSpeed preserving direction
func ClampSpeed(b *Body, maxSpeed float64) {
	b.Vel = b.Vel.ClampMagnitude(maxSpeed)
}

// Speed returns current velocity magnitude
func Speed(b *Body) float64 {
	return b.Vel.Magnitude()
}
