package physics

import (
	"math"

	"github.com/lixenwraith/ballarena/vmath"
)

// SeparationEpsilon is added to each body's half-overlap push to avoid resting jitter
const SeparationEpsilon = 0.5

// CircleCircle reports strict overlap of two circles
func CircleCircle(p1 vmath.Vec2, r1 float64, p2 vmath.Vec2, r2 float64) bool {
	rr := r1 + r2
	return vmath.DistanceSq(p1, p2) < rr*rr
}

// PointCircle reports whether p lies strictly inside the circle
func PointCircle(p, center vmath.Vec2, r float64) bool {
	return vmath.DistanceSq(p, center) < r*r
}

// LineCircle reports whether segment a→b intersects the circle
// Solves |a + t(b-a) - c|² = r² and accepts roots with t in [0,1]
func LineCircle(a, b, center vmath.Vec2, r float64) bool {
	d := b.Sub(a)
	f := a.Sub(center)

	qa := d.Dot(d)
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - r*r

	// Degenerate segment collapses to point test
	if qa == 0 {
		return qc <= 0
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return false
	}
	disc = math.Sqrt(disc)
	t1 := (-qb - disc) / (2 * qa)
	t2 := (-qb + disc) / (2 * qa)
	return (t1 >= 0 && t1 <= 1) || (t2 >= 0 && t2 <= 1)
}

// ResolveCircleCircle applies an impulse-based elastic response to a and b
// Mass combination is additive: j = (1+e)·(Δv·n)/(ma+mb), each body scaled by the other's mass
// No-op for coincident centers or bodies already separating
func ResolveCircleCircle(a, b *Body, restitution float64) {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Magnitude()
	if dist == 0 {
		return
	}
	n := delta.Scale(1 / dist)

	dv := a.Vel.Sub(b.Vel)
	dvDotN := dv.Dot(n)
	if dvDotN < 0 {
		return
	}

	massSum := a.Mass + b.Mass
	if massSum == 0 {
		return
	}
	j := (1 + restitution) * dvDotN / massSum

	a.Vel = a.Vel.Sub(n.Scale(j * b.Mass))
	b.Vel = b.Vel.Add(n.Scale(j * a.Mass))
}

// SeparateCircles pushes overlapping bodies apart along the contact normal
// Each moves half the overlap plus SeparationEpsilon, returns true if moved
func SeparateCircles(a, b *Body) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Magnitude()
	minDist := a.Radius + b.Radius
	if dist >= minDist || dist == 0 {
		return false
	}
	n := delta.Scale(1 / dist)
	push := (minDist-dist)/2 + SeparationEpsilon
	a.Pos = a.Pos.Sub(n.Scale(push))
	b.Pos = b.Pos.Add(n.Scale(push))
	return true
}
