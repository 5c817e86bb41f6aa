package vmath

import "math"

// Vec2 is a 2D float vector in arena units
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// FromAngle returns a vector of length mag pointing along angle (radians)
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Perp() Vec2             { return Vec2{-v.Y, v.X} }
func (v Vec2) IsZero() bool           { return v.X == 0 && v.Y == 0 }
func (v Vec2) Angle() float64         { return math.Atan2(v.Y, v.X) }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// MagnitudeSq returns squared length without sqrt
func (v Vec2) MagnitudeSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns unit vector, zero vector for zero-length input
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// ClampMagnitude limits length to maxMag while preserving direction
func (v Vec2) ClampMagnitude(maxMag float64) Vec2 {
	mag := v.Magnitude()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

// Rotate rotates by angle radians counter-clockwise
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Distance returns Euclidean distance between a and b
func Distance(a, b Vec2) float64 { return b.Sub(a).Magnitude() }

// DistanceSq returns squared distance between a and b
func DistanceSq(a, b Vec2) float64 { return b.Sub(a).MagnitudeSq() }

// Direction returns unit vector from a toward b, zero if coincident
func Direction(a, b Vec2) Vec2 { return b.Sub(a).Normalize() }
