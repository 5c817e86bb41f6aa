package physics

import "github.com/lixenwraith/ballarena/vmath"

// Body is the rigid circle every combatant, projectile and hazard moves as
type Body struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
	Mass   float64
}

// Rect is an axis-aligned arena rectangle, origin top-left
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the rectangle midpoint
func (r Rect) Center() vmath.Vec2 {
	return vmath.V(r.X+r.Width/2, r.Y+r.Height/2)
}

// ClampInside clamps p so a circle of radius margin stays fully inside
func (r Rect) ClampInside(p vmath.Vec2, margin float64) vmath.Vec2 {
	return vmath.V(
		vmath.Clamp(p.X, r.Left()+margin, r.Right()-margin),
		vmath.Clamp(p.Y, r.Top()+margin, r.Bottom()-margin),
	)
}

// WallSide is a bitmask of arena boundaries touched in one test
type WallSide uint8

const (
	WallLeft WallSide = 1 << iota
	WallRight
	WallTop
	WallBottom

	WallNone WallSide = 0
)

// Count returns the number of walls set in the mask
func (w WallSide) Count() int {
	n := 0
	for s := WallLeft; s <= WallBottom; s <<= 1 {
		if w&s != 0 {
			n++
		}
	}
	return n
}
