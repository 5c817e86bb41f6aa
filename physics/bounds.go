package physics

import (
	"math"

	"github.com/lixenwraith/ballarena/vmath"
)

// WallContact reports which walls a circle at pos with radius r touches or crosses
func WallContact(pos vmath.Vec2, r float64, arena Rect) WallSide {
	side := WallNone
	if pos.X-r < arena.Left() {
		side |= WallLeft
	}
	if pos.X+r > arena.Right() {
		side |= WallRight
	}
	if pos.Y-r < arena.Top() {
		side |= WallTop
	}
	if pos.Y+r > arena.Bottom() {
		side |= WallBottom
	}
	return side
}

// ReflectWalls clamps b inside the walls in side and reflects the matching
// velocity components inward, scaled by restitution
func ReflectWalls(b *Body, side WallSide, arena Rect, restitution float64) {
	if side&WallLeft != 0 {
		b.Pos.X = arena.Left() + b.Radius
		b.Vel.X = math.Abs(b.Vel.X) * restitution
	}
	if side&WallRight != 0 {
		b.Pos.X = arena.Right() - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X) * restitution
	}
	if side&WallTop != 0 {
		b.Pos.Y = arena.Top() + b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y) * restitution
	}
	if side&WallBottom != 0 {
		b.Pos.Y = arena.Bottom() - b.Radius
		b.Vel.Y = -math.Abs(b.Vel.Y) * restitution
	}
}

// BounceOffWalls tests all four boundaries independently, clamps and reflects
// Returns every side hit, so a corner yields two bits
func BounceOffWalls(b *Body, arena Rect, restitution float64) WallSide {
	side := WallContact(b.Pos, b.Radius, arena)
	if side != WallNone {
		ReflectWalls(b, side, arena, restitution)
	}
	return side
}

// WallPush configures melee weapon pushback when a weapon tip leaves the arena
type WallPush struct {
	Enabled      bool
	Strength     float64
	DamageScaled bool
}

// strength returns push magnitude for a weapon with the given current damage
func (p WallPush) strength(damage float64) float64 {
	if p.DamageScaled {
		return 1.0 + damage*0.5
	}
	return p.Strength
}

// WeaponWallBounce nudges the owner's velocity inward when its weapon tip
// protrudes past a wall. Ranged or zero-reach weapons are ignored.
func WeaponWallBounce(b *Body, tip vmath.Vec2, reach float64, ranged bool, damage float64, arena Rect, p WallPush) WallSide {
	if !p.Enabled || ranged || reach == 0 {
		return WallNone
	}
	s := p.strength(damage)
	side := WallNone

	if tip.X < arena.Left() {
		b.Vel.X += s
		side |= WallLeft
	} else if tip.X > arena.Right() {
		b.Vel.X -= s
		side |= WallRight
	}
	if tip.Y < arena.Top() {
		b.Vel.Y += s
		side |= WallTop
	} else if tip.Y > arena.Bottom() {
		b.Vel.Y -= s
		side |= WallBottom
	}
	return side
}
