package physics

import (
	"testing"

	"github.com/lixenwraith/ballarena/vmath"
)

var testArena = Rect{X: 10, Y: 20, Width: 400, Height: 300}

// TestBounceOffWalls_LeftPenetration verifies clamping and inward velocity for any depth
func TestBounceOffWalls_LeftPenetration(t *testing.T) {
	for _, depth := range []float64{0.1, 5, 25, 300} {
		b := &Body{Pos: vmath.V(testArena.Left()+20-depth, 150), Vel: vmath.V(-6, 1), Radius: 20}
		side := BounceOffWalls(b, testArena, 0.9)
		if side&WallLeft == 0 {
			t.Errorf("depth %v: left wall not reported", depth)
		}
		if b.Pos.X != testArena.Left()+b.Radius {
			t.Errorf("depth %v: x=%v want %v", depth, b.Pos.X, testArena.Left()+b.Radius)
		}
		if b.Vel.X < 0 {
			t.Errorf("depth %v: vx=%v want >= 0", depth, b.Vel.X)
		}
	}
}

// TestBounceOffWalls_Corner verifies two sides trigger in one call
func TestBounceOffWalls_Corner(t *testing.T) {
	b := &Body{Pos: vmath.V(testArena.Right()+3, testArena.Bottom()+3), Vel: vmath.V(2, 3), Radius: 10}
	side := BounceOffWalls(b, testArena, 1.0)
	if side != WallRight|WallBottom {
		t.Fatalf("side=%b want right|bottom", side)
	}
	if side.Count() != 2 {
		t.Errorf("Count=%d want 2", side.Count())
	}
	if b.Vel.X != -2 || b.Vel.Y != -3 {
		t.Errorf("vel=%+v want (-2,-3)", b.Vel)
	}
}

// TestBounceOffWalls_Inside verifies no change for an interior body
func TestBounceOffWalls_Inside(t *testing.T) {
	b := &Body{Pos: testArena.Center(), Vel: vmath.V(1, 1), Radius: 10}
	if side := BounceOffWalls(b, testArena, 1.0); side != WallNone {
		t.Errorf("side=%b want none", side)
	}
}

// TestWeaponWallBounce verifies push direction, ranged exemption and damage scaling
func TestWeaponWallBounce(t *testing.T) {
	fixed := WallPush{Enabled: true, Strength: 2}
	scaled := WallPush{Enabled: true, DamageScaled: true}

	b := &Body{Pos: vmath.V(30, 100), Radius: 10}
	tip := vmath.V(testArena.Left()-5, 100)
	WeaponWallBounce(b, tip, 40, false, 3, testArena, fixed)
	if b.Vel.X != 2 {
		t.Errorf("fixed push vx=%v want 2", b.Vel.X)
	}

	b = &Body{Pos: vmath.V(30, 100), Radius: 10}
	WeaponWallBounce(b, tip, 40, false, 4, testArena, scaled)
	if b.Vel.X != 3 {
		t.Errorf("scaled push vx=%v want 3", b.Vel.X)
	}

	b = &Body{Pos: vmath.V(30, 100), Radius: 10}
	WeaponWallBounce(b, tip, 40, true, 4, testArena, fixed)
	if side := WeaponWallBounce(b, tip, 0, false, 4, testArena, fixed); side != WallNone || !b.Vel.IsZero() {
		t.Error("ranged or zero-reach weapons must not push")
	}

	b = &Body{Pos: vmath.V(380, 300), Radius: 10}
	WeaponWallBounce(b, vmath.V(testArena.Right()+1, testArena.Bottom()+1), 40, false, 0, testArena, fixed)
	if b.Vel.X != -2 || b.Vel.Y != -2 {
		t.Errorf("vel=%+v want (-2,-2)", b.Vel)
	}
}
