package weapon

import (
	"testing"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/config"
	"github.com/lixenwraith/ballarena/vmath"
)

// fixedRand always returns the same value
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newTestWorld() *combat.World {
	cfg := config.Default()
	cfg.Arena.X, cfg.Arena.Y = 0, 0
	cfg.Arena.Width, cfg.Arena.Height = 600, 600
	return combat.NewWorld(cfg, fixedRand(0.5))
}

// arm spawns a ball with the named variant attached through the process registry
func arm(t *testing.T, w *combat.World, name string, x, y float64, side combat.Side) (*combat.Ball, combat.Weapon) {
	t.Helper()
	b := combat.NewBall(w, vmath.V(x, y), side, name, combat.BallOptions{})
	wp, err := Registry().Create(name, b, w)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	w.AddBall(b)
	return b, wp
}

// dummy spawns a ball with a sword, used as a passive target
func dummy(t *testing.T, w *combat.World, x, y float64, side combat.Side) *combat.Ball {
	t.Helper()
	b, _ := arm(t, w, "sword", x, y, side)
	return b
}

// landHits credits n hits through the shared bookkeeping path
func landHits(w *combat.World, wp combat.Weapon, n int) {
	for range n {
		combat.RecordHit(w, wp)
	}
}
