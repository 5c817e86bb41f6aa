package viewer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/config"
	"github.com/lixenwraith/ballarena/engine"
	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
	"github.com/lixenwraith/ballarena/weapon"
)

type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0.5 }

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestMatch(t *testing.T, left, right []string) *engine.Match {
	t.Helper()
	m, err := engine.NewMatch(config.Default(), weapon.Registry(), left, right, fixedRand{})
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	return m
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

// TestLayoutCell verifies arena corners map to grid corners
func TestLayoutCell(t *testing.T) {
	l := newLayout(physics.Rect{X: 0, Y: 0, Width: 800, Height: 600}, 80, 25)

	if x, y, ok := l.cell(vmath.V(0, 0)); !ok || x != 0 || y != 0 {
		t.Errorf("Origin mapped to %d,%d ok=%v", x, y, ok)
	}
	if x, y, ok := l.cell(vmath.V(799, 599)); !ok || x != 79 || y != 23 {
		t.Errorf("Far corner mapped to %d,%d ok=%v", x, y, ok)
	}
	if _, _, ok := l.cell(vmath.V(800, 300)); ok {
		t.Error("Right edge should fall outside the grid")
	}
	if _, _, ok := l.cell(vmath.V(-1, 300)); ok {
		t.Error("Negative x should fall outside the grid")
	}

	x, y, _ := l.cell(l.center(12, 7))
	if x != 12 || y != 7 {
		t.Errorf("Cell center round trip gave %d,%d", x, y)
	}
}

// TestDrawBalls verifies balls, weapon tips and the status line are rendered
func TestDrawBalls(t *testing.T) {
	screen := newTestScreen(t)
	m := newTestMatch(t, []string{"sword"}, []string{"dagger", "spear"})
	v := New(screen)

	v.Draw(m)

	w, h := screen.Size()
	l := newLayout(m.World.Arena(), w, h)
	for _, b := range m.World.Balls {
		x, y, ok := l.cell(b.Pos)
		if !ok {
			t.Fatalf("Ball %s off grid", b.Variant)
		}
		r, _, _, _ := screen.GetContent(x, y)
		if r != glyphOriginal && r != glyphClone {
			t.Errorf("Expected ball glyph at %d,%d for %s, got %q", x, y, b.Variant, r)
		}
	}

	tip := m.World.Balls[0].Weapon.TipPosition()
	if x, y, ok := l.cell(tip); ok {
		r, _, _, _ := screen.GetContent(x, y)
		if r != glyphTip && r != glyphOriginal {
			t.Errorf("Expected weapon tip at %d,%d, got %q", x, y, r)
		}
	}

	status := rowText(screen, h-1)
	for _, want := range []string{"frame 0", "left: sword", "right: dagger", "spear"} {
		if !strings.Contains(status, want) {
			t.Errorf("Status line %q missing %q", status, want)
		}
	}

	if r, _, _, _ := screen.GetContent(0, 0); r != '┌' {
		t.Errorf("Expected border corner, got %q", r)
	}
}

// TestDrawHazard verifies hazard cells are shaded
func TestDrawHazard(t *testing.T) {
	screen := newTestScreen(t)
	m := newTestMatch(t, []string{"sword"}, []string{"dagger"})
	wld := m.World
	a := wld.Arena()

	owner := wld.Balls[0]
	hz := combat.NewHazard(owner.Weapon, vmath.V(a.X+a.Width/2, a.Y+a.Height/2))
	hz.Radius = 60
	wld.AddHazard(hz)

	v := New(screen)
	v.Draw(m)

	w, h := screen.Size()
	l := newLayout(a, w, h)
	x, y, _ := l.cell(hz.Pos)
	if r, _, _, _ := screen.GetContent(x, y); r != glyphHazard {
		t.Errorf("Expected hazard glyph at center, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(x+1, y); r != glyphHazard {
		t.Errorf("Expected hazard glyph beside center, got %q", r)
	}
}

// TestParticlesExpire verifies emitted particles are drawn then age out
func TestParticlesExpire(t *testing.T) {
	screen := newTestScreen(t)
	m := newTestMatch(t, []string{"sword"}, []string{"dagger"})
	v := New(screen)

	a := m.World.Arena()
	v.Emit(a.X+10, a.Y+10, 5, "#FF0000")
	v.Explode(a.X+a.Width/2, a.Y+10, 8, "#00FF00")
	if got := v.Particles(); got != 13 {
		t.Fatalf("Expected 13 particles, got %d", got)
	}

	for i := 0; i < parameter.ViewerParticleLife; i++ {
		v.Draw(m)
	}
	if got := v.Particles(); got != 0 {
		t.Errorf("Expected particles to expire, %d left", got)
	}
}

// TestParticleCap verifies the oldest particles are dropped past the cap
func TestParticleCap(t *testing.T) {
	v := New(newTestScreen(t))
	v.Emit(0, 0, parameter.ViewerMaxParticles, "#FFFFFF")
	v.Explode(0, 0, 10, "#000000")

	if got := v.Particles(); got != parameter.ViewerMaxParticles {
		t.Fatalf("Expected cap %d, got %d", parameter.ViewerMaxParticles, got)
	}
	if v.particles[len(v.particles)-1].color != "#000000" {
		t.Error("Newest particles should survive the cap")
	}
}

// TestDrawFinished verifies the outcome tag after a match ends
func TestDrawFinished(t *testing.T) {
	screen := newTestScreen(t)
	cfg := config.Default()
	cfg.MaxFrames = 2
	m, err := engine.NewMatch(cfg, weapon.Registry(), []string{"sword"}, []string{"dagger"}, fixedRand{})
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	for m.Step() {
	}

	v := New(screen)
	v.Draw(m)
	_, h := screen.Size()
	if status := rowText(screen, h-1); !strings.Contains(status, "[draw]") {
		t.Errorf("Expected draw tag in %q", status)
	}
}
