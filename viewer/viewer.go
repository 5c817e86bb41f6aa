// Package viewer draws a running match onto a terminal screen
package viewer

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/engine"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

// Glyphs
const (
	glyphOriginal   = 'O'
	glyphClone      = 'o'
	glyphWeapon     = '·'
	glyphTip        = '+'
	glyphProjectile = '•'
	glyphHazard     = '░'
	glyphParticle   = '*'
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Viewer renders matches and doubles as the match particle sink
// Emit and Explode are safe to call from the match goroutine while another goroutine draws
type Viewer struct {
	screen tcell.Screen

	mu        sync.Mutex
	particles []particle
	rng       *vmath.FastRand
	colors    map[string]tcell.Color
}

// New creates a viewer over an initialized screen
func New(screen tcell.Screen) *Viewer {
	return &Viewer{
		screen: screen,
		rng:    vmath.NewFastRand(0x9E3779B97F4A7C15),
		colors: make(map[string]tcell.Color),
	}
}

// layout maps arena coordinates to the cell grid above the status line
type layout struct {
	arena      physics.Rect
	cols, rows int
}

func newLayout(arena physics.Rect, width, height int) layout {
	return layout{arena: arena, cols: width, rows: height - 1}
}

// cell returns the screen cell holding p, ok is false outside the grid
func (l layout) cell(p vmath.Vec2) (x, y int, ok bool) {
	if l.cols <= 0 || l.rows <= 0 {
		return 0, 0, false
	}
	fx := (p.X - l.arena.X) / l.arena.Width
	fy := (p.Y - l.arena.Y) / l.arena.Height
	x = int(math.Floor(fx * float64(l.cols)))
	y = int(math.Floor(fy * float64(l.rows)))
	if x < 0 || y < 0 || x >= l.cols || y >= l.rows {
		return x, y, false
	}
	return x, y, true
}

// center returns the arena point at the middle of cell x, y
func (l layout) center(x, y int) vmath.Vec2 {
	return vmath.V(
		l.arena.X+(float64(x)+0.5)/float64(l.cols)*l.arena.Width,
		l.arena.Y+(float64(y)+0.5)/float64(l.rows)*l.arena.Height,
	)
}

// Draw renders one frame of m and advances particles
func (v *Viewer) Draw(m *engine.Match) {
	s := v.screen
	w := m.World
	width, height := s.Size()
	l := newLayout(w.Arena(), width, height)

	s.Clear()
	v.drawBorder(l)

	for _, h := range w.Hazards {
		if h.Alive {
			v.drawHazard(l, h)
		}
	}

	v.mu.Lock()
	for _, p := range v.particles {
		v.put(l, p.pos, glyphParticle, v.style(p.color))
	}
	v.advance()
	v.mu.Unlock()

	for _, b := range w.Balls {
		if b.Alive && b.Weapon != nil {
			v.drawWeapon(l, b.Weapon.State())
		}
	}
	for _, p := range w.Projectiles {
		if p.Alive {
			v.put(l, p.Pos, glyphProjectile, v.style(p.Color))
		}
	}
	for _, b := range w.Balls {
		if !b.Alive {
			continue
		}
		glyph := glyphClone
		if b.Original {
			glyph = glyphOriginal
		}
		st := v.style(b.Color)
		if b.Weapon != nil && b.Weapon.State().SuperActive {
			st = st.Bold(true).Reverse(true)
		}
		v.put(l, b.Pos, glyph, st)
	}

	v.drawStatus(m, width, height-1)
	s.Show()
}

func (v *Viewer) drawBorder(l layout) {
	s := v.screen
	if l.cols < 2 || l.rows < 2 {
		return
	}
	for x := 1; x < l.cols-1; x++ {
		s.SetContent(x, 0, '─', nil, styleBorder)
		s.SetContent(x, l.rows-1, '─', nil, styleBorder)
	}
	for y := 1; y < l.rows-1; y++ {
		s.SetContent(0, y, '│', nil, styleBorder)
		s.SetContent(l.cols-1, y, '│', nil, styleBorder)
	}
	s.SetContent(0, 0, '┌', nil, styleBorder)
	s.SetContent(l.cols-1, 0, '┐', nil, styleBorder)
	s.SetContent(0, l.rows-1, '└', nil, styleBorder)
	s.SetContent(l.cols-1, l.rows-1, '┘', nil, styleBorder)
}

// drawHazard shades every cell whose center lies inside the hazard circle
func (v *Viewer) drawHazard(l layout, h *combat.Hazard) {
	x0, y0, _ := l.cell(vmath.V(h.Pos.X-h.Radius, h.Pos.Y-h.Radius))
	x1, y1, _ := l.cell(vmath.V(h.Pos.X+h.Radius, h.Pos.Y+h.Radius))
	st := v.style(h.Color).Dim(true)
	r2 := h.Radius * h.Radius
	for y := max(y0, 0); y <= min(y1, l.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, l.cols-1); x++ {
			if vmath.DistanceSq(l.center(x, y), h.Pos) <= r2 {
				v.screen.SetContent(x, y, glyphHazard, nil, st)
			}
		}
	}
	// Small hazards still get one cell
	v.put(l, h.Pos, glyphHazard, st)
}

// drawWeapon traces the blade from owner to tip, one sample per cell crossed
func (v *Viewer) drawWeapon(l layout, ws *combat.WeaponState) {
	if ws.IsBodyContact() || ws.Ranged {
		return
	}
	from := ws.Owner.Pos
	tip := ws.Tip()
	fx, fy, _ := l.cell(from)
	tx, ty, _ := l.cell(tip)
	steps := max(abs(tx-fx), abs(ty-fy))
	st := v.style(ws.Color)
	for i := 1; i < steps; i++ {
		v.put(l, from.Lerp(tip, float64(i)/float64(steps)), glyphWeapon, st)
	}
	v.put(l, tip, glyphTip, st)
}

// drawStatus writes frame, parries and per-side health on row y
func (v *Viewer) drawStatus(m *engine.Match, width, y int) {
	if y < 0 {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "frame %d  parries %d", m.World.Frame, m.Parries())
	for _, side := range []combat.Side{engine.Left, engine.Right} {
		fmt.Fprintf(&sb, "  %s:", engine.SideName(side))
		for _, b := range m.World.Allies(side) {
			fmt.Fprintf(&sb, " %s %.0f", b.Variant, b.HP)
		}
	}
	if r := m.Result(); r != nil {
		fmt.Fprintf(&sb, "  [%s]", r.Outcome)
	}

	x := 0
	for _, r := range sb.String() {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}

// put draws glyph at the cell holding p when inside the grid
func (v *Viewer) put(l layout, p vmath.Vec2, glyph rune, st tcell.Style) {
	if x, y, ok := l.cell(p); ok {
		v.screen.SetContent(x, y, glyph, nil, st)
	}
}

// style resolves a "#RRGGBB" palette entry, caching parsed colors
func (v *Viewer) style(hex string) tcell.Style {
	c, ok := v.colors[hex]
	if !ok {
		c = tcell.GetColor(hex)
		if c == tcell.ColorDefault {
			c = tcell.ColorWhite
		}
		v.colors[hex] = c
	}
	return tcell.StyleDefault.Foreground(c)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
