package viewer

import (
	"math"

	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/vmath"
)

// particle is a cosmetic spark in arena coordinates
type particle struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	life  int
	color string
}

// Emit spawns count slow drifting particles at x, y
func (v *Viewer) Emit(x, y float64, count int, color string) {
	v.spawn(x, y, count, color, false)
}

// Explode spawns count particles bursting radially from x, y
func (v *Viewer) Explode(x, y float64, count int, color string) {
	v.spawn(x, y, count, color, true)
}

func (v *Viewer) spawn(x, y float64, count int, color string, burst bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	origin := vmath.V(x, y)
	for i := 0; i < count; i++ {
		var vel vmath.Vec2
		if burst {
			angle := 2 * math.Pi * float64(i) / float64(count)
			vel = vmath.FromAngle(angle, parameter.ViewerExplodeSpeed*(0.5+0.5*v.rng.Float64()))
		} else {
			vel = vmath.FromAngle(2*math.Pi*v.rng.Float64(), parameter.ViewerEmitSpeed*v.rng.Float64())
		}
		v.particles = append(v.particles, particle{
			pos:   origin,
			vel:   vel,
			life:  parameter.ViewerParticleLife,
			color: color,
		})
	}
	if over := len(v.particles) - parameter.ViewerMaxParticles; over > 0 {
		v.particles = append(v.particles[:0], v.particles[over:]...)
	}
}

// advance moves live particles one frame and drops expired ones, caller holds mu
func (v *Viewer) advance() {
	live := v.particles[:0]
	for _, p := range v.particles {
		p.life--
		if p.life <= 0 {
			continue
		}
		p.pos = p.pos.Add(p.vel)
		p.vel = p.vel.Scale(parameter.ViewerParticleDrag)
		live = append(live, p)
	}
	v.particles = live
}

// Particles returns the number of live particles
func (v *Viewer) Particles() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.particles)
}
