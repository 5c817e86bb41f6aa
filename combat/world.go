package combat

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ballarena/config"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

// World is the live roster shared by weapons, projectiles and hazards during a tick
// Single-threaded: only the owning match goroutine touches it
type World struct {
	Config *config.Config
	Rand   Rand
	Visual VisualSink
	Audio  AudioSink
	Log    logrus.FieldLogger

	Balls       []*Ball
	Projectiles []*Projectile
	Hazards     []*Hazard

	Frame  int
	nextID EntityID
}

var discardLog = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// NewWorld creates an empty world, nil cfg selects defaults
func NewWorld(cfg *config.Config, rng Rand) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	return &World{Config: cfg, Rand: rng}
}

// Logger returns the attached logger or a discarding one
func (w *World) Logger() logrus.FieldLogger {
	if w.Log == nil {
		return discardLog
	}
	return w.Log
}

// Arena returns the configured arena rectangle
func (w *World) Arena() physics.Rect {
	return w.Config.Arena
}

// NewID allocates the next entity identity
func (w *World) NewID() EntityID {
	w.nextID++
	return w.nextID
}

// AddBall appends b to the roster, assigning an ID when unset
// Safe during iteration: the ball is appended after any in-progress cursor
func (w *World) AddBall(b *Ball) *Ball {
	if b.ID == 0 {
		b.ID = w.NewID()
	}
	w.Balls = append(w.Balls, b)
	return b
}

// AddProjectile appends p and signals the audio sink
func (w *World) AddProjectile(p *Projectile) *Projectile {
	p.ID = w.NewID()
	p.Alive = true
	w.Projectiles = append(w.Projectiles, p)
	w.PlayFire()
	return p
}

// AddHazard appends h
func (w *World) AddHazard(h *Hazard) *Hazard {
	h.ID = w.NewID()
	h.Alive = true
	if h.MaxLifespan == 0 {
		h.MaxLifespan = h.Lifespan
	}
	w.Hazards = append(w.Hazards, h)
	return h
}

// Enemies returns living balls not on side, in roster order
func (w *World) Enemies(side Side) []*Ball {
	var out []*Ball
	for _, b := range w.Balls {
		if b.Alive && b.Side != side {
			out = append(out, b)
		}
	}
	return out
}

// Allies returns living balls on side, in roster order
func (w *World) Allies(side Side) []*Ball {
	var out []*Ball
	for _, b := range w.Balls {
		if b.Alive && b.Side == side {
			out = append(out, b)
		}
	}
	return out
}

// EnemiesWithin returns living enemies of side whose centers lie strictly within radius of center
func (w *World) EnemiesWithin(center vmath.Vec2, radius float64, side Side) []*Ball {
	var out []*Ball
	r2 := radius * radius
	for _, b := range w.Balls {
		if b.Alive && b.Side != side && vmath.DistanceSq(center, b.Pos) < r2 {
			out = append(out, b)
		}
	}
	return out
}

// NearestEnemy returns the closest living enemy of b, nil when none remain
func (w *World) NearestEnemy(b *Ball) *Ball {
	var best *Ball
	bestDist := 0.0
	for _, o := range w.Balls {
		if o == b || !o.Alive || o.Side == b.Side {
			continue
		}
		d := vmath.DistanceSq(b.Pos, o.Pos)
		if best == nil || d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// Ball returns the rostered ball with id, nil if absent
func (w *World) Ball(id EntityID) *Ball {
	for _, b := range w.Balls {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Compact drops dead balls, spent projectiles and expired hazards
// Called once at end of tick, never during iteration
func (w *World) Compact() (deadBalls []*Ball) {
	balls := w.Balls[:0]
	for _, b := range w.Balls {
		if b.Alive {
			balls = append(balls, b)
		} else {
			deadBalls = append(deadBalls, b)
		}
	}
	clearTail(w.Balls, len(balls))
	w.Balls = balls

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Alive {
			projectiles = append(projectiles, p)
		}
	}
	clearTail(w.Projectiles, len(projectiles))
	w.Projectiles = projectiles

	hazards := w.Hazards[:0]
	for _, h := range w.Hazards {
		if h.Alive {
			hazards = append(hazards, h)
		}
	}
	clearTail(w.Hazards, len(hazards))
	w.Hazards = hazards

	return deadBalls
}

// clearTail nils references past n so compacted entities can be collected
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
