package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
)

const (
	raCycle  = 480
	raTrough = 2.0
)

// Ra follows the sun: damage swings between a trough and a peak over an eight second cycle
// Super fixes the sun at its zenith
type Ra struct {
	Base
	cycle int
	peak  float64
}

func newRa(owner *combat.Ball, w *combat.World) combat.Weapon {
	r := &Ra{Base: newBase(owner, w, profile{
		variant: "ra", damage: 9, reach: 88, rotation: 0.09, threshold: 10, scaling: "Peak Dmg",
	})}
	r.ApplyScaling()
	return r
}

// Phase is the position in the cycle, 0 at trough and 1 at peak
func (r *Ra) Phase() float64 {
	if r.SuperActive {
		return 1
	}
	return math.Abs(math.Sin(math.Pi * float64(r.cycle) / raCycle))
}

func (r *Ra) Update(w *combat.World) {
	r.Base.Update(w)
	r.cycle++
	r.Damage = r.current()
}

func (r *Ra) current() float64 {
	return raTrough + (r.peak-raTrough)*r.Phase()
}

func (r *Ra) OnHit(w *combat.World, target *combat.Ball) {
	r.Damage = r.current()
	r.strike(w, r, target)
}

func (r *Ra) ApplyScaling() {
	r.peak = r.BaseDamage + float64(r.HitCount)*0.8
	r.Damage = r.current()
	r.Scaling.Value = math.Round(r.peak*10) / 10
}
