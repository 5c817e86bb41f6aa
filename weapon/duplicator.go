package weapon

import (
	"math"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

const (
	splitInterval = 480
	splitMinHP    = 5
	splitMinSize  = 10
	contactReach  = 8.0

	splitSuperBonus = 10.0
)

// Duplicator fights by contact and periodically splits every ally in two
// Only the original ball drives the split timer, clones ride along
type Duplicator struct {
	Base
	timer  int
	bonus  float64
	copies int
}

func newDuplicator(owner *combat.Ball, w *combat.World) combat.Weapon {
	d := &Duplicator{Base: newBase(owner, w, profile{
		variant: "duplicator", damage: 1, threshold: 12, scaling: "Copies", noParry: true,
	})}
	d.copies = len(w.Allies(owner.Side))
	d.ApplyScaling()
	return d
}

func (d *Duplicator) Update(w *combat.World) {
	d.tickCooldown()
	if !d.Owner.Original {
		return
	}
	d.timer++
	if d.timer >= splitInterval {
		d.timer = 0
		d.split(w)
	}
}

// split halves every living ally and spawns a smaller clone beside each
func (d *Duplicator) split(w *combat.World) {
	parents := w.Allies(d.Owner.Side)
	for _, parent := range parents {
		hp := math.Max(splitMinHP, math.Floor(parent.HP/2))
		size := math.Max(splitMinSize, math.Floor(parent.Radius*0.75))
		parent.HP = hp

		offset := vmath.V((w.Random()-0.5)*parent.Radius*2, (w.Random()-0.5)*parent.Radius*2)
		clone := combat.NewBall(w, parent.Pos.Add(offset), d.Owner.Side, d.Variant, combat.BallOptions{
			Radius: size,
			HP:     hp + d.bonus,
			Clone:  true,
		})
		clone.Vel = vmath.V((w.Random()-0.5)*6, (w.Random()-0.5)*6)
		clone.Weapon = newDuplicator(clone, w)
		w.AddBall(clone)
	}
	d.bonus = 0
	d.copies = len(w.Allies(d.Owner.Side))
	d.Scaling.Value = float64(d.copies)
	w.Logger().WithField("copies", d.copies).Debug("duplicator split")
}

// ContactAura lets contact hits land across a small gap between bodies
func (d *Duplicator) ContactAura() float64 { return contactReach }

func (d *Duplicator) OnHit(w *combat.World, target *combat.Ball) { d.strike(w, d, target) }

func (d *Duplicator) ApplyScaling() {
	d.Scaling.Value = float64(d.copies)
}

// ActivateSuper banks bonus health for the clones of the next split
// A clone reaching super banks it on the side's original, which drives splitting
func (d *Duplicator) ActivateSuper(w *combat.World) {
	root := d
	for _, b := range w.Allies(d.Owner.Side) {
		if od, ok := b.Weapon.(*Duplicator); ok && b.Original {
			root = od
			break
		}
	}
	root.bonus += splitSuperBonus
}

// Copies is the living ball count on the owner's side after the last split
func (d *Duplicator) Copies() int { return d.copies }
