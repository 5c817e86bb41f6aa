package weapon

import (
	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

const (
	lanceJoustInterval      = 180
	lanceSuperJoustInterval = 120
	lanceJoustDuration      = 30
	lanceJoustSpeed         = 12.0
	lanceKnockback          = 5.0
)

// Lance rotates idly and periodically charges at the nearest opponent
// While charging the owner is invulnerable, velocity is locked and the hit cooldown is frozen
type Lance struct {
	Base
	joustDamage float64
	interval    int
	timer       int
	charging    bool
	frames      int
	charge      vmath.Vec2
}

func newLance(owner *combat.Ball, w *combat.World) combat.Weapon {
	l := &Lance{Base: newBase(owner, w, profile{
		variant: "lance", damage: 2, reach: 85, rotation: 0.04, threshold: 8, scaling: "Joust Dmg",
	})}
	l.ApplyScaling()
	return l
}

// Charging reports whether a joust is in progress
func (l *Lance) Charging() bool { return l.charging }

func (l *Lance) Update(w *combat.World) {
	l.timer++
	if l.charging {
		l.frames++
		physics.SetImpulse(&l.Owner.Body, l.charge)
		l.Owner.Invulnerable = true
		if l.frames >= lanceJoustDuration {
			l.charging = false
			l.frames = 0
			l.Owner.Invulnerable = false
		}
		return
	}

	l.spin()
	l.tickCooldown()
	if l.timer >= l.interval {
		l.timer = 0
		l.startJoust(w)
	}
}

func (l *Lance) startJoust(w *combat.World) {
	l.charging = true
	l.frames = 0
	angle, _ := l.aim(w)
	l.Angle = angle
	l.charge = vmath.FromAngle(angle, lanceJoustSpeed)
	physics.SetImpulse(&l.Owner.Body, l.charge)
	l.Owner.Invulnerable = true
}

// CanHit only while charging
func (l *Lance) CanHit() bool { return l.charging && l.Cooldown <= 0 }

func (l *Lance) OnHit(w *combat.World, target *combat.Ball) {
	dmg := l.Damage
	if l.charging {
		dmg = l.joustDamage
	}
	l.deal(target, dmg)
	l.shove(target, lanceKnockback)
	l.record(w, l, target)
}

func (l *Lance) ApplyScaling() {
	l.joustDamage = 4 + float64(l.HitCount)*2
	l.interval = lanceJoustInterval
	if l.SuperActive {
		l.interval = lanceSuperJoustInterval
	}
	l.Scaling.Value = l.joustDamage
}
