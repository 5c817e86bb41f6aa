package combat

import (
	"math"

	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/physics"
	"github.com/lixenwraith/ballarena/vmath"
)

// Ball is a combatant: a physics body with health, a side and exactly one weapon
type Ball struct {
	physics.Body

	ID      EntityID
	Side    Side
	Variant string
	Color   string

	HP    float64
	MaxHP float64

	Alive        bool
	Invulnerable bool
	// Original marks the lineage root, clones spawned by splitting are not original
	Original bool

	MaxSpeed float64
	Weapon   Weapon

	PoisonStacks int
	poisonTimer  int
	Burns        []Burn
	ForgeMarks   int
	VenomStacks  int
	SlowFactor   float64
	SlowTimer    int

	// DamageTaken accumulates health actually removed, for match statistics
	DamageTaken float64

	modifiers []DamageModifier
}

// Burn is a damage-over-time effect lasting Remaining frames, dealing Damage every TickRate frames
type Burn struct {
	Damage    float64
	Remaining int
	TickRate  int
	timer     int
}

// BallOptions overrides per-ball defaults at construction
type BallOptions struct {
	Radius   float64
	HP       float64
	Original bool
	Clone    bool
}

// NewBall creates a living ball at pos with mass derived from radius
// Weapon is attached separately by the registry factory
func NewBall(w *World, pos vmath.Vec2, side Side, variant string, opts BallOptions) *Ball {
	cfg := w.Config
	radius := opts.Radius
	if radius <= 0 {
		radius = cfg.BallRadius
	}
	hp := opts.HP
	if hp <= 0 {
		hp = cfg.MaxHP
	}
	return &Ball{
		Body: physics.Body{
			Pos:    pos,
			Radius: radius,
			Mass:   radius / cfg.BallRadius * cfg.BallMass,
		},
		ID:         w.NewID(),
		Side:       side,
		Variant:    variant,
		Color:      cfg.Color(variant),
		HP:         hp,
		MaxHP:      hp,
		Alive:      true,
		Original:   !opts.Clone,
		MaxSpeed:   cfg.BallMaxSpeed,
		SlowFactor: 1,
	}
}

// SetRadius changes radius and rescales mass by the same ratio
func (b *Ball) SetRadius(r float64) {
	if b.Radius > 0 {
		b.Mass *= r / b.Radius
	}
	b.Radius = r
}

// SetMaxHP sets maximum health and refills current health to it
func (b *Ball) SetMaxHP(hp float64) {
	b.MaxHP = hp
	b.HP = hp
}

// GrowMaxHP raises the health ceiling and current health together
func (b *Ball) GrowMaxHP(amount float64) {
	b.MaxHP += amount
	b.HP = math.Min(b.HP+amount, b.MaxHP)
}

// Speed returns current velocity magnitude
func (b *Ball) Speed() float64 {
	return b.Vel.Magnitude()
}

// Heal restores health up to MaxHP, no effect on dead balls
func (b *Ball) Heal(amount float64) {
	if !b.Alive || amount <= 0 {
		return
	}
	b.HP = math.Min(b.MaxHP, b.HP+amount)
}

// AddPoison adds poison stacks
func (b *Ball) AddPoison(stacks int) {
	if stacks > 0 {
		b.PoisonStacks += stacks
	}
}

// AddBurn attaches a damage-over-time effect lasting frames, hitting every tickRate frames
func (b *Ball) AddBurn(damage float64, frames, tickRate int) {
	if frames <= 0 || tickRate <= 0 {
		return
	}
	b.Burns = append(b.Burns, Burn{Damage: damage, Remaining: frames, TickRate: tickRate})
}

// ApplySlow sets a velocity multiplier applied every tick for duration ticks
// A stronger or longer slow replaces a weaker one
func (b *Ball) ApplySlow(factor float64, duration int) {
	if b.SlowTimer <= 0 || factor < b.SlowFactor {
		b.SlowFactor = factor
	}
	if duration > b.SlowTimer {
		b.SlowTimer = duration
	}
}

// AddForgeMarks adds marks up to the cap and installs the amplifier on first mark
func (b *Ball) AddForgeMarks(n int) {
	if n <= 0 {
		return
	}
	if b.ForgeMarks == 0 {
		b.AddModifier(forgeModifier{})
	}
	b.ForgeMarks = vmath.ClampInt(b.ForgeMarks+n, 0, parameter.ForgeMarkMax)
}

// Move integrates one tick of motion: velocity, gravity, friction, slows, speed cap, walls
func (b *Ball) Move(w *World) physics.WallSide {
	cfg := w.Config
	physics.Integrate(&b.Body)
	if cfg.GravityMode {
		physics.ApplyImpulse(&b.Body, vmath.FromAngle(cfg.GravityAngle, cfg.Gravity))
	}
	physics.DampVelocity(&b.Body, cfg.BallFriction)
	if b.SlowTimer > 0 {
		physics.DampVelocity(&b.Body, b.SlowFactor)
	}
	if b.VenomStacks > 0 {
		mult := math.Max(parameter.VenomMinMultiplier, 1-float64(b.VenomStacks)*parameter.VenomSlowPerStack)
		physics.DampVelocity(&b.Body, mult)
	}
	physics.ClampSpeed(&b.Body, b.MaxSpeed)
	return physics.BounceOffWalls(&b.Body, w.Arena(), cfg.WallRestitution)
}

// TickStatus advances poison, burns and slow timers
func (b *Ball) TickStatus() {
	if !b.Alive {
		return
	}

	if b.PoisonStacks > 0 {
		b.poisonTimer++
		if b.poisonTimer >= parameter.PoisonTickInterval {
			b.poisonTimer = 0
			b.TakeDamage(float64(b.PoisonStacks) * parameter.PoisonDamagePerStack)
		}
	}

	burns := b.Burns[:0]
	for _, burn := range b.Burns {
		burn.timer++
		if burn.timer >= burn.TickRate {
			burn.timer = 0
			b.TakeDamage(burn.Damage)
		}
		burn.Remaining--
		if burn.Remaining > 0 {
			burns = append(burns, burn)
		}
	}
	b.Burns = burns

	if b.SlowTimer > 0 {
		b.SlowTimer--
		if b.SlowTimer == 0 {
			b.SlowFactor = 1
		}
	}
}
