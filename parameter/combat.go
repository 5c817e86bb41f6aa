package parameter

// Hit Points
const (
	// CombatMaxHP is default combatant starting and maximum health
	CombatMaxHP = 100.0

	// CombatSuperThreshold is the default hit count unlocking a weapon super
	CombatSuperThreshold = 10
)

// Weapon defaults
const (
	// WeaponBaseDamage is damage dealt by a weapon that does not set its own
	WeaponBaseDamage = 3.0

	// WeaponReach is default distance from owner center to weapon tip
	WeaponReach = 40.0

	// WeaponRotationSpeed is default radians per tick
	WeaponRotationSpeed = 0.05

	// WeaponHitCooldown is ticks between two registered hits of the same weapon
	WeaponHitCooldown = 20

	// WeaponMeleeInnerFraction is where the melee hit segment starts, as a fraction of reach
	WeaponMeleeInnerFraction = 0.4
)

// Parry
const (
	// ParryDistance is the tip-to-tip distance below which two weapons clash
	ParryDistance = 15.0

	// ParryCooldown is the minimum cooldown both weapons receive after a clash
	ParryCooldown = 10

	// ParryAngleSpread is the random angle perturbation range (radians) on clash
	ParryAngleSpread = 0.4 * 3.141592653589793

	// ParryAngleBias shifts the perturbation so clashes favor one rotation sense
	ParryAngleBias = 0.3
)

// Projectile defaults
const (
	// ProjectileDamage is default projectile damage
	ProjectileDamage = 2.0

	// ProjectileRadius is default projectile collision radius
	ProjectileRadius = 3.0

	// ProjectileLifespan is default ticks before a projectile expires
	ProjectileLifespan = 120
)

// Hazard defaults
const (
	// HazardRadius is default hazard zone radius
	HazardRadius = 20.0

	// HazardDamage is default damage per hazard tick
	HazardDamage = 1.0

	// HazardTickRate is default ticks between hits on the same target
	HazardTickRate = 30

	// HazardLifespan is default ticks before a hazard expires
	HazardLifespan = 120
)
