package parameter

// Ball body
const (
	// BallRadius is the reference combatant radius, mass scales with radius/BallRadius
	BallRadius = 25.0

	// BallMass is mass of a reference-radius combatant
	BallMass = 1.0

	// BallMaxSpeed is the per-combatant speed ceiling (units/tick)
	BallMaxSpeed = 12.0

	// BallFriction is the per-tick velocity multiplier
	BallFriction = 1.0

	// BallSpawnSpeed is the spread of the random initial velocity per axis
	BallSpawnSpeed = 14.0
)

// Restitution
const (
	// BallRestitution is ball-ball collision restitution
	BallRestitution = 1.0

	// WallRestitution is velocity retained after a wall bounce
	WallRestitution = 1.0
)

// Weapon wall pushback
const (
	// WeaponWallBounce enables pushing owners away from walls their weapon tip crosses
	WeaponWallBounce = true

	// WeaponWallBounceStrength is fixed pushback velocity
	WeaponWallBounceStrength = 0.6

	// WeaponWallDamageBounce scales pushback by weapon damage instead of the fixed strength
	WeaponWallDamageBounce = false
)

// Gravity
const (
	// GravityMode enables constant acceleration on combatants
	GravityMode = false

	// Gravity is acceleration magnitude per tick
	Gravity = 0.15

	// GravityAngle is acceleration direction, π/2 points down
	GravityAngle = 3.141592653589793 / 2
)
