package parameter

// Poison
const (
	// PoisonTickInterval is ticks between poison damage applications
	PoisonTickInterval = 30

	// PoisonDamagePerStack is damage per stack on each poison tick
	PoisonDamagePerStack = 0.5
)

// Forge marks
const (
	// ForgeMarkMax caps forge marks on one combatant
	ForgeMarkMax = 10

	// ForgeMarkAmplify is the incoming damage increase per mark
	ForgeMarkAmplify = 0.3
)

// Venom
const (
	// VenomSlowPerStack is the speed reduction per venom stack
	VenomSlowPerStack = 0.04

	// VenomMinMultiplier floors the venom speed multiplier
	VenomMinMultiplier = 0.2
)
