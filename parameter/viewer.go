package parameter

// Terminal viewer particles
const (
	// ViewerMaxParticles caps live particles, older ones are dropped first
	ViewerMaxParticles = 400

	// ViewerParticleLife is frames a particle stays on screen
	ViewerParticleLife = 18

	// ViewerEmitSpeed is the maximum drift speed of emitted particles in arena units per frame
	ViewerEmitSpeed = 1.5

	// ViewerExplodeSpeed is the outward speed of burst particles
	ViewerExplodeSpeed = 4.0

	// ViewerParticleDrag multiplies particle velocity each frame
	ViewerParticleDrag = 0.9
)
