package parameter

// Arena geometry
const (
	ArenaX      = 20.0
	ArenaY      = 20.0
	ArenaWidth  = 760.0
	ArenaHeight = 560.0
)

// Match
const (
	// MatchMaxFrames is the tick budget before a match is declared a draw (two minutes at 60 tps)
	MatchMaxFrames = 7200

	// MatchTickRate is simulation ticks per second when watched in real time
	MatchTickRate = 60

	// MatchSpawnLeft is the horizontal spawn fraction for side 0
	MatchSpawnLeft = 0.25

	// MatchSpawnRight is the horizontal spawn fraction for side 1
	MatchSpawnRight = 0.75
)
