// Package engine runs ball-combat matches on a fixed tick
package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/config"
	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/registry"
	"github.com/lixenwraith/ballarena/vmath"
)

// Sides of the arena
const (
	Left  combat.Side = 0
	Right combat.Side = 1
)

// ErrEmptySide is returned when a side has no combatants
var ErrEmptySide = errors.New("side has no combatants")

// Match owns one World and drives it to a result
type Match struct {
	ID    uuid.UUID
	World *combat.World

	log       *logrus.Entry
	originals [2]*combat.Ball
	result    *Result
	parries   int
}

// Option configures a Match at construction
type Option func(*Match)

// WithLogger routes match and world logging through l
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Match) {
		m.log = l.WithField("match", m.ID.String())
	}
}

// WithVisual attaches a particle sink
func WithVisual(v combat.VisualSink) Option {
	return func(m *Match) { m.World.Visual = v }
}

// WithAudio attaches a sound sink
func WithAudio(a combat.AudioSink) Option {
	return func(m *Match) { m.World.Audio = a }
}

// NewMatch builds a world with left and right variant lists spawned at their starting columns
func NewMatch(cfg *config.Config, reg *registry.Registry, left, right []string, rng combat.Rand, opts ...Option) (*Match, error) {
	if len(left) == 0 {
		return nil, fmt.Errorf("left: %w", ErrEmptySide)
	}
	if len(right) == 0 {
		return nil, fmt.Errorf("right: %w", ErrEmptySide)
	}

	m := &Match{
		ID:    uuid.New(),
		World: combat.NewWorld(cfg, rng),
	}
	m.log = logrus.StandardLogger().WithField("match", m.ID.String())
	for _, opt := range opts {
		opt(m)
	}
	m.World.Log = m.log

	if err := m.spawnSide(reg, Left, left, parameter.MatchSpawnLeft); err != nil {
		return nil, err
	}
	if err := m.spawnSide(reg, Right, right, parameter.MatchSpawnRight); err != nil {
		return nil, err
	}

	m.log.WithFields(logrus.Fields{
		"left":  left,
		"right": right,
	}).Info("match created")
	return m, nil
}

// spawnSide places variants in a column at fraction of arena width, evenly spaced vertically
func (m *Match) spawnSide(reg *registry.Registry, side combat.Side, variants []string, fraction float64) error {
	w := m.World
	a := w.Arena()
	x := a.X + a.Width*fraction
	for i, name := range variants {
		y := a.Y + a.Height*float64(i+1)/float64(len(variants)+1)
		b := combat.NewBall(w, vmath.V(x, y), side, name, combat.BallOptions{})
		// Only the first ball of a side anchors its lineage
		b.Original = m.originals[side] == nil
		b.Vel = vmath.V(
			(w.Random()-0.5)*parameter.BallSpawnSpeed,
			(w.Random()-0.5)*parameter.BallSpawnSpeed,
		)
		if _, err := reg.Create(name, b, w); err != nil {
			return fmt.Errorf("spawn side %d: %w", side, err)
		}
		w.AddBall(b)
		if m.originals[side] == nil {
			m.originals[side] = b
		}
	}
	return nil
}

// Logger returns the match-scoped logger
func (m *Match) Logger() *logrus.Entry { return m.log }

// Original returns the first ball spawned on side
func (m *Match) Original(side combat.Side) *combat.Ball { return m.originals[side] }

// Parries returns the number of weapon clashes so far
func (m *Match) Parries() int { return m.parries }

// Finished reports whether a result has been decided
func (m *Match) Finished() bool { return m.result != nil }

// Result returns the decided result, nil while the match is running
func (m *Match) Result() *Result { return m.result }
