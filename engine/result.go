package engine

import (
	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/status"
)

// Outcome is the decided end state of a match
type Outcome int

const (
	Draw Outcome = iota
	LeftWins
	RightWins
)

func (o Outcome) String() string {
	switch o {
	case LeftWins:
		return "left"
	case RightWins:
		return "right"
	default:
		return "draw"
	}
}

// Winner returns the winning side, ok is false on a draw
func (o Outcome) Winner() (combat.Side, bool) {
	switch o {
	case LeftWins:
		return Left, true
	case RightWins:
		return Right, true
	}
	return 0, false
}

// SideName returns "left" or "right"
func SideName(s combat.Side) string {
	if s == Left {
		return "left"
	}
	return "right"
}

// SideSummary aggregates one side at the end of a match
type SideSummary struct {
	Variants    []string
	Alive       int
	HP          float64
	Hits        int
	DamageDealt float64
	Supers      int
}

// Result is the final record of a match
type Result struct {
	Match   string
	Outcome Outcome
	Frames  int
	Parries int
	Sides   [2]SideSummary
}

// summarize collects survivors and weapon statistics of the original and live balls
func (m *Match) summarize(o Outcome) *Result {
	w := m.World
	r := &Result{
		Match:   m.ID.String(),
		Outcome: o,
		Frames:  w.Frame,
		Parries: m.parries,
	}
	seen := make(map[combat.EntityID]bool)
	add := func(b *combat.Ball) {
		if b == nil || seen[b.ID] {
			return
		}
		seen[b.ID] = true
		s := &r.Sides[b.Side]
		s.Variants = append(s.Variants, b.Variant)
		if b.Alive {
			s.Alive++
			s.HP += b.HP
		}
		if b.Weapon != nil {
			st := b.Weapon.State()
			s.Hits += st.HitCount
			s.DamageDealt += st.DamageDealt
			if st.SuperActive {
				s.Supers++
			}
		}
	}
	add(m.originals[Left])
	add(m.originals[Right])
	for _, b := range w.Balls {
		add(b)
	}
	return r
}

// Record adds the result to a shared tally, safe across concurrent matches
func (r *Result) Record(t *status.Tally) {
	t.Inc("matches", 1)
	t.Inc("outcome."+r.Outcome.String(), 1)
	t.Inc("frames", int64(r.Frames))
	t.Peak("frames.max", float64(r.Frames))
	t.Inc("parries", int64(r.Parries))
	for side, s := range r.Sides {
		prefix := SideName(combat.Side(side))
		t.AddSum("damage."+prefix, s.DamageDealt)
		t.Peak("damage.max", s.DamageDealt)
		t.Inc("supers."+prefix, int64(s.Supers))
	}
	if side, ok := r.Outcome.Winner(); ok && len(r.Sides[side].Variants) > 0 {
		t.Inc("wins."+r.Sides[side].Variants[0], 1)
	}
}
