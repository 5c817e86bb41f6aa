package combat

import (
	"math"
	"sort"

	"github.com/lixenwraith/ballarena/parameter"
)

// Hit is the damage event passed through a ball's modifier pipeline
type Hit struct {
	Target *Ball
	// Source is the attacking ball, nil for environmental or status damage
	Source *Ball
	Amount float64
	// Reflect is damage sent back to Source after the pipeline completes
	Reflect float64
}

// DamageModifier adjusts incoming damage before health is subtracted
// Modifiers run in ascending Priority, ties in insertion order
type DamageModifier interface {
	Name() string
	Priority() int
	Modify(h *Hit)
}

// Modifier priorities
const (
	PriorityAmplify  = 100
	PriorityMitigate = 200
)

// AddModifier attaches m, replacing any modifier with the same name
func (b *Ball) AddModifier(m DamageModifier) {
	b.RemoveModifier(m.Name())
	b.modifiers = append(b.modifiers, m)
	sort.SliceStable(b.modifiers, func(i, j int) bool {
		return b.modifiers[i].Priority() < b.modifiers[j].Priority()
	})
}

// RemoveModifier detaches the modifier with name, returns true if one was removed
func (b *Ball) RemoveModifier(name string) bool {
	for i, m := range b.modifiers {
		if m.Name() == name {
			b.modifiers = append(b.modifiers[:i], b.modifiers[i+1:]...)
			return true
		}
	}
	return false
}

// Modifiers returns the attached modifier names in pipeline order
func (b *Ball) Modifiers() []string {
	names := make([]string, len(b.modifiers))
	for i, m := range b.modifiers {
		names[i] = m.Name()
	}
	return names
}

// TakeDamage is the damage funnel for sourceless damage
func (b *Ball) TakeDamage(amount float64) float64 {
	return b.TakeDamageFrom(amount, nil)
}

// TakeDamageFrom runs amount through the modifier pipeline and subtracts it from health
// Returns health actually removed. Invulnerable or dead balls take nothing.
// Health is clamped to [0, MaxHP] and Alive flips false exactly once.
func (b *Ball) TakeDamageFrom(amount float64, source *Ball) float64 {
	if !b.Alive || b.Invulnerable || amount <= 0 || math.IsNaN(amount) {
		return 0
	}

	hit := Hit{Target: b, Source: source, Amount: amount}
	for _, m := range b.modifiers {
		m.Modify(&hit)
	}
	if hit.Amount < 0 {
		hit.Amount = 0
	}

	before := b.HP
	b.HP -= hit.Amount
	if b.HP > b.MaxHP {
		b.HP = b.MaxHP
	}
	if b.HP <= 0 {
		b.HP = 0
		b.Alive = false
	}
	applied := before - b.HP
	b.DamageTaken += applied

	// Reflected damage is sourceless so two reflectors cannot ping-pong
	if hit.Reflect > 0 && source != nil && source != b {
		source.TakeDamage(hit.Reflect)
	}
	return applied
}

// forgeModifier amplifies incoming damage by a fixed fraction per forge mark
type forgeModifier struct{}

func (forgeModifier) Name() string  { return "forge_marks" }
func (forgeModifier) Priority() int { return PriorityAmplify }
func (forgeModifier) Modify(h *Hit) {
	if h.Target.ForgeMarks > 0 {
		h.Amount *= 1 + float64(h.Target.ForgeMarks)*parameter.ForgeMarkAmplify
	}
}

// Mitigation reduces incoming damage by Reduction and reflects ReflectFraction of
// the pre-reduction amount back to the attacker
type Mitigation struct {
	Key             string
	Reduction       float64
	ReflectFraction float64
	// Covers limits the mitigation to some hits, nil covers all
	Covers func(h *Hit) bool
}

func (m *Mitigation) Name() string  { return m.Key }
func (m *Mitigation) Priority() int { return PriorityMitigate }
func (m *Mitigation) Modify(h *Hit) {
	if m.Covers != nil && !m.Covers(h) {
		return
	}
	if m.ReflectFraction > 0 && h.Source != nil {
		h.Reflect += h.Amount * m.ReflectFraction
	}
	h.Amount *= 1 - m.Reduction
}
