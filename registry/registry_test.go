package registry

import (
	"errors"
	"testing"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/vmath"
)

type nopWeapon struct{ st combat.WeaponState }

func (n *nopWeapon) State() *combat.WeaponState             { return &n.st }
func (n *nopWeapon) Update(*combat.World)                   {}
func (n *nopWeapon) CanHit() bool                           { return false }
func (n *nopWeapon) OnHit(*combat.World, *combat.Ball)      {}
func (n *nopWeapon) ApplyScaling()                          {}
func (n *nopWeapon) ActivateSuper(*combat.World)            {}
func (n *nopWeapon) TipPosition() vmath.Vec2                { return n.st.Owner.Pos }

func nopFactory(tag string) Factory {
	return func(owner *combat.Ball, _ *combat.World) combat.Weapon {
		return &nopWeapon{st: combat.WeaponState{Owner: owner, Variant: tag}}
	}
}

// TestRegisterDuplicateRejected verifies re-registration fails and keeps the first factory
func TestRegisterDuplicateRejected(t *testing.T) {
	r := New()
	if err := r.Register("sword", "classic", nopFactory("first")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := r.Register("sword", "other", nopFactory("second"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Expected ErrDuplicate, got %v", err)
	}

	w := combat.NewWorld(nil, nil)
	b := combat.NewBall(w, vmath.V(100, 100), 0, "sword", combat.BallOptions{})
	wp, err := r.Create("sword", b, w)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if wp.State().Variant != "first" {
		t.Errorf("Expected first factory kept, got %s", wp.State().Variant)
	}
	if b.Weapon != wp {
		t.Error("Create did not attach weapon to owner")
	}
	if e, _ := r.Get("sword"); e.Group != "classic" {
		t.Errorf("Expected group classic, got %q", e.Group)
	}
}

// TestCreateUnknown verifies lookup failure is an error, not a panic
func TestCreateUnknown(t *testing.T) {
	r := New()
	w := combat.NewWorld(nil, nil)
	b := combat.NewBall(w, vmath.V(100, 100), 0, "x", combat.BallOptions{})
	if _, err := r.Create("nope", b, w); !errors.Is(err, ErrUnknown) {
		t.Errorf("Expected ErrUnknown, got %v", err)
	}
}

// TestFreeze verifies registration is closed after Freeze
func TestFreeze(t *testing.T) {
	r := New()
	r.Freeze()
	if err := r.Register("axe", "", nopFactory("axe")); !errors.Is(err, ErrFrozen) {
		t.Errorf("Expected ErrFrozen, got %v", err)
	}
}

// TestNamesAndGroups verifies deterministic listing and group filtering
func TestNamesAndGroups(t *testing.T) {
	r := New()
	for _, e := range []struct{ name, group string }{
		{"zeus", "pantheon"}, {"bow", "classic"}, {"axe", ""}, {"apollo", "pantheon"},
	} {
		if err := r.Register(e.name, e.group, nopFactory(e.name)); err != nil {
			t.Fatal(err)
		}
	}

	all := r.Names("")
	want := []string{"apollo", "axe", "bow", "zeus"}
	if len(all) != len(want) {
		t.Fatalf("Names = %v", all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("Names[%d] = %s, want %s", i, all[i], want[i])
		}
	}
	if p := r.Names("pantheon"); len(p) != 2 || p[0] != "apollo" || p[1] != "zeus" {
		t.Errorf("pantheon names = %v", p)
	}
	if g := r.Groups(); len(g) != 2 || g[0] != "classic" || g[1] != "pantheon" {
		t.Errorf("Groups = %v", g)
	}
	if r.Len() != 4 {
		t.Errorf("Len = %d", r.Len())
	}
}
