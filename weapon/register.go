package weapon

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ballarena/registry"
)

// Variant groups used by selection menus and batch runs
const (
	GroupClassic   = "classic"
	GroupElemental = "elemental"
	GroupPantheon  = "pantheon"
	GroupEgyptian  = "egyptian"
)

var catalog = []registry.Entry{
	{Name: "sword", Group: GroupClassic, Factory: newSword},
	{Name: "hammer", Group: GroupClassic, Factory: newHammer},
	{Name: "ghost", Group: GroupClassic, Factory: newGhost},
	{Name: "sawblade", Group: GroupClassic, Factory: newSawblade},
	{Name: "bow", Group: GroupClassic, Factory: newBow},
	{Name: "shuriken", Group: GroupClassic, Factory: newShuriken},

	{Name: "poison", Group: GroupElemental, Factory: newPoison},
	{Name: "ice", Group: GroupElemental, Factory: newIce},
	{Name: "nature", Group: GroupElemental, Factory: newNature},
	{Name: "spark", Group: GroupElemental, Factory: newSpark},
	{Name: "wind", Group: GroupElemental, Factory: newWind},
	{Name: "stone", Group: GroupElemental, Factory: newStone},
	{Name: "shadow", Group: GroupElemental, Factory: newShadow},

	{Name: "poseidon", Group: GroupPantheon, Factory: newPoseidon},
	{Name: "apollo", Group: GroupPantheon, Factory: newApollo},
	{Name: "zeus", Group: GroupPantheon, Factory: newZeus},
	{Name: "hades", Group: GroupPantheon, Factory: newHades},
	{Name: "hephaestus", Group: GroupPantheon, Factory: newHephaestus},

	{Name: "anubis", Group: GroupEgyptian, Factory: newAnubis},
	{Name: "ra", Group: GroupEgyptian, Factory: newRa},
	{Name: "sekhmet", Group: GroupEgyptian, Factory: newSekhmet},

	{Name: "dagger", Factory: newDagger},
	{Name: "spear", Factory: newSpear},
	{Name: "axe", Factory: newAxe},
	{Name: "scythe", Factory: newScythe},
	{Name: "storm", Factory: newStorm},
	{Name: "metal", Factory: newMetal},
	{Name: "unarmed", Factory: newUnarmed},
	{Name: "lance", Factory: newLance},
	{Name: "crossbow", Factory: newCrossbow},
	{Name: "duplicator", Factory: newDuplicator},
	{Name: "magma", Factory: newMagma},
}

var (
	defaultOnce     sync.Once
	defaultRegistry *registry.Registry
)

// Registry returns the process-wide frozen registry holding every variant
func Registry() *registry.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry builds and freezes a fresh registry holding every variant
func NewRegistry() *registry.Registry {
	r := registry.New()
	if err := RegisterAll(r); err != nil {
		// catalog names are unique constants, a failure here is a programming error
		panic(err)
	}
	r.Freeze()
	logrus.WithField("variants", r.Len()).Debug("weapon registry frozen")
	return r
}

// RegisterAll adds the built-in catalog to r
func RegisterAll(r *registry.Registry) error {
	for _, e := range catalog {
		if err := r.Register(e.Name, e.Group, e.Factory); err != nil {
			return err
		}
	}
	return nil
}
