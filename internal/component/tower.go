package component

import (
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/utils"
)

// Tower is the runtime state of a built tower.
type Tower struct {
	Kind       defs.TowerKind
	Cooldown   *RepeatingTimer
	FireOffset utils.Vec3 // Copied from the catalog at build time
}

// NewTower initialises a tower of the given kind from the catalog.
func NewTower(kind defs.TowerKind) *Tower {
	def := defs.Lookup(kind)
	return &Tower{
		Kind:       kind,
		Cooldown:   NewRepeatingTimer(def.Cooldown),
		FireOffset: def.FireOffset,
	}
}
