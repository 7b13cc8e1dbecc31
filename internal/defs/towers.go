// internal/defs/towers.go
package defs

import (
	"fmt"
	"time"

	"go-garden-defense/internal/utils"
)

// TowerKind is the closed set of buildable towers.
type TowerKind int

const (
	TowerTomato TowerKind = iota
	TowerPotato
	TowerCabbage
)

var towerKindNames = [...]string{"Tomato", "Potato", "Cabbage"}

func (k TowerKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("TowerKind(%d)", int(k))
	}
	return towerKindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k TowerKind) Valid() bool {
	return k >= TowerTomato && k <= TowerCabbage
}

// ParseTowerKind is the inverse of String.
func ParseTowerKind(name string) (TowerKind, error) {
	for i, n := range towerKindNames {
		if n == name {
			return TowerKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tower kind %q", name)
}

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	Kind            TowerKind
	Name            string
	Cooldown        time.Duration // Time between shots
	BuiltModel      AssetID
	ProjectileModel AssetID
	Icon            AssetID // Build-menu button image
	ProjectileSpeed float64
	FireOffset      utils.Vec3 // Muzzle position relative to the tower origin
}

// towerFireOffset is shared by every kind for now.
var towerFireOffset = utils.NewVec3(0, 0.6, 0)

// towerCatalog is indexed by TowerKind and listed in build-menu order.
var towerCatalog = [...]TowerDefinition{
	TowerTomato: {
		Kind:            TowerTomato,
		Name:            "Tomato",
		Cooldown:        1 * time.Second,
		BuiltModel:      "TomatoTower.glb#Scene0",
		ProjectileModel: "Tomato.glb#Scene0",
		Icon:            "tomato_tower.png",
		ProjectileSpeed: 3.5,
		FireOffset:      towerFireOffset,
	},
	TowerPotato: {
		Kind:            TowerPotato,
		Name:            "Potato",
		Cooldown:        2 * time.Second,
		BuiltModel:      "PotatoTower.glb#Scene0",
		ProjectileModel: "Potato.glb#Scene0",
		Icon:            "potato_tower.png",
		ProjectileSpeed: 6.5,
		FireOffset:      towerFireOffset,
	},
	TowerCabbage: {
		Kind:            TowerCabbage,
		Name:            "Cabbage",
		Cooldown:        3 * time.Second,
		BuiltModel:      "CabbageTower.glb#Scene0",
		ProjectileModel: "Cabbage.glb#Scene0",
		Icon:            "cabbage_tower.png",
		ProjectileSpeed: 2.5,
		FireOffset:      towerFireOffset,
	},
}

// Lookup returns the catalog entry for kind. Every declared kind has one;
// an out-of-range value is a programming error.
func Lookup(kind TowerKind) TowerDefinition {
	if !kind.Valid() {
		panic(fmt.Sprintf("defs: no catalog entry for %v", kind))
	}
	return towerCatalog[kind]
}

// Kinds lists every tower kind in catalog order.
func Kinds() []TowerKind {
	kinds := make([]TowerKind, len(towerCatalog))
	for i := range towerCatalog {
		kinds[i] = TowerKind(i)
	}
	return kinds
}
