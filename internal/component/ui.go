package component

import "go-garden-defense/internal/defs"

// BuildMenu marks the root of the tower build menu. At most one exists.
type BuildMenu struct{}

// BuildButton is one entry of the build menu.
type BuildButton struct {
	Kind defs.TowerKind
	Icon defs.AssetID
}
