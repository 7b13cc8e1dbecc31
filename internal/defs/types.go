// internal/defs/types.go
package defs

import "strings"

// AssetID is an opaque handle to a model or texture. The part before '#'
// names the file under the assets directory; the optional label after it
// selects a sub-asset and is ignored by loaders that do not support labels.
type AssetID string

// File returns the file part of the handle.
func (a AssetID) File() string {
	file, _, _ := strings.Cut(string(a), "#")
	return file
}

// Scene assets that do not belong to a tower kind.
const (
	AssetTowerBase AssetID = "TowerBase.glb#Scene0"
	AssetTarget    AssetID = "Target.glb#Scene0"
)

// Models lists every model the scene can show, without duplicates.
func Models() []AssetID {
	models := []AssetID{AssetTowerBase, AssetTarget}
	for _, k := range Kinds() {
		def := Lookup(k)
		models = append(models, def.BuiltModel, def.ProjectileModel)
	}
	return models
}

// Icons lists the build-menu images in catalog order.
func Icons() []AssetID {
	icons := make([]AssetID, 0, len(towerCatalog))
	for _, k := range Kinds() {
		icons = append(icons, Lookup(k).Icon)
	}
	return icons
}
