// component/render.go
package component

import "go-garden-defense/internal/defs"

// Model tells the renderer which asset to draw at the entity's world position.
type Model struct {
	Asset defs.AssetID
}
