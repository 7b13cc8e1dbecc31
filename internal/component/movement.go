// component/movement.go
package component

import "go-garden-defense/internal/utils"

// Transform is an entity's position relative to its parent (or the world,
// for root entities).
type Transform struct {
	Position utils.Vec3
}
