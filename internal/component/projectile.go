// internal/component/projectile.go
package component

import "go-garden-defense/internal/utils"

// Projectile is a fire-and-forget bullet. Direction is the raw aim vector
// captured when the shot was fired; it is not re-aimed afterwards.
type Projectile struct {
	Direction utils.Vec3
	Speed     float64
}
