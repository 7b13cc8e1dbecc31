// internal/system/projectile.go
package system

import (
	"go-garden-defense/internal/entity"
)

// ProjectileSystem двигает снаряды. Снаряды — дочерние сущности башни,
// поэтому движение идёт в локальных координатах. Попаданий нет.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		transform, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		step := proj.Direction.Normalize().Scale(proj.Speed * deltaTime)
		transform.Position = transform.Position.Add(step)
	}
}
