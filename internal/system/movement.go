// internal/system/movement.go
package system

import (
	"go-garden-defense/internal/entity"
)

// TargetMovementSystem двигает мишени вдоль оси +X с их собственной скоростью.
type TargetMovementSystem struct {
	ecs *entity.ECS
}

func NewTargetMovementSystem(ecs *entity.ECS) *TargetMovementSystem {
	return &TargetMovementSystem{ecs: ecs}
}

func (s *TargetMovementSystem) Update(deltaTime float64) {
	for id, target := range s.ecs.Targets {
		transform, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		transform.Position.X += target.Speed * deltaTime
	}
}
