// internal/system/lifetime.go
package system

import (
	"go-garden-defense/internal/entity"
)

// LifetimeSystem удаляет сущности, у которых истёк срок жизни.
type LifetimeSystem struct {
	ecs *entity.ECS
}

func NewLifetimeSystem(ecs *entity.ECS) *LifetimeSystem {
	return &LifetimeSystem{ecs: ecs}
}

func (s *LifetimeSystem) Update(deltaTime float64) {
	cmds := s.ecs.Commands()
	for _, id := range entity.SortedIDs(s.ecs.Lifetimes) {
		if s.ecs.Lifetimes[id].Tick(deltaTime) && !cmds.IsDespawnQueued(id) {
			cmds.DespawnRecursive(id)
		}
	}
}
