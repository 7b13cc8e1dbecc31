// internal/system/visual_effect.go
package system

import (
	"go-garden-defense/internal/component"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/event"
	"go-garden-defense/internal/types"
)

// VisualEffectSystem управляет вспышками башен после выстрела.
// Вспышки ставятся по событиям и гаснут по игровому времени.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает систему и подписывает её на события стрельбы.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	if eventDispatcher != nil {
		eventDispatcher.SubscribeAll(s, event.ProjectileFired, event.TowerDryFired)
	}
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ShotData:
		s.flash(data.Tower, false)
	case event.DryFireData:
		s.flash(data.Tower, true)
	}
}

func (s *VisualEffectSystem) flash(tower types.EntityID, dry bool) {
	if !s.ecs.Alive(tower) {
		return
	}
	s.ecs.FireFlashes[tower] = &component.FireFlash{
		Timer:    config.FireFlashDuration,
		Duration: config.FireFlashDuration,
		Dry:      dry,
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.FireFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.FireFlashes, id)
		}
	}
}
