// internal/system/shooting.go
package system

import (
	"github.com/rs/zerolog"

	"go-garden-defense/internal/component"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/event"
)

// ShootingSystem отсчитывает перезарядку башен и выпускает снаряды
// в ближайшую мишень.
type ShootingSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewShootingSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *ShootingSystem {
	return &ShootingSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "shooting").Logger(),
	}
}

func (s *ShootingSystem) Update(deltaTime float64) {
	cmds := s.ecs.Commands()
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		// Если за тик прошло несколько периодов, стреляем всё равно один раз.
		if tower.Cooldown.Tick(deltaTime) == 0 {
			continue
		}

		origin := s.ecs.WorldPosition(id).Add(tower.FireOffset)
		targetID, targetPos, ok := NearestTarget(s.ecs, origin)
		if !ok {
			s.logger.Debug().Uint64("tower", uint64(id)).Stringer("kind", tower.Kind).Msg("no targets, dry fire")
			dispatch(s.eventDispatcher, event.TowerDryFired, event.DryFireData{Tower: id, Kind: tower.Kind})
			continue
		}

		def := defs.Lookup(tower.Kind)
		direction := targetPos.Sub(origin)
		bullet := cmds.Spawn(id, entity.Bundle{
			Name:       config.BulletName,
			Transform:  component.Transform{Position: tower.FireOffset},
			Model:      &component.Model{Asset: def.ProjectileModel},
			Projectile: &component.Projectile{Direction: direction, Speed: def.ProjectileSpeed},
			Lifetime:   component.NewLifetime(config.BulletLifetime),
		})

		s.logger.Debug().
			Uint64("tower", uint64(id)).
			Uint64("target", uint64(targetID)).
			Stringer("kind", tower.Kind).
			Msg("fired")
		dispatch(s.eventDispatcher, event.ProjectileFired, event.ShotData{
			Tower:      id,
			Projectile: bullet,
			Target:     targetID,
			Kind:       tower.Kind,
			Origin:     origin,
			Direction:  direction,
			Speed:      def.ProjectileSpeed,
		})
	}
}
