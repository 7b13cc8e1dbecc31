// internal/system/placement.go
package system

import (
	"github.com/rs/zerolog"

	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/event"
)

// PlacementSystem превращает выбранные площадки в башни по нажатию
// кнопки постройки. Одно нажатие застраивает все выбранные площадки.
type PlacementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewPlacementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *PlacementSystem {
	return &PlacementSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "placement").Logger(),
	}
}

func (s *PlacementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.BuildButtons) {
		interaction, ok := s.ecs.Interactions[id]
		if !ok || !interaction.Clicked {
			continue
		}
		s.build(s.ecs.BuildButtons[id].Kind)
	}
}

// build возвращает число застроенных площадок.
func (s *PlacementSystem) build(kind defs.TowerKind) int {
	cmds := s.ecs.Commands()
	built := 0
	for _, padID := range entity.SortedIDs(s.ecs.Pads) {
		sel, ok := s.ecs.Selections[padID]
		if !ok || !sel.Selected {
			continue
		}
		// Площадка уже занята другим нажатием в этом тике.
		if cmds.IsDespawnQueued(padID) {
			continue
		}

		position := s.ecs.WorldPosition(padID)
		cmds.DespawnRecursive(padID)
		towerID := SpawnTower(cmds, kind, position)
		built++

		s.logger.Info().
			Uint64("pad", uint64(padID)).
			Uint64("tower", uint64(towerID)).
			Stringer("kind", kind).
			Msg("tower built")
		dispatch(s.eventDispatcher, event.PadConsumed, event.TowerBuiltData{Tower: towerID, Pad: padID, Kind: kind, Position: position})
		dispatch(s.eventDispatcher, event.TowerBuilt, event.TowerBuiltData{Tower: towerID, Pad: padID, Kind: kind, Position: position})
	}
	if built == 0 {
		s.logger.Debug().Stringer("kind", kind).Msg("build click with no selected pads")
	}
	return built
}
