// internal/system/build_menu.go
package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-garden-defense/internal/component"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/event"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/utils"
)

// BuildMenuSystem держит меню постройки открытым, пока что-то выбрано.
// Меню существует не более чем в одном экземпляре.
type BuildMenuSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
	menu            types.EntityID // NoEntity, если меню закрыто
}

func NewBuildMenuSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *BuildMenuSystem {
	return &BuildMenuSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "build_menu").Logger(),
	}
}

// Menu возвращает ID текущего меню или NoEntity.
func (s *BuildMenuSystem) Menu() types.EntityID {
	return s.menu
}

func (s *BuildMenuSystem) Update(deltaTime float64) {
	s.sync()
	selected := CountSelected(s.ecs)
	switch {
	case s.menu == types.NoEntity && selected > 0:
		s.open(selected)
	case s.menu != types.NoEntity && selected == 0:
		s.close()
	}
}

// sync сверяет собственное состояние с миром. Два меню означают ошибку
// в учёте этой системы, и продолжать нельзя.
func (s *BuildMenuSystem) sync() {
	if n := len(s.ecs.BuildMenus); n > 1 {
		panic(fmt.Sprintf("build menu: %d menus exist, at most one allowed", n))
	}
	cmds := s.ecs.Commands()
	if s.menu != types.NoEntity && !s.ecs.Alive(s.menu) && !cmds.IsSpawnQueued(s.menu) {
		// Меню удалили снаружи (например, при перезагрузке сцены).
		s.menu = types.NoEntity
	}
	if s.menu == types.NoEntity {
		for id := range s.ecs.BuildMenus {
			if !cmds.IsDespawnQueued(id) {
				s.menu = id
			}
		}
	}
}

func (s *BuildMenuSystem) open(selected int) {
	cmds := s.ecs.Commands()
	menu := cmds.Spawn(types.NoEntity, entity.Bundle{
		Name:      config.BuildMenuName,
		BuildMenu: &component.BuildMenu{},
	})
	for i, kind := range defs.Kinds() {
		def := defs.Lookup(kind)
		cmds.Spawn(menu, entity.Bundle{
			Name: config.BuildButtonName + "_" + def.Name,
			// X — номер слота в строке кнопок
			Transform:   component.Transform{Position: utils.NewVec3(float64(i), 0, 0)},
			BuildButton: &component.BuildButton{Kind: kind, Icon: def.Icon},
			Interaction: &component.Interaction{},
		})
	}
	s.menu = menu
	s.logger.Info().Uint64("menu", uint64(menu)).Int("selected", selected).Msg("build menu opened")
	dispatch(s.eventDispatcher, event.BuildMenuOpened, event.MenuData{Menu: menu, Selected: selected})
}

func (s *BuildMenuSystem) close() {
	menu := s.menu
	s.ecs.Commands().DespawnRecursive(menu)
	s.menu = types.NoEntity
	s.logger.Info().Uint64("menu", uint64(menu)).Msg("build menu closed")
	dispatch(s.eventDispatcher, event.BuildMenuClosed, event.MenuData{Menu: menu})
}
