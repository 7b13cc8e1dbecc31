// internal/system/utils.go
package system

import (
	"go-garden-defense/internal/component"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/event"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/utils"
)

// SpawnTower ставит в очередь башню заданного типа: корень с компонентом
// Tower и дочернюю модель, опущенную на ModelOffsetY.
func SpawnTower(cmds *entity.Commands, kind defs.TowerKind, position utils.Vec3) types.EntityID {
	def := defs.Lookup(kind)
	root := cmds.Spawn(types.NoEntity, entity.Bundle{
		Name:      def.Name + config.TowerNameSuffix,
		Transform: component.Transform{Position: position},
		Tower:     component.NewTower(kind),
	})
	cmds.Spawn(root, entity.Bundle{
		Name:      def.Name + config.ModelNameSuffix,
		Transform: component.Transform{Position: utils.NewVec3(0, config.ModelOffsetY, 0)},
		Model:     &component.Model{Asset: def.BuiltModel},
	})
	return root
}

// SpawnPad ставит в очередь пустую площадку под башню.
func SpawnPad(cmds *entity.Commands, position utils.Vec3, pickRadius float64) types.EntityID {
	pad := cmds.Spawn(types.NoEntity, entity.Bundle{
		Name:        config.PadName,
		Transform:   component.Transform{Position: position},
		Pad:         &component.Pad{PickRadius: pickRadius},
		Selection:   &component.Selection{},
		Interaction: &component.Interaction{},
	})
	cmds.Spawn(pad, entity.Bundle{
		Transform: component.Transform{Position: utils.NewVec3(0, config.ModelOffsetY, 0)},
		Model:     &component.Model{Asset: defs.AssetTowerBase},
	})
	return pad
}

// SpawnTarget ставит в очередь мишень.
func SpawnTarget(cmds *entity.Commands, position utils.Vec3, speed float64, health int) types.EntityID {
	return cmds.Spawn(types.NoEntity, entity.Bundle{
		Name:      config.TargetName,
		Transform: component.Transform{Position: position},
		Model:     &component.Model{Asset: defs.AssetTarget},
		Target:    &component.Target{Speed: speed},
		Health:    &component.Health{Value: health},
	})
}

// CountSelected возвращает число выбранных сущностей. Сущности, удаление
// которых уже поставлено в очередь, не считаются.
func CountSelected(ecs *entity.ECS) int {
	cmds := ecs.Commands()
	n := 0
	for id, sel := range ecs.Selections {
		if sel.Selected && !cmds.IsDespawnQueued(id) {
			n++
		}
	}
	return n
}

// NearestTarget ищет ближайшую к точке мишень. При равных расстояниях
// побеждает мишень с меньшим ID.
func NearestTarget(ecs *entity.ECS, from utils.Vec3) (types.EntityID, utils.Vec3, bool) {
	best := types.NoEntity
	var bestPos utils.Vec3
	bestDist := 0.0
	for _, id := range entity.SortedIDs(ecs.Targets) {
		pos := ecs.WorldPosition(id)
		dist := pos.Distance(from)
		if best == types.NoEntity || dist < bestDist {
			best, bestPos, bestDist = id, pos, dist
		}
	}
	return best, bestPos, best != types.NoEntity
}

func dispatch(d *event.Dispatcher, t event.EventType, data interface{}) {
	if d == nil {
		return
	}
	d.Dispatch(event.Event{Type: t, Data: data})
}
