package system

import (
	"github.com/rs/zerolog"

	"go-garden-defense/internal/component"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/event"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/utils"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWorld() (*entity.ECS, *event.Dispatcher, *eventLog) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log,
		event.TowerBuilt, event.PadConsumed, event.ProjectileFired,
		event.TowerDryFired, event.BuildMenuOpened, event.BuildMenuClosed)
	return ecs, d, log
}

func nop() zerolog.Logger {
	return zerolog.Nop()
}

func addTower(ecs *entity.ECS, kind defs.TowerKind, pos utils.Vec3) types.EntityID {
	id := SpawnTower(ecs.Commands(), kind, pos)
	ecs.Flush()
	return id
}

func addTarget(ecs *entity.ECS, pos utils.Vec3) types.EntityID {
	id := SpawnTarget(ecs.Commands(), pos, 0, 1)
	ecs.Flush()
	return id
}

func addPad(ecs *entity.ECS, pos utils.Vec3, selected bool) types.EntityID {
	id := SpawnPad(ecs.Commands(), pos, 0.75)
	ecs.Flush()
	ecs.Selections[id].Selected = selected
	return id
}

func projectiles(ecs *entity.ECS) []*component.Projectile {
	var out []*component.Projectile
	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		out = append(out, ecs.Projectiles[id])
	}
	return out
}
