// internal/event/types.go
package event

import (
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/utils"
)

const (
	TowerBuilt      EventType = "TowerBuilt"      // Площадка превращена в башню
	PadConsumed     EventType = "PadConsumed"     // Площадка удалена при постройке
	ProjectileFired EventType = "ProjectileFired" // Башня выстрелила
	TowerDryFired   EventType = "TowerDryFired"   // Таймер сработал, но целей нет
	BuildMenuOpened EventType = "BuildMenuOpened"
	BuildMenuClosed EventType = "BuildMenuClosed"
)

// TowerBuiltData — данные события TowerBuilt
type TowerBuiltData struct {
	Tower    types.EntityID
	Pad      types.EntityID
	Kind     defs.TowerKind
	Position utils.Vec3
}

// ShotData — данные события ProjectileFired
type ShotData struct {
	Tower      types.EntityID
	Projectile types.EntityID
	Target     types.EntityID
	Kind       defs.TowerKind
	Origin     utils.Vec3
	Direction  utils.Vec3
	Speed      float64
}

// DryFireData — данные события TowerDryFired
type DryFireData struct {
	Tower types.EntityID
	Kind  defs.TowerKind
}

// MenuData — данные событий открытия и закрытия меню
type MenuData struct {
	Menu     types.EntityID
	Selected int // Сколько сущностей выбрано в момент события
}
