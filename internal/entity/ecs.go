// internal/entity/ecs.go
package entity

import (
	"cmp"
	"slices"

	"go-garden-defense/internal/component"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/utils"
)

// ECS — хранилище компонентов по ID сущности плюс иерархия родитель/дети.
type ECS struct {
	GameTime  float64
	GameState component.GameState
	SpeedStep int // Индекс в config.GameSpeeds
	NextID    types.EntityID

	alive    map[types.EntityID]struct{}
	parents  map[types.EntityID]types.EntityID
	children map[types.EntityID][]types.EntityID

	Names        map[types.EntityID]string
	Transforms   map[types.EntityID]*component.Transform
	Models       map[types.EntityID]*component.Model
	Towers       map[types.EntityID]*component.Tower
	Pads         map[types.EntityID]*component.Pad
	Selections   map[types.EntityID]*component.Selection
	Targets      map[types.EntityID]*component.Target
	Healths      map[types.EntityID]*component.Health
	Projectiles  map[types.EntityID]*component.Projectile
	Lifetimes    map[types.EntityID]*component.Lifetime
	BuildMenus   map[types.EntityID]*component.BuildMenu
	BuildButtons map[types.EntityID]*component.BuildButton
	Interactions map[types.EntityID]*component.Interaction
	FireFlashes  map[types.EntityID]*component.FireFlash // Только для отрисовки, без Bundle
	Camera       *component.Camera

	commands *Commands
}

func NewECS() *ECS {
	ecs := &ECS{
		NextID:       1,
		alive:        make(map[types.EntityID]struct{}),
		parents:      make(map[types.EntityID]types.EntityID),
		children:     make(map[types.EntityID][]types.EntityID),
		Names:        make(map[types.EntityID]string),
		Transforms:   make(map[types.EntityID]*component.Transform),
		Models:       make(map[types.EntityID]*component.Model),
		Towers:       make(map[types.EntityID]*component.Tower),
		Pads:         make(map[types.EntityID]*component.Pad),
		Selections:   make(map[types.EntityID]*component.Selection),
		Targets:      make(map[types.EntityID]*component.Target),
		Healths:      make(map[types.EntityID]*component.Health),
		Projectiles:  make(map[types.EntityID]*component.Projectile),
		Lifetimes:    make(map[types.EntityID]*component.Lifetime),
		BuildMenus:   make(map[types.EntityID]*component.BuildMenu),
		BuildButtons: make(map[types.EntityID]*component.BuildButton),
		Interactions: make(map[types.EntityID]*component.Interaction),
		FireFlashes:  make(map[types.EntityID]*component.FireFlash),
	}
	ecs.commands = newCommands(ecs)
	return ecs
}

// NewEntity резервирует ID. Сущность оживает только после вставки;
// системы должны идти через Commands.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Commands — отложенная очередь, применяется в Flush.
func (ecs *ECS) Commands() *Commands {
	return ecs.commands
}

// Flush применяет все spawn/despawn в порядке постановки.
func (ecs *ECS) Flush() {
	ecs.commands.apply()
}

// Alive reports whether id has been spawned and not yet despawned.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.alive[id]
	return ok
}

func (ecs *ECS) Count() int {
	return len(ecs.alive)
}

// Parent returns the parent of id, or NoEntity for roots.
func (ecs *ECS) Parent(id types.EntityID) types.EntityID {
	return ecs.parents[id]
}

// Children returns the direct children of id in spawn order.
func (ecs *ECS) Children(id types.EntityID) []types.EntityID {
	return slices.Clone(ecs.children[id])
}

// WorldPosition складывает локальные позиции вверх по цепочке родителей.
func (ecs *ECS) WorldPosition(id types.EntityID) utils.Vec3 {
	var pos utils.Vec3
	for id != types.NoEntity {
		if t, ok := ecs.Transforms[id]; ok {
			pos = pos.Add(t.Position)
		}
		id = ecs.parents[id]
	}
	return pos
}

func (ecs *ECS) insert(id, parent types.EntityID, b *Bundle) {
	ecs.alive[id] = struct{}{}
	if parent != types.NoEntity {
		ecs.parents[id] = parent
		ecs.children[parent] = append(ecs.children[parent], id)
	}
	if b.Name != "" {
		ecs.Names[id] = b.Name
	}
	transform := b.Transform
	ecs.Transforms[id] = &transform
	if b.Model != nil {
		ecs.Models[id] = b.Model
	}
	if b.Tower != nil {
		ecs.Towers[id] = b.Tower
	}
	if b.Pad != nil {
		ecs.Pads[id] = b.Pad
	}
	if b.Selection != nil {
		ecs.Selections[id] = b.Selection
	}
	if b.Target != nil {
		ecs.Targets[id] = b.Target
	}
	if b.Health != nil {
		ecs.Healths[id] = b.Health
	}
	if b.Projectile != nil {
		ecs.Projectiles[id] = b.Projectile
	}
	if b.Lifetime != nil {
		ecs.Lifetimes[id] = b.Lifetime
	}
	if b.BuildMenu != nil {
		ecs.BuildMenus[id] = b.BuildMenu
	}
	if b.BuildButton != nil {
		ecs.BuildButtons[id] = b.BuildButton
	}
	if b.Interaction != nil {
		ecs.Interactions[id] = b.Interaction
	}
}

// remove удаляет id, а при recursive и всё поддерево. Без recursive
// дети становятся корнями.
func (ecs *ECS) remove(id types.EntityID, recursive bool) {
	if !ecs.Alive(id) {
		return
	}
	kids := ecs.children[id]
	delete(ecs.children, id)
	for _, child := range kids {
		if recursive {
			ecs.remove(child, true)
		} else {
			delete(ecs.parents, child)
		}
	}
	if parent, ok := ecs.parents[id]; ok {
		ecs.children[parent] = slices.DeleteFunc(ecs.children[parent], func(c types.EntityID) bool { return c == id })
		delete(ecs.parents, id)
	}

	delete(ecs.alive, id)
	delete(ecs.Names, id)
	delete(ecs.Transforms, id)
	delete(ecs.Models, id)
	delete(ecs.Towers, id)
	delete(ecs.Pads, id)
	delete(ecs.Selections, id)
	delete(ecs.Targets, id)
	delete(ecs.Healths, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Lifetimes, id)
	delete(ecs.BuildMenus, id)
	delete(ecs.BuildButtons, id)
	delete(ecs.Interactions, id)
	delete(ecs.FireFlashes, id)
}

// SortedIDs returns the keys of a component map in ascending order, so that
// systems iterate deterministically.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, cmp.Compare[types.EntityID])
	return ids
}
