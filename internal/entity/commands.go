package entity

import (
	"go-garden-defense/internal/component"
	"go-garden-defense/internal/types"
)

// Bundle is the set of components an entity is spawned with. Nil pointers
// are left out. Every entity gets a Transform.
type Bundle struct {
	Name        string
	Transform   component.Transform
	Model       *component.Model
	Tower       *component.Tower
	Pad         *component.Pad
	Selection   *component.Selection
	Target      *component.Target
	Health      *component.Health
	Projectile  *component.Projectile
	Lifetime    *component.Lifetime
	BuildMenu   *component.BuildMenu
	BuildButton *component.BuildButton
	Interaction *component.Interaction
}

type commandKind int

const (
	cmdSpawn commandKind = iota
	cmdDespawn
	cmdDespawnRecursive
)

type command struct {
	kind   commandKind
	id     types.EntityID
	parent types.EntityID
	bundle Bundle
}

// Commands queues structural changes to the world. Nothing is applied until
// ECS.Flush, so systems can iterate component maps while issuing commands.
type Commands struct {
	ecs     *ECS
	queue   []command
	doomed  map[types.EntityID]struct{}
	pending map[types.EntityID]types.EntityID // reserved id -> parent
}

func newCommands(ecs *ECS) *Commands {
	return &Commands{
		ecs:     ecs,
		doomed:  make(map[types.EntityID]struct{}),
		pending: make(map[types.EntityID]types.EntityID),
	}
}

// Spawn reserves an ID and queues the entity for creation. A parent of
// NoEntity spawns a root. The parent may itself be a pending spawn queued
// earlier in the same tick.
func (c *Commands) Spawn(parent types.EntityID, b Bundle) types.EntityID {
	id := c.ecs.NewEntity()
	c.pending[id] = parent
	c.queue = append(c.queue, command{kind: cmdSpawn, id: id, parent: parent, bundle: b})
	return id
}

// Despawn queues removal of id alone. Its children are kept as roots.
func (c *Commands) Despawn(id types.EntityID) {
	c.doomed[id] = struct{}{}
	c.queue = append(c.queue, command{kind: cmdDespawn, id: id})
}

// DespawnRecursive queues removal of id and all of its descendants.
func (c *Commands) DespawnRecursive(id types.EntityID) {
	c.doomed[id] = struct{}{}
	c.queue = append(c.queue, command{kind: cmdDespawnRecursive, id: id})
}

// IsDespawnQueued reports whether a despawn of id is waiting for the next flush.
func (c *Commands) IsDespawnQueued(id types.EntityID) bool {
	_, ok := c.doomed[id]
	return ok
}

// IsSpawnQueued reports whether id was reserved by Spawn and not flushed yet.
func (c *Commands) IsSpawnQueued(id types.EntityID) bool {
	_, ok := c.pending[id]
	return ok
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

func (c *Commands) apply() {
	queue := c.queue
	c.queue = nil
	clear(c.doomed)
	clear(c.pending)

	for i := range queue {
		cmd := &queue[i]
		switch cmd.kind {
		case cmdSpawn:
			if cmd.parent != types.NoEntity && !c.ecs.Alive(cmd.parent) {
				// Parent went away before the spawn landed.
				continue
			}
			c.ecs.insert(cmd.id, cmd.parent, &cmd.bundle)
		case cmdDespawn:
			c.ecs.remove(cmd.id, false)
		case cmdDespawnRecursive:
			c.ecs.remove(cmd.id, true)
		}
	}
}
