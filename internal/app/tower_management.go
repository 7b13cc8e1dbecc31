// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/save"
	"go-garden-defense/internal/system"
	"go-garden-defense/internal/utils"
)

// CaptureLayout snapshots the built towers and the pads still free.
func (g *Game) CaptureLayout() save.Layout {
	var l save.Layout
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		pos := g.ECS.WorldPosition(id)
		l.Towers = append(l.Towers, save.TowerEntry{
			Kind: g.ECS.Towers[id].Kind.String(),
			X:    pos.X,
			Y:    pos.Y,
			Z:    pos.Z,
		})
	}
	for _, id := range entity.SortedIDs(g.ECS.Pads) {
		pos := g.ECS.WorldPosition(id)
		l.Pads = append(l.Pads, save.PadEntry{X: pos.X, Y: pos.Y, Z: pos.Z})
	}
	return l
}

// RestoreLayout replaces the towers and pads with the saved ones. Targets
// are respawned at their starting line; bullets and the menu are dropped.
// Cooldowns start from a full period.
func (g *Game) RestoreLayout(l save.Layout) error {
	kinds := make([]defs.TowerKind, len(l.Towers))
	for i, t := range l.Towers {
		kind, err := defs.ParseTowerKind(t.Kind)
		if err != nil {
			return fmt.Errorf("restore tower %d: %w", i, err)
		}
		kinds[i] = kind
	}

	g.clearBoard()
	cmds := g.ECS.Commands()
	for _, p := range l.Pads {
		system.SpawnPad(cmds, utils.NewVec3(p.X, p.Y, p.Z), g.Layout.Pads.PickRadius)
	}
	for i, t := range l.Towers {
		system.SpawnTower(cmds, kinds[i], utils.NewVec3(t.X, t.Y, t.Z))
	}
	g.spawnTargets()
	g.ECS.Flush()

	g.logger.Info().
		Int("towers", len(l.Towers)).
		Int("pads", len(l.Pads)).
		Msg("layout restored")
	return nil
}

// clearBoard queues every root entity of the battlefield for removal.
// Bullets and model children go with their parents.
func (g *Game) clearBoard() {
	cmds := g.ECS.Commands()
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		cmds.DespawnRecursive(id)
	}
	for _, id := range entity.SortedIDs(g.ECS.Pads) {
		cmds.DespawnRecursive(id)
	}
	for _, id := range entity.SortedIDs(g.ECS.Targets) {
		cmds.DespawnRecursive(id)
	}
	for _, id := range entity.SortedIDs(g.ECS.BuildMenus) {
		cmds.DespawnRecursive(id)
	}
	g.ECS.Flush()
}

// TowerCounts returns how many towers of each kind stand on the board.
func (g *Game) TowerCounts() map[defs.TowerKind]int {
	counts := make(map[defs.TowerKind]int, len(defs.Kinds()))
	for _, t := range g.ECS.Towers {
		counts[t.Kind]++
	}
	return counts
}
