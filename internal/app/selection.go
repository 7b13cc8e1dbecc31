// internal/app/selection.go
package app

import (
	"math"

	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/utils"
)

// Select makes id the only selected entity. Entities without a Selection
// component cannot be selected; then everything is just deselected.
func (g *Game) Select(id types.EntityID) {
	g.ClearSelection()
	if sel, ok := g.ECS.Selections[id]; ok {
		sel.Selected = true
	}
}

// ToggleSelect flips the selection of id and leaves the others alone.
func (g *Game) ToggleSelect(id types.EntityID) {
	if sel, ok := g.ECS.Selections[id]; ok {
		sel.Selected = !sel.Selected
	}
}

// ClearSelection deselects everything.
func (g *Game) ClearSelection() {
	for _, sel := range g.ECS.Selections {
		sel.Selected = false
	}
}

// SelectedPads returns the selected pads in ascending ID order.
func (g *Game) SelectedPads() []types.EntityID {
	var ids []types.EntityID
	for _, id := range entity.SortedIDs(g.ECS.Pads) {
		if sel, ok := g.ECS.Selections[id]; ok && sel.Selected {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetHovered marks id as hovered and clears the flag everywhere else.
func (g *Game) SetHovered(id types.EntityID) {
	for other, in := range g.ECS.Interactions {
		in.Hovered = other == id
	}
}

// PickPad casts a ray against the pads' picking spheres and returns the
// closest hit.
func (g *Game) PickPad(origin, dir utils.Vec3) (types.EntityID, bool) {
	best := types.NoEntity
	bestDist := math.Inf(1)
	for _, id := range entity.SortedIDs(g.ECS.Pads) {
		dist, hit := utils.RaySphere(origin, dir, g.ECS.WorldPosition(id), g.ECS.Pads[id].PickRadius)
		if hit && dist < bestDist {
			best, bestDist = id, dist
		}
	}
	return best, best != types.NoEntity
}

// PadNearXZ finds the pad whose ground projection is within its pick radius
// of (x, z). Used by the top-down client.
func (g *Game) PadNearXZ(x, z float64) (types.EntityID, bool) {
	point := utils.NewVec3(x, 0, z)
	best := types.NoEntity
	bestDist := math.Inf(1)
	for _, id := range entity.SortedIDs(g.ECS.Pads) {
		pos := g.ECS.WorldPosition(id)
		pos.Y = 0
		dist := pos.Distance(point)
		if dist <= g.ECS.Pads[id].PickRadius && dist < bestDist {
			best, bestDist = id, dist
		}
	}
	return best, best != types.NoEntity
}

// ClickBuildButton raises the one-tick click flag on the menu button for
// kind. Returns false when no menu is open.
func (g *Game) ClickBuildButton(kind defs.TowerKind) bool {
	for _, id := range entity.SortedIDs(g.ECS.BuildButtons) {
		if g.ECS.BuildButtons[id].Kind != kind {
			continue
		}
		if in, ok := g.ECS.Interactions[id]; ok {
			in.Clicked = true
			return true
		}
	}
	return false
}

// MenuOpen reports whether the build menu is currently shown.
func (g *Game) MenuOpen() bool {
	return len(g.ECS.BuildMenus) > 0
}
