package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/save"
	"go-garden-defense/internal/utils"
)

func buildOn(t *testing.T, g *Game, kind defs.TowerKind, pads ...int) {
	t.Helper()
	ids := entity.SortedIDs(g.ECS.Pads)
	g.ClearSelection()
	for _, i := range pads {
		g.ToggleSelect(ids[i])
	}
	g.Update(tick)
	require.True(t, g.ClickBuildButton(kind))
	g.Update(tick)
	g.Update(tick)
}

func TestCaptureAndRestoreLayout(t *testing.T) {
	g := newTestGame(t)
	buildOn(t, g, defs.TowerPotato, 0)
	buildOn(t, g, defs.TowerTomato, 4, 5)
	for i := 0; i < 200; i++ {
		g.Update(tick)
	}
	require.NotEmpty(t, g.ECS.Projectiles)

	layout := g.CaptureLayout()
	require.Len(t, layout.Towers, 3)
	assert.Len(t, layout.Pads, 17)
	assert.Equal(t, "Potato", layout.Towers[0].Kind)
	assert.Equal(t, 0.8, layout.Towers[0].Y)

	fresh := newTestGame(t)
	require.NoError(t, fresh.RestoreLayout(layout))

	assert.Equal(t, map[defs.TowerKind]int{defs.TowerPotato: 1, defs.TowerTomato: 2}, fresh.TowerCounts())
	assert.Len(t, fresh.ECS.Pads, 17)
	assert.Len(t, fresh.ECS.Targets, 24)
	assert.Empty(t, fresh.ECS.Projectiles)
	assert.Equal(t, layout, fresh.CaptureLayout())

	for _, id := range entity.SortedIDs(fresh.ECS.Towers) {
		tower := fresh.ECS.Towers[id]
		assert.Equal(t, tower.Cooldown.Period, tower.Cooldown.Remaining)
	}
}

func TestRestoreClosesOpenMenu(t *testing.T) {
	g := newTestGame(t)
	g.Select(entity.SortedIDs(g.ECS.Pads)[0])
	g.Update(tick)
	require.True(t, g.MenuOpen())

	require.NoError(t, g.RestoreLayout(save.Layout{Pads: []save.PadEntry{{X: 1, Y: 0.8, Z: 1}}}))
	assert.False(t, g.MenuOpen())
	assert.Empty(t, g.ECS.BuildButtons)

	g.Update(tick)
	assert.False(t, g.MenuOpen())

	g.Select(entity.SortedIDs(g.ECS.Pads)[0])
	g.Update(tick)
	assert.True(t, g.MenuOpen())
}

func TestRestoreRejectsUnknownKind(t *testing.T) {
	g := newTestGame(t)
	err := g.RestoreLayout(save.Layout{Towers: []save.TowerEntry{{Kind: "Carrot"}}})
	assert.Error(t, err)
	assert.Len(t, g.ECS.Pads, 20, "board untouched on error")
}

func TestPickPad(t *testing.T) {
	g := newTestGame(t)
	pads := entity.SortedIDs(g.ECS.Pads)

	id, ok := g.PickPad(utils.NewVec3(4, 10, 0), utils.NewVec3(0, -1, 0))
	require.True(t, ok)
	assert.Equal(t, pads[2], id)

	_, ok = g.PickPad(utils.NewVec3(2, 10, 4), utils.NewVec3(0, -1, 0))
	assert.False(t, ok)

	// Луч вдоль ряда попадает в ближайшую площадку.
	id, ok = g.PickPad(utils.NewVec3(-10, 0.8, 0), utils.NewVec3(1, 0, 0))
	require.True(t, ok)
	assert.Equal(t, pads[0], id)
}

func TestPadNearXZ(t *testing.T) {
	g := newTestGame(t)
	pads := entity.SortedIDs(g.ECS.Pads)

	id, ok := g.PadNearXZ(1.2, 8.3)
	require.True(t, ok)
	assert.Equal(t, pads[1], id)

	_, ok = g.PadNearXZ(2, 4)
	assert.False(t, ok)
}

func TestHover(t *testing.T) {
	g := newTestGame(t)
	pads := entity.SortedIDs(g.ECS.Pads)
	g.SetHovered(pads[3])
	assert.True(t, g.ECS.Interactions[pads[3]].Hovered)
	g.SetHovered(pads[4])
	assert.False(t, g.ECS.Interactions[pads[3]].Hovered)
	assert.True(t, g.ECS.Interactions[pads[4]].Hovered)
}
