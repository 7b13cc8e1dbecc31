// internal/ui/build_menu.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-garden-defense/internal/assets"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
)

// BuildMenuRL рисует кнопки меню постройки внизу экрана. Сами кнопки живут
// в ECS; виджет только показывает их и сообщает, по какой кликнули.
type BuildMenuRL struct {
	ecs     *entity.ECS
	assets  *assets.ModelManager
	font    rl.Font
	buttons map[defs.TowerKind]*Button
}

func NewBuildMenuRL(ecs *entity.ECS, models *assets.ModelManager, font rl.Font) *BuildMenuRL {
	return &BuildMenuRL{
		ecs:     ecs,
		assets:  models,
		font:    font,
		buttons: make(map[defs.TowerKind]*Button),
	}
}

// button возвращает виджет для слота slot, создавая его при первом обращении.
func (m *BuildMenuRL) button(kind defs.TowerKind, icon defs.AssetID, slot float64) *Button {
	count := float32(len(defs.Kinds()))
	size := float32(config.BuildButtonSize)
	total := count*size + (count-1)*config.BuildButtonSpacing
	x := (float32(rl.GetScreenWidth())-total)/2 + float32(slot)*(size+config.BuildButtonSpacing)
	y := float32(rl.GetScreenHeight()) - size - config.BuildButtonMarginY - 20

	b, ok := m.buttons[kind]
	if !ok {
		b = NewButton(rl.NewRectangle(x, y, size, size), defs.Lookup(kind).Name, m.font)
		m.buttons[kind] = b
	}
	b.Rect.X, b.Rect.Y = x, y
	if tex, ok := m.assets.GetTexture(icon); ok {
		b.Icon = &tex
	} else {
		b.Icon = nil
	}
	return b
}

// Clicked возвращает тип башни, по кнопке которой кликнули в этом кадре.
func (m *BuildMenuRL) Clicked(mousePos rl.Vector2) (defs.TowerKind, bool) {
	for _, id := range entity.SortedIDs(m.ecs.BuildButtons) {
		bb := m.ecs.BuildButtons[id]
		if m.button(bb.Kind, bb.Icon, m.ecs.Transforms[id].Position.X).IsClicked(mousePos) {
			return bb.Kind, true
		}
	}
	return 0, false
}

// Contains сообщает, находится ли курсор над меню.
func (m *BuildMenuRL) Contains(mousePos rl.Vector2) bool {
	for _, id := range entity.SortedIDs(m.ecs.BuildButtons) {
		bb := m.ecs.BuildButtons[id]
		if m.button(bb.Kind, bb.Icon, m.ecs.Transforms[id].Position.X).IsHovered(mousePos) {
			return true
		}
	}
	return false
}

func (m *BuildMenuRL) Draw(mousePos rl.Vector2) {
	for _, id := range entity.SortedIDs(m.ecs.BuildButtons) {
		bb := m.ecs.BuildButtons[id]
		m.button(bb.Kind, bb.Icon, m.ecs.Transforms[id].Position.X).Draw(mousePos)
	}
}
