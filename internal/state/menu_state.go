// internal/state/menu_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-garden-defense/internal/config"
	"go-garden-defense/internal/render"
	"go-garden-defense/internal/ui"
)

// MenuState — стартовый экран: новая игра или продолжение сохранённой.
type MenuState struct {
	sm     *StateMachine
	next   *GameState
	play   *ui.MenuButton
	resume *ui.MenuButton
}

func NewMenuState(sm *StateMachine, next *GameState) *MenuState {
	cx := float32(rl.GetScreenWidth())/2 - 120
	cy := float32(rl.GetScreenHeight()) / 2
	return &MenuState{
		sm:     sm,
		next:   next,
		play:   ui.NewMenuButton(rl.NewRectangle(cx, cy-60, 240, 50), "Play", next.font),
		resume: ui.NewMenuButton(rl.NewRectangle(cx, cy+10, 240, 50), "Continue", next.font),
	}
}

func (m *MenuState) Enter() {
	m.resume.Disabled = !m.next.store.HasSavedLayout()
}

func (m *MenuState) Update(deltaTime float64) {
	mouse := rl.GetMousePosition()
	switch {
	case m.play.IsClicked(mouse) || rl.IsKeyPressed(rl.KeySpace):
		m.sm.SetState(m.next)
	case m.resume.IsClicked(mouse):
		if _, err := m.next.store.LoadLayout(); err != nil {
			m.next.logger.Warn().Err(err).Msg("load failed")
		}
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw() {
	rl.ClearBackground(render.ToRL(config.BackgroundColor))
	title := "Garden Defense"
	size := rl.MeasureTextEx(m.next.font, title, 48, 2)
	rl.DrawTextEx(m.next.font, title, rl.NewVector2((float32(rl.GetScreenWidth())-size.X)/2, float32(rl.GetScreenHeight())/2-160), 48, 2, rl.RayWhite)

	mouse := rl.GetMousePosition()
	m.play.Draw(mouse)
	m.resume.Draw(mouse)
}

func (m *MenuState) Exit() {}
