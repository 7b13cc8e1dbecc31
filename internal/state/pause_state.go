// internal/state/pause_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-garden-defense/internal/config"
	"go-garden-defense/internal/render"
	"go-garden-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает игровое время. Камера, выбор площадок и
// постройка продолжают работать через предыдущее состояние.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	if !s.previousState.game.IsPaused() {
		s.previousState.game.TogglePause()
	}
}

// pauseRequested — P, Esc или клик по кнопке паузы.
func pauseRequested(button *ui.PauseButtonRL) bool {
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}
	return rl.IsMouseButtonPressed(rl.MouseLeftButton) && button.IsClicked(rl.GetMousePosition())
}

func (s *PauseState) Update(deltaTime float64) {
	if pauseRequested(s.previousState.pauseButton) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	s.previousState.updateWorld(deltaTime)
}

func (s *PauseState) Draw() {
	s.previousState.Draw()

	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), render.ToRL(config.PausedOverlayColor))

	pauseText := "PAUSED"
	fontSize := float32(40)
	font := s.previousState.font
	textWidth := rl.MeasureTextEx(font, pauseText, fontSize, 1)
	rl.DrawTextEx(font, pauseText, rl.NewVector2((float32(rl.GetScreenWidth())-textWidth.X)/2, float32(rl.GetScreenHeight())/2-20), fontSize, 1, rl.White)
}

func (s *PauseState) Exit() {
	if s.previousState.game.IsPaused() {
		s.previousState.game.TogglePause()
	}
}
