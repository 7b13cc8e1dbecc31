// internal/state/game_state.go
package state

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	game "go-garden-defense/internal/app"
	"go-garden-defense/internal/assets"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/interfaces"
	"go-garden-defense/internal/render"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/ui"
)

// GameState — основное состояние: 3D-сцена, выбор площадок мышью и HUD.
type GameState struct {
	sm     *StateMachine
	game   *game.Game
	store  interfaces.LayoutStore
	models *assets.ModelManager
	font   rl.Font
	logger zerolog.Logger

	scene       *render.SceneRenderer
	buildMenu   *ui.BuildMenuRL
	speedButton *ui.SpeedButtonRL
	pauseButton *ui.PauseButtonRL
	indicator   *ui.StateIndicatorRL
	camera      rl.Camera3D
	status      string
}

func NewGameState(sm *StateMachine, g *game.Game, store interfaces.LayoutStore, models *assets.ModelManager, font rl.Font, logger zerolog.Logger) *GameState {
	g.SetCameraInput(keyboardCamera{})
	return &GameState{
		sm:          sm,
		game:        g,
		store:       store,
		models:      models,
		font:        font,
		logger:      logger.With().Str("state", "game").Logger(),
		scene:       render.NewSceneRenderer(g.ECS, models),
		buildMenu:   ui.NewBuildMenuRL(g.ECS, models, font),
		speedButton: ui.NewSpeedButtonRL(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButtonRL(config.SpeedButtonX+60, config.SpeedButtonY, config.SpeedButtonSize*0.8, config.ButtonColor, config.ButtonHoverColor),
		indicator:   ui.NewStateIndicatorRL(float32(config.ScreenWidth-40), config.SpeedButtonY, config.SpeedButtonSize),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if pauseRequested(g.pauseButton) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.updateWorld(deltaTime)
}

// updateWorld — всё, что работает и на паузе: камера, выбор, меню постройки.
func (g *GameState) updateWorld(deltaTime float64) {
	if g.game.ECS.Camera != nil {
		g.camera = render.CameraFromComponent(g.game.ECS.Camera)
	}
	g.handleKeys()

	mouse := rl.GetMousePosition()
	switch {
	case g.isOnHUD(mouse):
		g.game.SetHovered(types.NoEntity)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			g.handleHUDClick(mouse)
		}
	default:
		g.handleWorldPointer(mouse)
	}

	g.game.Update(deltaTime)
	g.pauseButton.SetPaused(g.game.IsPaused())
	g.speedButton.SetState(g.game.ECS.SpeedStep)
}

func (g *GameState) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyF5):
		if err := g.store.SaveLayout(); err != nil {
			g.logger.Warn().Err(err).Msg("save failed")
			g.status = "Save failed"
			return
		}
		g.status = "Layout saved"
	case rl.IsKeyPressed(rl.KeyF8):
		ok, err := g.store.LoadLayout()
		switch {
		case err != nil:
			g.logger.Warn().Err(err).Msg("load failed")
			g.status = "Load failed"
		case !ok:
			g.status = "No saved layout"
		default:
			g.status = "Layout loaded"
		}
	case rl.IsKeyPressed(rl.KeyTab):
		g.game.CycleSpeed()
	}
}

// isOnHUD проверяет, находится ли курсор над каким-либо элементом UI
func (g *GameState) isOnHUD(mouse rl.Vector2) bool {
	return g.buildMenu.Contains(mouse) || g.speedButton.IsClicked(mouse) || g.pauseButton.IsClicked(mouse)
}

// handleHUDClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleHUDClick(mouse rl.Vector2) {
	if kind, ok := g.buildMenu.Clicked(mouse); ok {
		g.game.ClickBuildButton(kind)
		return
	}
	if g.speedButton.IsClicked(mouse) {
		g.game.CycleSpeed()
	}
}

// handleWorldPointer — наведение и выбор площадок лучом из камеры.
// Shift добавляет площадку к выбору, клик мимо снимает выбор.
func (g *GameState) handleWorldPointer(mouse rl.Vector2) {
	origin, dir := render.MouseRay(mouse, g.camera)
	pad, hit := g.game.PickPad(origin, dir)
	g.game.SetHovered(pad)

	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return
	}
	switch {
	case hit && shiftDown():
		g.game.ToggleSelect(pad)
	case hit:
		g.game.Select(pad)
	default:
		g.game.ClearSelection()
	}
}

func (g *GameState) Draw() {
	rl.ClearBackground(render.ToRL(config.BackgroundColor))
	g.scene.Draw(g.camera)
	g.DrawUI()
}

// DrawUI рисует HUD поверх сцены.
func (g *GameState) DrawUI() {
	mouse := rl.GetMousePosition()
	g.buildMenu.Draw(mouse)
	g.speedButton.Draw()
	g.pauseButton.Draw()
	g.indicator.Draw(len(g.game.SelectedPads()), config.SelectedPadColor, g.font)

	info := fmt.Sprintf("Time %.1fs  x%.0f  Towers %d  Pads %d", g.game.GetGameTime(), g.game.Speed(), len(g.game.ECS.Towers), len(g.game.ECS.Pads))
	rl.DrawTextEx(g.font, info, rl.NewVector2(160, 30), 20, 1, render.ToRL(config.TextLightColor))
	help := "WASD move  Q/E turn  Click pad select  Shift add  Tab speed  P pause  F5 save  F8 load"
	rl.DrawTextEx(g.font, help, rl.NewVector2(10, float32(rl.GetScreenHeight()-24)), 16, 1, rl.LightGray)
	if g.status != "" {
		rl.DrawTextEx(g.font, g.status, rl.NewVector2(160, 56), 18, 1, render.ToRL(config.SelectedPadColor))
	}
	rl.DrawFPS(int32(rl.GetScreenWidth()-100), int32(rl.GetScreenHeight()-24))
}

func (g *GameState) Exit() {}
