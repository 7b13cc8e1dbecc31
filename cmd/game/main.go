// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"go-garden-defense/internal/app"
	"go-garden-defense/internal/assets"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/logging"
	"go-garden-defense/internal/state"
)

func main() {
	configDir := flag.String("config", ".", "directory with "+config.ConfigName+".{json,yaml,toml}")
	assetsDir := flag.String("assets", "assets", "directory with models/ and textures/")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the game")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		// Логгера ещё нет, пишем в консоль как есть.
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		fallback.Fatal().Err(err).Msg("failed to load settings")
	}

	logger, logFile, err := logging.Setup(logging.Options{
		Level:   settings.LogLevel,
		LogsDir: settings.LogsDir,
		AppName: "garden_defense",
		Start:   time.Now(),
	})
	if err != nil {
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		fallback.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer logFile.Close()

	rt, err := app.NewRuntime(settings, "raylib", logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start game")
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close runtime")
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height), settings.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Window.FPS))
	rl.SetExitKey(rl.KeyNull) // Esc ставит паузу, а не закрывает окно

	models := assets.NewModelManager(*assetsDir, logger)
	models.LoadAll()
	defer models.Cleanup()

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, rt.Game, rt, models, rl.GetFontDefault(), logger)
	if *skipMenu {
		sm.SetState(gameState)
	} else {
		sm.SetState(state.NewMenuState(sm, gameState))
	}

	logger.Info().Int("width", settings.Window.Width).Int("height", settings.Window.Height).Msg("window opened")
	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		sm.Update(deltaTime)

		rl.BeginDrawing()
		sm.Draw()
		rl.EndDrawing()
	}
	logger.Info().Float64("gameTime", rt.Game.GetGameTime()).Msg("window closed")
}
