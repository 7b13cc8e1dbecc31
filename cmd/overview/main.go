// cmd/overview/main.go
package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-garden-defense/internal/app"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/logging"
	"go-garden-defense/pkg/overview"
)

func main() {
	configDir := flag.String("config", ".", "directory with "+config.ConfigName+".{json,yaml,toml}")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		fallback.Fatal().Err(err).Msg("failed to load settings")
	}
	logger, logFile, err := logging.Setup(logging.Options{
		Level:   settings.LogLevel,
		LogsDir: settings.LogsDir,
		AppName: "garden_overview",
		Start:   time.Now(),
	})
	if err != nil {
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		fallback.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer logFile.Close()

	rt, err := app.NewRuntime(settings, "overview", logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start game")
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close runtime")
		}
	}()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(settings.Window.Title + " | Overview")
	ebiten.SetTPS(settings.Window.FPS)
	if err := ebiten.RunGame(overview.NewClient(rt.Game, rt, logger)); err != nil {
		logger.Error().Err(err).Msg("overview stopped")
	}
}
