// internal/app/runtime.go
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/recorder"
	"go-garden-defense/internal/save"
)

// Runtime связывает игру с настройками, записью сессии и сохранениями.
// Клиенты (raylib и ebiten) создают его один раз при старте.
type Runtime struct {
	Settings *config.Settings
	Game     *Game
	Store    *save.Store

	backend recorder.Backend
	meters  *sdkmetric.MeterProvider
	reader  *sdkmetric.ManualReader
	logger  zerolog.Logger
}

// NewRuntime builds the scene described by settings and starts a recorder
// session labelled with label.
func NewRuntime(settings *config.Settings, label string, logger zerolog.Logger) (*Runtime, error) {
	layout, err := loadLayout(settings.Scene)
	if err != nil {
		return nil, err
	}

	g := NewGame(layout, logger)
	g.SetupScene()
	g.SetCameraSpeeds(settings.Camera.Speed, settings.Camera.RotateSpeed)

	rt := &Runtime{
		Settings: settings,
		Game:     g,
		Store:    save.NewStore(nil),
		logger:   logger.With().Str("component", "runtime").Logger(),
	}

	backend, err := recorder.NewBackend(settings.Recorder)
	if err != nil {
		return nil, err
	}
	if backend != nil {
		if err := backend.Init(); err != nil {
			return nil, fmt.Errorf("init recorder backend: %w", err)
		}
		if _, err := backend.StartSession(time.Now(), label); err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("start recorder session: %w", err)
		}
		rt.backend = backend
	}
	rt.meters, rt.reader = recorder.NewMeterProvider()
	metrics, err := recorder.NewMetrics(rt.meters.Meter(recorder.InstrumentationName))
	if err != nil {
		rt.closeBackend()
		return nil, err
	}
	recorder.New(rt.backend, metrics, g.GetGameTime, logger).Attach(g.EventDispatcher)

	if settings.Save.Enabled {
		store, err := save.Open(settings.Save.AppName)
		if err != nil {
			// Игра остаётся рабочей, только без F5/F8.
			rt.logger.Warn().Err(err).Msg("saves unavailable")
		} else {
			rt.Store = store
		}
	}

	rt.logger.Info().
		Str("recorder", settings.Recorder.Backend).
		Bool("saves", rt.Store.Enabled()).
		Msg("runtime ready")
	return rt, nil
}

func loadLayout(s config.SceneSettings) (*defs.SceneLayout, error) {
	if s.File == "" {
		return defs.DefaultSceneLayout()
	}
	return defs.LoadSceneLayout(s.File)
}

// SaveLayout записывает текущую раскладку башен.
func (rt *Runtime) SaveLayout() error {
	l := rt.Game.CaptureLayout()
	if err := rt.Store.Save(l); err != nil {
		return err
	}
	rt.logger.Info().Int("towers", len(l.Towers)).Int("pads", len(l.Pads)).Msg("layout saved")
	return nil
}

// LoadLayout восстанавливает сохранённую раскладку. false — сохранения нет.
func (rt *Runtime) LoadLayout() (bool, error) {
	l, ok, err := rt.Store.Load()
	if err != nil || !ok {
		return false, err
	}
	if err := rt.Game.RestoreLayout(l); err != nil {
		return false, err
	}
	return true, nil
}

// HasSavedLayout сообщает, есть ли что загружать по F8.
func (rt *Runtime) HasSavedLayout() bool {
	return rt.Store.Exists()
}

// Summary returns the recorder totals for this session. Without a backend
// it returns an empty summary.
func (rt *Runtime) Summary() (recorder.Summary, error) {
	if rt.backend == nil {
		return recorder.Summary{}, nil
	}
	return rt.backend.Summary()
}

// MetricTotals returns the gameplay counters collected so far, keyed by
// instrument name. After Close it returns nil.
func (rt *Runtime) MetricTotals() (map[string]int64, error) {
	if rt.reader == nil {
		return nil, nil
	}
	return recorder.CollectTotals(context.Background(), rt.reader)
}

// Close пишет итоги сессии в лог и закрывает хранилище записей.
// Повторный вызов ничего не делает.
func (rt *Runtime) Close() error {
	if totals, err := rt.MetricTotals(); err != nil {
		rt.logger.Error().Err(err).Msg("failed to collect metrics")
	} else if totals != nil {
		rt.logger.Info().Interface("counters", totals).Msg("session metrics")
	}
	if rt.meters != nil {
		if err := rt.meters.Shutdown(context.Background()); err != nil {
			rt.logger.Warn().Err(err).Msg("meter provider shutdown")
		}
		rt.meters, rt.reader = nil, nil
	}

	if rt.backend == nil {
		return nil
	}
	if sum, err := rt.backend.Summary(); err != nil {
		rt.logger.Error().Err(err).Msg("failed to read session summary")
	} else {
		rt.logger.Info().
			Int("dryFires", sum.DryFires).
			Int("menuOpened", sum.MenuOpened).
			Interface("towers", sum.TowersBuilt).
			Interface("shots", sum.Shots).
			Msg("session summary")
	}
	return rt.closeBackend()
}

func (rt *Runtime) closeBackend() error {
	if rt.backend == nil {
		return nil
	}
	err := rt.backend.Close()
	rt.backend = nil
	if err != nil {
		return fmt.Errorf("close recorder backend: %w", err)
	}
	return nil
}
