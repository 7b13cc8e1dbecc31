package recorder

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/event"
	"go-garden-defense/internal/utils"
)

func playSession(t *testing.T, backend Backend) {
	t.Helper()
	require.NoError(t, backend.Init())
	t.Cleanup(func() { _ = backend.Close() })
	_, err := backend.StartSession(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), "test")
	require.NoError(t, err)

	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	gameTime := 0.0
	rec := New(backend, metrics, func() float64 { return gameTime }, zerolog.Nop())
	d := event.NewDispatcher()
	rec.Attach(d)

	d.Dispatch(event.Event{Type: event.BuildMenuOpened, Data: event.MenuData{Menu: 3, Selected: 2}})
	gameTime = 1.5
	for _, pad := range []uint64{1, 2} {
		d.Dispatch(event.Event{Type: event.TowerBuilt, Data: event.TowerBuiltData{
			Tower: 10, Pad: 0, Kind: defs.TowerPotato, Position: utils.NewVec3(float64(pad), 0.8, 0),
		}})
	}
	d.Dispatch(event.Event{Type: event.BuildMenuClosed, Data: event.MenuData{Menu: 3}})
	gameTime = 3.5
	d.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ShotData{
		Tower: 10, Target: 20, Projectile: 30, Kind: defs.TowerPotato,
		Direction: utils.NewVec3(2, -0.6, 0), Speed: 6.5,
	}})
	d.Dispatch(event.Event{Type: event.TowerDryFired, Data: event.DryFireData{Tower: 11, Kind: defs.TowerTomato}})
}

func assertSummary(t *testing.T, backend Backend) {
	t.Helper()
	s, err := backend.Summary()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Potato": 2}, s.TowersBuilt)
	assert.Equal(t, map[string]int{"Potato": 1}, s.Shots)
	assert.Equal(t, 1, s.DryFires)
	assert.Equal(t, 1, s.MenuOpened)
	assert.Equal(t, 1, s.MenuClosed)
}

func TestMemoryBackendRecordsSession(t *testing.T) {
	backend := NewMemoryBackend()
	playSession(t, backend)
	assertSummary(t, backend)

	shots := backend.Shots()
	require.Len(t, shots, 1)
	assert.Equal(t, 3.5, shots[0].GameTime)
	assert.Equal(t, uint64(20), shots[0].Target)
	assert.Equal(t, -0.6, shots[0].DirY)
	assert.NotZero(t, shots[0].SessionID)

	towers := backend.Towers()
	require.Len(t, towers, 2)
	assert.Equal(t, 1.5, towers[1].GameTime)
	assert.Equal(t, 2.0, towers[1].X)
}

func TestSQLiteBackendRecordsSession(t *testing.T) {
	backend := NewSQLiteBackend(filepath.Join(t.TempDir(), "session.db"))
	playSession(t, backend)
	assertSummary(t, backend)
}

func TestSQLiteSummaryIsPerSession(t *testing.T) {
	backend := NewSQLiteBackend(filepath.Join(t.TempDir(), "sessions.db"))
	playSession(t, backend)

	_, err := backend.StartSession(time.Now(), "second")
	require.NoError(t, err)
	require.NoError(t, backend.RecordShot(&ShotRecord{Kind: "Cabbage"}))

	s, err := backend.Summary()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Cabbage": 1}, s.Shots)
	assert.Empty(t, s.TowersBuilt)
}

func TestRecordBeforeSessionFails(t *testing.T) {
	memory := NewMemoryBackend()
	assert.Error(t, memory.RecordDryFire(&DryFireRecord{}))

	sqlite := NewSQLiteBackend(filepath.Join(t.TempDir(), "empty.db"))
	assert.Error(t, sqlite.RecordDryFire(&DryFireRecord{}))
	require.NoError(t, sqlite.Init())
	defer sqlite.Close()
	assert.Error(t, sqlite.RecordMenu(&MenuRecord{}))
}

func TestRecorderWithoutBackendOnlyCounts(t *testing.T) {
	metrics, err := NewMetrics(nil)
	require.NoError(t, err)
	rec := New(nil, metrics, nil, zerolog.Nop())
	assert.NotPanics(t, func() {
		rec.OnEvent(event.Event{Type: event.TowerDryFired, Data: event.DryFireData{Kind: defs.TowerCabbage}})
		rec.OnEvent(event.Event{Type: event.TowerBuilt, Data: "garbage"})
	})
}

func TestNewBackend(t *testing.T) {
	b, err := NewBackend(config.RecorderSettings{Backend: config.RecorderNone})
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = NewBackend(config.RecorderSettings{Backend: config.RecorderMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = NewBackend(config.RecorderSettings{Backend: config.RecorderSQLite, SQLitePath: "x.db"})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, b)

	_, err = NewBackend(config.RecorderSettings{Backend: "influx"})
	assert.Error(t, err)
}

func TestMetricsCountEvents(t *testing.T) {
	provider, reader := NewMeterProvider()
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	metrics, err := NewMetrics(provider.Meter(InstrumentationName))
	require.NoError(t, err)

	backend := NewMemoryBackend()
	require.NoError(t, backend.Init())
	_, err = backend.StartSession(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), "metrics")
	require.NoError(t, err)
	rec := New(backend, metrics, nil, zerolog.Nop())
	d := event.NewDispatcher()
	rec.Attach(d)

	built := event.TowerBuiltData{Tower: 10, Pad: 1, Kind: defs.TowerTomato}
	d.Dispatch(event.Event{Type: event.PadConsumed, Data: built})
	d.Dispatch(event.Event{Type: event.TowerBuilt, Data: built})
	d.Dispatch(event.Event{Type: event.TowerDryFired, Data: event.DryFireData{Tower: 10, Kind: defs.TowerTomato}})
	d.Dispatch(event.Event{Type: event.TowerDryFired, Data: event.DryFireData{Tower: 10, Kind: defs.TowerTomato}})

	totals, err := CollectTotals(context.Background(), reader)
	require.NoError(t, err)
	assert.Equal(t, int64(1), totals["garden.pads.consumed"])
	assert.Equal(t, int64(1), totals["garden.towers.built"])
	assert.Equal(t, int64(2), totals["garden.shots.dry"])
	assert.Zero(t, totals["garden.shots.fired"])

	// PadConsumed не дублирует запись башни.
	assert.Len(t, backend.Towers(), 1)
}
