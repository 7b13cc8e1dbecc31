// internal/app/game.go
package app

import (
	"github.com/rs/zerolog"

	"go-garden-defense/internal/component"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/event"
	"go-garden-defense/internal/system"
	"go-garden-defense/internal/utils"
)

// Game holds the simulation: the ECS, its systems and the event bus.
// It knows nothing about windows or rendering.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Layout          *defs.SceneLayout

	StateSystem      *system.StateSystem
	MovementSystem   *system.TargetMovementSystem
	ShootingSystem   *system.ShootingSystem
	ProjectileSystem *system.ProjectileSystem
	LifetimeSystem   *system.LifetimeSystem
	PlacementSystem  *system.PlacementSystem
	BuildMenuSystem  *system.BuildMenuSystem
	CameraSystem     *system.CameraSystem
	VisualSystem     *system.VisualEffectSystem

	logger zerolog.Logger
}

// NewGame initializes a new game instance. The scene is empty until
// SetupScene is called.
func NewGame(layout *defs.SceneLayout, logger zerolog.Logger) *Game {
	if layout == nil {
		panic("layout cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:              ecs,
		EventDispatcher:  eventDispatcher,
		Layout:           layout,
		StateSystem:      system.NewStateSystem(ecs, logger),
		MovementSystem:   system.NewTargetMovementSystem(ecs),
		ShootingSystem:   system.NewShootingSystem(ecs, eventDispatcher, logger),
		ProjectileSystem: system.NewProjectileSystem(ecs),
		LifetimeSystem:   system.NewLifetimeSystem(ecs),
		PlacementSystem:  system.NewPlacementSystem(ecs, eventDispatcher, logger),
		BuildMenuSystem:  system.NewBuildMenuSystem(ecs, eventDispatcher, logger),
		CameraSystem:     system.NewCameraSystem(ecs, nil),
		VisualSystem:     system.NewVisualEffectSystem(ecs, eventDispatcher),
		logger:           logger.With().Str("component", "game").Logger(),
	}
	return g
}

// SetupScene spawns the pad grid, the target line and the camera.
func (g *Game) SetupScene() {
	cmds := g.ECS.Commands()
	for _, pos := range g.Layout.PadPositions() {
		system.SpawnPad(cmds, pos, g.Layout.Pads.PickRadius)
	}
	g.spawnTargets()
	g.ECS.Camera = component.NewCameraLookingAt(
		utils.NewVec3(config.CameraStartX, config.CameraStartY, config.CameraStartZ),
		utils.Vec3{},
		config.CameraSpeed,
		config.CameraRotateSpeed,
	)
	g.ECS.Flush()
	g.logger.Info().
		Int("pads", len(g.ECS.Pads)).
		Int("targets", len(g.ECS.Targets)).
		Msg("scene ready")
}

func (g *Game) spawnTargets() {
	t := g.Layout.Targets
	for _, pos := range g.Layout.TargetPositions() {
		system.SpawnTarget(g.ECS.Commands(), pos, t.Speed, t.Health)
	}
}

// Update advances the simulation by one tick. Structural changes requested
// by the systems land at the end of the tick.
func (g *Game) Update(deltaTime float64) {
	g.CameraSystem.Update(deltaTime)

	dt := g.StateSystem.Scale(deltaTime)
	if dt > 0 {
		g.StateSystem.Update(dt)
		g.MovementSystem.Update(dt)
		g.ShootingSystem.Update(dt)
		g.ProjectileSystem.Update(dt)
		g.LifetimeSystem.Update(dt)
		g.VisualSystem.Update(dt)
	}
	// Постройка работает и на паузе.
	g.PlacementSystem.Update(dt)
	g.BuildMenuSystem.Update(dt)

	g.clearClicks()
	g.ECS.Flush()
}

// clearClicks гасит одноразовые флаги нажатий после того, как системы их прочитали.
func (g *Game) clearClicks() {
	for _, in := range g.ECS.Interactions {
		in.Clicked = false
	}
}

// SetCameraSpeeds переопределяет скорости камеры из настроек.
func (g *Game) SetCameraSpeeds(speed, rotateSpeed float64) {
	if g.ECS.Camera == nil {
		return
	}
	g.ECS.Camera.Speed = speed
	g.ECS.Camera.RotateSpeed = rotateSpeed
}

// SetCameraInput подключает клавиатуру клиента к камере.
func (g *Game) SetCameraInput(input system.CameraInput) {
	g.CameraSystem.SetInput(input)
}

func (g *Game) TogglePause() {
	g.StateSystem.TogglePause()
}

func (g *Game) IsPaused() bool {
	return g.StateSystem.Current() == component.PausedState
}

// CycleSpeed switches x1 → x2 → x4 and returns the new multiplier.
func (g *Game) CycleSpeed() float64 {
	return g.StateSystem.CycleSpeed()
}

func (g *Game) Speed() float64 {
	return g.StateSystem.Speed()
}

// GetGameTime returns simulated seconds since start.
func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}
