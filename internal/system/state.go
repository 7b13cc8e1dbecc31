// internal/system/state.go
package system

import (
	"github.com/rs/zerolog"

	"go-garden-defense/internal/component"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/entity"
)

// StateSystem управляет паузой и множителем скорости симуляции.
type StateSystem struct {
	ecs    *entity.ECS
	logger zerolog.Logger
}

func NewStateSystem(ecs *entity.ECS, logger zerolog.Logger) *StateSystem {
	return &StateSystem{ecs: ecs, logger: logger.With().Str("system", "state").Logger()}
}

// Scale переводит реальное время кадра в игровое. На паузе время стоит.
func (s *StateSystem) Scale(deltaTime float64) float64 {
	if s.ecs.GameState == component.PausedState {
		return 0
	}
	return deltaTime * s.Speed()
}

func (s *StateSystem) Update(deltaTime float64) {
	s.ecs.GameTime += deltaTime
}

func (s *StateSystem) Pause() {
	s.ecs.GameState = component.PausedState
	s.logger.Debug().Msg("paused")
}

func (s *StateSystem) Resume() {
	s.ecs.GameState = component.RunningState
	s.logger.Debug().Msg("resumed")
}

func (s *StateSystem) TogglePause() {
	if s.ecs.GameState == component.PausedState {
		s.Resume()
	} else {
		s.Pause()
	}
}

// CycleSpeed переключает скорость x1 → x2 → x4 → x1.
func (s *StateSystem) CycleSpeed() float64 {
	s.ecs.SpeedStep = (s.ecs.SpeedStep + 1) % len(config.GameSpeeds)
	s.logger.Debug().Float64("speed", s.Speed()).Msg("game speed changed")
	return s.Speed()
}

func (s *StateSystem) Speed() float64 {
	return config.GameSpeeds[s.ecs.SpeedStep%len(config.GameSpeeds)]
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
