package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-garden-defense/internal/component"
	"go-garden-defense/internal/entity"
)

func TestStateScalesTime(t *testing.T) {
	ecs := entity.NewECS()
	s := NewStateSystem(ecs, nop())

	assert.Equal(t, 0.5, s.Scale(0.5))
	assert.Equal(t, 2.0, s.CycleSpeed())
	assert.Equal(t, 1.0, s.Scale(0.5))
	assert.Equal(t, 4.0, s.CycleSpeed())
	assert.Equal(t, 1.0, s.CycleSpeed())

	s.TogglePause()
	assert.Equal(t, component.PausedState, s.Current())
	assert.Zero(t, s.Scale(0.5))
	s.TogglePause()
	assert.Equal(t, component.RunningState, s.Current())

	s.Update(0.25)
	s.Update(0.25)
	assert.Equal(t, 0.5, ecs.GameTime)
}
