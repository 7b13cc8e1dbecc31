package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-garden-defense/internal/utils"
)

func TestNewCameraLookingAt(t *testing.T) {
	pos := utils.NewVec3(-2, 2.5, 5)
	cam := NewCameraLookingAt(pos, utils.Vec3{}, 4, 0.4)

	want := utils.Vec3{}.Sub(pos).Normalize()
	assert.True(t, cam.Forward().ApproxEqual(want, 1e-9), "forward %v want %v", cam.Forward(), want)
	assert.True(t, cam.LookTarget().ApproxEqual(pos.Add(want), 1e-9))
}

func TestCameraGroundAxes(t *testing.T) {
	cam := &Camera{}
	assert.True(t, cam.GroundForward().ApproxEqual(utils.NewVec3(0, 0, -1), 1e-12))
	assert.True(t, cam.GroundLeft().ApproxEqual(utils.NewVec3(-1, 0, 0), 1e-12))

	cam.Yaw = math.Pi / 2
	assert.True(t, cam.GroundForward().ApproxEqual(utils.NewVec3(-1, 0, 0), 1e-12))
	assert.True(t, cam.GroundLeft().ApproxEqual(utils.NewVec3(0, 0, 1), 1e-12))
}
