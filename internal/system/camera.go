// internal/system/camera.go
package system

import (
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/utils"
)

// CameraKey — логическая клавиша управления камерой
type CameraKey int

const (
	CameraForward CameraKey = iota
	CameraBack
	CameraLeft
	CameraRight
	CameraRotateLeft
	CameraRotateRight
)

// CameraInput отдаёт состояние клавиш. Реализуется клиентом (raylib, ebiten).
type CameraInput interface {
	KeyDown(key CameraKey) bool
}

// CameraSystem — свободная камера: WASD двигает по земле, Q/E поворачивает.
type CameraSystem struct {
	ecs   *entity.ECS
	input CameraInput
}

func NewCameraSystem(ecs *entity.ECS, input CameraInput) *CameraSystem {
	return &CameraSystem{ecs: ecs, input: input}
}

// SetInput меняет источник ввода; nil отключает управление.
func (s *CameraSystem) SetInput(input CameraInput) {
	s.input = input
}

func (s *CameraSystem) Update(deltaTime float64) {
	cam := s.ecs.Camera
	if cam == nil || s.input == nil {
		return
	}
	// Оси считаются один раз до поворота, как в начале кадра.
	forward := cam.GroundForward().Scale(cam.Speed * deltaTime)
	left := cam.GroundLeft().Scale(cam.Speed * deltaTime)
	angle := cam.RotateSpeed * deltaTime

	if s.input.KeyDown(CameraForward) {
		cam.Position = cam.Position.Add(forward)
	}
	if s.input.KeyDown(CameraBack) {
		cam.Position = cam.Position.Sub(forward)
	}
	if s.input.KeyDown(CameraLeft) {
		cam.Position = cam.Position.Add(left)
	}
	if s.input.KeyDown(CameraRight) {
		cam.Position = cam.Position.Sub(left)
	}
	if s.input.KeyDown(CameraRotateLeft) {
		cam.Yaw = utils.NormalizeAngle(cam.Yaw + angle)
	}
	if s.input.KeyDown(CameraRotateRight) {
		cam.Yaw = utils.NormalizeAngle(cam.Yaw - angle)
	}
}
