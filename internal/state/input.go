// internal/state/input.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-garden-defense/internal/system"
)

// keyboardCamera отдаёт камере состояние клавиш WASD/QE.
type keyboardCamera struct{}

var cameraKeys = map[system.CameraKey]int32{
	system.CameraForward:     rl.KeyW,
	system.CameraBack:        rl.KeyS,
	system.CameraLeft:        rl.KeyA,
	system.CameraRight:       rl.KeyD,
	system.CameraRotateLeft:  rl.KeyQ,
	system.CameraRotateRight: rl.KeyE,
}

func (keyboardCamera) KeyDown(key system.CameraKey) bool {
	k, ok := cameraKeys[key]
	return ok && rl.IsKeyDown(k)
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}
