// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeedButtonRL — кнопка множителя скорости: x1, x2, x4 по кругу.
// Цвет двойного треугольника показывает текущий множитель.
type SpeedButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButtonRL(x, y, size float32, stateColors []color.Color) *SpeedButtonRL {
	return &SpeedButtonRL{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButtonRL) Draw() {
	triangleSize := b.Size * pulse(b.LastClickTime)
	rlColor := colorToRL(b.StateColors[b.CurrentState])

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, shift := range []float32{0, offset} {
		p1 := rl.NewVector2(b.X-width+shift, b.Y-height/2)
		p2 := rl.NewVector2(b.X-width+shift, b.Y+height/2)
		p3 := rl.NewVector2(b.X+shift, b.Y)
		rl.DrawTriangle(p1, p2, p3, rlColor)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
}

func (b *SpeedButtonRL) IsClicked(mousePos rl.Vector2) bool {
	// Круг вместо точной формы
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

// SetState выставляет индекс множителя, пришедший из игры.
func (b *SpeedButtonRL) SetState(state int) {
	if state < 0 || state >= len(b.StateColors) {
		return
	}
	if state != b.CurrentState {
		b.LastClickTime = time.Now()
	}
	b.CurrentState = state
}
