// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// pulse — коэффициент увеличения кнопки сразу после клика, затухает за ~0.5 с.
func pulse(lastClick time.Time) float32 {
	elapsed := time.Since(lastClick).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// StateIndicatorRL показывает, сколько площадок выделено: пустой круг,
// если ни одной, залитый с числом внутри иначе.
type StateIndicatorRL struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	lastCount     int
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicatorRL) Draw(selected int, fill color.Color, font rl.Font) {
	if selected != i.lastCount {
		i.lastCount = selected
		i.LastClickTime = time.Now()
	}
	currentRadius := i.Radius * pulse(i.LastClickTime)
	center := rl.NewVector2(i.X, i.Y)

	if selected == 0 {
		rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
		return
	}
	rl.DrawCircleV(center, currentRadius, colorToRL(fill))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)

	label := strconv.Itoa(selected)
	size := rl.MeasureTextEx(font, label, 18, 1)
	rl.DrawTextEx(font, label, rl.NewVector2(i.X-size.X/2, i.Y-size.Y/2), 18, 1, rl.Black)
}
