package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectionRoundTrip(t *testing.T) {
	p := NewProjection(10, 800, 600, -20, 20, 0, 10)

	sx, sy := p.WorldToScreen(0, 5)
	assert.InDelta(t, 400, sx, 1e-4)
	assert.InDelta(t, 300, sy, 1e-4)

	sx, sy = p.WorldToScreen(-20, 0)
	assert.InDelta(t, 200, sx, 1e-4)
	assert.InDelta(t, 250, sy, 1e-4)

	x, z := p.ScreenToWorld(float64(sx), float64(sy))
	assert.InDelta(t, -20, x, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, DarkenColor(c))

	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, black, LerpColor(black, white, -1))
	assert.Equal(t, white, LerpColor(black, white, 2))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, LerpColor(black, white, 0.5))
}

func TestTowerColorFallback(t *testing.T) {
	mc := &MapColors{TowerColors: []color.RGBA{{1, 2, 3, 255}}}
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, mc.TowerColor(0))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, mc.TowerColor(5))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, mc.TowerColor(-1))
}

func TestDryFireColor(t *testing.T) {
	mc := &MapColors{TargetColor: color.RGBA{200, 60, 60, 255}, SelectedPadColor: color.RGBA{255, 215, 0, 255}}
	assert.Equal(t, color.RGBA{100, 30, 30, 255}, mc.DryFireColor(true))
	assert.Equal(t, color.RGBA{255, 215, 0, 255}, mc.DryFireColor(false))
}
