// pkg/render/color.go
package render

import "image/color"

// MapColors holds the colors of the top-down map.
type MapColors struct {
	BackgroundColor  color.RGBA
	GroundColor      color.RGBA
	PadColor         color.RGBA
	SelectedPadColor color.RGBA
	HoveredPadColor  color.RGBA
	TargetColor      color.RGBA
	BulletColor      color.RGBA
	TextLightColor   color.RGBA
	TextDarkColor    color.RGBA
	TowerStrokeColor color.RGBA
	TowerColors      []color.RGBA // Indexed by tower kind
	StrokeWidth      float32
}

// TowerColor returns the fill for a tower kind, grey for unknown kinds.
func (c *MapColors) TowerColor(kind int) color.RGBA {
	if kind < 0 || kind >= len(c.TowerColors) {
		return color.RGBA{128, 128, 128, 255}
	}
	return c.TowerColors[kind]
}

// DryFireColor is the flash color of a tower stroke: yellow after a shot,
// the darkened target color after a dry fire.
func (c *MapColors) DryFireColor(dry bool) color.RGBA {
	if dry {
		return DarkenColor(c.TargetColor)
	}
	return c.SelectedPadColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor mixes c1 into c2; t is clamped to [0, 1].
func LerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
	}
	return color.RGBA{
		R: mix(c1.R, c2.R),
		G: mix(c1.G, c2.G),
		B: mix(c1.B, c2.B),
		A: mix(c1.A, c2.A),
	}
}
