// pkg/render/projection.go
package render

// Projection maps the world ground plane (X, Z) onto screen pixels for a
// top-down view. World +X points right, world +Z points down the screen.
type Projection struct {
	Scale   float64 // Pixels per world unit
	OffsetX float64 // Screen position of the world origin
	OffsetY float64
}

// NewProjection centres the world rectangle [minX, maxX] x [minZ, maxZ] in a
// screen of the given size.
func NewProjection(scale float64, screenW, screenH int, minX, maxX, minZ, maxZ float64) Projection {
	return Projection{
		Scale:   scale,
		OffsetX: float64(screenW)/2 - (minX+maxX)/2*scale,
		OffsetY: float64(screenH)/2 - (minZ+maxZ)/2*scale,
	}
}

// WorldToScreen returns the pixel for a ground point.
func (p Projection) WorldToScreen(x, z float64) (float32, float32) {
	return float32(x*p.Scale + p.OffsetX), float32(z*p.Scale + p.OffsetY)
}

// ScreenToWorld is the inverse of WorldToScreen.
func (p Projection) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - p.OffsetX) / p.Scale, (sy - p.OffsetY) / p.Scale
}
