// internal/defs/scene.go
package defs

import (
	_ "embed"

	"go-garden-defense/internal/utils"
)

//go:embed scene.yaml
var defaultSceneYAML []byte

// PadGrid places build pads on a staggered grid. Pad (i, j) sits at
// (SpacingX*i + RowShiftX*j, Height, SpacingZ*j).
type PadGrid struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	SpacingX   float64 `yaml:"spacing_x"`
	RowShiftX  float64 `yaml:"row_shift_x"`
	SpacingZ   float64 `yaml:"spacing_z"`
	Height     float64 `yaml:"height"`
	PickRadius float64 `yaml:"pick_radius"`
}

// TargetLine spawns Count targets at x = SpacingX*i for i in 1..Count.
type TargetLine struct {
	Count    int     `yaml:"count"`
	SpacingX float64 `yaml:"spacing_x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Speed    float64 `yaml:"speed"`
	Health   int     `yaml:"health"`
}

// SceneLayout is the static battlefield description.
type SceneLayout struct {
	Pads    PadGrid    `yaml:"pads"`
	Targets TargetLine `yaml:"targets"`
}

// PadPositions expands the grid into world positions, column-major.
func (l *SceneLayout) PadPositions() []utils.Vec3 {
	g := l.Pads
	positions := make([]utils.Vec3, 0, g.Columns*g.Rows)
	for i := 0; i < g.Columns; i++ {
		for j := 0; j < g.Rows; j++ {
			positions = append(positions, utils.NewVec3(
				g.SpacingX*float64(i)+g.RowShiftX*float64(j),
				g.Height,
				g.SpacingZ*float64(j),
			))
		}
	}
	return positions
}

// TargetPositions expands the target line into world positions.
func (l *SceneLayout) TargetPositions() []utils.Vec3 {
	t := l.Targets
	positions := make([]utils.Vec3, 0, t.Count)
	for i := 1; i <= t.Count; i++ {
		positions = append(positions, utils.NewVec3(t.SpacingX*float64(i), t.Y, t.Z))
	}
	return positions
}
