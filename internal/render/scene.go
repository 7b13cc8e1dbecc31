// internal/render/scene.go
package render

import (
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-garden-defense/internal/assets"
	"go-garden-defense/internal/component"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/utils"
	palette "go-garden-defense/pkg/render"
)

// ToRL converts an image color to a raylib color.
func ToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(v utils.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// CameraFromComponent строит камеру raylib по игровой камере.
func CameraFromComponent(c *component.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(c.Position),
		Target:     vec(c.LookTarget()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// SceneRenderer рисует все сущности с компонентом Model.
type SceneRenderer struct {
	ecs    *entity.ECS
	models *assets.ModelManager
}

func NewSceneRenderer(ecs *entity.ECS, models *assets.ModelManager) *SceneRenderer {
	return &SceneRenderer{ecs: ecs, models: models}
}

// Draw рисует сцену. Вызывается между BeginDrawing и EndDrawing.
func (r *SceneRenderer) Draw(camera rl.Camera3D) {
	rl.BeginMode3D(camera)
	rl.DrawPlane(rl.NewVector3(18, 0, 4), rl.NewVector2(80, 40), ToRL(config.GroundColor))

	for _, id := range entity.SortedIDs(r.ecs.Models) {
		r.drawModel(id, r.ecs.Models[id].Asset)
	}
	for _, id := range entity.SortedIDs(r.ecs.Pads) {
		r.drawPadHighlight(id)
	}
	rl.DrawSphere(rl.NewVector3(config.LightX, config.LightY, config.LightZ), 0.2, rl.Yellow)

	rl.EndMode3D()
}

func (r *SceneRenderer) drawModel(id types.EntityID, asset defs.AssetID) {
	pos := vec(r.ecs.WorldPosition(id))
	tint := r.tint(id)
	if model, ok := r.models.GetModel(asset); ok {
		rl.DrawModel(model, pos, config.TowerModelScale, rl.White)
		return
	}

	// Модели нет на диске: рисуем примитив по имени файла.
	file := asset.File()
	switch {
	case asset == defs.AssetTowerBase:
		rl.DrawCylinder(pos, 0.6, 0.7, 0.8, 12, tint)
		rl.DrawCylinderWires(pos, 0.6, 0.7, 0.8, 12, rl.DarkGray)
	case asset == defs.AssetTarget:
		rl.DrawSphere(pos, config.TargetPickRadius, tint)
	case strings.HasSuffix(strings.TrimSuffix(file, ".glb"), "Tower"):
		size := rl.NewVector3(0.8, 1.4, 0.8)
		center := rl.NewVector3(pos.X, pos.Y+0.7, pos.Z)
		rl.DrawCubeV(center, size, tint)
		rl.DrawCubeWiresV(center, size, ToRL(config.TowerStrokeColor))
	default:
		rl.DrawSphere(pos, 0.15, tint)
	}
}

// tint подбирает цвет примитива: башни и их снаряды окрашены по типу,
// башня вспыхивает белым после выстрела.
func (r *SceneRenderer) tint(id types.EntityID) rl.Color {
	switch {
	case r.ecs.Targets[id] != nil:
		return ToRL(config.TargetColor)
	case r.ecs.Projectiles[id] != nil:
		if tower, ok := r.ecs.Towers[r.ecs.Parent(id)]; ok {
			return ToRL(config.TowerColors[tower.Kind])
		}
		return ToRL(config.BulletColor)
	}
	parent := r.ecs.Parent(id)
	if tower, ok := r.ecs.Towers[parent]; ok {
		c := config.TowerColors[tower.Kind]
		if flash, ok := r.ecs.FireFlashes[parent]; ok && !flash.Dry {
			c = palette.LerpColor(c, color.RGBA{255, 255, 255, 255}, flash.Strength())
		}
		return ToRL(c)
	}
	if _, ok := r.ecs.Pads[parent]; ok {
		return ToRL(config.PadColor)
	}
	return rl.LightGray
}

func (r *SceneRenderer) drawPadHighlight(id types.EntityID) {
	pos := vec(r.ecs.WorldPosition(id))
	radius := float32(r.ecs.Pads[id].PickRadius)
	if sel, ok := r.ecs.Selections[id]; ok && sel.Selected {
		rl.DrawSphereWires(pos, radius, 8, 8, ToRL(config.SelectedPadColor))
		return
	}
	if in, ok := r.ecs.Interactions[id]; ok && in.Hovered {
		rl.DrawSphereWires(pos, radius, 8, 8, ToRL(config.HoveredPadColor))
	}
}

// MouseRay переводит луч raylib в мировые векторы для app.Game.PickPad.
func MouseRay(mouse rl.Vector2, camera rl.Camera3D) (origin, dir utils.Vec3) {
	ray := rl.GetMouseRay(mouse, camera)
	origin = utils.NewVec3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z))
	dir = utils.NewVec3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z))
	return origin, dir
}
