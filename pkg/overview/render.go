// pkg/overview/render.go
package overview

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-garden-defense/internal/config"
	"go-garden-defense/internal/entity"
	"go-garden-defense/pkg/render"
)

// Renderer рисует карту сверху: площадки, башни, мишени и снаряды.
type Renderer struct {
	ecs    *entity.ECS
	proj   render.Projection
	colors *render.MapColors
}

func NewRenderer(ecs *entity.ECS, proj render.Projection, colors *render.MapColors) *Renderer {
	return &Renderer{ecs: ecs, proj: proj, colors: colors}
}

func (r *Renderer) Draw(screen *ebiten.Image, gameTime float64) {
	screen.Fill(r.colors.BackgroundColor)
	x0, y0 := r.proj.WorldToScreen(-20, -2)
	x1, y1 := r.proj.WorldToScreen(40, 10)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, r.colors.GroundColor, false)

	// Площадки
	for _, id := range entity.SortedIDs(r.ecs.Pads) {
		pos := r.ecs.WorldPosition(id)
		x, y := r.proj.WorldToScreen(pos.X, pos.Z)
		fill := r.colors.PadColor
		if in, ok := r.ecs.Interactions[id]; ok && in.Hovered {
			fill = r.colors.HoveredPadColor
		}
		vector.DrawFilledCircle(screen, x, y, config.OverviewPadRadius, fill, true)
		if sel, ok := r.ecs.Selections[id]; ok && sel.Selected {
			vector.StrokeCircle(screen, x, y, config.OverviewPadRadius+2, r.colors.StrokeWidth, r.colors.SelectedPadColor, true)
		}
	}

	// Башни: квадрат с обводкой, внутренняя полоска показывает остаток перезарядки
	for _, id := range entity.SortedIDs(r.ecs.Towers) {
		tower := r.ecs.Towers[id]
		pos := r.ecs.WorldPosition(id)
		x, y := r.proj.WorldToScreen(pos.X, pos.Z)
		half := float32(config.OverviewTowerSize)
		fill := r.colors.TowerColor(int(tower.Kind))
		vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, fill, true)
		stroke := r.colors.TowerStrokeColor
		if flash, ok := r.ecs.FireFlashes[id]; ok {
			stroke = render.LerpColor(stroke, r.colors.DryFireColor(flash.Dry), flash.Strength())
		}
		vector.StrokeRect(screen, x-half, y-half, 2*half, 2*half, r.colors.StrokeWidth, stroke, true)
		if c := tower.Cooldown; c != nil && c.Period > 0 {
			left := float32(c.Remaining) / float32(c.Period)
			vector.DrawFilledRect(screen, x-half, y+half+2, 2*half*left, 2, r.colors.TextLightColor, false)
		}
	}

	// Мишени пульсируют
	pulse := float32(1 + 0.1*math.Sin(gameTime*2*math.Pi))
	for _, id := range entity.SortedIDs(r.ecs.Targets) {
		pos := r.ecs.WorldPosition(id)
		x, y := r.proj.WorldToScreen(pos.X, pos.Z)
		vector.DrawFilledCircle(screen, x, y, config.OverviewTarget*pulse, r.colors.TargetColor, true)
	}

	for _, id := range entity.SortedIDs(r.ecs.Projectiles) {
		pos := r.ecs.WorldPosition(id)
		x, y := r.proj.WorldToScreen(pos.X, pos.Z)
		fill := r.colors.BulletColor
		if tower, ok := r.ecs.Towers[r.ecs.Parent(id)]; ok {
			fill = r.colors.TowerColor(int(tower.Kind))
		}
		vector.DrawFilledCircle(screen, x, y, config.OverviewBullet, fill, true)
	}
}
