// pkg/overview/info_panel.go
package overview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	buttonWidth    = 130
	buttonHeight   = 40
)

// panelButton — кнопка постройки на панели.
type panelButton struct {
	Rect image.Rectangle
	Kind defs.TowerKind
}

// InfoPanel выезжает снизу, пока открыто меню постройки, и показывает
// выбранные площадки и кнопки башен.
type InfoPanel struct {
	fontFace font.Face
	currentY float64
	targetY  float64
	height   int
	width    int
	buttons  []panelButton
}

func NewInfoPanel(face font.Face, width, height int) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: float64(height),
		targetY:  float64(height),
		height:   height,
		width:    width,
	}
}

// Update двигает панель к нужному положению.
func (p *InfoPanel) Update(ecs *entity.ECS) {
	if len(ecs.BuildMenus) > 0 {
		p.targetY = float64(p.height - panelHeight)
	} else {
		p.targetY = float64(p.height)
	}

	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		switch {
		case math.Abs(diff) < animationSpeed:
			p.currentY = p.targetY
		case diff > 0:
			p.currentY += animationSpeed
		default:
			p.currentY -= animationSpeed
		}
	}
}

// Visible сообщает, видна ли панель хотя бы частично.
func (p *InfoPanel) Visible() bool {
	return p.currentY < float64(p.height)
}

// Contains проверяет, попадает ли точка в панель.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.Visible() && y >= int(p.currentY)
}

// ButtonAt возвращает тип башни под курсором.
func (p *InfoPanel) ButtonAt(x, y int) (defs.TowerKind, bool) {
	pt := image.Pt(x, y)
	for _, b := range p.buttons {
		if pt.In(b.Rect) {
			return b.Kind, true
		}
	}
	return 0, false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS, selected int) {
	if !p.Visible() {
		p.buttons = p.buttons[:0]
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		p.width-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, config.ButtonColor, true)

	x, y := panelRect.Min.X+15, panelRect.Min.Y+lineHeight
	text.Draw(screen, fmt.Sprintf("Selected pads: %d", selected), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, "Build with 1/2/3 or click a button", p.fontFace, x, y+lineHeight, config.TextLightColor)

	p.buttons = p.buttons[:0]
	bx := panelRect.Max.X - 20
	ids := entity.SortedIDs(ecs.BuildButtons)
	for i := len(ids) - 1; i >= 0; i-- {
		bb := ecs.BuildButtons[ids[i]]
		rect := image.Rect(bx-buttonWidth, panelRect.Max.Y-buttonHeight-15, bx, panelRect.Max.Y-15)
		bx -= buttonWidth + 10
		p.buttons = append(p.buttons, panelButton{Rect: rect, Kind: bb.Kind})
		p.drawButton(screen, rect, bb.Kind)
	}
}

func (p *InfoPanel) drawButton(screen *ebiten.Image, rect image.Rectangle, kind defs.TowerKind) {
	fill := config.TowerColors[kind]
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), fill, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, config.ButtonStrokeColor, true)

	label := fmt.Sprintf("%d %s", int(kind)+1, defs.Lookup(kind).Name)
	bounds := text.BoundString(p.fontFace, label)
	textX := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	textY := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, label, p.fontFace, textX, textY, config.TextDarkColor)
}
