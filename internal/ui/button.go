// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button представляет собой кликабельную кнопку в UI. Если задана иконка,
// она заполняет кнопку, а текст рисуется под ней.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	Icon       *rl.Texture2D
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
}

// NewButton создает новую кнопку.
func NewButton(rect rl.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  rl.RayWhite,
		BgColor:    rl.NewColor(70, 130, 180, 220),
		HoverColor: rl.NewColor(100, 160, 210, 240),
		Font:       font,
		FontSize:   16,
	}
}

// IsHovered проверяет, находится ли курсор над кнопкой.
func (b *Button) IsHovered(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.IsHovered(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if b.IsHovered(mousePos) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.RayWhite)

	if b.Icon != nil && b.Icon.ID > 0 {
		src := rl.NewRectangle(0, 0, float32(b.Icon.Width), float32(b.Icon.Height))
		dst := rl.NewRectangle(b.Rect.X+4, b.Rect.Y+4, b.Rect.Width-8, b.Rect.Height-8)
		rl.DrawTexturePro(*b.Icon, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2
	if b.Icon != nil {
		textY = b.Rect.Y + b.Rect.Height + 4
	}

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}
