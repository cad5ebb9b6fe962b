// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/config"
)

// Button — кнопка меню с фокусом для клавиатуры и геймпада.
type Button struct {
	Rect     rl.Rectangle
	Text     string
	Font     rl.Font
	FontSize float32
	Focused  bool
	// pressed держится несколько кадров после нажатия, чтобы кнопка мигнула
	pressed float64
}

// NewButton создает новую кнопку.
func NewButton(rect rl.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:     rect,
		Text:     text,
		Font:     font,
		FontSize: config.ButtonFontSize,
	}
}

// Hovered — находится ли курсор над кнопкой.
func (b *Button) Hovered(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Hovered(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Press запускает подсветку нажатия.
func (b *Button) Press() { b.pressed = 0.15 }

func (b *Button) Update(deltaTime float64) {
	if b.pressed > 0 {
		b.pressed -= deltaTime
	}
}

func (b *Button) color(hovered bool) rl.Color {
	switch {
	case b.pressed > 0:
		return config.PressedButton
	case b.Focused && hovered:
		return config.FocusedHoveredButton
	case b.Focused:
		return config.FocusedButton
	case hovered:
		return config.HoveredButton
	}
	return config.NormalButton
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	rl.DrawRectangleRec(b.Rect, b.color(b.Hovered(mousePos)))

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, config.ButtonText)
}
