// internal/ui/menu.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/config"
	"undefended/internal/input"
)

// Menu — панель по центру экрана: заголовок, подпись и столбец кнопок.
// Фокус двигается стрелками, WASD или крестовиной, мышь фокус не забирает.
type Menu struct {
	Title    string
	Subtitle string
	Buttons  []*Button
	font     rl.Font
	focus    int
}

func NewMenu(font rl.Font, title string, labels ...string) *Menu {
	m := &Menu{Title: title, font: font}
	for _, label := range labels {
		m.Buttons = append(m.Buttons, NewButton(rl.Rectangle{Width: config.ButtonWidth, Height: config.ButtonHeight}, label, font))
	}
	m.setFocus(0)
	m.Layout()
	return m
}

// SetLabel меняет текст кнопки i (громкость, сложность).
func (m *Menu) SetLabel(i int, text string) {
	if i >= 0 && i < len(m.Buttons) {
		m.Buttons[i].Text = text
	}
}

func (m *Menu) setFocus(i int) {
	if len(m.Buttons) == 0 {
		return
	}
	m.focus = (i + len(m.Buttons)) % len(m.Buttons)
	for j, b := range m.Buttons {
		b.Focused = j == m.focus
	}
}

func (m *Menu) Focus() int { return m.focus }

// panel возвращает прямоугольник панели по размеру экрана.
func (m *Menu) panel() rl.Rectangle {
	height := float32(config.PanelPadding*2+config.TitleFontSize+config.PanelPadding) +
		float32(len(m.Buttons))*(config.ButtonHeight+config.ButtonMargin*2)
	if m.Subtitle != "" {
		height += config.HUDFontSize + config.PanelPadding
	}
	width := float32(config.ButtonWidth + config.PanelPadding*4)
	return rl.NewRectangle(
		(float32(rl.GetScreenWidth())-width)/2,
		(float32(rl.GetScreenHeight())-height)/2,
		width, height,
	)
}

// Layout раскладывает кнопки в столбец под заголовком.
func (m *Menu) Layout() {
	p := m.panel()
	y := p.Y + config.PanelPadding*2 + config.TitleFontSize
	if m.Subtitle != "" {
		y += config.HUDFontSize + config.PanelPadding
	}
	for _, b := range m.Buttons {
		b.Rect.X = p.X + (p.Width-b.Rect.Width)/2
		b.Rect.Y = y + config.ButtonMargin
		y += config.ButtonHeight + config.ButtonMargin*2
	}
}

// Update двигает фокус и возвращает индекс нажатой кнопки, -1 если ничего не нажато.
func (m *Menu) Update(actions *input.ActionState, deltaTime float64) int {
	m.Layout()
	for _, b := range m.Buttons {
		b.Update(deltaTime)
	}
	if actions.JustPressed(input.ActionUp) {
		m.setFocus(m.focus - 1)
	}
	if actions.JustPressed(input.ActionDown) {
		m.setFocus(m.focus + 1)
	}
	if actions.JustPressed(input.ActionActivate) && len(m.Buttons) > 0 {
		m.Buttons[m.focus].Press()
		return m.focus
	}
	mouse := rl.GetMousePosition()
	for i, b := range m.Buttons {
		if b.IsClicked(mouse) {
			m.setFocus(i)
			b.Press()
			return i
		}
	}
	return -1
}

func (m *Menu) Draw() {
	p := m.panel()
	rl.DrawRectangleRec(p, config.ContainerBackground)

	titleSize := rl.MeasureTextEx(m.font, m.Title, config.TitleFontSize, 1)
	rl.DrawTextEx(m.font, m.Title, rl.NewVector2(p.X+(p.Width-titleSize.X)/2, p.Y+config.PanelPadding), config.TitleFontSize, 1, config.TitleText)
	if m.Subtitle != "" {
		subSize := rl.MeasureTextEx(m.font, m.Subtitle, config.HUDFontSize, 1)
		y := p.Y + config.PanelPadding*2 + config.TitleFontSize
		rl.DrawTextEx(m.font, m.Subtitle, rl.NewVector2(p.X+(p.Width-subSize.X)/2, y), config.HUDFontSize, 1, config.AltText)
	}

	mouse := rl.GetMousePosition()
	for _, b := range m.Buttons {
		b.Draw(mouse)
	}
}
