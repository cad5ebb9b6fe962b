// internal/ui/hud.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/config"
	"undefended/internal/defs"
)

// HUDInfo — то, что показывает HUD в текущем кадре.
type HUDInfo struct {
	Lives, MaxLives int
	Wave, Waves     int
	Countdown       float64
	Held            defs.ItemKind // пусто, если руки свободны
}

// HUD собирает индикаторы игрового экрана.
type HUD struct {
	font  rl.Font
	lives *LivesIndicator
	wave  *WaveIndicator
}

func NewHUD(font rl.Font) *HUD {
	return &HUD{
		font:  font,
		lives: NewLivesIndicator(config.PanelPadding, config.PanelPadding),
		wave:  NewWaveIndicator(float32(config.ScreenWidth)/2, config.PanelPadding, config.HUDFontSize),
	}
}

func hint(held defs.ItemKind) string {
	switch held {
	case defs.ItemTowerKit:
		return "R: BUILD TOWER ON THE HIGHLIGHTED TILE"
	case defs.ItemLaserAmmo:
		return "R: LOAD AMMO INTO THE HIGHLIGHTED TOWER"
	}
	return "R: GRAB    SPACE: JUMP"
}

func (h *HUD) Draw(info HUDInfo) {
	h.wave.X = float32(rl.GetScreenWidth()) / 2
	h.lives.Draw(info.Lives, info.MaxLives, h.font)
	h.wave.Draw(info.Wave, info.Waves, info.Countdown, h.font)

	text := hint(info.Held)
	size := rl.MeasureTextEx(h.font, text, config.HUDFontSize, 1)
	pos := rl.NewVector2(
		(float32(rl.GetScreenWidth())-size.X)/2,
		float32(rl.GetScreenHeight())-size.Y-config.PanelPadding,
	)
	rl.DrawTextEx(h.font, text, pos, config.HUDFontSize, 1, config.AltText)
}

// DrawBar рисует полоску шириной BarWidth с центром в pos.
func DrawBar(pos rl.Vector2, fraction float32, fg, bg rl.Color) {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	x := pos.X - config.BarWidth/2
	rl.DrawRectangleRec(rl.NewRectangle(x, pos.Y, config.BarWidth, config.BarHeight), bg)
	rl.DrawRectangleRec(rl.NewRectangle(x, pos.Y, config.BarWidth*fraction, config.BarHeight), fg)
}
