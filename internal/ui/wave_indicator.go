// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/config"
	"undefended/internal/utils"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и отсчёт до неё.
type WaveIndicator struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, fontSize float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            config.WaveTextColor,
		OutlineColor:     config.BackgroundColor,
		OutlineThickness: 2,
	}
}

// Draw рисует "WAVE IV/VI" по центру, под ним — секунды до начала волны.
func (i *WaveIndicator) Draw(waveNumber, total int, countdown float64, font rl.Font) {
	if waveNumber <= 0 {
		return
	}
	text := "WAVE " + utils.ToRoman(waveNumber) + "/" + utils.ToRoman(total)
	i.drawOutlined(text, i.Y, i.Color, font)

	if countdown > 0 {
		next := fmt.Sprintf("NEXT IN %d", int(math.Ceil(countdown)))
		i.drawOutlined(next, i.Y+i.FontSize+4, config.AltText, font)
	}
}

func (i *WaveIndicator) drawOutlined(text string, y float32, color rl.Color, font rl.Font) {
	textSize := rl.MeasureTextEx(font, text, i.FontSize, 1)
	textX := i.X - textSize.X/2

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(textX+float32(dx), y+float32(dy)), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(textX, y), i.FontSize, 1, color)
}
