// internal/ui/lives_indicator.go
package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/config"
)

const (
	LifeCircleRadius  = 10.0
	LifeCircleSpacing = 6.0
)

// LivesIndicator отображает оставшиеся жизни базы.
type LivesIndicator struct {
	Position rl.Vector2
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{Position: rl.NewVector2(x, y)}
}

// Draw рисует жизни рядом кружков: полные — живые, пустые — потерянные.
func (i *LivesIndicator) Draw(lives, maxLives int, font rl.Font) {
	label := "LIVES " + strconv.Itoa(lives)
	rl.DrawTextEx(font, label, i.Position, config.HUDFontSize, 1, config.HUDTextColor)

	labelSize := rl.MeasureTextEx(font, label, config.HUDFontSize, 1)
	startX := i.Position.X + labelSize.X + LifeCircleSpacing*2
	centerY := i.Position.Y + labelSize.Y/2
	for j := 0; j < maxLives; j++ {
		x := startX + float32(j)*(LifeCircleRadius*2+LifeCircleSpacing) + LifeCircleRadius
		if j < lives {
			rl.DrawCircle(int32(x), int32(centerY), LifeCircleRadius, config.EnemyColor)
		}
		rl.DrawCircleLines(int32(x), int32(centerY), LifeCircleRadius, config.HUDTextColor)
	}
}
