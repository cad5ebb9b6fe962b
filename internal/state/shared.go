// internal/state/shared.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/app"
	"undefended/internal/assets"
	"undefended/internal/audio"
	"undefended/internal/input"
	"undefended/internal/render"
	"undefended/internal/save"
	"undefended/internal/ui"
)

// Shared — ресурсы, общие для всех состояний. Живут всё время работы программы.
type Shared struct {
	Game   *app.Game
	Audio  *audio.Manager
	Save   *save.Manager
	Models *assets.ModelManager
	Render *render.RenderSystem
	HUD    *ui.HUD
	Font   rl.Font

	Source  input.Source
	Player  *input.ActionState
	Menu    *input.ActionState
	Seed    int64
	// SkipMenu — сразу начинать игру после прогрева
	SkipMenu bool
}

func NewShared(game *app.Game, audioManager *audio.Manager, saveManager *save.Manager) *Shared {
	return &Shared{
		Game:   game,
		Audio:  audioManager,
		Save:   saveManager,
		Models: assets.NewModelManager(),
		Source: RaylibSource{},
		Player: input.NewActionState(input.DefaultMap()),
		Menu:   input.NewActionState(input.MenuMap()),
	}
}

// RaylibSource опрашивает клавиатуру и первый геймпад через raylib.
type RaylibSource struct{}

func (RaylibSource) KeyDown(k input.Key) bool { return rl.IsKeyDown(int32(k)) }

func (RaylibSource) ButtonDown(b input.Button) bool {
	return rl.IsGamepadAvailable(0) && rl.IsGamepadButtonDown(0, int32(b))
}

func (RaylibSource) AxisValue(a input.Axis) float32 {
	if !rl.IsGamepadAvailable(0) {
		return 0
	}
	return rl.GetGamepadAxisMovement(0, int32(a))
}

// drawWorld рисует фон, сцену и полоски над сущностями.
func (s *Shared) drawWorld() {
	s.Render.SyncCamera(s.Game)
	s.Render.DrawBackground()
	rl.BeginMode3D(s.Render.Camera)
	s.Render.Draw(s.Game)
	rl.EndMode3D()
	for _, bar := range s.Render.Bars(s.Game) {
		ui.DrawBar(bar.Position, bar.Fraction, bar.Color, bar.Back)
	}
}
