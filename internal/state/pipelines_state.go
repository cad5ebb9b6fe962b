// internal/state/pipelines_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/component"
	"undefended/internal/config"
)

var warmupModels = []component.ModelID{
	component.ModelFloor, component.ModelSpawnerPad, component.ModelMovingFloor,
	component.ModelPlayer, component.ModelEnemy, component.ModelTowerBase,
	component.ModelTowerHead, component.ModelLaser, component.ModelTowerKit,
	component.ModelLaserAmmo,
}

// PipelinesState несколько кадров рисует каждую модель, чтобы драйвер собрал шейдеры до игры.
type PipelinesState struct {
	sm     *StateMachine
	shared *Shared
	frames int
}

func NewPipelinesState(sm *StateMachine, shared *Shared) *PipelinesState {
	return &PipelinesState{sm: sm, shared: shared}
}

func (s *PipelinesState) Enter() {}

func (s *PipelinesState) Update(deltaTime float64) {
	if s.frames < config.PipelineWarmupFrames {
		return
	}
	if s.shared.SkipMenu {
		s.sm.SetState(NewGameState(s.sm, s.shared))
		return
	}
	s.sm.SetState(NewMenuState(s.sm, s.shared))
}

func (s *PipelinesState) Draw() {
	s.frames++
	rl.BeginMode3D(s.shared.Render.Camera)
	for i, id := range warmupModels {
		if model, ok := s.shared.Models.GetModel(id); ok {
			rl.DrawModel(model, rl.NewVector3(float32(i), -100, 0), 1, rl.White)
		}
	}
	rl.EndMode3D()
	// модели закрываются фоном, на экране остаётся только надпись загрузки
	rl.ClearBackground(config.BackgroundColor)
	rl.DrawTextEx(s.shared.Font, "LOADING...", rl.NewVector2(config.PanelPadding, config.PanelPadding), config.HUDFontSize, 1, config.AltText)
}

func (s *PipelinesState) Exit() {
	s.shared.Audio.StartMusic()
}
