// internal/state/loading_state.go
package state

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/config"
	"undefended/internal/event"
	"undefended/internal/render"
	"undefended/internal/starfield"
	"undefended/internal/ui"
)

// LoadingState строит модели и шрифт, применяет сохранённые настройки.
type LoadingState struct {
	sm     *StateMachine
	shared *Shared
	ready  bool
}

func NewLoadingState(sm *StateMachine, shared *Shared) *LoadingState {
	return &LoadingState{sm: sm, shared: shared}
}

func (s *LoadingState) Enter() {
	sh := s.shared
	sh.Font = rl.GetFontDefault()
	sh.Models.LoadAll()
	sh.Render = render.NewRenderSystem(sh.Models, starfield.New(sh.Seed, config.StarCount, config.StarParallaxRate))
	sh.HUD = ui.NewHUD(sh.Font)

	st := sh.Save.Settings()
	sh.Audio.SetSfxVolume(st.Sfx)
	sh.Audio.SetMusicVolume(st.Music)
	sh.Game.EventDispatcher.Subscribe(event.PlaySound, sh.Audio)
	s.ready = true
}

func (s *LoadingState) Update(deltaTime float64) {
	if s.ready {
		s.sm.SetState(NewPipelinesState(s.sm, s.shared))
	}
}

func (s *LoadingState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	rl.DrawTextEx(s.shared.Font, "LOADING...", rl.NewVector2(config.PanelPadding, config.PanelPadding), config.HUDFontSize, 1, config.AltText)
}

func (s *LoadingState) Exit() {
	// камера живёт в игре и переживает сброс мира
	s.shared.Game.Camera.Snap(s.shared.Game.MapSystem.Grid.MapToWorld(s.shared.Game.Library.Level.Start.Pos()))
	log.Println("[Loading] assets ready")
}
