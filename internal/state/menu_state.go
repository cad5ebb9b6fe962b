// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"undefended/internal/event"
	"undefended/internal/settings"
	"undefended/internal/ui"
)

const (
	menuPlay = iota
	menuSfx
	menuMusic
	menuDifficulty
)

// MenuState — главное меню: игра, громкость эффектов и музыки, сложность.
type MenuState struct {
	sm     *StateMachine
	shared *Shared
	menu   *ui.Menu
}

func NewMenuState(sm *StateMachine, shared *Shared) *MenuState {
	return &MenuState{sm: sm, shared: shared}
}

func (s *MenuState) Enter() {
	s.menu = ui.NewMenu(s.shared.Font, "UNDEFENDED!", "PLAY", "", "", "")
	s.relabel(s.shared.Save.Settings())
}

func (s *MenuState) relabel(st settings.Settings) {
	s.menu.SetLabel(menuSfx, fmt.Sprintf("SFX %d%%", st.Sfx))
	s.menu.SetLabel(menuMusic, fmt.Sprintf("MUSIC %d%%", st.Music))
	s.menu.SetLabel(menuDifficulty, st.Difficulty.String())
}

func (s *MenuState) Update(deltaTime float64) {
	sh := s.shared
	sh.Menu.Update(sh.Source)
	chosen := s.menu.Update(sh.Menu, deltaTime)
	if chosen < 0 {
		return
	}

	st := sh.Save.Settings()
	switch chosen {
	case menuPlay:
		s.sm.SetState(NewGameState(s.sm, sh))
		return
	case menuSfx:
		st.Sfx = settings.StepVolume(st.Sfx)
		sh.Audio.SetSfxVolume(st.Sfx)
		sh.Audio.PlayAt(event.SoundBuild, st.Sfx)
	case menuMusic:
		st.Music = settings.StepVolume(st.Music)
		sh.Audio.SetMusicVolume(st.Music)
	case menuDifficulty:
		st.Difficulty = st.Difficulty.Next()
	}
	if _, err := sh.Save.Update(st); err != nil {
		log.Printf("[Menu] failed to save settings: %v", err)
	}
	s.relabel(st)
}

func (s *MenuState) Draw() {
	s.shared.Render.DrawBackground()
	s.menu.Draw()
}

func (s *MenuState) Exit() {}
