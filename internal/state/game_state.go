// internal/state/game_state.go
package state

import (
	"undefended/internal/config"
	"undefended/internal/system"
	"undefended/internal/ui"
)

// GameState — идёт игра.
type GameState struct {
	sm     *StateMachine
	shared *Shared
}

func NewGameState(sm *StateMachine, shared *Shared) *GameState {
	return &GameState{sm: sm, shared: shared}
}

func (s *GameState) Enter() {
	s.shared.Game.Start(s.shared.Save.Settings().Difficulty)
}

func (s *GameState) Update(deltaTime float64) {
	sh := s.shared
	sh.Player.Update(sh.Source)
	if outcome := sh.Game.Update(deltaTime, sh.Player); outcome != system.OutcomeNone {
		s.sm.SetState(NewGameOverState(s.sm, sh, outcome))
	}
}

func (s *GameState) Draw() {
	sh := s.shared
	sh.drawWorld()

	info := ui.HUDInfo{
		Lives:     sh.Game.Lives(),
		MaxLives:  config.DefaultLives,
		Wave:      sh.Game.WaveNumber(),
		Waves:     sh.Game.WaveSystem.Total(),
		Countdown: sh.Game.Countdown(),
	}
	if held, ok := sh.Game.HeldItem(); ok {
		info.Held = held
	}
	sh.HUD.Draw(info)
}

func (s *GameState) Exit() {}
