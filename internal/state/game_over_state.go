// internal/state/game_over_state.go
package state

import (
	"fmt"

	"undefended/internal/system"
	"undefended/internal/ui"
)

// GameOverState показывает итог поверх застывшего мира.
type GameOverState struct {
	sm      *StateMachine
	shared  *Shared
	outcome system.Outcome
	menu    *ui.Menu
}

func NewGameOverState(sm *StateMachine, shared *Shared, outcome system.Outcome) *GameOverState {
	return &GameOverState{sm: sm, shared: shared, outcome: outcome}
}

func (s *GameOverState) Enter() {
	title := "GAME OVER!"
	if s.outcome == system.OutcomeWon {
		title = "YOU WIN!"
	}
	s.menu = ui.NewMenu(s.shared.Font, title, "PLAY AGAIN")
	killed, leaked := s.shared.Game.OutcomeSystem.Stats()
	s.menu.Subtitle = fmt.Sprintf("DEFEATED %d  LEAKED %d", killed, leaked)
}

func (s *GameOverState) Update(deltaTime float64) {
	sh := s.shared
	sh.Menu.Update(sh.Source)
	if s.menu.Update(sh.Menu, deltaTime) == 0 {
		s.sm.SetState(NewMenuState(s.sm, sh))
	}
}

func (s *GameOverState) Draw() {
	s.shared.drawWorld()
	s.menu.Draw()
}

// Exit убирает мир: следующая игра начнётся с чистой карты.
func (s *GameOverState) Exit() {
	s.shared.Game.Reset()
}
