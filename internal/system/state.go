// internal/system/state.go
package system

import (
	"log"

	"undefended/internal/entity"
	"undefended/internal/event"
)

// Outcome — итог партии.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "none"
}

// OutcomeSystem решает, закончилась ли партия: жизни кончились или
// все волны выпущены и врагов не осталось.
type OutcomeSystem struct {
	ecs   *entity.ECS
	waves *WaveSystem

	killed  int
	leaked  int
	current Outcome
}

func NewOutcomeSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, waves *WaveSystem) *OutcomeSystem {
	os := &OutcomeSystem{ecs: ecs, waves: waves}
	eventDispatcher.Subscribe(event.EnemyKilled, os)
	eventDispatcher.Subscribe(event.EnemyReachedEnd, os)
	return os
}

func (s *OutcomeSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.killed++
	case event.EnemyReachedEnd:
		s.leaked++
	}
}

func (s *OutcomeSystem) Update() Outcome {
	if s.current != OutcomeNone {
		return s.current
	}
	switch {
	case s.ecs.Lives.Value == 0:
		s.current = OutcomeLost
	case s.waves.Finished() && len(s.ecs.Enemies) == 0:
		s.current = OutcomeWon
	default:
		return OutcomeNone
	}
	log.Printf("[Game] %s: %d killed, %d reached the base", s.current, s.killed, s.leaked)
	return s.current
}

func (s *OutcomeSystem) Current() Outcome { return s.current }

// Stats — убитые враги и враги, дошедшие до базы.
func (s *OutcomeSystem) Stats() (killed, leaked int) { return s.killed, s.leaked }

func (s *OutcomeSystem) Reset() {
	s.current = OutcomeNone
	s.killed, s.leaked = 0, 0
}
