package system

import (
	"testing"

	"undefended/internal/defs"
)

func TestOutcome(t *testing.T) {
	f := newFixture(t, testLevel)
	f.ecs.Lives.Value = 3
	waves := NewWaveSystem(f.dispatcher, []defs.WaveDefinition{{Delay: 0.1, Count: 1, Interval: 0.1, HP: 1}})
	enemies := NewEnemySystem(f.ecs, f.dispatcher, f.maps.Path)
	outcome := NewOutcomeSystem(f.ecs, f.dispatcher, waves)

	if got := outcome.Update(); got != OutcomeNone {
		t.Fatalf("fresh game outcome = %v", got)
	}

	waves.Update(1)
	f.dispatcher.Flush()
	if len(f.ecs.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(f.ecs.Enemies))
	}
	if got := outcome.Update(); got != OutcomeNone {
		t.Errorf("enemy alive but outcome = %v", got)
	}

	for id := range f.ecs.Enemies {
		ApplyDamage(f.ecs, id, 1)
	}
	enemies.Update(0.01)
	f.dispatcher.Flush()
	if got := outcome.Update(); got != OutcomeWon {
		t.Errorf("outcome = %v, want won", got)
	}
	if killed, leaked := outcome.Stats(); killed != 1 || leaked != 0 {
		t.Errorf("stats = %d/%d", killed, leaked)
	}

	outcome.Reset()
	waves.Rewind(defs.DifficultyModifier{HP: 1, Interval: 1})
	f.ecs.Lives.Value = 0
	if got := outcome.Update(); got != OutcomeLost {
		t.Errorf("no lives, outcome = %v", got)
	}
	f.ecs.Lives.Value = 3
	if outcome.Current() != OutcomeLost {
		t.Error("outcome must stick until Reset")
	}
}
