package app

import (
	"testing"

	"undefended/internal/defs"
	"undefended/internal/event"
	"undefended/internal/input"
	"undefended/internal/settings"
	"undefended/internal/system"
	"undefended/pkg/tilemap"
)

const frame = 1.0 / 30

func loadLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.LoadAll("")
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	return lib
}

// run крутит кадры без ввода, пока партия не закончится или не выйдет время.
func run(g *Game, seconds float64) system.Outcome {
	idle := input.NewActionState(input.DefaultMap())
	for elapsed := 0.0; elapsed < seconds; elapsed += frame {
		if outcome := g.Update(frame, idle); outcome != system.OutcomeNone {
			return outcome
		}
	}
	return system.OutcomeNone
}

func TestStartBuildsWorld(t *testing.T) {
	lib := loadLibrary(t)
	g := NewGame(lib)
	g.Start(settings.Normal)

	if g.Lives() != 3 {
		t.Errorf("lives = %d, want 3", g.Lives())
	}
	if len(g.ECS.Items) != len(lib.Level.Spawners) {
		t.Errorf("items = %d, want %d", len(g.ECS.Items), len(lib.Level.Spawners))
	}
	if len(g.ECS.MovingFloors) != len(lib.Level.Movers) {
		t.Errorf("movers = %d, want %d", len(g.ECS.MovingFloors), len(lib.Level.Movers))
	}
	if g.Player() == 0 {
		t.Fatal("no player")
	}
	if g.WaveNumber() != 1 || g.Countdown() != 10 {
		t.Errorf("wave %d countdown %v", g.WaveNumber(), g.Countdown())
	}
	if _, held := g.HeldItem(); held {
		t.Error("player starts with an item")
	}
}

func TestPlayerSettlesOnStartTile(t *testing.T) {
	g := NewGame(loadLibrary(t))
	g.Start(settings.Normal)
	run(g, 2)

	pos, ok := g.PlayerPosition()
	if !ok {
		t.Fatal("player lost")
	}
	want := g.MapSystem.Grid.MapToWorld(g.Library.Level.Start.Pos())
	if d := pos[1] - 0.75; d < -0.05 || d > 0.05 {
		t.Errorf("player floats at y=%v, want 0.75", pos[1])
	}
	if dx, dz := pos[0]-want[0], pos[2]-want[2]; dx*dx+dz*dz > 0.01 {
		t.Errorf("player drifted to %v from %v", pos, want)
	}
	if got := g.ECS.Players[g.Player()].LastTile; got != g.Library.Level.Start.Pos() {
		t.Errorf("last tile = %v", got)
	}
	if eye := g.Camera.Eye(); eye[1] < pos[1]+9 {
		t.Errorf("camera eye %v not above the player", eye)
	}
}

func TestUndefendedBaseFalls(t *testing.T) {
	g := NewGame(loadLibrary(t))
	g.Start(settings.Normal)

	if outcome := run(g, 200); outcome != system.OutcomeLost {
		t.Fatalf("outcome = %v, want lost", outcome)
	}
	if over, won := g.Over(); !over || won {
		t.Errorf("Over() = %v, %v", over, won)
	}
	if g.Lives() != 0 {
		t.Errorf("lives = %d", g.Lives())
	}
	_, leaked := g.OutcomeSystem.Stats()
	if leaked != 3 {
		t.Errorf("leaked = %d, want 3", leaked)
	}
}

func TestTowerDefendsSingleWave(t *testing.T) {
	lib := loadLibrary(t)
	lib.Waves = []defs.WaveDefinition{{Delay: 1, Count: 1, Interval: 1, HP: 1}}
	g := NewGame(lib)
	g.Start(settings.Normal)

	tile := g.MapSystem.TileEntity(tilemap.Pos{X: 5, Y: 1})
	g.EventDispatcher.Enqueue(event.Event{Type: event.SpawnTower, Data: event.SpawnTowerData{Tile: tile}})
	g.EventDispatcher.Flush()
	if len(g.ECS.Towers) != 1 {
		t.Fatalf("towers = %d, want 1", len(g.ECS.Towers))
	}

	if outcome := run(g, 40); outcome != system.OutcomeWon {
		t.Fatalf("outcome = %v, want won", outcome)
	}
	if killed, _ := g.OutcomeSystem.Stats(); killed != 1 {
		t.Errorf("killed = %d, want 1", killed)
	}
	if g.Lives() != 3 {
		t.Errorf("lives = %d, want 3", g.Lives())
	}
}

func TestResetAndReplay(t *testing.T) {
	g := NewGame(loadLibrary(t))
	g.Start(settings.Hard)
	run(g, 20)
	if len(g.ECS.Enemies) == 0 {
		t.Fatal("no enemies after 20s")
	}

	g.Reset()
	if len(g.ECS.Transforms) != 0 {
		t.Errorf("%d entities survived reset", len(g.ECS.Transforms))
	}
	if g.EventDispatcher.Pending() != 0 {
		t.Error("events left after reset")
	}
	if g.Update(frame, input.NewActionState(input.DefaultMap())) != system.OutcomeNone {
		t.Error("stopped game produced an outcome")
	}

	g.Start(settings.Extra)
	if g.Lives() != 3 || g.WaveNumber() != 1 || g.Player() == 0 {
		t.Errorf("replay: lives %d wave %d player %d", g.Lives(), g.WaveNumber(), g.Player())
	}
	if w, _ := g.WaveSystem.Current(); w.HP != 8 {
		t.Errorf("extra difficulty hp = %d, want 8", w.HP)
	}
}
