package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/defs"
	"undefended/internal/entity"
	"undefended/internal/event"
	"undefended/internal/physics"
)

// testLevel: строка 0 — канал пути, две строки пола, спавнеры по углам.
var testLevel = defs.LevelDefinition{
	Name: "test",
	Rows: []string{
		".....",
		"#####",
		"#####",
	},
	Start: defs.Cell{1, 2},
	Path:  []defs.Cell{{0, 0}, {4, 0}},
	Spawners: []defs.SpawnerDefinition{
		{Cell: defs.Cell{0, 2}, Item: defs.ItemTowerKit},
		{Cell: defs.Cell{4, 2}, Item: defs.ItemLaserAmmo},
	},
}

var testTower = defs.TowerDefinition{
	ID:         "laser",
	Ammo:       20,
	Cooldown:   2.5,
	Range:      4,
	Targeting:  defs.TargetNearest,
	LaserSpeed: 8,
	Damage:     1,
}

type fixture struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	world      *physics.World
	maps       *MapSystem
	events     []event.Event
}

func newFixture(t *testing.T, level defs.LevelDefinition) *fixture {
	t.Helper()
	f := &fixture{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
	}
	f.world = physics.NewWorld(f.ecs, f.dispatcher)
	f.maps = NewMapSystem(f.ecs, f.dispatcher, level)
	f.maps.Spawn()
	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) })
	for _, et := range []event.EventType{
		event.PlaySound, event.TowerPlaced, event.EnemyKilled, event.EnemyReachedEnd,
		event.AmmoDepleted, event.ItemGrabbed, event.SpawnEnemy, event.SpawnTower,
		event.WaveStarted, event.WaveEnded,
	} {
		f.dispatcher.Subscribe(et, record)
	}
	return f
}

func (f *fixture) step() {
	f.world.Step()
	f.dispatcher.Flush()
}

// count считает записанные события типа et, а для звуков — с данными data.
func (f *fixture) count(et event.EventType, data any) int {
	n := 0
	for _, e := range f.events {
		if e.Type != et {
			continue
		}
		if data != nil && e.Data != data {
			continue
		}
		n++
	}
	return n
}

func (f *fixture) sounds(s event.Sound) int { return f.count(event.PlaySound, s) }

func (f *fixture) tile(x, y int) mgl32.Vec3 {
	return f.maps.Grid.MapToWorld(defs.Cell{x, y}.Pos())
}

func approx(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-3)
}
