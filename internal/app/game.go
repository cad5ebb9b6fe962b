// internal/app/game.go
package app

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/camera"
	"undefended/internal/config"
	"undefended/internal/defs"
	"undefended/internal/entity"
	"undefended/internal/event"
	"undefended/internal/input"
	"undefended/internal/physics"
	"undefended/internal/settings"
	"undefended/internal/system"
	"undefended/internal/types"
)

// Game holds the main game state and logic.
type Game struct {
	Library         *defs.Library
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	World           *physics.World
	Controller      *physics.Controller
	MapSystem       *system.MapSystem
	PlayerSystem    *system.PlayerSystem
	EnemySystem     *system.EnemySystem
	TowerSystem     *system.TowerSystem
	LaserSystem     *system.LaserSystem
	WaveSystem      *system.WaveSystem
	OutlineSystem   *system.OutlineSystem
	OutcomeSystem   *system.OutcomeSystem
	Camera          *camera.Rig
	Difficulty      settings.Difficulty

	// Game state
	gameTime float64
	started  bool
}

// NewGame собирает мир и системы. Карта появляется только в Start.
func NewGame(lib *defs.Library) *Game {
	if lib == nil {
		panic("library cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Library:         lib,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		World:           physics.NewWorld(ecs, eventDispatcher),
		Controller:      physics.NewController(ecs),
		Camera:          camera.NewRig(),
	}
	g.MapSystem = system.NewMapSystem(ecs, eventDispatcher, lib.Level)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, g.World, g.MapSystem)
	g.EnemySystem = system.NewEnemySystem(ecs, eventDispatcher, g.MapSystem.Path)
	g.TowerSystem = system.NewTowerSystem(ecs, eventDispatcher, g.MapSystem, lib.Tower())
	g.LaserSystem = system.NewLaserSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(eventDispatcher, lib.Waves)
	g.OutlineSystem = system.NewOutlineSystem(ecs, g.PlayerSystem, g.MapSystem)
	g.OutcomeSystem = system.NewOutcomeSystem(ecs, eventDispatcher, g.WaveSystem)
	return g
}

// Start строит карту и отправляет игрока на стартовую клетку.
func (g *Game) Start(difficulty settings.Difficulty) {
	if g.started {
		g.Reset()
	}
	g.Difficulty = difficulty
	g.ECS.Lives.Value = config.DefaultLives
	g.WaveSystem.Rewind(g.Library.Modifier(difficulty.String()))
	g.OutcomeSystem.Reset()
	g.MapSystem.Spawn()

	start := g.Library.Level.Start.Pos()
	g.EventDispatcher.Enqueue(event.Event{Type: event.SpawnPlayer, Data: event.TileData{Tile: start}})
	g.EventDispatcher.Flush()
	g.Camera.Snap(g.MapSystem.Grid.MapToWorld(start))
	g.gameTime = 0
	g.started = true
	log.Printf("[Game] started on %s, %d waves", difficulty, g.WaveSystem.Total())
}

// Update прогоняет один кадр игры и возвращает итог партии.
func (g *Game) Update(deltaTime float64, actions *input.ActionState) system.Outcome {
	if !g.started {
		return system.OutcomeNone
	}
	dt := math.Min(deltaTime, config.MaxDeltaTime)
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.PlayerSystem.ApplyControls(actions)
	g.MapSystem.Update(dt)
	g.Controller.Update(dt)
	g.EnemySystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.LaserSystem.Update(dt)

	g.World.Step()
	g.EventDispatcher.Flush()

	g.TowerSystem.Update(dt)
	g.PlayerSystem.HandleGrab(actions)
	g.EventDispatcher.Flush()
	g.OutlineSystem.Update()

	if pos, ok := g.PlayerPosition(); ok {
		g.Camera.Update(pos, dt)
	}
	return g.OutcomeSystem.Update()
}

// Reset удаляет всё, кроме постоянных сущностей (выход из GameOver).
func (g *Game) Reset() {
	g.ECS.Reset()
	g.World.Clear()
	g.EventDispatcher.Drop()
	g.ECS.Lives.Value = config.DefaultLives
	g.WaveSystem.Rewind(g.Library.Modifier(g.Difficulty.String()))
	g.OutcomeSystem.Reset()
	g.started = false
}

// Over — закончилась ли партия и выиграна ли она.
func (g *Game) Over() (over, won bool) {
	switch g.OutcomeSystem.Current() {
	case system.OutcomeWon:
		return true, true
	case system.OutcomeLost:
		return true, false
	}
	return false, false
}

func (g *Game) Started() bool { return g.started }

func (g *Game) Lives() int { return g.ECS.Lives.Value }

func (g *Game) GameTime() float64 { return g.gameTime }

// WaveNumber — номер текущей волны с единицы; после последней остаётся на ней.
func (g *Game) WaveNumber() int {
	n := g.WaveSystem.Index() + 1
	if total := g.WaveSystem.Total(); n > total {
		return total
	}
	return n
}

// Countdown — секунд до следующей волны, 0 если волна идёт или волн больше нет.
func (g *Game) Countdown() float64 { return g.WaveSystem.Countdown() }

func (g *Game) Player() types.EntityID { return g.ECS.FindPlayer() }

func (g *Game) PlayerPosition() (mgl32.Vec3, bool) {
	t, ok := g.ECS.Transforms[g.Player()]
	if !ok {
		return mgl32.Vec3{}, false
	}
	return t.Translation, true
}

// HeldItem — что игрок держит в руках.
func (g *Game) HeldItem() (defs.ItemKind, bool) {
	player := g.Player()
	if player == 0 {
		return "", false
	}
	item, ok := g.ECS.Items[g.PlayerSystem.HeldItem(player)]
	if !ok {
		return "", false
	}
	return item.Kind, true
}
