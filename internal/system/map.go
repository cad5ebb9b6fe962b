// internal/system/map.go
package system

import (
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/component"
	"undefended/internal/config"
	"undefended/internal/defs"
	"undefended/internal/entity"
	"undefended/internal/event"
	"undefended/internal/types"
	"undefended/internal/utils"
	"undefended/pkg/tilemap"
)

// MapSystem строит карту и обслуживает подвижные платформы и спавнеры предметов.
type MapSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	Grid            *tilemap.Grid
	Level           defs.LevelDefinition
	// Path — точки пути врагов в мировых координатах
	Path []mgl32.Vec3
}

func NewMapSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, level defs.LevelDefinition) *MapSystem {
	s := &MapSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		Grid:            level.Grid(),
		Level:           level,
	}
	for _, c := range level.Path {
		s.Path = append(s.Path, s.Grid.MapToWorld(c.Pos()))
	}
	return s
}

func (s *MapSystem) floorAt(p tilemap.Pos) mgl32.Vec3 {
	return s.Grid.MapToWorld(p).Add(mgl32.Vec3{0, config.FloorOffsetY, 0})
}

// Spawn создаёт клетки пола, лаву, спавнеры и платформы.
func (s *MapSystem) Spawn() {
	half := s.Grid.TileSize.Mul(0.5)
	spawners := make(map[tilemap.Pos]defs.ItemKind)
	for _, sp := range s.Level.Spawners {
		spawners[sp.Cell.Pos()] = sp.Item
	}

	for _, p := range s.Grid.Floors() {
		id := s.ecs.NewEntity()
		s.ecs.Transforms[id] = component.NewTransform(s.floorAt(p))
		s.ecs.Colliders[id] = component.Cuboid(half[0], half[1], half[2])
		s.ecs.Floors[id] = &component.Floor{}
		s.ecs.Tiles[id] = &component.TilePos{Pos: p}
		tint := config.FloorColor
		model := component.ModelFloor
		if kind, ok := spawners[p]; ok {
			s.ecs.ItemSpawners[id] = &component.ItemSpawner{
				Kind:    kind,
				Respawn: utils.NewTimer(config.ItemRespawnTime, utils.TimerOnce),
			}
			tint = config.SpawnerColor
			model = component.ModelSpawnerPad
		}
		s.ecs.Renderables[id] = &component.Renderable{Model: model, Color: tint, Scale: 1}
	}

	for _, m := range s.Level.Movers {
		s.spawnMover(m, half)
	}

	// лава — сенсор под всей картой
	lava := s.ecs.NewEntity()
	s.ecs.Transforms[lava] = component.NewTransform(mgl32.Vec3{0, config.LavaDepth, 0})
	s.ecs.Colliders[lava] = component.Cuboid(
		float32(s.Grid.Cols)*s.Grid.TileSize[0]*2,
		config.LavaThickness,
		float32(s.Grid.Rows)*s.Grid.TileSize[2]*2,
	).AsSensor()
	s.ecs.Lavas[lava] = &component.Lava{}

	for _, id := range entity.SortedIDs(s.ecs.ItemSpawners) {
		s.spawnItem(id)
	}
	log.Printf("[Map] spawned %q: %d floors, %d movers, %d spawners",
		s.Level.Name, len(s.ecs.Floors), len(s.ecs.MovingFloors), len(s.ecs.ItemSpawners))
}

func (s *MapSystem) spawnMover(m defs.MoverDefinition, half mgl32.Vec3) {
	period := m.Period
	if period <= 0 {
		period = config.MovingFloorPeriod
	}
	from, to := s.floorAt(m.From.Pos()), s.floorAt(m.To.Pos())
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(from)
	s.ecs.Colliders[id] = component.Cuboid(half[0], half[1], half[2])
	s.ecs.Floors[id] = &component.Floor{}
	s.ecs.MovingFloors[id] = &component.MovingFloor{From: from, To: to, Period: period}
	s.ecs.Renderables[id] = &component.Renderable{Model: component.ModelMovingFloor, Color: config.MovingFloorColor, Scale: 1}
}

// MoverPosition — положение платформы в фазе phase ∈ [0, 1): туда и обратно со сглаживанием.
func MoverPosition(from, to mgl32.Vec3, phase float64) mgl32.Vec3 {
	p := math.Mod(phase, 1) * 2
	if p > 1 {
		p = 2 - p
	}
	t := utils.SmoothStep(float32(p))
	return from.Add(to.Sub(from).Mul(t))
}

// Update двигает платформы и восстанавливает предметы на спавнерах.
func (s *MapSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.MovingFloors) {
		mf := s.ecs.MovingFloors[id]
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		mf.Phase = math.Mod(mf.Phase+deltaTime/mf.Period, 1)
		next := MoverPosition(mf.From, mf.To, mf.Phase)
		mf.Delta = next.Sub(t.Translation)
		t.Translation = next
	}

	for _, id := range entity.SortedIDs(s.ecs.ItemSpawners) {
		sp := s.ecs.ItemSpawners[id]
		if sp.Item != 0 {
			_, grabbed := s.ecs.GrabbedItems[sp.Item]
			if s.ecs.Alive(sp.Item) && !grabbed {
				continue
			}
			// предмет забрали, начинаем отсчёт
			sp.Item = 0
			sp.Respawn.Reset()
		}
		sp.Respawn.Tick(deltaTime)
		if sp.Respawn.JustFinished() {
			s.spawnItem(id)
		}
	}
}

func (s *MapSystem) spawnItem(spawner types.EntityID) {
	sp := s.ecs.ItemSpawners[spawner]
	tile := s.ecs.Tiles[spawner]
	if sp == nil || tile == nil {
		return
	}
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(s.Grid.MapToWorld(tile.Pos).Add(mgl32.Vec3{0, config.ItemLift, 0}))
	s.ecs.Colliders[id] = component.Ball(config.ItemRadius).AsSensor()
	s.ecs.Items[id] = &component.Item{Kind: sp.Kind, Spawner: spawner}
	s.ecs.Renderables[id] = &component.Renderable{Model: itemModel(sp.Kind), Color: itemColor(sp.Kind), Scale: 1}
	sp.Item = id
}

func itemModel(kind defs.ItemKind) component.ModelID {
	if kind == defs.ItemTowerKit {
		return component.ModelTowerKit
	}
	return component.ModelLaserAmmo
}

func itemColor(kind defs.ItemKind) color.RGBA {
	if kind == defs.ItemTowerKit {
		return config.TowerKitColor
	}
	return config.LaserAmmoColor
}

// TileEntity ищет клетку пола по координатам; подвижные платформы не учитываются.
func (s *MapSystem) TileEntity(p tilemap.Pos) types.EntityID {
	for id, tp := range s.ecs.Tiles {
		if tp.Pos == p {
			return id
		}
	}
	return 0
}

// Buildable — можно ли поставить башню на клетку.
func (s *MapSystem) Buildable(tile types.EntityID) bool {
	if _, ok := s.ecs.Floors[tile]; !ok {
		return false
	}
	if _, moving := s.ecs.MovingFloors[tile]; moving {
		return false
	}
	if _, placed := s.ecs.PlacedTowers[tile]; placed {
		return false
	}
	if _, spawner := s.ecs.ItemSpawners[tile]; spawner {
		return false
	}
	return true
}
