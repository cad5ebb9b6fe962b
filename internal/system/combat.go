// internal/system/combat.go
package system

import (
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
)

// TowerSystem строит башни, следит за врагами в радиусе, выбирает цель,
// поворачивает голову и стреляет лазерами.
type TowerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	mapSystem       *MapSystem
	def             defs.TowerDefinition
}

func NewTowerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, mapSystem *MapSystem, def defs.TowerDefinition) *TowerSystem {
	ts := &TowerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		mapSystem:       mapSystem,
		def:             def,
	}
	eventDispatcher.Subscribe(event.SpawnTower, ts)
	eventDispatcher.Subscribe(event.CollisionStarted, ts)
	eventDispatcher.Subscribe(event.CollisionStopped, ts)
	return ts
}

func (s *TowerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpawnTower:
		if data, ok := e.Data.(event.SpawnTowerData); ok {
			s.spawn(data.Tile)
		}
	case event.CollisionStarted, event.CollisionStopped:
		s.ranging(e)
	}
}

func (s *TowerSystem) spawn(tile types.EntityID) types.EntityID {
	tp, ok := s.ecs.Tiles[tile]
	if !ok {
		return 0
	}
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(s.mapSystem.Grid.MapToWorld(tp.Pos).Add(mgl32.Vec3{0, config.TowerLift, 0}))
	s.ecs.Colliders[id] = component.Cuboid(config.TowerHalfX, config.TowerHalfY, config.TowerHalfZ).AsSolid()
	s.ecs.Targets[id] = &component.Target{}
	s.ecs.Ammo[id] = component.NewAmmo(s.def.Ammo)
	s.ecs.Renderables[id] = &component.Renderable{Model: component.ModelTowerBase, Color: config.TowerBaseColor, Scale: 1}
	s.ecs.Outlines[id] = &component.Outline{Color: config.OutlineColor, Width: config.OutlineWidth, Permanent: true}
	tower := &component.Tower{
		DefID:     s.def.ID,
		Targeting: s.def.Targeting,
		Tile:      tp.Pos,
		Cooldown:  utils.NewTimer(s.def.Cooldown, utils.TimerRepeating),
		InRange:   make(map[types.EntityID]struct{}),
	}
	s.ecs.Towers[id] = tower

	head := s.ecs.NewEntity()
	s.ecs.Transforms[head] = component.NewTransform(mgl32.Vec3{})
	s.ecs.SetParent(head, id)
	s.ecs.TowerHeads[head] = &component.TowerHead{}
	s.ecs.Renderables[head] = &component.Renderable{Model: component.ModelTowerHead, Color: config.TowerHeadColor, Scale: 1}
	tower.Head = head

	sensor := s.ecs.NewEntity()
	s.ecs.Transforms[sensor] = component.NewTransform(mgl32.Vec3{})
	s.ecs.SetParent(sensor, id)
	s.ecs.Colliders[sensor] = component.Ball(float32(s.def.Range)).AsSensor()
	s.ecs.RangeSensors[sensor] = &component.RangeSensor{Tower: id}
	tower.Range = sensor

	s.ecs.PlacedTowers[tile] = &component.PlacedTower{Tower: id}
	playSound(s.eventDispatcher, event.SoundBuild)
	s.eventDispatcher.Enqueue(event.Event{Type: event.TowerPlaced, Data: id})
	log.Printf("[Tower] built %s at %v", s.def.ID, tp.Pos)
	return id
}

// ranging ведёт множество врагов в радиусе по событиям сенсора.
func (s *TowerSystem) ranging(e event.Event) {
	sensor, enemy, ok := collisionWith(e, has(s.ecs.RangeSensors), has(s.ecs.Enemies))
	if !ok {
		// враг уже удалён: Stopped приходит после Destroy
		if e.Type != event.CollisionStopped {
			return
		}
		sensor, enemy, ok = collisionWith(e, has(s.ecs.RangeSensors), func(types.EntityID) bool { return true })
		if !ok {
			return
		}
	}
	tower, ok := s.ecs.Towers[s.ecs.RangeSensors[sensor].Tower]
	if !ok {
		return
	}
	if e.Type == event.CollisionStarted {
		tower.InRange[enemy] = struct{}{}
	} else {
		delete(tower.InRange, enemy)
	}
}

func (s *TowerSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		s.target(id)
		s.aim(id, deltaTime)
		s.shoot(id, deltaTime)
	}
}

// target оставляет живую цель в радиусе, иначе выбирает новую по стратегии башни.
func (s *TowerSystem) target(id types.EntityID) {
	tower := s.ecs.Towers[id]
	target := s.ecs.Targets[id]
	if target == nil {
		return
	}
	if target.ID != 0 {
		_, inRange := tower.InRange[target.ID]
		_, alive := s.ecs.Enemies[target.ID]
		if inRange && alive {
			return
		}
	}
	target.ID = s.choose(id, tower)
}

func (s *TowerSystem) choose(id types.EntityID, tower *component.Tower) types.EntityID {
	towerPos := s.ecs.Transforms[id].Translation
	var (
		best      types.EntityID
		bestIndex = -1
		bestDist  float32
	)
	for _, enemy := range entity.SortedIDs(tower.InRange) {
		t, ok := s.ecs.Transforms[enemy]
		idx, hasIdx := s.ecs.PathIndices[enemy]
		if !ok || !hasIdx {
			continue
		}
		switch tower.Targeting {
		case defs.TargetProgress:
			// дальше по пути, при равенстве — ближе к следующей точке
			next := idx.Index + 1
			if next >= len(s.mapSystem.Path) {
				next = len(s.mapSystem.Path) - 1
			}
			d := t.Translation.Sub(s.mapSystem.Path[next]).LenSqr()
			if idx.Index > bestIndex || (idx.Index == bestIndex && d < bestDist) {
				best, bestIndex, bestDist = enemy, idx.Index, d
			}
		default:
			d := t.Translation.Sub(towerPos).LenSqr()
			if best == 0 || d < bestDist {
				best, bestDist = enemy, d
			}
		}
	}
	return best
}

// aim поворачивает голову к цели.
func (s *TowerSystem) aim(id types.EntityID, deltaTime float64) {
	tower := s.ecs.Towers[id]
	target := s.ecs.Targets[id]
	if target == nil || target.ID == 0 {
		return
	}
	enemy, ok := s.ecs.Transforms[target.ID]
	head, hasHead := s.ecs.Transforms[tower.Head]
	if !ok || !hasHead {
		return
	}
	towerPos := s.ecs.Transforms[id].Translation
	diff := enemy.Translation.Sub(towerPos)
	if flatDistanceSq(enemy.Translation, towerPos) == 0 {
		return
	}
	// голова смотрит вдоль +Z
	want := component.YawQuat(float32(math.Atan2(float64(diff[0]), float64(diff[2]))))
	t := float32(math.Min(1, deltaTime*config.TowerHeadTurnSpeed))
	head.Rotation = mgl32.QuatSlerp(head.Rotation, want, t).Normalize()
}

// shoot тратит заряд и выпускает лазер каждый раз, когда срабатывает перезарядка.
func (s *TowerSystem) shoot(id types.EntityID, deltaTime float64) {
	tower := s.ecs.Towers[id]
	tower.Cooldown.Tick(deltaTime)
	if !tower.Cooldown.JustFinished() {
		return
	}
	target := s.ecs.Targets[id]
	ammo := s.ecs.Ammo[id]
	if target == nil || target.ID == 0 || ammo == nil || ammo.Current == 0 {
		return
	}
	head, ok := s.ecs.GlobalTransform(tower.Head)
	if !ok {
		log.Printf("[Tower] headless tower %d", id)
		return
	}
	ammo.Current--

	laser := s.ecs.NewEntity()
	s.ecs.Transforms[laser] = &component.Transform{
		Translation: head.TransformPoint(mgl32.Vec3{0, config.LaserOffsetY, config.LaserOffsetZ}),
		Rotation:    head.Rotation,
	}
	s.ecs.Lasers[laser] = &component.Laser{Speed: float32(s.def.LaserSpeed), Damage: s.def.Damage}
	s.ecs.Targets[laser] = &component.Target{ID: target.ID}
	s.ecs.Renderables[laser] = &component.Renderable{Model: component.ModelLaser, Color: config.LaserColor, Scale: 1}
	playSound(s.eventDispatcher, event.SoundLaser)

	if ammo.Current == 0 {
		playSound(s.eventDispatcher, event.SoundPowerDown)
		s.eventDispatcher.Enqueue(event.Event{Type: event.AmmoDepleted, Data: id})
	}
}
