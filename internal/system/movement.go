// internal/system/movement.go
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/component"
	"undefended/internal/config"
	"undefended/internal/entity"
	"undefended/internal/event"
	"undefended/internal/types"
)

// EnemySystem спавнит врагов, ведёт их по пути и убирает мёртвых.
type EnemySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	path            []mgl32.Vec3
	Speed           float32
}

func NewEnemySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, path []mgl32.Vec3) *EnemySystem {
	es := &EnemySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		path:            path,
		Speed:           config.EnemySpeed,
	}
	eventDispatcher.Subscribe(event.SpawnEnemy, es)
	return es
}

func (s *EnemySystem) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.SpawnEnemyData); ok && e.Type == event.SpawnEnemy {
		s.spawn(data.HP)
	}
}

func (s *EnemySystem) spawn(hp int) types.EntityID {
	if len(s.path) == 0 {
		return 0
	}
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(s.path[0])
	s.ecs.Colliders[id] = component.Ball(config.EnemyRadius).AsSensor()
	s.ecs.Enemies[id] = &component.Enemy{}
	s.ecs.PathIndices[id] = &component.PathIndex{Index: 0}
	s.ecs.HitPoints[id] = component.NewHitPoints(hp)
	s.ecs.Renderables[id] = &component.Renderable{Model: component.ModelEnemy, Color: config.EnemyColor, Scale: 1}
	return id
}

// Update двигает врагов к следующей точке пути. Дошедший до конца
// отнимает жизнь и исчезает.
func (s *EnemySystem) Update(deltaTime float64) {
	step := s.Speed * float32(deltaTime)
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		t, ok := s.ecs.Transforms[id]
		idx, hasIdx := s.ecs.PathIndices[id]
		if !ok || !hasIdx {
			continue
		}
		if idx.Index+1 >= len(s.path) {
			s.reachEnd(id)
			continue
		}
		waypoint := s.path[idx.Index+1]
		diff := waypoint.Sub(t.Translation)
		dist := diff.Len()

		enemy := s.ecs.Enemies[id]
		enemy.Spin += float32(deltaTime)
		if flat := (mgl32.Vec2{diff[0], diff[2]}); flat.Len() > 0 {
			yaw := float32(math.Atan2(float64(flat[0]), float64(flat[1])))
			t.Rotation = component.YawQuat(yaw).Mul(mgl32.QuatRotate(enemy.Spin, mgl32.Vec3{0, 0, 1}))
		}

		if step < dist {
			t.Translation[0] += step / dist * diff[0]
			t.Translation[2] += step / dist * diff[2]
		} else {
			t.Translation[0] = waypoint[0]
			t.Translation[2] = waypoint[2]
			idx.Index++
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		if hp, ok := s.ecs.HitPoints[id]; ok && hp.Current == 0 {
			s.ecs.Destroy(id)
			s.eventDispatcher.Enqueue(event.Event{Type: event.EnemyKilled, Data: id})
		}
	}
}

func (s *EnemySystem) reachEnd(id types.EntityID) {
	playSound(s.eventDispatcher, event.SoundDamage)
	s.ecs.Lives.LoseLife()
	s.ecs.Destroy(id)
	s.eventDispatcher.Enqueue(event.Event{Type: event.EnemyReachedEnd, Data: id})
}
