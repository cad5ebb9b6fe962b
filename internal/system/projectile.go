// internal/system/projectile.go
package system

import (
	"undefended/internal/entity"
	"undefended/internal/event"
)

// LaserSystem ведёт лазеры к целям и наносит урон при попадании.
type LaserSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewLaserSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *LaserSystem {
	return &LaserSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *LaserSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Lasers) {
		laser := s.ecs.Lasers[id]
		t, ok := s.ecs.Transforms[id]
		target, hasTarget := s.ecs.Targets[id]
		if !ok || !hasTarget {
			s.ecs.Destroy(id)
			continue
		}
		enemy, alive := s.ecs.Transforms[target.ID]
		if _, isEnemy := s.ecs.Enemies[target.ID]; !alive || !isEnemy {
			// цель пропала
			s.ecs.Destroy(id)
			continue
		}
		diff := enemy.Translation.Sub(t.Translation)
		dist := diff.Len()
		step := laser.Speed * float32(deltaTime)
		if dist > step {
			t.Translation = t.Translation.Add(diff.Mul(step / dist))
			continue
		}
		ApplyDamage(s.ecs, target.ID, laser.Damage)
		s.ecs.Destroy(id)
	}
}
