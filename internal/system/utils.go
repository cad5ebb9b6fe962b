// internal/system/utils.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/entity"
	"undefended/internal/event"
	"undefended/internal/types"
)

// ApplyDamage наносит урон врагу, здоровье не опускается ниже нуля.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) {
	hp, ok := ecs.HitPoints[entityID]
	if !ok || damage <= 0 {
		return
	}
	hp.Damage(damage)
}

// playSound ставит звук в очередь событий.
func playSound(d *event.Dispatcher, s event.Sound) {
	d.Enqueue(event.PlaySoundEvent(s))
}

// collisionWith проверяет, что одна сторона пары удовлетворяет first, а другая — second,
// и возвращает их в этом порядке.
func collisionWith(e event.Event, first, second func(types.EntityID) bool) (types.EntityID, types.EntityID, bool) {
	c, ok := e.Data.(event.CollisionData)
	if !ok {
		return 0, 0, false
	}
	if first(c.A) && second(c.B) {
		return c.A, c.B, true
	}
	if first(c.B) && second(c.A) {
		return c.B, c.A, true
	}
	return 0, 0, false
}

func has[T any](m map[types.EntityID]T) func(types.EntityID) bool {
	return func(id types.EntityID) bool {
		_, ok := m[id]
		return ok
	}
}

// flatDistanceSq — квадрат расстояния по плоскости XZ.
func flatDistanceSq(a, b mgl32.Vec3) float32 {
	dx, dz := a[0]-b[0], a[2]-b[2]
	return dx*dx + dz*dz
}
