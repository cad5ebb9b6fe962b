// internal/physics/world.go
package physics

import (
	"sort"

	"undefended/internal/entity"
	"undefended/internal/event"
	"undefended/internal/types"
)

type pair struct {
	a, b types.EntityID
}

func makePair(a, b types.EntityID) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// World отслеживает пересечения коллайдеров и рассылает
// CollisionStarted / CollisionStopped через диспетчер.
type World struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	active     map[pair]struct{}
}

func NewWorld(ecs *entity.ECS, dispatcher *event.Dispatcher) *World {
	w := &World{
		ecs:        ecs,
		dispatcher: dispatcher,
		active:     make(map[pair]struct{}),
	}
	ecs.OnDestroy(w.forget)
	return w
}

// forget закрывает все контакты удаляемой сущности.
func (w *World) forget(id types.EntityID) {
	if _, ok := w.ecs.Colliders[id]; !ok {
		return
	}
	var closed []pair
	for p := range w.active {
		if p.a == id || p.b == id {
			closed = append(closed, p)
		}
	}
	sortPairs(closed)
	for _, p := range closed {
		delete(w.active, p)
		w.dispatcher.Enqueue(event.Event{Type: event.CollisionStopped, Data: event.CollisionData{A: p.a, B: p.b}})
	}
}

// RemoveCollider снимает коллайдер с живой сущности (предмет взяли в руки).
func (w *World) RemoveCollider(id types.EntityID) {
	w.forget(id)
	delete(w.ecs.Colliders, id)
}

// Active — пересекается ли пара сейчас.
func (w *World) Active(a, b types.EntityID) bool {
	_, ok := w.active[makePair(a, b)]
	return ok
}

// Step пересчитывает пересечения. События ставятся в очередь диспетчера:
// сначала все Stopped, потом все Started, каждая группа по возрастанию пары.
func (w *World) Step() {
	ids := entity.SortedIDs(w.ecs.Colliders)
	shapes := make([]Shape, len(ids))
	roots := make([]types.EntityID, len(ids))
	for i, id := range ids {
		t, ok := w.ecs.GlobalTransform(id)
		if !ok {
			continue
		}
		shapes[i] = WorldShape(w.ecs.Colliders[id], t)
		roots[i] = w.ecs.Root(id)
	}

	current := make(map[pair]struct{}, len(w.active))
	for i := 0; i < len(ids); i++ {
		if roots[i] == 0 {
			continue
		}
		ci := w.ecs.Colliders[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			cj := w.ecs.Colliders[ids[j]]
			if !ci.Sensor && !cj.Sensor {
				continue
			}
			if roots[j] == 0 || roots[i] == roots[j] {
				continue
			}
			if Overlaps(shapes[i], shapes[j]) {
				current[pair{ids[i], ids[j]}] = struct{}{}
			}
		}
	}

	var stopped, started []pair
	for p := range w.active {
		if _, ok := current[p]; !ok {
			stopped = append(stopped, p)
		}
	}
	for p := range current {
		if _, ok := w.active[p]; !ok {
			started = append(started, p)
		}
	}
	sortPairs(stopped)
	sortPairs(started)
	for _, p := range stopped {
		w.dispatcher.Enqueue(event.Event{Type: event.CollisionStopped, Data: event.CollisionData{A: p.a, B: p.b}})
	}
	for _, p := range started {
		w.dispatcher.Enqueue(event.Event{Type: event.CollisionStarted, Data: event.CollisionData{A: p.a, B: p.b}})
	}
	w.active = current
}

// Clear забывает все контакты без событий (после полного сброса мира).
func (w *World) Clear() {
	w.active = make(map[pair]struct{})
}

func sortPairs(ps []pair) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].a != ps[j].a {
			return ps[i].a < ps[j].a
		}
		return ps[i].b < ps[j].b
	})
}
