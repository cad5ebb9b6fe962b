// internal/entity/ecs.go
package entity

import (
	"sort"

	"undefended/internal/component"
	"undefended/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Transforms   map[types.EntityID]*component.Transform
	Parents      map[types.EntityID]types.EntityID
	Colliders    map[types.EntityID]*component.Collider
	Controllers  map[types.EntityID]*component.CharacterController
	Renderables  map[types.EntityID]*component.Renderable
	Outlines     map[types.EntityID]*component.Outline
	Players      map[types.EntityID]*component.Player
	Probes       map[types.EntityID]*component.Probe
	Floors       map[types.EntityID]*component.Floor
	Tiles        map[types.EntityID]*component.TilePos
	MovingFloors map[types.EntityID]*component.MovingFloor
	Lavas        map[types.EntityID]*component.Lava
	PlacedTowers map[types.EntityID]*component.PlacedTower
	Items        map[types.EntityID]*component.Item
	GrabbedItems map[types.EntityID]*component.GrabbedItem
	ItemSpawners map[types.EntityID]*component.ItemSpawner
	Enemies      map[types.EntityID]*component.Enemy
	PathIndices  map[types.EntityID]*component.PathIndex
	HitPoints    map[types.EntityID]*component.HitPoints
	Towers       map[types.EntityID]*component.Tower
	TowerHeads   map[types.EntityID]*component.TowerHead
	RangeSensors map[types.EntityID]*component.RangeSensor
	Targets      map[types.EntityID]*component.Target
	Ammo         map[types.EntityID]*component.Ammo
	Lasers       map[types.EntityID]*component.Laser

	// Persist — корневые сущности, которые переживают Reset (камера, музыка)
	Persist map[types.EntityID]struct{}
	Lives   *component.Lives

	// onDestroy вызывается перед удалением каждой сущности (физика закрывает контакты)
	onDestroy []func(id types.EntityID)
}

func NewECS() *ECS {
	ecs := &ECS{NextID: 1}
	ecs.clear()
	ecs.Persist = make(map[types.EntityID]struct{})
	ecs.Lives = &component.Lives{}
	return ecs
}

func (ecs *ECS) clear() {
	ecs.Transforms = make(map[types.EntityID]*component.Transform)
	ecs.Parents = make(map[types.EntityID]types.EntityID)
	ecs.Colliders = make(map[types.EntityID]*component.Collider)
	ecs.Controllers = make(map[types.EntityID]*component.CharacterController)
	ecs.Renderables = make(map[types.EntityID]*component.Renderable)
	ecs.Outlines = make(map[types.EntityID]*component.Outline)
	ecs.Players = make(map[types.EntityID]*component.Player)
	ecs.Probes = make(map[types.EntityID]*component.Probe)
	ecs.Floors = make(map[types.EntityID]*component.Floor)
	ecs.Tiles = make(map[types.EntityID]*component.TilePos)
	ecs.MovingFloors = make(map[types.EntityID]*component.MovingFloor)
	ecs.Lavas = make(map[types.EntityID]*component.Lava)
	ecs.PlacedTowers = make(map[types.EntityID]*component.PlacedTower)
	ecs.Items = make(map[types.EntityID]*component.Item)
	ecs.GrabbedItems = make(map[types.EntityID]*component.GrabbedItem)
	ecs.ItemSpawners = make(map[types.EntityID]*component.ItemSpawner)
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.PathIndices = make(map[types.EntityID]*component.PathIndex)
	ecs.HitPoints = make(map[types.EntityID]*component.HitPoints)
	ecs.Towers = make(map[types.EntityID]*component.Tower)
	ecs.TowerHeads = make(map[types.EntityID]*component.TowerHead)
	ecs.RangeSensors = make(map[types.EntityID]*component.RangeSensor)
	ecs.Targets = make(map[types.EntityID]*component.Target)
	ecs.Ammo = make(map[types.EntityID]*component.Ammo)
	ecs.Lasers = make(map[types.EntityID]*component.Laser)
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// OnDestroy регистрирует хук, вызываемый перед удалением сущности.
func (ecs *ECS) OnDestroy(fn func(id types.EntityID)) {
	ecs.onDestroy = append(ecs.onDestroy, fn)
}

// Alive — есть ли у сущности трансформ (все живые сущности его имеют).
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Transforms[id]
	return ok
}

// SetParent прикрепляет child к parent; parent == 0 отцепляет.
func (ecs *ECS) SetParent(child, parent types.EntityID) {
	if parent == 0 {
		delete(ecs.Parents, child)
		return
	}
	ecs.Parents[child] = parent
}

// ChildrenOf возвращает прямых детей, отсортированных по id.
func (ecs *ECS) ChildrenOf(parent types.EntityID) []types.EntityID {
	var children []types.EntityID
	for child, p := range ecs.Parents {
		if p == parent {
			children = append(children, child)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	return children
}

// Root поднимается по цепочке родителей до корня.
func (ecs *ECS) Root(id types.EntityID) types.EntityID {
	for {
		p, ok := ecs.Parents[id]
		if !ok {
			return id
		}
		id = p
	}
}

// SameHierarchy — принадлежат ли сущности одному дереву.
func (ecs *ECS) SameHierarchy(a, b types.EntityID) bool {
	return ecs.Root(a) == ecs.Root(b)
}

// GlobalTransform компонует трансформы по цепочке родителей.
func (ecs *ECS) GlobalTransform(id types.EntityID) (component.Transform, bool) {
	t, ok := ecs.Transforms[id]
	if !ok {
		return component.Transform{}, false
	}
	global := *t
	for p, has := ecs.Parents[id]; has; p, has = ecs.Parents[p] {
		pt, ok := ecs.Transforms[p]
		if !ok {
			break
		}
		global = pt.Mul(global)
	}
	return global, true
}

// Destroy удаляет сущность вместе со всеми потомками.
func (ecs *ECS) Destroy(id types.EntityID) {
	for _, child := range ecs.ChildrenOf(id) {
		ecs.Destroy(child)
	}
	for _, fn := range ecs.onDestroy {
		fn(id)
	}
	delete(ecs.Transforms, id)
	delete(ecs.Parents, id)
	delete(ecs.Colliders, id)
	delete(ecs.Controllers, id)
	delete(ecs.Renderables, id)
	delete(ecs.Outlines, id)
	delete(ecs.Players, id)
	delete(ecs.Probes, id)
	delete(ecs.Floors, id)
	delete(ecs.Tiles, id)
	delete(ecs.MovingFloors, id)
	delete(ecs.Lavas, id)
	delete(ecs.PlacedTowers, id)
	delete(ecs.Items, id)
	delete(ecs.GrabbedItems, id)
	delete(ecs.ItemSpawners, id)
	delete(ecs.Enemies, id)
	delete(ecs.PathIndices, id)
	delete(ecs.HitPoints, id)
	delete(ecs.Towers, id)
	delete(ecs.TowerHeads, id)
	delete(ecs.RangeSensors, id)
	delete(ecs.Targets, id)
	delete(ecs.Ammo, id)
	delete(ecs.Lasers, id)
	delete(ecs.Persist, id)
}

// Reset удаляет все корневые сущности, кроме постоянных.
func (ecs *ECS) Reset() {
	var roots []types.EntityID
	for id := range ecs.Transforms {
		if _, hasParent := ecs.Parents[id]; hasParent {
			continue
		}
		if _, keep := ecs.Persist[id]; keep {
			continue
		}
		roots = append(roots, id)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	for _, id := range roots {
		ecs.Destroy(id)
	}
}

// FindPlayer возвращает первого игрока, 0 если его нет.
func (ecs *ECS) FindPlayer() types.EntityID {
	var found types.EntityID
	for id := range ecs.Players {
		if found == 0 || id < found {
			found = id
		}
	}
	return found
}

// SortedIDs возвращает ключи карты компонентов в порядке возрастания.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
