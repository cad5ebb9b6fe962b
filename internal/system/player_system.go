// internal/system/player_system.go
package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/component"
	"undefended/internal/config"
	"undefended/internal/defs"
	"undefended/internal/entity"
	"undefended/internal/event"
	"undefended/internal/input"
	"undefended/internal/physics"
	"undefended/internal/types"
	"undefended/pkg/tilemap"
)

// PlayerSystem — спавн игрока, управление, пробы и действия с предметами.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	world           *physics.World
	mapSystem       *MapSystem
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, world *physics.World, mapSystem *MapSystem) *PlayerSystem {
	ps := &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		world:           world,
		mapSystem:       mapSystem,
	}
	eventDispatcher.Subscribe(event.SpawnPlayer, ps)
	eventDispatcher.Subscribe(event.CollisionStarted, ps)
	eventDispatcher.Subscribe(event.CollisionStopped, ps)
	return ps
}

func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpawnPlayer:
		if data, ok := e.Data.(event.TileData); ok {
			s.spawn(data.Tile)
		}
	case event.CollisionStarted:
		s.cursorStarted(e)
		s.itemProbeStarted(e)
		s.trackLastTile(e)
		s.lava(e)
	case event.CollisionStopped:
		s.cursorStopped(e)
		s.itemProbeStopped(e)
	}
}

func (s *PlayerSystem) spawn(tile tilemap.Pos) {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(s.mapSystem.Grid.MapToWorld(tile).Add(mgl32.Vec3{0, config.PlayerSpawnLift, 0}))
	s.ecs.Colliders[id] = component.CapsuleY(config.PlayerCapsuleHalf, config.PlayerCapsuleRadius)
	s.ecs.Controllers[id] = &component.CharacterController{}
	s.ecs.Players[id] = &component.Player{LastTile: tile}
	s.ecs.Renderables[id] = &component.Renderable{Model: component.ModelPlayer, Color: config.PlayerColor, Scale: 1}

	s.probe(id, component.TileProbe, mgl32.Vec3{},
		component.Segment(mgl32.Vec3{}, mgl32.Vec3{0, -config.TileProbeLength, 0}))
	s.probe(id, component.ItemProbe, mgl32.Vec3{},
		component.Segment(mgl32.Vec3{0, config.ItemProbeHeight, 0}, mgl32.Vec3{0, config.ItemProbeHeight, -config.ItemProbeLength}))
	s.probe(id, component.CursorProbe, mgl32.Vec3{0, config.CursorOffsetY, config.CursorOffsetZ},
		component.Segment(mgl32.Vec3{}, mgl32.Vec3{0, -config.CursorProbeLength, 0}))
	log.Printf("[Player] spawned at %v", tile)
}

func (s *PlayerSystem) probe(player types.EntityID, kind component.ProbeKind, at mgl32.Vec3, shape *component.Collider) {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(at)
	s.ecs.SetParent(id, player)
	s.ecs.Colliders[id] = shape.AsSensor()
	s.ecs.Probes[id] = &component.Probe{Kind: kind}
}

// probeOwner возвращает игрока-владельца пробы нужного вида.
func (s *PlayerSystem) probeOwner(kind component.ProbeKind) func(types.EntityID) bool {
	return func(id types.EntityID) bool {
		p, ok := s.ecs.Probes[id]
		if !ok || p.Kind != kind {
			return false
		}
		_, isPlayer := s.ecs.Players[s.ecs.Parents[id]]
		return isPlayer
	}
}

func (s *PlayerSystem) playerOf(probe types.EntityID) *component.Player {
	return s.ecs.Players[s.ecs.Parents[probe]]
}

func (s *PlayerSystem) cursorStarted(e event.Event) {
	probe, floor, ok := collisionWith(e, s.probeOwner(component.CursorProbe), has(s.ecs.Floors))
	if !ok {
		return
	}
	s.playerOf(probe).SelectedTile = floor
}

func (s *PlayerSystem) cursorStopped(e event.Event) {
	probe, floor, ok := collisionWith(e, s.probeOwner(component.CursorProbe), func(id types.EntityID) bool { return true })
	if !ok {
		return
	}
	if p := s.playerOf(probe); p.SelectedTile == floor {
		p.SelectedTile = 0
	}
}

func (s *PlayerSystem) itemProbeStarted(e event.Event) {
	probe, item, ok := collisionWith(e, s.probeOwner(component.ItemProbe), has(s.ecs.Items))
	if !ok {
		return
	}
	s.playerOf(probe).SelectedItem = item
}

func (s *PlayerSystem) itemProbeStopped(e event.Event) {
	probe, item, ok := collisionWith(e, s.probeOwner(component.ItemProbe), func(id types.EntityID) bool { return true })
	if !ok {
		return
	}
	if p := s.playerOf(probe); p.SelectedItem == item {
		p.SelectedItem = 0
	}
}

// trackLastTile запоминает последнюю неподвижную клетку под игроком.
func (s *PlayerSystem) trackLastTile(e event.Event) {
	probe, floor, ok := collisionWith(e, s.probeOwner(component.TileProbe), has(s.ecs.Tiles))
	if !ok {
		return
	}
	if _, moving := s.ecs.MovingFloors[floor]; moving {
		return
	}
	s.playerOf(probe).LastTile = s.ecs.Tiles[floor].Pos
}

// lava возвращает упавшего игрока на последнюю клетку и сжигает предметы в руках.
func (s *PlayerSystem) lava(e event.Event) {
	_, player, ok := collisionWith(e, has(s.ecs.Lavas), has(s.ecs.Players))
	if !ok {
		return
	}
	p := s.ecs.Players[player]
	pos := p.LastTile
	for _, t := range s.ecs.Towers {
		if t.Tile == pos {
			pos = s.mapSystem.Level.Start.Pos()
			break
		}
	}
	if t, ok := s.ecs.Transforms[player]; ok {
		t.Translation = s.mapSystem.Grid.MapToWorld(pos)
	}
	if cc, ok := s.ecs.Controllers[player]; ok {
		cc.Velocity = mgl32.Vec3{}
		cc.Jumping = false
	}
	for _, child := range s.ecs.ChildrenOf(player) {
		if _, isItem := s.ecs.Items[child]; isItem {
			s.ecs.Destroy(child)
		}
	}
	log.Printf("[Player] fell into lava, back to %v", pos)
}

// ApplyControls переводит действия в желаемое движение контроллера.
func (s *PlayerSystem) ApplyControls(actions *input.ActionState) {
	var direction mgl32.Vec3
	turnInPlace := false
	if actions.Pressed(input.ActionRun) {
		axis := actions.ClampedAxis(input.ActionRun)
		direction = mgl32.Vec3{axis[0], 0, -axis[1]}
		turnInPlace = abs32(direction[0]) < config.PlayerTurnInPlace && abs32(direction[2]) < config.PlayerTurnInPlace
	}
	var normalized mgl32.Vec3
	if direction.Len() > 0 {
		normalized = direction.Normalize()
	}
	desired := normalized.Mul(config.PlayerSpeed)
	if turnInPlace {
		desired = mgl32.Vec3{}
	}
	for _, id := range entity.SortedIDs(s.ecs.Players) {
		cc, ok := s.ecs.Controllers[id]
		if !ok {
			continue
		}
		cc.DesiredVelocity = desired
		cc.DesiredForward = normalized
		cc.Jump = actions.Pressed(input.ActionJump)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// HeldItem — предмет в руках игрока, 0 если руки пусты.
func (s *PlayerSystem) HeldItem(player types.EntityID) types.EntityID {
	for _, child := range s.ecs.ChildrenOf(player) {
		if _, ok := s.ecs.GrabbedItems[child]; ok {
			return child
		}
	}
	return 0
}

// HandleGrab обрабатывает кнопку "взять": с пустыми руками берёт выбранный
// предмет, с набором башни строит, с боеприпасом заряжает башню.
func (s *PlayerSystem) HandleGrab(actions *input.ActionState) {
	if !actions.JustPressed(input.ActionGrab) {
		return
	}
	player := s.ecs.FindPlayer()
	if player == 0 {
		return
	}
	p := s.ecs.Players[player]
	held := s.HeldItem(player)
	if held == 0 {
		s.grab(player, p)
		return
	}
	switch s.ecs.Items[held].Kind {
	case defs.ItemTowerKit:
		s.buildTower(p, held)
	case defs.ItemLaserAmmo:
		s.feedTower(p, held)
	}
}

func (s *PlayerSystem) grab(player types.EntityID, p *component.Player) {
	item := p.SelectedItem
	if _, ok := s.ecs.Items[item]; !ok {
		return
	}
	s.world.RemoveCollider(item)
	s.ecs.SetParent(item, player)
	s.ecs.GrabbedItems[item] = &component.GrabbedItem{}
	// предмет встаёт в руки
	if t, ok := s.ecs.Transforms[item]; ok {
		t.Translation = mgl32.Vec3{0, config.HeldItemOffsetY, config.HeldItemOffsetZ}
		t.Rotation = mgl32.QuatIdent()
	}
	p.SelectedItem = 0
	s.eventDispatcher.Enqueue(event.Event{Type: event.ItemGrabbed, Data: item})
}

func (s *PlayerSystem) buildTower(p *component.Player, kit types.EntityID) {
	if p.SelectedTile == 0 || !s.mapSystem.Buildable(p.SelectedTile) {
		playSound(s.eventDispatcher, event.SoundBad)
		return
	}
	s.ecs.Destroy(kit)
	s.eventDispatcher.Enqueue(event.Event{Type: event.SpawnTower, Data: event.SpawnTowerData{Tile: p.SelectedTile}})
}

func (s *PlayerSystem) feedTower(p *component.Player, ammo types.EntityID) {
	placed, ok := s.ecs.PlacedTowers[p.SelectedTile]
	if p.SelectedTile == 0 || !ok {
		playSound(s.eventDispatcher, event.SoundBad)
		return
	}
	towerAmmo, ok := s.ecs.Ammo[placed.Tower]
	if !ok {
		playSound(s.eventDispatcher, event.SoundBad)
		return
	}
	towerAmmo.Current = towerAmmo.Max
	playSound(s.eventDispatcher, event.SoundFeed)
	s.ecs.Destroy(ammo)
}
