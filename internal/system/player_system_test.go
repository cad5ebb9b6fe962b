package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/defs"
	"undefended/internal/event"
	"undefended/internal/input"
	"undefended/internal/types"
	"undefended/pkg/tilemap"
)

type playerFixture struct {
	*fixture
	players *PlayerSystem
	towers  *TowerSystem
	player  types.EntityID
}

// newPlayerFixture ставит игрока на стартовую клетку (1,2): курсор смотрит на (1,1).
func newPlayerFixture(t *testing.T) *playerFixture {
	t.Helper()
	f := newFixture(t, testLevel)
	pf := &playerFixture{
		fixture: f,
		players: NewPlayerSystem(f.ecs, f.dispatcher, f.world, f.maps),
		towers:  NewTowerSystem(f.ecs, f.dispatcher, f.maps, testTower),
	}
	f.dispatcher.Dispatch(event.Event{Type: event.SpawnPlayer, Data: event.TileData{Tile: testLevel.Start.Pos()}})
	pf.player = f.ecs.FindPlayer()
	f.step()
	return pf
}

func grabPressed() *input.ActionState {
	actions := input.NewActionState(input.DefaultMap())
	actions.Set(input.ActionGrab, true, mgl32.Vec2{})
	return actions
}

// itemInFront переносит предмет спавнера под пробу перед игроком.
func (pf *playerFixture) itemInFront(spawner tilemap.Pos) types.EntityID {
	item := pf.ecs.ItemSpawners[pf.maps.TileEntity(spawner)].Item
	pf.ecs.Transforms[item].Translation = pf.tile(1, 2).Add(mgl32.Vec3{0, 0.3, -0.5})
	pf.step()
	return item
}

func (pf *playerFixture) grab() {
	pf.players.HandleGrab(grabPressed())
	pf.dispatcher.Flush()
}

func TestPlayerSpawn(t *testing.T) {
	pf := newPlayerFixture(t)
	if pf.player == 0 {
		t.Fatal("no player spawned")
	}
	if got := pf.ecs.Transforms[pf.player].Translation; !approx(got, mgl32.Vec3{-2, 0.5, 2}) {
		t.Errorf("player at %v", got)
	}
	probes := 0
	for _, child := range pf.ecs.ChildrenOf(pf.player) {
		if _, ok := pf.ecs.Probes[child]; ok && pf.ecs.Colliders[child].Sensor {
			probes++
		}
	}
	if probes != 3 {
		t.Errorf("sensor probes = %d, want 3", probes)
	}
	p := pf.ecs.Players[pf.player]
	if p.SelectedTile != pf.maps.TileEntity(tilemap.Pos{X: 1, Y: 1}) {
		t.Errorf("cursor selected %d", p.SelectedTile)
	}
	if p.LastTile != (tilemap.Pos{X: 1, Y: 2}) {
		t.Errorf("last tile = %v", p.LastTile)
	}
}

func TestCursorFollowsPlayer(t *testing.T) {
	pf := newPlayerFixture(t)
	p := pf.ecs.Players[pf.player]

	pf.ecs.Transforms[pf.player].Translation = pf.tile(3, 2).Add(mgl32.Vec3{0, 0.75, 0})
	pf.step()
	if want := pf.maps.TileEntity(tilemap.Pos{X: 3, Y: 1}); p.SelectedTile != want {
		t.Errorf("selected %d, want %d", p.SelectedTile, want)
	}
	if p.LastTile != (tilemap.Pos{X: 3, Y: 2}) {
		t.Errorf("last tile = %v", p.LastTile)
	}

	// курсор над пустотой
	pf.ecs.Transforms[pf.player].Translation = pf.tile(3, 1).Add(mgl32.Vec3{0, 0.75, 0})
	pf.step()
	if p.SelectedTile != 0 {
		t.Errorf("cursor over void selected %d", p.SelectedTile)
	}
}

func TestApplyControls(t *testing.T) {
	pf := newPlayerFixture(t)
	cc := pf.ecs.Controllers[pf.player]
	actions := input.NewActionState(input.DefaultMap())

	actions.Set(input.ActionRun, true, mgl32.Vec2{0, 1})
	pf.players.ApplyControls(actions)
	if !approx(cc.DesiredVelocity, mgl32.Vec3{0, 0, -4.3}) {
		t.Errorf("up moves %v, want -Z at 4.3", cc.DesiredVelocity)
	}

	actions.Set(input.ActionRun, true, mgl32.Vec2{0.2, 0.1})
	pf.players.ApplyControls(actions)
	if cc.DesiredVelocity.Len() != 0 {
		t.Errorf("small tilt should only turn, velocity %v", cc.DesiredVelocity)
	}
	if cc.DesiredForward.Len() == 0 {
		t.Error("small tilt lost the facing direction")
	}

	actions.Set(input.ActionRun, false, mgl32.Vec2{})
	actions.Set(input.ActionJump, true, mgl32.Vec2{})
	pf.players.ApplyControls(actions)
	if cc.DesiredVelocity.Len() != 0 || !cc.Jump {
		t.Errorf("controller = %+v", cc)
	}
}

func TestGrabItem(t *testing.T) {
	pf := newPlayerFixture(t)
	item := pf.itemInFront(tilemap.Pos{X: 0, Y: 2})
	p := pf.ecs.Players[pf.player]
	if p.SelectedItem != item {
		t.Fatalf("item probe selected %d, want %d", p.SelectedItem, item)
	}

	pf.grab()
	if pf.players.HeldItem(pf.player) != item {
		t.Fatal("item not in hands")
	}
	if _, ok := pf.ecs.Colliders[item]; ok {
		t.Error("held item kept its collider")
	}
	if got := pf.ecs.Transforms[item].Translation; !approx(got, mgl32.Vec3{0, -0.4, -0.75}) {
		t.Errorf("held at %v", got)
	}
	if pf.count(event.ItemGrabbed, item) != 1 {
		t.Error("ItemGrabbed not sent")
	}

	// без нажатия ничего не происходит
	pf.players.HandleGrab(input.NewActionState(input.DefaultMap()))
	if pf.players.HeldItem(pf.player) != item {
		t.Error("item dropped without a press")
	}
}

func TestBuildTower(t *testing.T) {
	pf := newPlayerFixture(t)
	pf.itemInFront(tilemap.Pos{X: 0, Y: 2})
	pf.grab()
	kit := pf.players.HeldItem(pf.player)
	p := pf.ecs.Players[pf.player]

	// на спавнере строить нельзя
	selected := p.SelectedTile
	p.SelectedTile = pf.maps.TileEntity(tilemap.Pos{X: 4, Y: 2})
	pf.grab()
	if pf.sounds(event.SoundBad) != 1 || !pf.ecs.Alive(kit) {
		t.Fatal("building on a spawner was not rejected")
	}

	p.SelectedTile = selected
	pf.grab()
	placed, ok := pf.ecs.PlacedTowers[selected]
	if !ok {
		t.Fatal("no tower on the selected tile")
	}
	if pf.ecs.Alive(kit) {
		t.Error("tower kit was not consumed")
	}
	if pf.ecs.Towers[placed.Tower].Tile != (tilemap.Pos{X: 1, Y: 1}) {
		t.Errorf("tower on %v", pf.ecs.Towers[placed.Tower].Tile)
	}
	if pf.sounds(event.SoundBuild) != 1 {
		t.Error("no build sound")
	}

	// второй башни на той же клетке не будет
	pf.ecs.Transforms[pf.player].Translation = pf.tile(1, 2).Add(mgl32.Vec3{0, 0.75, 0})
	pf.maps.Update(6)
	pf.itemInFront(tilemap.Pos{X: 0, Y: 2})
	pf.grab()
	p.SelectedTile = selected
	pf.grab()
	if len(pf.ecs.Towers) != 1 || pf.sounds(event.SoundBad) != 2 {
		t.Errorf("towers = %d, bad sounds = %d", len(pf.ecs.Towers), pf.sounds(event.SoundBad))
	}
}

func TestFeedTower(t *testing.T) {
	pf := newPlayerFixture(t)
	tile := pf.maps.TileEntity(tilemap.Pos{X: 1, Y: 1})
	tower := pf.towers.spawn(tile)
	pf.ecs.Ammo[tower].Current = 5

	ammo := pf.itemInFront(tilemap.Pos{X: 4, Y: 2})
	pf.grab()
	if pf.ecs.Items[pf.players.HeldItem(pf.player)].Kind != defs.ItemLaserAmmo {
		t.Fatal("not holding laser ammo")
	}
	p := pf.ecs.Players[pf.player]

	p.SelectedTile = pf.maps.TileEntity(tilemap.Pos{X: 2, Y: 1})
	pf.grab()
	if pf.sounds(event.SoundBad) != 1 || !pf.ecs.Alive(ammo) {
		t.Fatal("feeding an empty tile was not rejected")
	}

	p.SelectedTile = tile
	pf.grab()
	if pf.ecs.Ammo[tower].Current != 20 {
		t.Errorf("ammo = %d, want 20", pf.ecs.Ammo[tower].Current)
	}
	if pf.ecs.Alive(ammo) || pf.sounds(event.SoundFeed) != 1 {
		t.Error("ammo not consumed")
	}
}

func TestLavaReturnsPlayer(t *testing.T) {
	pf := newPlayerFixture(t)
	pf.itemInFront(tilemap.Pos{X: 0, Y: 2})
	pf.grab()
	held := pf.players.HeldItem(pf.player)
	var lava types.EntityID
	for id := range pf.ecs.Lavas {
		lava = id
	}

	pf.ecs.Transforms[pf.player].Translation = mgl32.Vec3{10, -4, 10}
	pf.ecs.Controllers[pf.player].Velocity = mgl32.Vec3{0, -8, 0}
	pf.step()
	if got := pf.ecs.Transforms[pf.player].Translation; !approx(got, pf.tile(1, 2)) {
		t.Errorf("player returned to %v, want %v", got, pf.tile(1, 2))
	}
	if pf.ecs.Controllers[pf.player].Velocity.Len() != 0 {
		t.Error("velocity kept after lava")
	}
	if pf.ecs.Alive(held) {
		t.Error("held item survived lava")
	}

	// на последней клетке стоит башня, игрок уходит на старт
	p := pf.ecs.Players[pf.player]
	p.LastTile = tilemap.Pos{X: 3, Y: 1}
	pf.towers.spawn(pf.maps.TileEntity(p.LastTile))
	pf.dispatcher.Dispatch(event.Event{Type: event.CollisionStarted, Data: event.CollisionData{A: lava, B: pf.player}})
	if got := pf.ecs.Transforms[pf.player].Translation; !approx(got, pf.tile(1, 2)) {
		t.Errorf("player at %v, want start", got)
	}
}
