package system

import (
	"testing"

	"undefended/pkg/tilemap"
)

func TestOutlineFollowsIntent(t *testing.T) {
	pf := newPlayerFixture(t)
	outlines := NewOutlineSystem(pf.ecs, pf.players, pf.maps)
	p := pf.ecs.Players[pf.player]

	outlines.Update()
	if len(pf.ecs.Outlines) != 0 {
		t.Fatalf("outlines with nothing selected: %v", pf.ecs.Outlines)
	}

	kit := pf.itemInFront(tilemap.Pos{X: 0, Y: 2})
	outlines.Update()
	if _, ok := pf.ecs.Outlines[kit]; !ok || len(pf.ecs.Outlines) != 1 {
		t.Fatal("item in front of the player is not outlined")
	}

	pf.grab()
	outlines.Update()
	if _, ok := pf.ecs.Outlines[kit]; ok {
		t.Error("held item still outlined")
	}
	if _, ok := pf.ecs.Outlines[p.SelectedTile]; !ok {
		t.Error("buildable tile is not outlined while holding a kit")
	}

	p.SelectedTile = pf.maps.TileEntity(tilemap.Pos{X: 0, Y: 2})
	outlines.Update()
	if len(pf.ecs.Outlines) != 0 {
		t.Errorf("spawner tile outlined: %v", pf.ecs.Outlines)
	}
}

func TestOutlineKeepsTowerOutline(t *testing.T) {
	pf := newPlayerFixture(t)
	outlines := NewOutlineSystem(pf.ecs, pf.players, pf.maps)
	tile := pf.maps.TileEntity(tilemap.Pos{X: 1, Y: 1})
	tower := pf.towers.spawn(tile)

	pf.itemInFront(tilemap.Pos{X: 4, Y: 2})
	pf.grab()
	pf.ecs.Players[pf.player].SelectedTile = tile
	if got := outlines.Highlighted(pf.player); got != tower {
		t.Errorf("holding ammo highlights %d, want tower %d", got, tower)
	}
	pf.ecs.Players[pf.player].SelectedTile = 0
	outlines.Update()
	if o := pf.ecs.Outlines[tower]; o == nil || !o.Permanent {
		t.Error("tower lost its permanent outline")
	}
}
