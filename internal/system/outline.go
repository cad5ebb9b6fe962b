// internal/system/outline.go
package system

import (
	"undefended/internal/component"
	"undefended/internal/config"
	"undefended/internal/defs"
	"undefended/internal/entity"
	"undefended/internal/types"
)

// OutlineSystem подсвечивает то, с чем игрок сейчас может что-то сделать.
type OutlineSystem struct {
	ecs     *entity.ECS
	players *PlayerSystem
	maps    *MapSystem
}

func NewOutlineSystem(ecs *entity.ECS, players *PlayerSystem, maps *MapSystem) *OutlineSystem {
	return &OutlineSystem{ecs: ecs, players: players, maps: maps}
}

func (s *OutlineSystem) Update() {
	for id, o := range s.ecs.Outlines {
		if !o.Permanent {
			delete(s.ecs.Outlines, id)
		}
	}
	player := s.ecs.FindPlayer()
	if player == 0 {
		return
	}
	if target := s.Highlighted(player); target != 0 {
		if _, has := s.ecs.Outlines[target]; !has {
			s.ecs.Outlines[target] = &component.Outline{Color: config.OutlineColor, Width: config.OutlineWidth}
		}
	}
}

// Highlighted — что подсветить для игрока: клетку под постройку, башню под
// заряд или предмет перед игроком.
func (s *OutlineSystem) Highlighted(player types.EntityID) types.EntityID {
	p := s.ecs.Players[player]
	held := s.players.HeldItem(player)
	if held == 0 {
		if _, ok := s.ecs.Items[p.SelectedItem]; ok {
			return p.SelectedItem
		}
		return 0
	}
	switch s.ecs.Items[held].Kind {
	case defs.ItemTowerKit:
		if p.SelectedTile != 0 && s.maps.Buildable(p.SelectedTile) {
			return p.SelectedTile
		}
	case defs.ItemLaserAmmo:
		if placed, ok := s.ecs.PlacedTowers[p.SelectedTile]; ok && p.SelectedTile != 0 {
			return placed.Tower
		}
	}
	return 0
}
