// component/tower.go
package component

import (
	"undefended/internal/defs"
	"undefended/internal/types"
	"undefended/internal/utils"
	"undefended/pkg/tilemap"
)

type Tower struct {
	DefID     string
	Targeting defs.Targeting
	Tile      tilemap.Pos    // клетка, на которой стоит башня
	Head      types.EntityID // дочерняя сущность головы
	Range     types.EntityID // дочерний сенсор радиуса
	Cooldown  utils.Timer    // повторяющийся таймер выстрела
	InRange   map[types.EntityID]struct{}
}

// TowerHead — поворачиваемая голова башни, из неё вылетают лазеры.
type TowerHead struct{}

// RangeSensor — сенсор, которым башня видит врагов.
type RangeSensor struct {
	Tower types.EntityID
}

// Target — текущая цель башни или лазера, 0 — нет цели.
type Target struct {
	ID types.EntityID
}
