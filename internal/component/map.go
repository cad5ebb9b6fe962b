package component

import (
	"undefended/internal/defs"
	"undefended/internal/types"
	"undefended/internal/utils"
	"undefended/pkg/tilemap"
)

// Floor — клетка пола, по которой можно ходить.
type Floor struct{}

// TilePos — клетка карты, которой принадлежит сущность. У подвижных платформ его нет.
type TilePos struct {
	Pos tilemap.Pos
}

// Lava — объём под картой, упавший игрок возвращается на карту.
type Lava struct{}

// PlacedTower ставится на клетку пола, занятую башней.
type PlacedTower struct {
	Tower types.EntityID
}

// Item — предмет, который можно взять.
type Item struct {
	Kind    defs.ItemKind
	Spawner types.EntityID
}

// GrabbedItem — предмет в руках игрока.
type GrabbedItem struct{}

// ItemSpawner держит на своей клетке один предмет и восстанавливает его после подбора.
type ItemSpawner struct {
	Kind    defs.ItemKind
	Item    types.EntityID
	Respawn utils.Timer
}
