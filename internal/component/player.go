// internal/component/player.go
package component

import (
	"undefended/internal/types"
	"undefended/pkg/tilemap"
)

// Player — маркер игрока и его выбор.
type Player struct {
	LastTile     tilemap.Pos    // последняя неподвижная клетка, на которой стоял игрок
	SelectedTile types.EntityID // клетка под курсором
	SelectedItem types.EntityID // предмет перед игроком
}

type ProbeKind int

const (
	TileProbe ProbeKind = iota // луч вниз, запоминает клетку
	ItemProbe                  // луч вперёд, выбирает предмет
	CursorProbe                // луч вниз перед игроком, выбирает клетку
)

// Probe — сенсор-дочка игрока.
type Probe struct {
	Kind ProbeKind
}
