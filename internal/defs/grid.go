package defs

import (
	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/config"
	"undefended/pkg/tilemap"
)

var defaultTileSize = mgl32.Vec3{config.TileSizeX, config.TileSizeY, config.TileSizeZ}

// Grid строит сетку карты уровня.
func (l *LevelDefinition) Grid() *tilemap.Grid {
	grid, err := tilemap.NewGrid(l.Rows, defaultTileSize)
	if err != nil {
		// Уровень уже прошёл validateLevel.
		panic(err)
	}
	return grid
}
