// pkg/tilemap/grid.go
package tilemap

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cell — тип клетки карты.
type Cell int

const (
	Void Cell = iota
	Floor
)

// Pos — координаты клетки: X — колонка, Y — строка.
type Pos struct {
	X, Y int
}

func (p Pos) Add(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y} }

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Manhattan расстояние между клетками.
func (p Pos) Manhattan(o Pos) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

var directions = [4]Pos{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid — прямоугольная карта клеток и размер одной клетки в мире.
type Grid struct {
	Cells    [][]Cell
	Rows     int
	Cols     int
	TileSize mgl32.Vec3
}

// NewGrid строит сетку из строк вида "..##..", где '#' — пол.
func NewGrid(rows []string, tileSize mgl32.Vec3) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}
	cols := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", y, len(row), cols)
		}
		cells[y] = make([]Cell, cols)
		for x, ch := range row {
			switch ch {
			case '#':
				cells[y][x] = Floor
			case '.':
				cells[y][x] = Void
			default:
				return nil, fmt.Errorf("unknown cell %q at %v", ch, Pos{x, y})
			}
		}
	}
	return &Grid{Cells: cells, Rows: len(rows), Cols: cols, TileSize: tileSize}, nil
}

// Contains проверяет, что клетка внутри карты.
func (g *Grid) Contains(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Cols && p.Y < g.Rows
}

// At возвращает тип клетки, Void за пределами карты.
func (g *Grid) At(p Pos) Cell {
	if !g.Contains(p) {
		return Void
	}
	return g.Cells[p.Y][p.X]
}

// Floors перечисляет все клетки пола в порядке строк.
func (g *Grid) Floors() []Pos {
	var out []Pos
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.Cells[y][x] == Floor {
				out = append(out, Pos{x, y})
			}
		}
	}
	return out
}

// Neighbors — соседи по четырём направлениям внутри карты.
func (g *Grid) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range directions {
		n := p.Add(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// MapToWorld переводит клетку в мировые координаты центра её верхней грани.
// Деление целочисленное, поэтому карта с нечётным числом клеток центрирована.
func (g *Grid) MapToWorld(p Pos) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(g.Cols/-2+p.X) * g.TileSize.X(),
		0,
		float32(g.Rows/-2+p.Y) * g.TileSize.Z(),
	}
}

// WorldToMap — обратное преобразование к ближайшей клетке.
func (g *Grid) WorldToMap(v mgl32.Vec3) (Pos, bool) {
	x := int(math.Round(float64(v.X()/g.TileSize.X()))) - g.Cols/-2
	y := int(math.Round(float64(v.Z()/g.TileSize.Z()))) - g.Rows/-2
	p := Pos{x, y}
	return p, g.Contains(p)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
