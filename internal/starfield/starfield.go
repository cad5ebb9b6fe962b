// internal/starfield/starfield.go
package starfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/utils"
)

// Star — звезда в нормированных экранных координатах [0, 1).
type Star struct {
	X, Y       float32
	Depth      float32 // 0.2 (далеко) .. 1 (близко), множитель параллакса
	Brightness uint8
	Size       float32
}

// Field — фон из звёзд, который смещается вслед за игроком.
type Field struct {
	Stars []Star
	// Rate — смещение в пикселях на единицу мира для ближайших звёзд
	Rate   float32
	offset mgl32.Vec2
}

func New(seed int64, count int, rate float32) *Field {
	rng := utils.NewPRNGService(seed)
	f := &Field{Stars: make([]Star, count), Rate: rate}
	for i := range f.Stars {
		depth := float32(rng.Range(0.2, 1))
		f.Stars[i] = Star{
			X:          float32(rng.Float64()),
			Y:          float32(rng.Float64()),
			Depth:      depth,
			Brightness: uint8(80 + 175*depth*float32(rng.Range(0.5, 1))),
			Size:       0.5 + 1.5*depth,
		}
	}
	return f
}

// Follow запоминает положение игрока на плоскости XZ.
func (f *Field) Follow(player mgl32.Vec3) {
	f.offset = mgl32.Vec2{player[0], player[2]}
}

func (f *Field) Offset() mgl32.Vec2 { return f.offset }

// Project возвращает экранную позицию звезды i с учётом параллакса.
// Звёзды заворачиваются по краям экрана.
func (f *Field) Project(i int, width, height float32) (float32, float32) {
	s := f.Stars[i]
	x := s.X*width - f.offset[0]*f.Rate*s.Depth
	y := s.Y*height - f.offset[1]*f.Rate*s.Depth
	return wrap(x, width), wrap(y, height)
}

func wrap(v, size float32) float32 {
	if size <= 0 {
		return 0
	}
	v = float32(math.Mod(float64(v), float64(size)))
	if v < 0 {
		v += size
	}
	return v
}
