// internal/component/collider.go
package component

import "github.com/go-gl/mathgl/mgl32"

type ShapeKind int

const (
	ShapeBall ShapeKind = iota
	ShapeSegment
	ShapeCuboid
	ShapeCapsuleY
)

// Collider — форма в локальных координатах сущности.
// События столкновений порождаются только парами, где хотя бы один коллайдер — сенсор.
type Collider struct {
	Kind        ShapeKind
	Radius      float32    // Ball, CapsuleY
	A, B        mgl32.Vec3 // Segment
	HalfExtents mgl32.Vec3 // Cuboid, всегда выровнен по осям
	HalfHeight  float32    // CapsuleY
	Sensor      bool
	// Solid — твёрдое тело, которое выталкивает персонажа (башни)
	Solid bool
}

func Ball(radius float32) *Collider {
	return &Collider{Kind: ShapeBall, Radius: radius}
}

func Segment(a, b mgl32.Vec3) *Collider {
	return &Collider{Kind: ShapeSegment, A: a, B: b}
}

func Cuboid(hx, hy, hz float32) *Collider {
	return &Collider{Kind: ShapeCuboid, HalfExtents: mgl32.Vec3{hx, hy, hz}}
}

func CapsuleY(halfHeight, radius float32) *Collider {
	return &Collider{Kind: ShapeCapsuleY, HalfHeight: halfHeight, Radius: radius}
}

// AsSensor помечает коллайдер как сенсор.
func (c *Collider) AsSensor() *Collider {
	c.Sensor = true
	return c
}

// AsSolid помечает коллайдер как препятствие для персонажа.
func (c *Collider) AsSolid() *Collider {
	c.Solid = true
	return c
}
