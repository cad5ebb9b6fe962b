// internal/physics/shapes.go
package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/component"
)

// Shape — коллайдер в мировых координатах.
// Шар, отрезок и капсула сводятся к "отрезку с радиусом", кубоид — к AABB.
type Shape struct {
	Box    bool
	A, B   mgl32.Vec3 // отрезок оси (для шара A == B)
	Radius float32
	Min    mgl32.Vec3 // AABB
	Max    mgl32.Vec3
}

// WorldShape переводит коллайдер в мировые координаты по глобальному трансформу.
// Вращение кубоидов игнорируется, они всегда выровнены по осям.
func WorldShape(c *component.Collider, t component.Transform) Shape {
	switch c.Kind {
	case component.ShapeCuboid:
		return Shape{
			Box: true,
			Min: t.Translation.Sub(c.HalfExtents),
			Max: t.Translation.Add(c.HalfExtents),
		}
	case component.ShapeSegment:
		return Shape{A: t.TransformPoint(c.A), B: t.TransformPoint(c.B)}
	case component.ShapeCapsuleY:
		half := mgl32.Vec3{0, c.HalfHeight, 0}
		return Shape{
			A:      t.TransformPoint(half.Mul(-1)),
			B:      t.TransformPoint(half),
			Radius: c.Radius,
		}
	default:
		return Shape{A: t.Translation, B: t.Translation, Radius: c.Radius}
	}
}

// Bounds — охватывающий AABB.
func (s Shape) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	if s.Box {
		return s.Min, s.Max
	}
	r := mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	lo := mgl32.Vec3{min(s.A[0], s.B[0]), min(s.A[1], s.B[1]), min(s.A[2], s.B[2])}
	hi := mgl32.Vec3{max(s.A[0], s.B[0]), max(s.A[1], s.B[1]), max(s.A[2], s.B[2])}
	return lo.Sub(r), hi.Add(r)
}

// Overlaps — пересекаются ли формы. Касание считается пересечением.
func Overlaps(a, b Shape) bool {
	aMin, aMax := a.Bounds()
	bMin, bMax := b.Bounds()
	if !boxesOverlap(aMin, aMax, bMin, bMax) {
		return false
	}
	switch {
	case a.Box && b.Box:
		return true
	case a.Box:
		return SegmentBoxDistance(b.A, b.B, a.Min, a.Max) <= b.Radius+epsilon
	case b.Box:
		return SegmentBoxDistance(a.A, a.B, b.Min, b.Max) <= a.Radius+epsilon
	default:
		r := a.Radius + b.Radius + epsilon
		return SegmentSegmentDistanceSq(a.A, a.B, b.A, b.B) <= r*r
	}
}

const epsilon = 1e-5

func boxesOverlap(aMin, aMax, bMin, bMax mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if aMax[i] < bMin[i]-epsilon || bMax[i] < aMin[i]-epsilon {
			return false
		}
	}
	return true
}

// ClosestOnSegment — ближайшая к p точка отрезка ab.
func ClosestOnSegment(p, a, b mgl32.Vec3) mgl32.Vec3 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.Mul(t))
}

// SegmentSegmentDistanceSq — квадрат расстояния между отрезками p1q1 и p2q2.
// Ericson, Real-Time Collision Detection, 5.1.9.
func SegmentSegmentDistanceSq(p1, q1, p2, q2 mgl32.Vec3) float32 {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float32
	switch {
	case a <= epsilon && e <= epsilon:
		return r.Dot(r)
	case a <= epsilon:
		t = clamp(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if e <= epsilon {
			s = clamp(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = clamp((b*f-c*e)/denom, 0, 1)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = clamp((b-c)/a, 0, 1)
			}
		}
	}
	c1 := p1.Add(d1.Mul(s))
	c2 := p2.Add(d2.Mul(t))
	diff := c1.Sub(c2)
	return diff.Dot(diff)
}

// PointBoxDistance — расстояние от точки до AABB (0 внутри).
func PointBoxDistance(p, lo, hi mgl32.Vec3) float32 {
	return p.Sub(ClosestOnBox(p, lo, hi)).Len()
}

// ClosestOnBox — ближайшая к p точка AABB.
func ClosestOnBox(p, lo, hi mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		clamp(p[0], lo[0], hi[0]),
		clamp(p[1], lo[1], hi[1]),
		clamp(p[2], lo[2], hi[2]),
	}
}

// SegmentBoxDistance — расстояние от отрезка до AABB.
// Расстояние до выпуклого множества вдоль отрезка выпукло по параметру,
// поэтому хватает тернарного поиска.
func SegmentBoxDistance(a, b, lo, hi mgl32.Vec3) float32 {
	at := func(t float32) float32 {
		return PointBoxDistance(a.Add(b.Sub(a).Mul(t)), lo, hi)
	}
	var l, r float32 = 0, 1
	for i := 0; i < 40; i++ {
		m1 := l + (r-l)/3
		m2 := r - (r-l)/3
		if at(m1) <= at(m2) {
			r = m2
		} else {
			l = m1
		}
	}
	return min(at((l+r)/2), at(0), at(1))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
