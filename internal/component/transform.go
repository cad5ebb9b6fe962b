// internal/component/transform.go
package component

import "github.com/go-gl/mathgl/mgl32"

// Transform — локальное положение сущности относительно родителя.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

func NewTransform(translation mgl32.Vec3) *Transform {
	return &Transform{Translation: translation, Rotation: mgl32.QuatIdent()}
}

// Mul компонует родительское и дочернее преобразования.
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Translation: t.Translation.Add(t.Rotation.Rotate(child.Translation)),
		Rotation:    t.Rotation.Mul(child.Rotation).Normalize(),
	}
}

// TransformPoint переводит точку из локальных координат в координаты родителя.
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return t.Translation.Add(t.Rotation.Rotate(p))
}

// Forward — направление "вперёд" (-Z).
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// YawQuat — поворот вокруг Y на угол yaw (радианы).
func YawQuat(yaw float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
}
