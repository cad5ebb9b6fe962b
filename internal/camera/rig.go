// internal/camera/rig.go
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/config"
	"undefended/internal/utils"
)

// Rig — камера, следующая за игроком: позиция сглаживается, к ней
// прикладывается плечо Offset, результат сглаживается ещё раз, а точка
// взгляда отдельно тянется к игроку, поднятому на LookAtLift.
type Rig struct {
	Offset     mgl32.Vec3
	Smoothness float64
	LookAtLift float32

	position mgl32.Vec3
	eye      mgl32.Vec3
	target   mgl32.Vec3
}

func NewRig() *Rig {
	r := &Rig{
		Offset:     mgl32.Vec3{config.CameraOffsetX, config.CameraOffsetY, config.CameraOffsetZ},
		Smoothness: config.CameraSmoothness,
		LookAtLift: config.CameraLookAtLiftY,
	}
	r.Snap(mgl32.Vec3{})
	return r
}

// Snap ставит камеру сразу в конечное положение.
func (r *Rig) Snap(player mgl32.Vec3) {
	r.position = player
	r.eye = player.Add(r.Offset)
	r.target = player.Add(mgl32.Vec3{0, r.LookAtLift, 0})
}

// Update тянет камеру к игроку.
func (r *Rig) Update(player mgl32.Vec3, deltaTime float64) {
	k := utils.ExpSmoothing(r.Smoothness, deltaTime)
	r.position = lerp(r.position, player, k)
	r.eye = lerp(r.eye, r.position.Add(r.Offset), k)
	r.target = lerp(r.target, player.Add(mgl32.Vec3{0, r.LookAtLift, 0}), k)
}

func (r *Rig) Eye() mgl32.Vec3    { return r.eye }
func (r *Rig) Target() mgl32.Vec3 { return r.target }

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
