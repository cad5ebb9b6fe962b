// component/movement.go
package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/types"
)

// PathIndex — индекс последней достигнутой точки пути.
type PathIndex struct {
	Index int
}

// CharacterController — управляемое физикой тело игрока.
// Системы пишут Desired*/Jump, физика пишет Velocity/Grounded.
type CharacterController struct {
	DesiredVelocity mgl32.Vec3
	DesiredForward  mgl32.Vec3
	Jump            bool

	Velocity mgl32.Vec3
	Grounded bool
	Jumping  bool
	// Ground — сущность пола под ногами, 0 в воздухе
	Ground types.EntityID
}

// MovingFloor — платформа, ездящая между From и To.
type MovingFloor struct {
	From, To mgl32.Vec3
	Period   float64
	Phase    float64
	// Delta — смещение за последний кадр, им двигается стоящий сверху игрок
	Delta mgl32.Vec3
}
