// internal/physics/controller.go
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/component"
	"undefended/internal/config"
	"undefended/internal/entity"
	"undefended/internal/types"
	"undefended/internal/utils"
)

// Controller двигает сущности с CharacterController: парит над полом на
// FloatHeight, разгоняется к желаемой скорости, поворачивается к желаемому
// направлению и прыгает на JumpHeight.
type Controller struct {
	ecs *entity.ECS

	FloatHeight      float32
	ClingDistance    float32
	Acceleration     float32
	AirAcceleration  float32
	TurningAngVel    float32
	JumpHeight       float32
	JumpExtraGravity float32
	Gravity          float32
	GroundRadius     float32
	FloatSpring      float32
}

func NewController(ecs *entity.ECS) *Controller {
	return &Controller{
		ecs:              ecs,
		FloatHeight:      config.PlayerFloatHeight,
		ClingDistance:    config.PlayerClingDistance,
		Acceleration:     config.PlayerAcceleration,
		AirAcceleration:  config.PlayerAirAcceleration,
		TurningAngVel:    config.PlayerTurningAngVel,
		JumpHeight:       config.PlayerJumpHeight,
		JumpExtraGravity: config.PlayerJumpExtraGravity,
		Gravity:          config.Gravity,
		GroundRadius:     config.PlayerGroundRadius,
		FloatSpring:      config.PlayerFloatSpring,
	}
}

func (c *Controller) Update(deltaTime float64) {
	dt := float32(deltaTime)
	if dt <= 0 {
		return
	}
	for _, id := range entity.SortedIDs(c.ecs.Controllers) {
		cc := c.ecs.Controllers[id]
		t, ok := c.ecs.Transforms[id]
		if !ok {
			continue
		}
		c.turn(t, cc.DesiredForward, dt)
		c.walk(cc, dt)
		c.vertical(id, t, cc, dt)
		t.Translation = t.Translation.Add(cc.Velocity.Mul(dt))
		c.pushOut(id, t, cc)
	}
}

// Yaw — угол поворота вокруг Y, при котором -Z смотрит вдоль forward.
func Yaw(forward mgl32.Vec3) float32 {
	return float32(math.Atan2(float64(-forward[0]), float64(-forward[2])))
}

func (c *Controller) turn(t *component.Transform, desired mgl32.Vec3, dt float32) {
	desired[1] = 0
	if desired.Len() < epsilon {
		return
	}
	current := Yaw(t.Forward())
	diff := utils.NormalizeAngle(Yaw(desired) - current)
	step := c.TurningAngVel * dt
	if diff > step {
		diff = step
	} else if diff < -step {
		diff = -step
	}
	t.Rotation = component.YawQuat(current + diff)
}

func (c *Controller) walk(cc *component.CharacterController, dt float32) {
	accel := c.AirAcceleration
	if cc.Grounded {
		accel = c.Acceleration
	}
	horizontal := mgl32.Vec3{cc.Velocity[0], 0, cc.Velocity[2]}
	target := mgl32.Vec3{cc.DesiredVelocity[0], 0, cc.DesiredVelocity[2]}
	diff := target.Sub(horizontal)
	if maxStep := accel * dt; diff.Len() > maxStep {
		diff = diff.Normalize().Mul(maxStep)
	}
	horizontal = horizontal.Add(diff)
	cc.Velocity[0] = horizontal[0]
	cc.Velocity[2] = horizontal[2]
}

func (c *Controller) vertical(id types.EntityID, t *component.Transform, cc *component.CharacterController, dt float32) {
	ground, top, found := c.groundBelow(id, t.Translation)
	distance := t.Translation[1] - top
	inReach := found && distance <= c.FloatHeight+c.ClingDistance

	if cc.Jump && cc.Grounded && !cc.Jumping {
		cc.Velocity[1] = float32(math.Sqrt(float64(2 * c.Gravity * c.JumpHeight)))
		cc.Jumping = true
		cc.Grounded = false
		cc.Ground = 0
		return
	}

	if cc.Jumping {
		gravity := c.Gravity
		if !cc.Jump && cc.Velocity[1] > 0 {
			gravity += c.JumpExtraGravity
		}
		cc.Velocity[1] -= gravity * dt
		if cc.Velocity[1] <= 0 {
			cc.Jumping = false
		}
		return
	}

	if inReach && cc.Velocity[1] <= 0 {
		if mf, ok := c.ecs.MovingFloors[ground]; ok {
			t.Translation = t.Translation.Add(mf.Delta)
		}
		// пружина к высоте парения
		k := min(1, c.FloatSpring*dt)
		t.Translation[1] += (c.FloatHeight - distance) * k
		cc.Velocity[1] = 0
		cc.Grounded = true
		cc.Ground = ground
		return
	}

	cc.Grounded = false
	cc.Ground = 0
	cc.Velocity[1] -= c.Gravity * dt
}

// groundBelow ищет самый высокий верх пола под диском GroundRadius вокруг p.
func (c *Controller) groundBelow(self types.EntityID, p mgl32.Vec3) (types.EntityID, float32, bool) {
	var (
		best  types.EntityID
		top   float32
		found bool
	)
	for _, id := range entity.SortedIDs(c.ecs.Floors) {
		if c.ecs.SameHierarchy(id, self) {
			continue
		}
		col, ok := c.ecs.Colliders[id]
		if !ok || col.Kind != component.ShapeCuboid {
			continue
		}
		gt, ok := c.ecs.GlobalTransform(id)
		if !ok {
			continue
		}
		s := WorldShape(col, gt)
		if s.Max[1] > p[1]+epsilon {
			continue
		}
		dx := p[0] - clamp(p[0], s.Min[0], s.Max[0])
		dz := p[2] - clamp(p[2], s.Min[2], s.Max[2])
		if dx*dx+dz*dz > c.GroundRadius*c.GroundRadius {
			continue
		}
		if !found || s.Max[1] > top {
			best, top, found = id, s.Max[1], true
		}
	}
	return best, top, found
}

// pushOut выталкивает капсулу из твёрдых кубоидов по горизонтали.
func (c *Controller) pushOut(self types.EntityID, t *component.Transform, cc *component.CharacterController) {
	col, ok := c.ecs.Colliders[self]
	if !ok || col.Kind != component.ShapeCapsuleY {
		return
	}
	lowY := t.Translation[1] - col.HalfHeight - col.Radius
	highY := t.Translation[1] + col.HalfHeight + col.Radius
	for _, id := range entity.SortedIDs(c.ecs.Colliders) {
		solid := c.ecs.Colliders[id]
		if !solid.Solid || solid.Kind != component.ShapeCuboid || c.ecs.SameHierarchy(id, self) {
			continue
		}
		gt, ok := c.ecs.GlobalTransform(id)
		if !ok {
			continue
		}
		s := WorldShape(solid, gt)
		if highY < s.Min[1] || lowY > s.Max[1] {
			continue
		}
		p := t.Translation
		cx := clamp(p[0], s.Min[0], s.Max[0])
		cz := clamp(p[2], s.Min[2], s.Max[2])
		n := mgl32.Vec3{p[0] - cx, 0, p[2] - cz}
		d := n.Len()
		if d >= col.Radius {
			continue
		}
		if d < epsilon {
			// центр внутри: выталкиваем к ближайшей грани
			n, d = nearestFace(p, s.Min, s.Max)
			t.Translation = t.Translation.Add(n.Mul(d + col.Radius))
		} else {
			n = n.Mul(1 / d)
			t.Translation = t.Translation.Add(n.Mul(col.Radius - d))
		}
		if into := cc.Velocity.Dot(n); into < 0 {
			cc.Velocity = cc.Velocity.Sub(n.Mul(into))
		}
	}
}

func nearestFace(p, lo, hi mgl32.Vec3) (mgl32.Vec3, float32) {
	faces := []struct {
		n mgl32.Vec3
		d float32
	}{
		{mgl32.Vec3{-1, 0, 0}, p[0] - lo[0]},
		{mgl32.Vec3{1, 0, 0}, hi[0] - p[0]},
		{mgl32.Vec3{0, 0, -1}, p[2] - lo[2]},
		{mgl32.Vec3{0, 0, 1}, hi[2] - p[2]},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.d < best.d {
			best = f
		}
	}
	return best.n, best.d
}
