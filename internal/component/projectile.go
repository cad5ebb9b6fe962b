// internal/component/projectile.go
package component

// Laser — летящий к цели заряд.
type Laser struct {
	Speed  float32
	Damage int
}
