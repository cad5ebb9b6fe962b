package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/component"
	"undefended/internal/types"
)

func spawnLaser(f *fixture, at mgl32.Vec3, target types.EntityID) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Transforms[id] = component.NewTransform(at)
	f.ecs.Lasers[id] = &component.Laser{Speed: 8, Damage: 1}
	f.ecs.Targets[id] = &component.Target{ID: target}
	return id
}

func TestLaserHitsTarget(t *testing.T) {
	f := newFixture(t, testLevel)
	enemies := NewEnemySystem(f.ecs, f.dispatcher, f.maps.Path)
	lasers := NewLaserSystem(f.ecs, f.dispatcher)
	enemy := enemies.spawn(3)
	f.ecs.Transforms[enemy].Translation = mgl32.Vec3{4, 0, 0}
	laser := spawnLaser(f, mgl32.Vec3{}, enemy)

	lasers.Update(0.25)
	if got := f.ecs.Transforms[laser].Translation; !approx(got, mgl32.Vec3{2, 0, 0}) {
		t.Fatalf("laser at %v, want (2,0,0)", got)
	}
	if f.ecs.HitPoints[enemy].Current != 3 {
		t.Error("damage applied before the hit")
	}

	lasers.Update(0.3)
	if f.ecs.Alive(laser) {
		t.Error("laser survived the hit")
	}
	if f.ecs.HitPoints[enemy].Current != 2 {
		t.Errorf("hp = %d, want 2", f.ecs.HitPoints[enemy].Current)
	}
}

func TestLaserWithoutTargetDisappears(t *testing.T) {
	f := newFixture(t, testLevel)
	enemies := NewEnemySystem(f.ecs, f.dispatcher, f.maps.Path)
	lasers := NewLaserSystem(f.ecs, f.dispatcher)
	enemy := enemies.spawn(3)
	laser := spawnLaser(f, mgl32.Vec3{10, 0, 0}, enemy)

	f.ecs.Destroy(enemy)
	lasers.Update(0.01)
	if f.ecs.Alive(laser) {
		t.Error("laser kept flying after its target despawned")
	}
}
