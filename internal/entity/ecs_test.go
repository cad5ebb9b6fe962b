package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/component"
	"undefended/internal/types"
)

func spawn(ecs *ECS, parent types.EntityID, at mgl32.Vec3) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = component.NewTransform(at)
	ecs.SetParent(id, parent)
	return id
}

func TestNewEntityNeverReturnsZero(t *testing.T) {
	ecs := NewECS()
	if id := ecs.NewEntity(); id == 0 {
		t.Fatal("first entity id is zero")
	}
}

func TestDestroyIsRecursive(t *testing.T) {
	ecs := NewECS()
	root := spawn(ecs, 0, mgl32.Vec3{})
	child := spawn(ecs, root, mgl32.Vec3{1, 0, 0})
	grandchild := spawn(ecs, child, mgl32.Vec3{0, 1, 0})
	other := spawn(ecs, 0, mgl32.Vec3{})

	var destroyed []types.EntityID
	ecs.OnDestroy(func(id types.EntityID) { destroyed = append(destroyed, id) })

	ecs.Destroy(root)

	for _, id := range []types.EntityID{root, child, grandchild} {
		if ecs.Alive(id) {
			t.Errorf("entity %d survived Destroy", id)
		}
	}
	if !ecs.Alive(other) {
		t.Error("unrelated entity destroyed")
	}
	if len(destroyed) != 3 || destroyed[0] != grandchild || destroyed[2] != root {
		t.Errorf("destroy order = %v, want children first", destroyed)
	}
}

func TestGlobalTransformComposesParents(t *testing.T) {
	ecs := NewECS()
	root := spawn(ecs, 0, mgl32.Vec3{10, 0, 0})
	ecs.Transforms[root].Rotation = component.YawQuat(mgl32.DegToRad(90))
	child := spawn(ecs, root, mgl32.Vec3{0, 0, -1})

	global, ok := ecs.GlobalTransform(child)
	if !ok {
		t.Fatal("no global transform")
	}
	// -Z повёрнутый на 90° вокруг Y смотрит в -X
	want := mgl32.Vec3{9, 0, 0}
	if !global.Translation.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("translation = %v, want %v", global.Translation, want)
	}
	if !ecs.SameHierarchy(root, child) {
		t.Error("child not in root hierarchy")
	}
}

func TestResetKeepsPersistentRoots(t *testing.T) {
	ecs := NewECS()
	camera := spawn(ecs, 0, mgl32.Vec3{})
	ecs.Persist[camera] = struct{}{}
	player := spawn(ecs, 0, mgl32.Vec3{})
	ecs.Players[player] = &component.Player{}
	probe := spawn(ecs, player, mgl32.Vec3{})

	ecs.Reset()

	if !ecs.Alive(camera) {
		t.Error("persistent entity removed")
	}
	if ecs.Alive(player) || ecs.Alive(probe) {
		t.Error("non-persistent hierarchy survived reset")
	}
	if ecs.FindPlayer() != 0 {
		t.Error("player still registered")
	}
}

func TestSortedIDs(t *testing.T) {
	m := map[types.EntityID]int{5: 0, 1: 0, 3: 0}
	ids := SortedIDs(m)
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 3 || ids[2] != 5 {
		t.Errorf("SortedIDs = %v", ids)
	}
}
