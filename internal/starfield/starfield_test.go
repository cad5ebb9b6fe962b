package starfield

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSeededFieldIsReproducible(t *testing.T) {
	a := New(7, 50, 6)
	b := New(7, 50, 6)
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d differs: %+v vs %+v", i, a.Stars[i], b.Stars[i])
		}
	}
}

func TestProjectWrapsAndParallax(t *testing.T) {
	f := New(1, 2, 6)
	f.Stars[0] = Star{X: 0.5, Y: 0.5, Depth: 1}
	f.Stars[1] = Star{X: 0.5, Y: 0.5, Depth: 0.5}

	f.Follow(mgl32.Vec3{10, 3, 0})
	near, _ := f.Project(0, 1280, 720)
	far, _ := f.Project(1, 1280, 720)
	if near != 640-60 || far != 640-30 {
		t.Errorf("near = %v, far = %v", near, far)
	}

	f.Follow(mgl32.Vec3{200, 0, 0})
	x, y := f.Project(0, 1280, 720)
	if x < 0 || x >= 1280 || y < 0 || y >= 720 {
		t.Errorf("projected (%v, %v) outside screen", x, y)
	}
}
