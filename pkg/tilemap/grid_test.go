package tilemap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var tile = mgl32.Vec3{2, 0.5, 2}

func TestNewGridRejectsRaggedRows(t *testing.T) {
	if _, err := NewGrid([]string{"##", "#"}, tile); err == nil {
		t.Fatal("expected error for ragged rows")
	}
	if _, err := NewGrid([]string{"#x"}, tile); err == nil {
		t.Fatal("expected error for unknown cell")
	}
	if _, err := NewGrid(nil, tile); err == nil {
		t.Fatal("expected error for empty grid")
	}
}

func TestMapToWorldCentersOddGrid(t *testing.T) {
	rows := make([]string, 13)
	for i := range rows {
		rows[i] = "#############"
	}
	g, err := NewGrid(rows, tile)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		pos  Pos
		want mgl32.Vec3
	}{
		{Pos{6, 6}, mgl32.Vec3{0, 0, 0}},
		{Pos{0, 0}, mgl32.Vec3{-12, 0, -12}},
		{Pos{12, 3}, mgl32.Vec3{12, 0, -6}},
	}
	for _, tt := range tests {
		got := g.MapToWorld(tt.pos)
		if !got.ApproxEqual(tt.want) {
			t.Errorf("MapToWorld(%v) = %v, want %v", tt.pos, got, tt.want)
		}
		back, ok := g.WorldToMap(got.Add(mgl32.Vec3{0.4, 1, -0.6}))
		if !ok || back != tt.pos {
			t.Errorf("WorldToMap(MapToWorld(%v)) = %v, %v", tt.pos, back, ok)
		}
	}
}

func TestWorldToMapOutside(t *testing.T) {
	g, _ := NewGrid([]string{"###", "###", "###"}, tile)
	if _, ok := g.WorldToMap(mgl32.Vec3{10, 0, 0}); ok {
		t.Error("point far right of the grid reported inside")
	}
}

func TestFloorsAndAt(t *testing.T) {
	g, _ := NewGrid([]string{"#.", ".#"}, tile)
	floors := g.Floors()
	if len(floors) != 2 || floors[0] != (Pos{0, 0}) || floors[1] != (Pos{1, 1}) {
		t.Fatalf("Floors() = %v", floors)
	}
	if g.At(Pos{1, 0}) != Void || g.At(Pos{5, 5}) != Void || g.At(Pos{1, 1}) != Floor {
		t.Error("At returned wrong cells")
	}
}
