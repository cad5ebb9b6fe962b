package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAllEmbedded(t *testing.T) {
	lib, err := LoadAll("")
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(lib.Waves) != 3 {
		t.Fatalf("got %d waves, want 3", len(lib.Waves))
	}
	first := lib.Waves[0]
	if first.Delay != 10 || first.Count != 4 || first.Interval != 4 || first.HP != 4 {
		t.Errorf("first wave = %+v", first)
	}
	if lib.Waves[2].HP != 10 {
		t.Errorf("third wave hp = %d, want 10", lib.Waves[2].HP)
	}

	tower := lib.Tower()
	if tower.Ammo != 20 || tower.Cooldown != 2.5 || tower.Range != 4 {
		t.Errorf("tower = %+v", tower)
	}

	grid := lib.Level.Grid()
	if grid.Rows != 13 || grid.Cols != 13 {
		t.Errorf("grid %dx%d, want 13x13", grid.Rows, grid.Cols)
	}
	if len(lib.Level.Path) < 2 {
		t.Errorf("level path too short: %v", lib.Level.Path)
	}
}

func TestLoadAllOverrideDirectory(t *testing.T) {
	dir := t.TempDir()
	waves := "waves:\n  - { delay: 1, count: 2, interval: 0.5, hp: 3 }\n"
	if err := os.WriteFile(filepath.Join(dir, "waves.yaml"), []byte(waves), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll(dir) error: %v", err)
	}
	if len(lib.Waves) != 1 || lib.Waves[0].Count != 2 {
		t.Errorf("override not applied: %+v", lib.Waves)
	}
	// level.yaml отсутствует в каталоге — должен прийти встроенный
	if lib.Level.Name != "outpost" {
		t.Errorf("level name = %q, want embedded outpost", lib.Level.Name)
	}
	if m := lib.Modifier("HARD"); m.HP != 1 || m.Interval != 1 {
		t.Errorf("override file has no difficulty, Modifier(HARD) = %+v", m)
	}
}

func TestParseWavesValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "waves: []\n", "waves cannot be empty"},
		{"zero count", "waves:\n  - { delay: 1, count: 0, interval: 1, hp: 1 }\n", "count must be >= 1"},
		{"zero interval", "waves:\n  - { delay: 1, count: 1, interval: 0, hp: 1 }\n", "interval must be > 0"},
		{"negative delay", "waves:\n  - { delay: -1, count: 1, interval: 1, hp: 1 }\n", "delay must be >= 0"},
		{"bad difficulty", "waves:\n  - { delay: 1, count: 1, interval: 1, hp: 1 }\ndifficulty:\n  HARD: { hp: 0, interval: 1 }\n", "multipliers must be > 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWaves([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("ParseWaves() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParseLevelValidation(t *testing.T) {
	base := "rows: [\"###\", \"...\"]\npath: [[0, 1], [2, 1]]\n"

	if _, err := ParseLevel([]byte(base + "start: [1, 0]\n")); err != nil {
		t.Fatalf("valid level rejected: %v", err)
	}
	if _, err := ParseLevel([]byte(base + "start: [1, 1]\n")); err == nil {
		t.Error("start on void accepted")
	}
	spawnerOnStart := base + "start: [1, 0]\nspawners:\n  - { cell: [1, 0], item: tower_kit }\n"
	if _, err := ParseLevel([]byte(spawnerOnStart)); err == nil {
		t.Error("spawner on start tile accepted")
	}
	badItem := base + "start: [1, 0]\nspawners:\n  - { cell: [0, 0], item: cake }\n"
	if _, err := ParseLevel([]byte(badItem)); err == nil {
		t.Error("unknown item accepted")
	}
}

func TestParseLevelPathMask(t *testing.T) {
	level := `
rows:
  - "#...."
  - "....."
  - "....."
start: [0, 0]
path: [[1, 0], [1, 2]]
pathMask:
  - ".ooo."
  - "...o."
  - ".ooo."
`
	l, err := ParseLevel([]byte(level))
	if err != nil {
		t.Fatalf("ParseLevel() error: %v", err)
	}
	want := []Cell{{1, 0}, {3, 0}, {3, 2}, {1, 2}}
	if len(l.Path) != len(want) {
		t.Fatalf("path = %v, want %v", l.Path, want)
	}
	for i := range want {
		if l.Path[i] != want[i] {
			t.Fatalf("path = %v, want %v", l.Path, want)
		}
	}
}

func TestParseTowersDefaultsTargeting(t *testing.T) {
	towers, err := ParseTowers([]byte("- { id: t, ammo: 1, cooldown: 1, range: 1, laser_speed: 1, damage: 1 }\n"))
	if err != nil {
		t.Fatal(err)
	}
	if towers["t"].Targeting != TargetNearest {
		t.Errorf("targeting = %q, want nearest", towers["t"].Targeting)
	}
	if _, err := ParseTowers([]byte("- { id: t, ammo: 1, cooldown: 1, range: 1, laser_speed: 1, damage: 1, targeting: random }\n")); err == nil {
		t.Error("unknown targeting accepted")
	}
}
