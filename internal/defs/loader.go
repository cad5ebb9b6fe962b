// internal/defs/loader.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"undefended/pkg/tilemap"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	levelFile  = "level.yaml"
	wavesFile  = "waves.yaml"
	towersFile = "towers.yaml"
)

// LoadAll загружает определения из каталога dir. Пустой dir — встроенные данные.
// Файлы, которых нет в dir, берутся из встроенных.
func LoadAll(dir string) (*Library, error) {
	var override fs.FS
	if dir != "" {
		override = os.DirFS(dir)
	}
	read := func(name string) ([]byte, error) {
		if override != nil {
			data, err := fs.ReadFile(override, name)
			if err == nil {
				log.Printf("[Defs] %s loaded from %s", name, dir)
				return data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
		return embedded.ReadFile(path.Join("data", name))
	}

	lib := &Library{}

	data, err := read(levelFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	if lib.Level, err = ParseLevel(data); err != nil {
		return nil, err
	}

	data, err = read(wavesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read waves file: %w", err)
	}
	waves, err := ParseWaves(data)
	if err != nil {
		return nil, err
	}
	lib.Waves = waves.Waves
	lib.Difficulty = waves.Difficulty

	data, err = read(towersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read towers file: %w", err)
	}
	if lib.Towers, err = ParseTowers(data); err != nil {
		return nil, err
	}

	log.Printf("[Defs] level %q, %d waves, %d tower definitions", lib.Level.Name, len(lib.Waves), len(lib.Towers))
	return lib, nil
}

// ParseLevel разбирает и проверяет описание карты. Если задан pathMask,
// точки пути вычисляются поиском от первой до последней точки path.
func ParseLevel(data []byte) (LevelDefinition, error) {
	var level LevelDefinition
	if err := yaml.Unmarshal(data, &level); err != nil {
		return level, fmt.Errorf("failed to parse level YAML: %w", err)
	}
	if len(level.PathMask) > 0 {
		waypoints, err := waypointsFromMask(level)
		if err != nil {
			return level, fmt.Errorf("invalid level path mask: %w", err)
		}
		level.Path = waypoints
	}
	if err := validateLevel(&level); err != nil {
		return level, fmt.Errorf("invalid level config: %w", err)
	}
	return level, nil
}

// ParseWaves разбирает список волн и модификаторы сложности.
func ParseWaves(data []byte) (WaveFile, error) {
	var wf WaveFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return wf, fmt.Errorf("failed to parse waves YAML: %w", err)
	}
	if err := validateWaves(&wf); err != nil {
		return wf, fmt.Errorf("invalid waves config: %w", err)
	}
	return wf, nil
}

// ParseTowers разбирает определения башен.
func ParseTowers(data []byte) (map[string]TowerDefinition, error) {
	var list []TowerDefinition
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse towers YAML: %w", err)
	}
	towers := make(map[string]TowerDefinition, len(list))
	for _, def := range list {
		if def.Targeting == "" {
			def.Targeting = TargetNearest
		}
		if err := validateTower(def); err != nil {
			return nil, fmt.Errorf("invalid tower %q: %w", def.ID, err)
		}
		towers[def.ID] = def
	}
	if len(towers) == 0 {
		return nil, fmt.Errorf("no tower definitions")
	}
	return towers, nil
}

func validateLevel(level *LevelDefinition) error {
	grid, err := tilemap.NewGrid(level.Rows, defaultTileSize)
	if err != nil {
		return err
	}
	if grid.At(level.Start.Pos()) != tilemap.Floor {
		return fmt.Errorf("start %v is not a floor tile", level.Start.Pos())
	}
	if len(level.Path) < 2 {
		return fmt.Errorf("path needs at least 2 waypoints, got %d", len(level.Path))
	}
	occupied := map[tilemap.Pos]string{level.Start.Pos(): "start"}
	for i, s := range level.Spawners {
		p := s.Cell.Pos()
		if grid.At(p) != tilemap.Floor {
			return fmt.Errorf("spawner %d at %v is not on a floor tile", i, p)
		}
		if s.Item != ItemTowerKit && s.Item != ItemLaserAmmo {
			return fmt.Errorf("spawner %d has unknown item %q", i, s.Item)
		}
		if what, taken := occupied[p]; taken {
			return fmt.Errorf("spawner %d at %v overlaps %s", i, p, what)
		}
		occupied[p] = fmt.Sprintf("spawner %d", i)
	}
	for i, m := range level.Movers {
		if !grid.Contains(m.From.Pos()) || !grid.Contains(m.To.Pos()) {
			return fmt.Errorf("mover %d leaves the map", i)
		}
		if m.Period <= 0 {
			return fmt.Errorf("mover %d period must be > 0, got %v", i, m.Period)
		}
	}
	return nil
}

func validateWaves(wf *WaveFile) error {
	if len(wf.Waves) == 0 {
		return fmt.Errorf("waves cannot be empty")
	}
	for i, w := range wf.Waves {
		if w.Delay < 0 {
			return fmt.Errorf("wave %d delay must be >= 0, got %v", i, w.Delay)
		}
		if w.Count < 1 {
			return fmt.Errorf("wave %d count must be >= 1, got %d", i, w.Count)
		}
		if w.Interval <= 0 {
			return fmt.Errorf("wave %d interval must be > 0, got %v", i, w.Interval)
		}
		if w.HP < 1 {
			return fmt.Errorf("wave %d hp must be >= 1, got %d", i, w.HP)
		}
	}
	for name, m := range wf.Difficulty {
		if m.HP <= 0 || m.Interval <= 0 {
			return fmt.Errorf("difficulty %s multipliers must be > 0", name)
		}
	}
	return nil
}

func validateTower(def TowerDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if def.Ammo < 1 || def.Cooldown <= 0 || def.Range <= 0 || def.LaserSpeed <= 0 || def.Damage < 1 {
		return fmt.Errorf("ammo, cooldown, range, laser_speed and damage must be positive")
	}
	if def.Targeting != TargetNearest && def.Targeting != TargetProgress {
		return fmt.Errorf("unknown targeting %q", def.Targeting)
	}
	return nil
}

func waypointsFromMask(level LevelDefinition) ([]Cell, error) {
	if len(level.Path) < 2 {
		return nil, fmt.Errorf("path mask needs entry and exit in path")
	}
	mask, err := tilemap.NewGrid(maskToRows(level.PathMask), defaultTileSize)
	if err != nil {
		return nil, err
	}
	entry, exit := level.Path[0].Pos(), level.Path[len(level.Path)-1].Pos()
	cells := tilemap.AStar(entry, exit, mask, func(p tilemap.Pos) bool { return mask.At(p) == tilemap.Floor })
	if cells == nil {
		return nil, fmt.Errorf("no path from %v to %v", entry, exit)
	}
	corners := tilemap.Corners(cells)
	out := make([]Cell, len(corners))
	for i, p := range corners {
		out[i] = Cell{p.X, p.Y}
	}
	return out, nil
}

// maskToRows переводит 'o' маски пути в '#' проходимых клеток.
func maskToRows(mask []string) []string {
	rows := make([]string, len(mask))
	for i, row := range mask {
		b := []byte(row)
		for j := range b {
			if b[j] == 'o' {
				b[j] = '#'
			} else {
				b[j] = '.'
			}
		}
		rows[i] = string(b)
	}
	return rows
}
