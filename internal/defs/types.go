// internal/defs/types.go
package defs

import "undefended/pkg/tilemap"

// Cell — координаты клетки в YAML: [колонка, строка].
type Cell [2]int

func (c Cell) Pos() tilemap.Pos { return tilemap.Pos{X: c[0], Y: c[1]} }

// ItemKind — тип предмета, который можно подобрать.
type ItemKind string

const (
	ItemTowerKit  ItemKind = "tower_kit"
	ItemLaserAmmo ItemKind = "laser_ammo"
)

// Targeting — стратегия выбора цели башней.
type Targeting string

const (
	TargetNearest  Targeting = "nearest"  // ближайший к башне
	TargetProgress Targeting = "progress" // дальше всех прошедший по пути
)

// SpawnerDefinition — клетка, на которой постоянно появляется предмет.
type SpawnerDefinition struct {
	Cell Cell     `yaml:"cell"`
	Item ItemKind `yaml:"item"`
}

// MoverDefinition — платформа, которая ездит между двумя клетками.
type MoverDefinition struct {
	From   Cell    `yaml:"from"`
	To     Cell    `yaml:"to"`
	Period float64 `yaml:"period"` // секунд на полный цикл туда и обратно
}

// LevelDefinition описывает карту.
type LevelDefinition struct {
	Name     string              `yaml:"name"`
	Rows     []string            `yaml:"rows"`
	Start    Cell                `yaml:"start"`
	Path     []Cell              `yaml:"path"`
	PathMask []string            `yaml:"pathMask,omitempty"` // 'o' — клетки пути, точки считаются A*
	Spawners []SpawnerDefinition `yaml:"spawners"`
	Movers   []MoverDefinition   `yaml:"movers"`
}

// WaveDefinition — одна волна врагов.
type WaveDefinition struct {
	Delay    float64 `yaml:"delay"`    // пауза перед первой волной врага
	Count    int     `yaml:"count"`    // сколько врагов
	Interval float64 `yaml:"interval"` // интервал между врагами
	HP       int     `yaml:"hp"`
}

// DifficultyModifier масштабирует волны.
type DifficultyModifier struct {
	HP       float64 `yaml:"hp"`
	Interval float64 `yaml:"interval"`
}

type WaveFile struct {
	Waves      []WaveDefinition              `yaml:"waves"`
	Difficulty map[string]DifficultyModifier `yaml:"difficulty"`
}

// TowerDefinition — параметры башни.
type TowerDefinition struct {
	ID         string    `yaml:"id"`
	Ammo       int       `yaml:"ammo"`
	Cooldown   float64   `yaml:"cooldown"`
	Range      float64   `yaml:"range"`
	Targeting  Targeting `yaml:"targeting"`
	LaserSpeed float64   `yaml:"laser_speed"`
	Damage     int       `yaml:"damage"`
}

// Library — все загруженные определения.
type Library struct {
	Level      LevelDefinition
	Waves      []WaveDefinition
	Difficulty map[string]DifficultyModifier
	Towers     map[string]TowerDefinition
}

// Tower возвращает определение башни по умолчанию.
func (l *Library) Tower() TowerDefinition {
	if def, ok := l.Towers[DefaultTowerID]; ok {
		return def
	}
	for _, def := range l.Towers {
		return def
	}
	return TowerDefinition{}
}

// Modifier возвращает множители сложности, единичные если такой нет.
func (l *Library) Modifier(difficulty string) DifficultyModifier {
	if m, ok := l.Difficulty[difficulty]; ok {
		return m
	}
	return DifficultyModifier{HP: 1, Interval: 1}
}

const DefaultTowerID = "laser"
