// internal/settings/settings.go
package settings

import "fmt"

// Difficulty — уровень сложности, масштабирует волны.
type Difficulty int

const (
	Normal Difficulty = iota
	Hard
	Extra
)

// Next — следующая сложность по кругу NORMAL → HARD → EXTRA → NORMAL.
func (d Difficulty) Next() Difficulty {
	switch d {
	case Normal:
		return Hard
	case Hard:
		return Extra
	default:
		return Normal
	}
}

func (d Difficulty) String() string {
	switch d {
	case Hard:
		return "HARD"
	case Extra:
		return "EXTRA"
	default:
		return "NORMAL"
	}
}

// ParseDifficulty — обратное к String.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range []Difficulty{Normal, Hard, Extra} {
		if d.String() == s {
			return d, nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Difficulty) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Settings — настройки, которые сохраняются между запусками.
type Settings struct {
	Sfx        uint8      `yaml:"sfx"`   // громкость эффектов 0–100
	Music      uint8      `yaml:"music"` // громкость музыки 0–100
	Difficulty Difficulty `yaml:"difficulty"`
}

func Default() Settings {
	return Settings{Sfx: 100, Music: 100, Difficulty: Normal}
}

// StepVolume уменьшает громкость на 10; с нуля переходит на 100.
func StepVolume(v uint8) uint8 {
	if v == 0 {
		return 100
	}
	if v < 10 {
		return 0
	}
	return v - 10
}

// Fraction переводит громкость 0–100 в 0..1.
func Fraction(v uint8) float64 {
	if v > 100 {
		v = 100
	}
	return float64(v) / 100
}

// Normalize приводит загруженные значения к допустимым.
func (s *Settings) Normalize() {
	s.Sfx = min(s.Sfx, 100)
	s.Music = min(s.Music, 100)
	if s.Difficulty < Normal || s.Difficulty > Extra {
		s.Difficulty = Normal
	}
}
