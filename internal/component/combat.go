package component

// HitPoints — здоровье врага.
type HitPoints struct {
	Current int
	Max     int
}

// NewHitPoints создаёт здоровье с полным запасом.
func NewHitPoints(max int) *HitPoints {
	return &HitPoints{Current: max, Max: max}
}

// Damage уменьшает здоровье, не опускаясь ниже нуля.
func (h *HitPoints) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Ammo — боезапас башни.
type Ammo struct {
	Current int
	Max     int
}

func NewAmmo(max int) *Ammo {
	return &Ammo{Current: max, Max: max}
}
