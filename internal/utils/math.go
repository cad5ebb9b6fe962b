// internal/utils/math.go
package utils

import (
	"math"
	"strings"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// LerpAngle выполняет линейную интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to float32, t float32) float32 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Clamp01 ограничивает t диапазоном [0, 1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SmoothStep — сглаженная интерполяция 3t²-2t³.
func SmoothStep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// ExpSmoothing возвращает долю пути к цели за dt при экспоненциальном сглаживании.
// За smoothness секунд остаётся e^-8 исходного расстояния.
func ExpSmoothing(smoothness, dt float64) float32 {
	if smoothness <= 0 {
		return 1
	}
	return float32(1 - math.Exp(-8*dt/smoothness))
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
