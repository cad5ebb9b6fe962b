package utils

import (
	"math"
	"testing"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 3: "III", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range tests {
		if got := ToRoman(in); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestLerpAngleTakesShortestWay(t *testing.T) {
	got := LerpAngle(3.0, -3.0, 0.5)
	if math.Abs(math.Abs(float64(got))-math.Pi) > 0.01 {
		t.Errorf("LerpAngle(3, -3, .5) = %v, want ±π", got)
	}
}

func TestSmoothStepAndClamp(t *testing.T) {
	if SmoothStep(-1) != 0 || SmoothStep(2) != 1 || SmoothStep(0.5) != 0.5 {
		t.Error("SmoothStep endpoints wrong")
	}
	if ExpSmoothing(0, 0.1) != 1 {
		t.Error("zero smoothness must snap")
	}
	a := ExpSmoothing(0.25, 1.0/60)
	if a <= 0 || a >= 1 {
		t.Errorf("ExpSmoothing = %v, want (0,1)", a)
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Range(-1, 1) != b.Range(-1, 1) {
			t.Fatal("same seed produced different sequences")
		}
	}
}
