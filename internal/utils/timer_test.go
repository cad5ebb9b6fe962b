package utils

import "testing"

func TestTimerOnce(t *testing.T) {
	timer := NewTimer(1.0, TimerOnce)
	timer.Tick(0.6)
	if timer.Finished() || timer.JustFinished() {
		t.Fatal("timer finished too early")
	}
	timer.Tick(0.6)
	if !timer.Finished() || !timer.JustFinished() {
		t.Fatal("timer should have just finished")
	}
	timer.Tick(0.6)
	if !timer.Finished() {
		t.Error("once timer should stay finished")
	}
	if timer.JustFinished() {
		t.Error("once timer must not fire twice")
	}
	if timer.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", timer.Remaining())
	}
}

func TestTimerRepeating(t *testing.T) {
	timer := NewTimer(4.0, TimerRepeating)
	fired := 0
	for i := 0; i < 100; i++ {
		timer.Tick(0.1)
		if timer.JustFinished() {
			fired++
		}
	}
	// 10 секунд / 4 секунды
	if fired != 2 {
		t.Fatalf("fired %d times in 10s, want 2", fired)
	}

	timer.Reset()
	timer.Tick(9)
	if timer.TimesFinishedThisTick() != 2 {
		t.Errorf("TimesFinishedThisTick() = %d, want 2", timer.TimesFinishedThisTick())
	}
	if timer.Elapsed < 0.99 || timer.Elapsed > 1.01 {
		t.Errorf("Elapsed = %v, want 1", timer.Elapsed)
	}
}
