// internal/utils/timer.go
package utils

// TimerMode — однократный или повторяющийся таймер.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer отсчитывает время от нуля до Duration.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished     bool
	timesElapsed int
}

func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick продвигает таймер на dt секунд.
// Повторяющийся таймер может сработать несколько раз за один большой dt.
func (t *Timer) Tick(dt float64) {
	t.timesElapsed = 0
	if t.Mode == TimerOnce && t.finished {
		return
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		t.finished = false
		return
	}
	t.finished = true
	if t.Mode == TimerOnce {
		t.Elapsed = t.Duration
		t.timesElapsed = 1
		return
	}
	if t.Duration <= 0 {
		t.Elapsed = 0
		t.timesElapsed = 1
		return
	}
	for t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
		t.timesElapsed++
	}
}

// Finished — таймер дошёл до конца (для повторяющегося — на этом тике).
func (t *Timer) Finished() bool { return t.finished }

// JustFinished — таймер сработал именно на последнем Tick.
func (t *Timer) JustFinished() bool { return t.timesElapsed > 0 }

// TimesFinishedThisTick — сколько раз сработал на последнем Tick.
func (t *Timer) TimesFinishedThisTick() int { return t.timesElapsed }

// Remaining — сколько секунд до срабатывания.
func (t *Timer) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Reset возвращает таймер в начало.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesElapsed = 0
}
