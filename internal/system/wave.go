// internal/system/wave.go
package system

import (
	"log"
	"math"

	"undefended/internal/defs"
	"undefended/internal/event"
	"undefended/internal/utils"
)

// WaveState — таймеры текущей волны.
type WaveState struct {
	DelayTimer utils.Timer
	SpawnTimer utils.Timer
	Remaining  int
}

func newWaveState(w defs.WaveDefinition) WaveState {
	return WaveState{
		DelayTimer: utils.NewTimer(w.Delay, utils.TimerOnce),
		SpawnTimer: utils.NewTimer(w.Interval, utils.TimerRepeating),
		Remaining:  w.Count,
	}
}

// WaveSystem выпускает волны врагов по таймерам.
type WaveSystem struct {
	eventDispatcher *event.Dispatcher
	base            []defs.WaveDefinition
	waves           []defs.WaveDefinition
	current         int
	State           WaveState
}

func NewWaveSystem(eventDispatcher *event.Dispatcher, waves []defs.WaveDefinition) *WaveSystem {
	ws := &WaveSystem{eventDispatcher: eventDispatcher, base: waves}
	ws.Rewind(defs.DifficultyModifier{HP: 1, Interval: 1})
	return ws
}

// Rewind начинает заново с первой волны, применяя множители сложности.
func (s *WaveSystem) Rewind(mod defs.DifficultyModifier) {
	s.waves = ScaleWaves(s.base, mod)
	s.current = 0
	if len(s.waves) > 0 {
		s.State = newWaveState(s.waves[0])
	} else {
		s.State = WaveState{}
	}
}

// ScaleWaves умножает здоровье и интервал волн; здоровье округляется вверх.
func ScaleWaves(waves []defs.WaveDefinition, mod defs.DifficultyModifier) []defs.WaveDefinition {
	out := make([]defs.WaveDefinition, len(waves))
	for i, w := range waves {
		w.HP = int(math.Ceil(float64(w.HP)*mod.HP - 1e-9))
		if w.HP < 1 {
			w.HP = 1
		}
		w.Interval *= mod.Interval
		out[i] = w
	}
	return out
}

// Current — текущая волна; false, если волны кончились.
func (s *WaveSystem) Current() (defs.WaveDefinition, bool) {
	if s.current >= len(s.waves) {
		return defs.WaveDefinition{}, false
	}
	return s.waves[s.current], true
}

func (s *WaveSystem) Index() int { return s.current }

func (s *WaveSystem) Total() int { return len(s.waves) }

// Finished — все враги всех волн уже выпущены.
func (s *WaveSystem) Finished() bool {
	_, ok := s.Current()
	return !ok && s.State.Remaining == 0
}

// Countdown — секунд до начала текущей волны, 0 если она уже идёт.
func (s *WaveSystem) Countdown() float64 {
	if _, ok := s.Current(); !ok {
		return 0
	}
	return s.State.DelayTimer.Remaining()
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave, ok := s.Current()
	if !ok {
		return
	}
	s.State.DelayTimer.Tick(deltaTime)
	if !s.State.DelayTimer.Finished() {
		return
	}
	if s.State.DelayTimer.JustFinished() {
		log.Printf("[Waves] wave %d started", s.current+1)
		s.eventDispatcher.Enqueue(event.Event{Type: event.WaveStarted, Data: event.WaveData{Index: s.current}})
	}
	s.State.SpawnTimer.Tick(deltaTime)
	if !s.State.SpawnTimer.JustFinished() {
		return
	}
	s.eventDispatcher.Enqueue(event.Event{Type: event.SpawnEnemy, Data: event.SpawnEnemyData{HP: wave.HP}})
	s.State.Remaining--
	if s.State.Remaining > 0 {
		return
	}
	s.eventDispatcher.Enqueue(event.Event{Type: event.WaveEnded, Data: event.WaveData{Index: s.current}})
	s.current++
	if next, ok := s.Current(); ok {
		s.State = newWaveState(next)
	}
}
