// internal/audio/manager.go
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"undefended/internal/event"
	"undefended/internal/settings"
)

// Manager проигрывает эффекты и музыку через beep.
// Без Initialize (или при -mute) все вызовы — no-op.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	sfx         uint8
	musicLevel  uint8
	initialized bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}, sfx: 100, musicLevel: 100}
}

// Initialize открывает устройство вывода.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	// бесконечная тишина держит микшер живым, когда звуков нет
	m.mixer.Add(beep.Silence(-1))
	speaker.Play(m.mixer)
	m.initialized = true
	log.Printf("[Audio] speaker initialized at %d Hz", sampleRate)
	return nil
}

// Close останавливает звук.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// Volume переводит громкость 0–100 в эффект beep.
func Volume(s beep.Streamer, v uint8) *effects.Volume {
	frac := settings.Fraction(v)
	if frac <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(frac), Silent: false}
}

// SetSfxVolume задаёт громкость следующих эффектов.
func (m *Manager) SetSfxVolume(v uint8) {
	m.mu.Lock()
	m.sfx = v
	m.mu.Unlock()
}

// SetMusicVolume меняет громкость уже играющей музыки.
func (m *Manager) SetMusicVolume(v uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicLevel = v
	if m.musicVolume == nil {
		return
	}
	next := Volume(nil, v)
	speaker.Lock()
	m.musicVolume.Volume = next.Volume
	m.musicVolume.Silent = next.Silent
	speaker.Unlock()
}

// StartMusic запускает музыку, если она ещё не играет.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.music != nil {
		return
	}
	m.musicVolume = Volume(NewMusic(), m.musicLevel)
	m.music = &beep.Ctrl{Streamer: m.musicVolume}
	speaker.Lock()
	m.mixer.Add(m.music)
	speaker.Unlock()
}

// Play проигрывает эффект с текущей громкостью эффектов.
func (m *Manager) Play(s event.Sound) {
	m.PlayAt(s, m.sfxVolume())
}

// PlayAt проигрывает эффект с заданной громкостью (меню проверяет новую громкость).
func (m *Manager) PlayAt(s event.Sound, v uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || v == 0 {
		return
	}
	speaker.Lock()
	m.mixer.Add(Volume(Synthesize(s), v))
	speaker.Unlock()
}

func (m *Manager) sfxVolume() uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sfx
}

// OnEvent — подписчик на event.PlaySound.
func (m *Manager) OnEvent(e event.Event) {
	if e.Type != event.PlaySound {
		return
	}
	if s, ok := e.Data.(event.Sound); ok {
		m.Play(s)
	}
}
