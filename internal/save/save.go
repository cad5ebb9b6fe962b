// internal/save/save.go
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"undefended/internal/settings"
)

const (
	AppName      = "undefended"
	saveObject   = "save"
	saveProperty = "settings"
)

// Manager хранит настройки через gdata: файл на десктопе, localStorage в браузере.
// gdataManager может быть nil, тогда настройки живут только в памяти.
type Manager struct {
	gdataManager *gdata.Manager
	current      settings.Settings
	saved        settings.Settings
}

// Open открывает хранилище приложения. Ошибка открытия не фатальна:
// возвращается менеджер без хранилища.
func Open() *Manager {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Save] storage unavailable: %v (settings will not persist)", err)
		return NewManager(nil)
	}
	return NewManager(m)
}

// NewManager создаёт менеджер и загружает сохранённые настройки.
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{gdataManager: gdataManager}
	if err := m.Load(); err != nil {
		log.Printf("[Save] Warning: %v (using defaults)", err)
	}
	return m
}

// Load читает сохранение; при отсутствии или ошибке остаются значения по умолчанию.
func (m *Manager) Load() error {
	m.current = settings.Default()
	m.saved = m.current
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return nil
	}
	data, err := m.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return fmt.Errorf("failed to load save file: %w", err)
	}
	loaded := settings.Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to deserialize save file: %w", err)
	}
	loaded.Normalize()
	m.current = loaded
	m.saved = loaded
	log.Printf("[Save] Loaded settings: %+v", loaded)
	return nil
}

// Settings — текущие настройки.
func (m *Manager) Settings() settings.Settings {
	return m.current
}

// Update запоминает настройки и сохраняет их, только если они изменились.
// Возвращает true, если запись была.
func (m *Manager) Update(s settings.Settings) (bool, error) {
	m.current = s
	if s == m.saved {
		return false, nil
	}
	if err := m.write(s); err != nil {
		return false, err
	}
	m.saved = s
	return true, nil
}

func (m *Manager) write(s settings.Settings) error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize save file: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Save] Saving settings.")
	return nil
}
