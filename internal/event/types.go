// internal/event/types.go
package event

import (
	"undefended/internal/types"
	"undefended/pkg/tilemap"
)

const (
	CollisionStarted EventType = "CollisionStarted" // пара коллайдеров начала пересекаться
	CollisionStopped EventType = "CollisionStopped" // пара перестала пересекаться или одна сторона удалена
	SpawnPlayer      EventType = "SpawnPlayer"
	SpawnEnemy       EventType = "SpawnEnemy"
	SpawnTower       EventType = "SpawnTower"
	TowerPlaced      EventType = "TowerPlaced" // Башня построена
	EnemyKilled      EventType = "EnemyKilled"
	EnemyReachedEnd  EventType = "EnemyReachedEnd" // враг дошёл до базы
	AmmoDepleted     EventType = "AmmoDepleted"
	ItemGrabbed      EventType = "ItemGrabbed"
	WaveStarted      EventType = "WaveStarted"
	WaveEnded        EventType = "WaveEnded" // Волна закончилась
	PlaySound        EventType = "PlaySound"
)

// CollisionData — пара сущностей-коллайдеров, A < B.
type CollisionData struct {
	A, B types.EntityID
}

// Other возвращает вторую сторону пары, если id — одна из сторон.
func (c CollisionData) Other(id types.EntityID) (types.EntityID, bool) {
	switch id {
	case c.A:
		return c.B, true
	case c.B:
		return c.A, true
	}
	return 0, false
}

type SpawnEnemyData struct {
	HP int
}

type SpawnTowerData struct {
	Tile types.EntityID // клетка пола
}

type TileData struct {
	Tile tilemap.Pos
}

type WaveData struct {
	Index int
}

// Sound — имя звукового эффекта.
type Sound string

const (
	SoundBad       Sound = "bad"
	SoundBuild     Sound = "build"
	SoundFeed      Sound = "feed"
	SoundDamage    Sound = "damage"
	SoundPowerDown Sound = "powerdown"
	SoundLaser     Sound = "laser"
)

// PlaySoundEvent — удобный конструктор события звука.
func PlaySoundEvent(s Sound) Event {
	return Event{Type: PlaySound, Data: s}
}
