package component

import "image/color"

// ModelID — ключ модели в assets.ModelManager.
type ModelID string

const (
	ModelFloor       ModelID = "floor"
	ModelPlayer      ModelID = "player"
	ModelEnemy       ModelID = "enemy"
	ModelTowerBase   ModelID = "tower_base"
	ModelTowerHead   ModelID = "tower_head"
	ModelLaser       ModelID = "laser"
	ModelTowerKit    ModelID = "tower_kit"
	ModelLaserAmmo   ModelID = "laser_ammo"
	ModelSpawnerPad  ModelID = "spawner_pad"
	ModelMovingFloor ModelID = "moving_floor"
)

// Renderable — что рисовать для сущности.
type Renderable struct {
	Model ModelID
	Color color.RGBA
	Scale float32
}

// Outline — подсветка контура.
type Outline struct {
	Color color.RGBA
	Width float32
	// Permanent — контур не снимается системой подсветки
	Permanent bool
}
