// internal/assets/model_manager.go
package assets

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/component"
	"undefended/internal/config"
)

// ModelManager строит, кэширует и выгружает 3D-модели.
// Файлов моделей нет: все меши генерируются raylib.
type ModelManager struct {
	models map[component.ModelID]rl.Model
}

// NewModelManager создает новый экземпляр ModelManager.
func NewModelManager() *ModelManager {
	return &ModelManager{
		models: make(map[component.ModelID]rl.Model),
	}
}

// meshSpec — меш и смещение модели относительно центра сущности.
type meshSpec struct {
	build  func() rl.Mesh
	offset rl.Vector3
}

func cube(x, y, z float32) func() rl.Mesh {
	return func() rl.Mesh { return rl.GenMeshCube(x, y, z) }
}

func cylinder(r, h float32) func() rl.Mesh {
	return func() rl.Mesh { return rl.GenMeshCylinder(r, h, 16) }
}

func sphere(r float32) func() rl.Mesh {
	return func() rl.Mesh { return rl.GenMeshSphere(r, 12, 16) }
}

var meshes = map[component.ModelID]meshSpec{
	component.ModelFloor:       {build: cube(config.TileSizeX*0.96, config.TileSizeY, config.TileSizeZ*0.96)},
	component.ModelSpawnerPad:  {build: cube(config.TileSizeX*0.96, config.TileSizeY, config.TileSizeZ*0.96)},
	component.ModelMovingFloor: {build: cube(config.TileSizeX*0.9, config.TileSizeY, config.TileSizeZ*0.9)},
	// цилиндр raylib растёт от основания вверх, поэтому опускаем его на половину высоты
	component.ModelPlayer: {
		build:  cylinder(config.PlayerCapsuleRadius, 2*(config.PlayerCapsuleHalf+config.PlayerCapsuleRadius)),
		offset: rl.NewVector3(0, -(config.PlayerCapsuleHalf + config.PlayerCapsuleRadius), 0),
	},
	component.ModelEnemy:     {build: sphere(config.EnemyRadius)},
	component.ModelTowerBase: {build: cylinder(0.7, 1.5), offset: rl.NewVector3(0, -0.75, 0)},
	component.ModelTowerHead: {build: cube(0.6, 0.45, 1.2), offset: rl.NewVector3(0, 0, 0.3)},
	component.ModelLaser:     {build: cube(config.LaserSize, config.LaserSize, config.LaserSize*6)},
	component.ModelTowerKit:  {build: cube(0.5, 0.5, 0.5)},
	component.ModelLaserAmmo: {build: cylinder(0.2, 0.5), offset: rl.NewVector3(0, -0.25, 0)},
}

// loadSingleModel безопасно строит одну модель.
func (m *ModelManager) loadSingleModel(id component.ModelID, ms meshSpec) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Assets] raylib panicked while building model %q, skipping: %v", id, r)
		}
	}()

	if _, ok := m.models[id]; ok {
		return
	}

	model := rl.LoadModelFromMesh(ms.build())
	if model.MeshCount == 0 {
		log.Printf("[Assets] WARNING: model %q has no meshes", id)
		return
	}
	model.Transform = rl.MatrixTranslate(ms.offset.X, ms.offset.Y, ms.offset.Z)
	m.models[id] = model
}

// LoadAll строит все модели. Вызывается после открытия окна.
func (m *ModelManager) LoadAll() {
	for id, ms := range meshes {
		m.loadSingleModel(id, ms)
	}
	log.Printf("[Assets] %d models ready", len(m.models))
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
	log.Println("[Assets] all models unloaded")
}

// GetModel возвращает модель по ID.
func (m *ModelManager) GetModel(id component.ModelID) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}
