// internal/render/render.go
package render

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"undefended/internal/app"
	"undefended/internal/assets"
	"undefended/internal/config"
	"undefended/internal/entity"
	"undefended/internal/starfield"
	"undefended/internal/types"
)

// RenderSystem рисует мир игры: звёздный фон, лаву, сущности, контуры и путь врагов.
type RenderSystem struct {
	models *assets.ModelManager
	stars  *starfield.Field
	Camera rl.Camera3D
}

func NewRenderSystem(models *assets.ModelManager, stars *starfield.Field) *RenderSystem {
	return &RenderSystem{
		models: models,
		stars:  stars,
		Camera: rl.Camera3D{
			Position:   rl.NewVector3(config.CameraOffsetX, config.CameraOffsetY, config.CameraOffsetZ),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       config.CameraFovy,
			Projection: rl.CameraPerspective,
		},
	}
}

func vec(v mgl32.Vec3) rl.Vector3 { return rl.NewVector3(v[0], v[1], v[2]) }

// axisAngle раскладывает кватернион на ось и угол в градусах для DrawModelEx.
func axisAngle(q mgl32.Quat) (rl.Vector3, float32) {
	q = q.Normalize()
	w := float64(q.W)
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	s := math.Sqrt(1 - w*w)
	if s < 1e-4 {
		return rl.NewVector3(0, 1, 0), 0
	}
	axis := q.V.Mul(float32(1 / s))
	return vec(axis), float32(2 * math.Acos(w) * 180 / math.Pi)
}

// SyncCamera копирует положение камеры из игры.
func (s *RenderSystem) SyncCamera(game *app.Game) {
	s.Camera.Position = vec(game.Camera.Eye())
	s.Camera.Target = vec(game.Camera.Target())
	if pos, ok := game.PlayerPosition(); ok {
		s.stars.Follow(pos)
	}
}

// DrawBackground рисует звёзды, до BeginMode3D.
func (s *RenderSystem) DrawBackground() {
	rl.ClearBackground(config.BackgroundColor)
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	for i, star := range s.stars.Stars {
		x, y := s.stars.Project(i, w, h)
		rl.DrawCircleV(rl.NewVector2(x, y), star.Size, rl.NewColor(star.Brightness, star.Brightness, star.Brightness, 255))
	}
}

// Draw рисует 3D-сцену. Вызывается между BeginMode3D и EndMode3D.
func (s *RenderSystem) Draw(game *app.Game) {
	ecs := game.ECS
	grid := game.MapSystem.Grid

	// лава
	for id := range ecs.Lavas {
		t, ok := ecs.Transforms[id]
		if !ok {
			continue
		}
		size := rl.NewVector3(float32(grid.Cols)*grid.TileSize[0]*4, config.LavaThickness, float32(grid.Rows)*grid.TileSize[2]*4)
		rl.DrawCubeV(vec(t.Translation), size, config.LavaColor)
	}

	// путь врагов по дну каналов
	path := game.MapSystem.Path
	for i := 1; i < len(path); i++ {
		rl.DrawLine3D(vec(path[i-1]), vec(path[i]), config.PathColor)
	}

	for _, id := range entity.SortedIDs(ecs.Renderables) {
		r := ecs.Renderables[id]
		model, ok := s.models.GetModel(r.Model)
		if !ok {
			continue
		}
		global, ok := ecs.GlobalTransform(id)
		if !ok {
			continue
		}
		axis, angle := axisAngle(global.Rotation)
		pos := vec(global.Translation)
		scale := rl.NewVector3(r.Scale, r.Scale, r.Scale)
		rl.DrawModelEx(model, pos, axis, angle, scale, r.Color)

		if o, ok := ecs.Outlines[id]; ok {
			grow := r.Scale * (1 + o.Width*0.02)
			rl.DrawModelWiresEx(model, pos, axis, angle, rl.NewVector3(grow, grow, grow), o.Color)
		}
	}
}

// Bar — полоска над сущностью в экранных координатах.
type Bar struct {
	Position rl.Vector2
	Fraction float32
	Color    rl.Color
	Back     rl.Color
}

// Bars возвращает полоски боезапаса башен и здоровья врагов.
func (s *RenderSystem) Bars(game *app.Game) []Bar {
	ecs := game.ECS
	var bars []Bar
	project := func(id types.EntityID, lift float32) (rl.Vector2, bool) {
		t, ok := ecs.GlobalTransform(id)
		if !ok {
			return rl.Vector2{}, false
		}
		p := t.Translation.Add(mgl32.Vec3{0, lift, 0})
		return rl.GetWorldToScreen(vec(p), s.Camera), true
	}
	for _, id := range entity.SortedIDs(ecs.Ammo) {
		a := ecs.Ammo[id]
		if pos, ok := project(id, 2); ok && a.Max > 0 {
			bars = append(bars, Bar{Position: pos, Fraction: float32(a.Current) / float32(a.Max), Color: config.AmmoBarColor, Back: config.AmmoBarEmptyColor})
		}
	}
	for _, id := range entity.SortedIDs(ecs.HitPoints) {
		hp := ecs.HitPoints[id]
		if pos, ok := project(id, 1); ok && hp.Max > 0 {
			bars = append(bars, Bar{Position: pos, Fraction: float32(hp.Current) / float32(hp.Max), Color: config.HPBarColor, Back: config.HPBarBackColor})
		}
	}
	return bars
}
