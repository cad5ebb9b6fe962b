// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "UNDEFENDED!"
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	// Размер клетки карты (X, Y, Z)
	TileSizeX = 2.0
	TileSizeY = 0.5
	TileSizeZ = 2.0
	// Клетки пола опущены, верх пола на -0.25
	FloorOffsetY = -0.5

	DefaultLives = 3

	// Камера
	CameraOffsetX     = 0.0
	CameraOffsetY     = 10.0
	CameraOffsetZ     = 6.0
	CameraSmoothness  = 0.25
	CameraFovy        = 45.0
	CameraLookAtLiftY = 1.0

	// Игрок
	PlayerSpeed            = 4.3
	PlayerTurnInPlace      = 0.3
	PlayerFloatHeight      = 1.0
	PlayerClingDistance    = 0.5
	PlayerAcceleration     = 50.0
	PlayerAirAcceleration  = 10.0
	PlayerTurningAngVel    = 5.0
	PlayerJumpHeight       = 2.0
	PlayerJumpExtraGravity = 40.0
	PlayerCapsuleHalf      = 0.30
	PlayerCapsuleRadius    = 0.5
	PlayerSpawnLift        = 0.5
	PlayerGroundRadius     = 0.49 // радиус диска, которым ищется пол под игроком
	PlayerFloatSpring      = 20.0
	Gravity                = 9.81

	// Пробы игрока, локальные координаты относительно игрока
	TileProbeLength   = 2.0
	ItemProbeHeight   = -0.25
	ItemProbeLength   = 1.0
	CursorOffsetY     = -0.9
	CursorOffsetZ     = -1.5
	CursorProbeLength = 2.1

	// Предмет в руках
	HeldItemOffsetY = -0.4
	HeldItemOffsetZ = -0.75
	ItemLift        = 0.5
	ItemRadius      = 0.35
	ItemRespawnTime = 5.0

	// Враги
	EnemySpeed  = 1.0
	EnemyRadius = 0.5

	// Башни
	TowerLift          = 0.75
	TowerHalfX         = 1.0
	TowerHalfY         = 3.0
	TowerHalfZ         = 1.0
	TowerHeadTurnSpeed = 10.0
	LaserSpeed         = 8.0
	LaserSize          = 0.1
	LaserOffsetY       = -0.2
	LaserOffsetZ       = 0.8
	LaserDamage        = 1

	// Лава под картой
	LavaDepth     = -4.0
	LavaThickness = 1.0

	// Подвижные платформы
	MovingFloorPeriod = 6.0

	// Выход из Pipelines после прогрева
	PipelineWarmupFrames = 3

	OutlineWidth = 3.0

	HUDFontSize      = 24
	TitleFontSize    = 50
	ButtonFontSize   = 25
	ButtonWidth      = 250
	ButtonHeight     = 45
	ButtonMargin     = 5
	PanelPadding     = 20
	BarWidth         = 40
	BarHeight        = 5
	StarCount        = 400
	StarParallaxRate = 6.0
)

var (
	BackgroundColor   = color.RGBA{5, 5, 12, 255}
	FloorColor        = color.RGBA{128, 128, 128, 255}
	FloorHighlight    = color.RGBA{178, 178, 178, 255}
	PathColor         = colornames.Slategray
	MovingFloorColor  = colornames.Steelblue
	SpawnerColor      = colornames.Darkslateblue
	LavaColor         = colornames.Orangered
	PlayerColor       = colornames.Whitesmoke
	EnemyColor        = colornames.Crimson
	TowerBaseColor    = colornames.Lightsteelblue
	TowerHeadColor    = colornames.Lightslategray
	LaserColor        = colornames.Yellow
	TowerKitColor     = colornames.Mediumseagreen
	LaserAmmoColor    = colornames.Gold
	OutlineColor      = color.RGBA{13, 242, 165, 255} // hsla(160, 0.9, 0.5)
	AmmoBarColor      = colornames.Gold
	AmmoBarEmptyColor = colornames.Dimgray
	HPBarColor        = colornames.Limegreen
	HPBarBackColor    = colornames.Maroon
	HUDTextColor      = color.RGBA{230, 230, 230, 255}
	WaveTextColor     = colornames.Lightskyblue

	// Цвета меню
	NormalButton         = color.RGBA{38, 38, 38, 255}
	HoveredButton        = color.RGBA{64, 64, 64, 255}
	FocusedButton        = color.RGBA{64, 0, 64, 255}
	FocusedHoveredButton = color.RGBA{89, 0, 89, 255}
	PressedButton        = color.RGBA{89, 191, 89, 255}
	ButtonText           = color.RGBA{230, 230, 230, 255}
	TitleText            = color.RGBA{230, 230, 230, 255}
	AltText              = color.RGBA{153, 153, 153, 255}
	ContainerBackground  = color.RGBA{26, 26, 26, 255}
)
