// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.06 // Ограничение шага симуляции при подвисаниях окна

	ModelOffsetY     = -0.8             // Смещение модели относительно корня башни или площадки
	BulletLifetime   = 10 * time.Second // Снаряды ни во что не попадают, поэтому живут по таймеру
	BulletName       = "Bullet"
	BuildMenuName    = "BuildMenu"
	BuildButtonName  = "BuildButton"
	PadName          = "Pad"
	TargetName       = "Target"
	TowerNameSuffix  = "_Tower"
	ModelNameSuffix  = "_Model"
	TowerModelScale  = 1.0
	TargetPickRadius = 0.5

	CameraSpeed       = 4.0
	CameraRotateSpeed = 0.4 // Радиан в секунду
	CameraStartX      = -2.0
	CameraStartY      = 2.5
	CameraStartZ      = 5.0
	LightX            = 4.0
	LightY            = 8.0
	LightZ            = 4.0

	BuildButtonSize    = 64
	BuildButtonSpacing = 12
	BuildButtonMarginY = 24

	SpeedButtonX    = 40   // Центр кнопки скорости
	SpeedButtonY    = 40   // Позиция по Y
	SpeedButtonSize = 18.0 // Радиус кнопки

	TextCharWidth = 7
	TextOffsetY   = 4

	// Обзорная карта (ebiten)
	OverviewScale     = 18.0 // Пикселей на единицу мира
	OverviewPadRadius = 7.0
	OverviewTowerSize = 8.0
	OverviewTarget    = 5.0
	OverviewBullet    = 2.5
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	GroundColor        = color.RGBA{70, 110, 60, 255}
	PadColor           = color.RGBA{150, 120, 90, 255}
	SelectedPadColor   = color.RGBA{255, 215, 0, 255}
	HoveredPadColor    = color.RGBA{240, 200, 140, 255}
	TargetColor        = color.RGBA{200, 60, 60, 255}
	BulletColor        = color.RGBA{250, 250, 210, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDarkColor      = color.RGBA{20, 20, 30, 255}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor   = color.RGBA{100, 160, 210, 240}
	ButtonStrokeColor  = color.RGBA{240, 240, 240, 255}
	PausedOverlayColor = color.RGBA{0, 0, 0, 140}
	TowerStrokeColor   = color.RGBA{255, 255, 255, 255}
	StrokeWidth        = 2.0
	TowerColors        = []color.RGBA{
		{230, 60, 50, 255},  // Tomato
		{200, 160, 90, 255}, // Potato
		{110, 200, 90, 255}, // Cabbage
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
	GameSpeeds = []float64{1, 2, 4}
)

// FireFlashDuration — сколько секунд башня подсвечена после перезарядки.
const FireFlashDuration = 0.25
