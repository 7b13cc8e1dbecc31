// internal/recorder/records.go
package recorder

import "time"

// Session — один запуск игры.
type Session struct {
	ID        uint `gorm:"primaryKey"`
	StartedAt time.Time
	Label     string
}

// TowerBuiltRecord — площадка превращена в башню.
type TowerBuiltRecord struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"index"`
	GameTime  float64
	Tower     uint64
	Pad       uint64
	Kind      string `gorm:"size:16"`
	X, Y, Z   float64
}

// ShotRecord — башня выпустила снаряд.
type ShotRecord struct {
	ID         uint `gorm:"primaryKey"`
	SessionID  uint `gorm:"index"`
	GameTime   float64
	Tower      uint64
	Target     uint64
	Projectile uint64
	Kind       string `gorm:"size:16"`
	DirX       float64
	DirY       float64
	DirZ       float64
	Speed      float64
}

// DryFireRecord — перезарядка закончилась, но стрелять было не в кого.
type DryFireRecord struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"index"`
	GameTime  float64
	Tower     uint64
	Kind      string `gorm:"size:16"`
}

// MenuRecord — меню постройки открылось или закрылось.
type MenuRecord struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"index"`
	GameTime  float64
	Menu      uint64
	Opened    bool
	Selected  int
}

// Summary — сводка по текущей сессии.
type Summary struct {
	TowersBuilt map[string]int // По типу башни
	Shots       map[string]int
	DryFires    int
	MenuOpened  int
	MenuClosed  int
}

func newSummary() Summary {
	return Summary{TowersBuilt: map[string]int{}, Shots: map[string]int{}}
}
