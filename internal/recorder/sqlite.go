// internal/recorder/sqlite.go
package recorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteBackend writes records to an SQLite file through GORM.
type SQLiteBackend struct {
	path       string
	db         *gorm.DB
	currentSID uint
}

func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

// Init opens the database and migrates the schema.
func (b *SQLiteBackend) Init() error {
	db, err := gorm.Open(sqlite.Open(b.path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", b.path, err)
	}
	if err := db.AutoMigrate(&Session{}, &TowerBuiltRecord{}, &ShotRecord{}, &DryFireRecord{}, &MenuRecord{}); err != nil {
		return fmt.Errorf("migrate recorder schema: %w", err)
	}
	b.db = db
	return nil
}

func (b *SQLiteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	b.db = nil
	return sqlDB.Close()
}

func (b *SQLiteBackend) ready() error {
	if b.db == nil {
		return errors.New("sqlite backend not initialised")
	}
	if b.currentSID == 0 {
		return errNoSession
	}
	return nil
}

func (b *SQLiteBackend) StartSession(startedAt time.Time, label string) (uint, error) {
	if b.db == nil {
		return 0, errors.New("sqlite backend not initialised")
	}
	s := Session{StartedAt: startedAt, Label: label}
	if err := b.db.Create(&s).Error; err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	b.currentSID = s.ID
	return s.ID, nil
}

func (b *SQLiteBackend) RecordTowerBuilt(r *TowerBuiltRecord) error {
	if err := b.ready(); err != nil {
		return err
	}
	r.SessionID = b.currentSID
	return b.db.Create(r).Error
}

func (b *SQLiteBackend) RecordShot(r *ShotRecord) error {
	if err := b.ready(); err != nil {
		return err
	}
	r.SessionID = b.currentSID
	return b.db.Create(r).Error
}

func (b *SQLiteBackend) RecordDryFire(r *DryFireRecord) error {
	if err := b.ready(); err != nil {
		return err
	}
	r.SessionID = b.currentSID
	return b.db.Create(r).Error
}

func (b *SQLiteBackend) RecordMenu(r *MenuRecord) error {
	if err := b.ready(); err != nil {
		return err
	}
	r.SessionID = b.currentSID
	return b.db.Create(r).Error
}

type kindCount struct {
	Kind  string
	Count int
}

func (b *SQLiteBackend) Summary() (Summary, error) {
	s := newSummary()
	if err := b.ready(); err != nil {
		return s, err
	}

	var towers []kindCount
	if err := b.db.Model(&TowerBuiltRecord{}).
		Select("kind, count(*) as count").
		Where("session_id = ?", b.currentSID).
		Group("kind").
		Scan(&towers).Error; err != nil {
		return s, fmt.Errorf("count towers: %w", err)
	}
	for _, row := range towers {
		s.TowersBuilt[row.Kind] = row.Count
	}

	var shots []kindCount
	if err := b.db.Model(&ShotRecord{}).
		Select("kind, count(*) as count").
		Where("session_id = ?", b.currentSID).
		Group("kind").
		Scan(&shots).Error; err != nil {
		return s, fmt.Errorf("count shots: %w", err)
	}
	for _, row := range shots {
		s.Shots[row.Kind] = row.Count
	}

	var n int64
	if err := b.db.Model(&DryFireRecord{}).Where("session_id = ?", b.currentSID).Count(&n).Error; err != nil {
		return s, fmt.Errorf("count dry fires: %w", err)
	}
	s.DryFires = int(n)

	if err := b.db.Model(&MenuRecord{}).Where("session_id = ? AND opened = ?", b.currentSID, true).Count(&n).Error; err != nil {
		return s, fmt.Errorf("count menus: %w", err)
	}
	s.MenuOpened = int(n)
	if err := b.db.Model(&MenuRecord{}).Where("session_id = ? AND opened = ?", b.currentSID, false).Count(&n).Error; err != nil {
		return s, fmt.Errorf("count menus: %w", err)
	}
	s.MenuClosed = int(n)
	return s, nil
}
