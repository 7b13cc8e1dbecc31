// internal/recorder/storage.go
package recorder

import (
	"fmt"
	"time"

	"go-garden-defense/internal/config"
)

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// StartSession opens a new session; later records are attached to it.
	StartSession(startedAt time.Time, label string) (uint, error)

	RecordTowerBuilt(r *TowerBuiltRecord) error
	RecordShot(r *ShotRecord) error
	RecordDryFire(r *DryFireRecord) error
	RecordMenu(r *MenuRecord) error

	// Summary counts the records of the current session.
	Summary() (Summary, error)
}

// NewBackend creates a storage backend based on configuration.
// Backend "none" returns nil, nil.
func NewBackend(cfg config.RecorderSettings) (Backend, error) {
	switch cfg.Backend {
	case config.RecorderNone, "":
		return nil, nil
	case config.RecorderMemory:
		return NewMemoryBackend(), nil
	case config.RecorderSQLite:
		return NewSQLiteBackend(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unknown recorder backend: %s", cfg.Backend)
	}
}
