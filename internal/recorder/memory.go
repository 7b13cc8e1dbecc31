// internal/recorder/memory.go
package recorder

import (
	"errors"
	"sync"
	"time"
)

var errNoSession = errors.New("no session started")

// MemoryBackend keeps the records in process memory.
type MemoryBackend struct {
	mu         sync.RWMutex
	sessions   []Session
	towers     []TowerBuiltRecord
	shots      []ShotRecord
	dryFires   []DryFireRecord
	menus      []MenuRecord
	nextID     uint
	currentSID uint
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Init() error  { return nil }
func (b *MemoryBackend) Close() error { return nil }

func (b *MemoryBackend) id() uint {
	b.nextID++
	return b.nextID
}

func (b *MemoryBackend) StartSession(startedAt time.Time, label string) (uint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Session{ID: b.id(), StartedAt: startedAt, Label: label}
	b.sessions = append(b.sessions, s)
	b.currentSID = s.ID
	return s.ID, nil
}

func (b *MemoryBackend) RecordTowerBuilt(r *TowerBuiltRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.currentSID == 0 {
		return errNoSession
	}
	r.ID, r.SessionID = b.id(), b.currentSID
	b.towers = append(b.towers, *r)
	return nil
}

func (b *MemoryBackend) RecordShot(r *ShotRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.currentSID == 0 {
		return errNoSession
	}
	r.ID, r.SessionID = b.id(), b.currentSID
	b.shots = append(b.shots, *r)
	return nil
}

func (b *MemoryBackend) RecordDryFire(r *DryFireRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.currentSID == 0 {
		return errNoSession
	}
	r.ID, r.SessionID = b.id(), b.currentSID
	b.dryFires = append(b.dryFires, *r)
	return nil
}

func (b *MemoryBackend) RecordMenu(r *MenuRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.currentSID == 0 {
		return errNoSession
	}
	r.ID, r.SessionID = b.id(), b.currentSID
	b.menus = append(b.menus, *r)
	return nil
}

func (b *MemoryBackend) Summary() (Summary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := newSummary()
	for _, r := range b.towers {
		if r.SessionID == b.currentSID {
			s.TowersBuilt[r.Kind]++
		}
	}
	for _, r := range b.shots {
		if r.SessionID == b.currentSID {
			s.Shots[r.Kind]++
		}
	}
	for _, r := range b.dryFires {
		if r.SessionID == b.currentSID {
			s.DryFires++
		}
	}
	for _, r := range b.menus {
		if r.SessionID != b.currentSID {
			continue
		}
		if r.Opened {
			s.MenuOpened++
		} else {
			s.MenuClosed++
		}
	}
	return s, nil
}

// Shots returns a copy of every recorded shot.
func (b *MemoryBackend) Shots() []ShotRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]ShotRecord(nil), b.shots...)
}

// Towers returns a copy of every recorded build.
func (b *MemoryBackend) Towers() []TowerBuiltRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]TowerBuiltRecord(nil), b.towers...)
}
