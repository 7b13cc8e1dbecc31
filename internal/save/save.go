// internal/save/save.go
package save

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"go-garden-defense/internal/defs"
)

const (
	saveObject   = "layout"
	saveProperty = "current.yaml"
	formatV1     = 1
)

var ErrDisabled = errors.New("saves are disabled")

// TowerEntry — построенная башня.
type TowerEntry struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
}

// PadEntry — незастроенная площадка.
type PadEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Layout — что сохраняется между запусками: башни и оставшиеся площадки.
// Мишени и снаряды не сохраняются, они пересоздаются сценой.
type Layout struct {
	Version int          `yaml:"version"`
	Towers  []TowerEntry `yaml:"towers"`
	Pads    []PadEntry   `yaml:"pads"`
}

// Marshal кодирует раскладку в YAML.
func Marshal(l Layout) ([]byte, error) {
	l.Version = formatV1
	data, err := yaml.Marshal(&l)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}

// Unmarshal декодирует и проверяет раскладку.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if l.Version != formatV1 {
		return Layout{}, fmt.Errorf("unsupported layout version %d", l.Version)
	}
	for i, t := range l.Towers {
		if _, err := defs.ParseTowerKind(t.Kind); err != nil {
			return Layout{}, fmt.Errorf("tower %d: %w", i, err)
		}
	}
	return l, nil
}

// Store хранит раскладку в каталоге данных пользователя через gdata.
// Нулевой менеджер означает, что сохранения выключены.
type Store struct {
	manager *gdata.Manager
}

// Open открывает хранилище приложения appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("open save storage: %w", err)
	}
	return &Store{manager: m}, nil
}

// NewStore оборачивает уже открытый менеджер. nil допустим.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

func (s *Store) Enabled() bool {
	return s != nil && s.manager != nil
}

// Exists сообщает, есть ли сохранённая раскладка.
func (s *Store) Exists() bool {
	return s.Enabled() && s.manager.ObjectPropExists(saveObject, saveProperty)
}

func (s *Store) Save(l Layout) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// Load возвращает сохранённую раскладку; ok == false, если сохранения нет.
func (s *Store) Load() (l Layout, ok bool, err error) {
	if !s.Enabled() {
		return Layout{}, false, ErrDisabled
	}
	if !s.Exists() {
		return Layout{}, false, nil
	}
	data, err := s.manager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return Layout{}, false, fmt.Errorf("read layout: %w", err)
	}
	l, err = Unmarshal(data)
	if err != nil {
		return Layout{}, false, err
	}
	return l, true, nil
}
