package save

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLayout() Layout {
	return Layout{
		Towers: []TowerEntry{{Kind: "Potato", X: 4, Y: 0.8, Z: 0}},
		Pads:   []PadEntry{{X: 9, Y: 0.8, Z: 8}, {X: 8, Y: 0.8, Z: 0}},
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(sampleLayout())
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: Potato")

	got, err := Unmarshal(data)
	require.NoError(t, err)
	want := sampleLayout()
	want.Version = formatV1
	assert.Equal(t, want, got)
}

func TestUnmarshalRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"broken yaml":  "towers: [",
		"no version":   "towers: []\n",
		"future":       "version: 2\n",
		"unknown kind": "version: 1\ntowers:\n  - kind: Carrot\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestDisabledStore(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.Enabled())
	assert.False(t, s.Exists())
	assert.ErrorIs(t, s.Save(sampleLayout()), ErrDisabled)
	_, ok, err := s.Load()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrDisabled)

	var nilStore *Store
	assert.False(t, nilStore.Enabled())
}

func testManager(t *testing.T) *gdata.Manager {
	appName := fmt.Sprintf("garden_defense_test_%d", time.Now().UnixNano())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return m
}

func TestStoreSaveLoad(t *testing.T) {
	m := testManager(t)
	if m == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	s := NewStore(m)

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(sampleLayout()))
	assert.True(t, s.Exists())

	got, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleLayout().Towers, got.Towers)
	assert.Equal(t, sampleLayout().Pads, got.Pads)
}
