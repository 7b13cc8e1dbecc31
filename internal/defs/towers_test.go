package defs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-garden-defense/internal/utils"
)

func TestLookupCoversEveryKind(t *testing.T) {
	tests := []struct {
		kind     TowerKind
		cooldown time.Duration
		speed    float64
	}{
		{TowerTomato, 1 * time.Second, 3.5},
		{TowerPotato, 2 * time.Second, 6.5},
		{TowerCabbage, 3 * time.Second, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			def := Lookup(tt.kind)
			assert.Equal(t, tt.kind, def.Kind)
			assert.Equal(t, tt.cooldown, def.Cooldown)
			assert.Equal(t, tt.speed, def.ProjectileSpeed)
			assert.Equal(t, utils.NewVec3(0, 0.6, 0), def.FireOffset)
			assert.NotEmpty(t, def.BuiltModel)
			assert.NotEmpty(t, def.ProjectileModel)
			assert.NotEmpty(t, def.Icon)
		})
	}
}

func TestKindsCatalogOrder(t *testing.T) {
	assert.Equal(t, []TowerKind{TowerTomato, TowerPotato, TowerCabbage}, Kinds())
}

func TestLookupInvalidKindPanics(t *testing.T) {
	assert.False(t, TowerKind(7).Valid())
	assert.Panics(t, func() { Lookup(TowerKind(7)) })
	assert.Panics(t, func() { Lookup(TowerKind(-1)) })
}

func TestParseTowerKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseTowerKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseTowerKind("Carrot")
	assert.Error(t, err)
}

func TestAssetIDFile(t *testing.T) {
	assert.Equal(t, "TomatoTower.glb", AssetID("TomatoTower.glb#Scene0").File())
	assert.Equal(t, "tomato_tower.png", AssetID("tomato_tower.png").File())
}

func TestAssetLists(t *testing.T) {
	models := Models()
	assert.Len(t, models, 8)
	assert.Contains(t, models, AssetTowerBase)
	assert.Contains(t, models, AssetID("PotatoTower.glb#Scene0"))
	assert.Contains(t, models, AssetID("Cabbage.glb#Scene0"))

	assert.Equal(t, []AssetID{"tomato_tower.png", "potato_tower.png", "cabbage_tower.png"}, Icons())
}
