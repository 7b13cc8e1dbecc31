package assets

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"go-garden-defense/internal/defs"
)

// ModelManager управляет загрузкой, кэшированием и выгрузкой 3D-моделей
// и иконок меню постройки.
type ModelManager struct {
	root     string
	models   map[defs.AssetID]rl.Model
	textures map[defs.AssetID]rl.Texture2D
	logger   zerolog.Logger
}

// NewModelManager создает новый экземпляр ModelManager. root — каталог с
// подкаталогами models/ и textures/.
func NewModelManager(root string, logger zerolog.Logger) *ModelManager {
	return &ModelManager{
		root:     root,
		models:   make(map[defs.AssetID]rl.Model),
		textures: make(map[defs.AssetID]rl.Texture2D),
		logger:   logger.With().Str("component", "assets").Logger(),
	}
}

// loadSingleModel безопасно загружает одну модель. Метка после '#'
// (например, Scene0) raylib не понимает, берётся первая сцена файла.
func (m *ModelManager) loadSingleModel(id defs.AssetID) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().Str("asset", string(id)).Interface("panic", r).Msg("raylib panicked while loading model, skipping")
		}
	}()

	if _, ok := m.models[id]; ok {
		return
	}

	modelPath := filepath.Join(m.root, "models", id.File())
	if _, err := os.Stat(modelPath); err != nil {
		m.logger.Warn().Str("asset", string(id)).Str("path", modelPath).Msg("model file missing, using fallback shape")
		return
	}
	model := rl.LoadModel(modelPath)
	if model.MeshCount == 0 {
		m.logger.Warn().Str("asset", string(id)).Str("path", modelPath).Msg("model is empty")
		return
	}

	m.models[id] = model
	m.logger.Debug().Str("asset", string(id)).Msg("model loaded")
}

func (m *ModelManager) loadTexture(id defs.AssetID) {
	if _, ok := m.textures[id]; ok {
		return
	}
	texturePath := filepath.Join(m.root, "textures", id.File())
	if _, err := os.Stat(texturePath); err != nil {
		m.logger.Warn().Str("asset", string(id)).Str("path", texturePath).Msg("texture file missing")
		return
	}
	texture := rl.LoadTexture(texturePath)
	if texture.ID == 0 {
		m.logger.Warn().Str("asset", string(id)).Msg("failed to load texture")
		return
	}
	m.textures[id] = texture
}

// LoadAll загружает все модели сцены и иконки башен. Требует открытого окна.
func (m *ModelManager) LoadAll() {
	for _, id := range defs.Models() {
		m.loadSingleModel(id)
	}
	for _, id := range defs.Icons() {
		m.loadTexture(id)
	}
	m.logger.Info().
		Int("models", len(m.models)).
		Int("textures", len(m.textures)).
		Msg("assets loaded")
}

// Cleanup выгружает все загруженные ресурсы.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
	for id, texture := range m.textures {
		rl.UnloadTexture(texture)
		delete(m.textures, id)
	}
}

// GetModel возвращает модель по ID.
func (m *ModelManager) GetModel(id defs.AssetID) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}

// GetTexture возвращает иконку по ID.
func (m *ModelManager) GetTexture(id defs.AssetID) (rl.Texture2D, bool) {
	texture, ok := m.textures[id]
	return texture, ok
}
