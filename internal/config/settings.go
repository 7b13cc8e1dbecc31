// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName — имя файла настроек без расширения (garden_defense.cfg.json, .yaml и т.д.)
const ConfigName = "garden_defense.cfg"

const (
	RecorderNone   = "none"
	RecorderMemory = "memory"
	RecorderSQLite = "sqlite"
)

type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	FPS    int    `mapstructure:"fps"`
}

type CameraSettings struct {
	Speed       float64 `mapstructure:"speed"`
	RotateSpeed float64 `mapstructure:"rotateSpeed"`
}

type SceneSettings struct {
	File string `mapstructure:"file"` // Пусто — встроенная раскладка
}

type RecorderSettings struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlitePath"`
}

type SaveSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	AppName string `mapstructure:"appName"`
}

// Settings — настройки, которые можно менять без пересборки.
type Settings struct {
	LogLevel string           `mapstructure:"logLevel"`
	LogsDir  string           `mapstructure:"logsDir"`
	Window   WindowSettings   `mapstructure:"window"`
	Camera   CameraSettings   `mapstructure:"camera"`
	Scene    SceneSettings    `mapstructure:"scene"`
	Recorder RecorderSettings `mapstructure:"recorder"`
	Save     SaveSettings     `mapstructure:"save"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("window.width", ScreenWidth)
	viper.SetDefault("window.height", ScreenHeight)
	viper.SetDefault("window.title", "Garden Defense")
	viper.SetDefault("window.fps", TargetFPS)

	viper.SetDefault("camera.speed", CameraSpeed)
	viper.SetDefault("camera.rotateSpeed", CameraRotateSpeed)

	viper.SetDefault("scene.file", "")

	viper.SetDefault("recorder.backend", RecorderNone)
	viper.SetDefault("recorder.sqlitePath", "garden_defense.db")

	viper.SetDefault("save.enabled", true)
	viper.SetDefault("save.appName", "garden_defense")
}

// Load читает настройки из каталога configDir и переменных окружения GARDEN_*.
// Отсутствие файла не ошибка: берутся значения по умолчанию.
func Load(configDir string) (*Settings, error) {
	setDefaults()

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("GARDEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate проверяет значения, которые нельзя молча исправить.
func (s *Settings) Validate() error {
	switch s.Recorder.Backend {
	case RecorderNone, RecorderMemory, RecorderSQLite:
	default:
		return fmt.Errorf("unknown recorder backend %q", s.Recorder.Backend)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Window.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", s.Window.FPS)
	}
	if s.Save.Enabled && s.Save.AppName == "" {
		return errors.New("save.appName must be set when saves are enabled")
	}
	return nil
}
