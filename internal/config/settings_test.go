package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"window": { "width": 800, "fps": 30 },
		"camera": { "speed": 6.5 },
		"recorder": { "backend": "sqlite", "sqlitePath": "/tmp/g.db" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".json"), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, ScreenHeight, s.Window.Height)
	assert.Equal(t, 30, s.Window.FPS)
	assert.Equal(t, 6.5, s.Camera.Speed)
	assert.Equal(t, CameraRotateSpeed, s.Camera.RotateSpeed)
	assert.Equal(t, RecorderSQLite, s.Recorder.Backend)
	assert.Equal(t, "/tmp/g.db", s.Recorder.SQLitePath)
}

func TestLoad_YAMLConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := "scene:\n  file: layouts/wide.yaml\nsave:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".yaml"), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "layouts/wide.yaml", s.Scene.File)
	assert.False(t, s.Save.Enabled)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "", s.LogsDir)
	assert.Equal(t, ScreenWidth, s.Window.Width)
	assert.Equal(t, "Garden Defense", s.Window.Title)
	assert.Equal(t, TargetFPS, s.Window.FPS)
	assert.Equal(t, CameraSpeed, s.Camera.Speed)
	assert.Equal(t, RecorderNone, s.Recorder.Backend)
	assert.True(t, s.Save.Enabled)
	assert.Equal(t, "garden_defense", s.Save.AppName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("GARDEN_LOGLEVEL", "warn")
	t.Setenv("GARDEN_RECORDER_BACKEND", "memory")

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, RecorderMemory, s.Recorder.Backend)
}

func TestLoad_BrokenFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".json"), []byte(`{"logLevel":`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	valid := func() Settings {
		return Settings{
			Window:   WindowSettings{Width: 10, Height: 10, FPS: 60},
			Recorder: RecorderSettings{Backend: RecorderMemory},
			Save:     SaveSettings{Enabled: true, AppName: "x"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"unknown backend", func(s *Settings) { s.Recorder.Backend = "influx" }},
		{"zero width", func(s *Settings) { s.Window.Width = 0 }},
		{"zero fps", func(s *Settings) { s.Window.FPS = 0 }},
		{"save without app name", func(s *Settings) { s.Save.AppName = "" }},
	}

	s := valid()
	require.NoError(t, s.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}
