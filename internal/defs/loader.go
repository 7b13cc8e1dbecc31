// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSceneLayout returns the layout embedded in the binary.
func DefaultSceneLayout() (*SceneLayout, error) {
	return ParseSceneLayout(defaultSceneYAML)
}

// LoadSceneLayout reads a scene layout file.
func LoadSceneLayout(path string) (*SceneLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene layout file: %w", err)
	}
	return ParseSceneLayout(data)
}

// ParseSceneLayout decodes and validates a YAML scene layout.
func ParseSceneLayout(data []byte) (*SceneLayout, error) {
	var layout SceneLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scene layout: %w", err)
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

func (l *SceneLayout) validate() error {
	if l.Pads.Columns < 0 || l.Pads.Rows < 0 {
		return fmt.Errorf("invalid pad grid %dx%d", l.Pads.Columns, l.Pads.Rows)
	}
	if l.Pads.PickRadius <= 0 {
		return fmt.Errorf("pad pick radius must be positive, got %v", l.Pads.PickRadius)
	}
	if l.Targets.Count < 0 {
		return fmt.Errorf("invalid target count %d", l.Targets.Count)
	}
	return nil
}
