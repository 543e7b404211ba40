package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed views.yaml
var defaultViews []byte

// PanelSpec describes one panel: columns drawn on the primary axes and,
// optionally, on a twin axes.
type PanelSpec struct {
	Primary   []string `yaml:"primary"`
	Secondary []string `yaml:"secondary,omitempty"`
	Markers   bool     `yaml:"markers,omitempty"`
}

// ViewSpec describes one view. Rows and Columns are optional; zero means
// derived from the panel count.
type ViewSpec struct {
	Name    string      `yaml:"name"`
	Rows    int         `yaml:"rows,omitempty"`
	Columns int         `yaml:"columns,omitempty"`
	Panels  []PanelSpec `yaml:"panels"`
}

// ViewsConfig is the top-level YAML layout document.
type ViewsConfig struct {
	Views []ViewSpec `yaml:"views"`
}

// LoadViews reads a views YAML file. An empty path selects the built-in
// layout. Returns an os.ErrNotExist-wrapped error if the file is absent.
func LoadViews(path string) (*ViewsConfig, error) {
	if path == "" {
		return ParseViews(defaultViews)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("views config: %w", err)
	}
	return ParseViews(data)
}

// ParseViews decodes and validates a views document.
func ParseViews(data []byte) (*ViewsConfig, error) {
	var cfg ViewsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("views config: %w", err)
	}
	if len(cfg.Views) < 1 {
		return nil, fmt.Errorf("views config: at least one view is required")
	}
	for i, v := range cfg.Views {
		if v.Name == "" {
			return nil, fmt.Errorf("views config: views[%d] missing name", i)
		}
		if len(v.Panels) == 0 {
			return nil, fmt.Errorf("views config: view %q has no panels", v.Name)
		}
		if v.Rows < 0 || v.Columns < 0 {
			return nil, fmt.Errorf("views config: view %q has a negative grid", v.Name)
		}
		for j, p := range v.Panels {
			if len(p.Primary) == 0 {
				return nil, fmt.Errorf("views config: view %q panels[%d] missing primary columns", v.Name, j)
			}
		}
	}
	return &cfg, nil
}
