package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/scribeforge/internal/persona"
)

// DefaultFile is the config file read when --config is not given.
const DefaultFile = ".scribeforge.yml"

// DefaultPreviewListen is the preview server address when none is configured.
const DefaultPreviewListen = "127.0.0.1:8501"

// Settings holds persistent CLI defaults loaded from a config file.
type Settings struct {
	AssetsDir     string            `yaml:"assets_dir"`
	PreviewListen string            `yaml:"preview_listen"`
	LogFile       string            `yaml:"log_file"`
	Personas      []persona.Persona `yaml:"personas,omitempty"` // replaces the built-in writers when set
}

// LoadSettings reads a YAML config file into Settings.
// If the file does not exist, it returns zero-value Settings and nil error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &s, nil
}

// Registry returns the configured personas, or the built-in set when none
// are configured.
func (s *Settings) Registry() (*persona.Registry, error) {
	if len(s.Personas) == 0 {
		return persona.Builtin(), nil
	}
	r, err := persona.NewRegistry(s.Personas)
	if err != nil {
		return nil, fmt.Errorf("personas: %w", err)
	}
	return r, nil
}

// Listen returns the preview address, falling back to DefaultPreviewListen.
func (s *Settings) Listen() string {
	if s.PreviewListen == "" {
		return DefaultPreviewListen
	}
	return s.PreviewListen
}
