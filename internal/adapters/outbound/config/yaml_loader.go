package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stockroom/stockroom/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".stockroom.yaml"

// YAMLLoader implements domain.ConfigLoader by reading a YAML file.
type YAMLLoader struct{}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the config at path, overlaying explicit values on
// domain.DefaultConfig. A missing file yields the defaults.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("reading %s: %w", name, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return domain.DefaultConfig().Merge(cfg), nil
}

// Render returns cfg as a commented YAML document for `stockroom init`.
func Render(cfg domain.Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return "# stockroom configuration\n# Flags override these values.\n\n" + string(data), nil
}
