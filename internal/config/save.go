package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "neo3d.yaml"))
}

// SaveTo writes the config to a specific path, as TOML when the path ends in
// .toml and as YAML otherwise.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal(isTOML(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the config as YAML, or as TOML when asTOML is set.
func (c *Config) Marshal(asTOML bool) ([]byte, error) {
	if asTOML {
		return toml.Marshal(c)
	}
	return yaml.Marshal(c)
}
