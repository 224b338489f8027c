package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteFile saves the configuration as YAML, used by `desk config init`
// to drop a starter file.
func (c *Config) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
