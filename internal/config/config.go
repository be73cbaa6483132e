// Package config loads the optional YAML defaults file for bedrock-models.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable consulted when --config is not
// given.
const EnvConfigPath = "BEDROCK_MODELS_CONFIG"

// Config holds defaults that unset flags fall back to.
type Config struct {
	// Region is the AWS region to query.
	Region string `yaml:"region"`

	// Providers limits output to the named providers.
	Providers []string `yaml:"providers"`
}

// Load reads a YAML defaults file. Environment variables in the file body
// are expanded before parsing. An empty path falls back to EnvConfigPath;
// when that is also unset, or points at a missing file, an empty Config is
// returned. A missing file named explicitly is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
