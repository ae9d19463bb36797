// Package config contains the configuration of the hashtrie CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeyValue is a single key-value pair to be inserted into a trie.
type KeyValue struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Config is the top-level CLI configuration.
type Config struct {
	// LogLevel is a zap level string ("debug", "info", "warn", ...).
	LogLevel string `yaml:"LogLevel"`
	// Pairs are inserted into the trie in the listed order.
	Pairs []KeyValue `yaml:"Pairs"`
}

// LoadFile loads the configuration from the given YAML file.
func LoadFile(configPath string) (Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(configData, &config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	for i, p := range config.Pairs {
		if len(p.Key) == 0 {
			return Config{}, fmt.Errorf("empty key in pair #%d", i)
		}
	}
	return config, nil
}
