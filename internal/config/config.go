package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the realmgen.json configuration file
type Config struct {
	// Schema is the path to the GraphQL schema document
	Schema string `json:"schema"`

	// Output is the path of the generated Swift file
	Output string `json:"output"`

	// Namespace, when set, wraps the generated classes in one enclosing
	// namespace scope
	Namespace string `json:"namespace,omitempty"`

	// PassthroughCustomScalars and CustomScalarsPrefix are forwarded to the
	// generator's custom-scalar naming options
	PassthroughCustomScalars bool   `json:"passthroughCustomScalars,omitempty"`
	CustomScalarsPrefix      string `json:"customScalarsPrefix,omitempty"`

	// Watch configures the watch command
	Watch WatchConfig `json:"watch"`
}

// WatchConfig contains file-watching configuration
type WatchConfig struct {
	Patterns []string `json:"patterns"`
	Exclude  []string `json:"exclude"`
}

// LoadConfig loads realmgen.json from the current directory or a parent directory
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads realmgen.json from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults
	if config.Schema == "" {
		config.Schema = "./schema.graphql"
	}
	if config.Output == "" {
		config.Output = "./Models.generated.swift"
	}
	if len(config.Watch.Patterns) == 0 {
		config.Watch.Patterns = []string{"*.graphql", "**/*.graphql", "*.gql", "**/*.gql"}
	}
	if len(config.Watch.Exclude) == 0 {
		config.Watch.Exclude = []string{".git/", "build/", "node_modules/"}
	}

	return &config, nil
}

// loadConfigFromDir searches for realmgen.json in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "realmgen.json")
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("no realmgen.json found in %s or any parent directory", startDir)
}
