// Package commands contains the CLI commands for the application
package commands

import (
	"fmt"
	"os"

	"github.com/realmgen/realmgen/internal/config"
)

// Flags holds command-line overrides shared across commands
type Flags struct {
	LogLevel  string
	Config    string
	Schema    string
	Output    string
	Namespace string
}

// Controller dispatches CLI commands
type Controller struct {
	Flags *Flags
}

// loadConfig resolves the effective configuration: realmgen.json (searched
// upward from the working directory, or at --config) with flag overrides
// applied on top. A missing config file is fine when --schema is given.
func (c *Controller) loadConfig() (*config.Config, string, error) {
	var cfg *config.Config
	var root string
	var err error

	if c.Flags.Config != "" {
		cfg, err = config.LoadConfigFromPath(c.Flags.Config)
		if err != nil {
			return nil, "", err
		}
		root, err = os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get current directory: %w", err)
		}
	} else {
		cfg, root, err = config.LoadConfig()
		if err != nil {
			if c.Flags.Schema == "" {
				return nil, "", err
			}
			// No config file, run purely from flags
			cfg = &config.Config{
				Schema: c.Flags.Schema,
				Output: "./Models.generated.swift",
				Watch: config.WatchConfig{
					Patterns: []string{"*.graphql", "**/*.graphql", "*.gql", "**/*.gql"},
					Exclude:  []string{".git/", "build/", "node_modules/"},
				},
			}
			root, err = os.Getwd()
			if err != nil {
				return nil, "", fmt.Errorf("failed to get current directory: %w", err)
			}
		}
	}

	if c.Flags.Schema != "" {
		cfg.Schema = c.Flags.Schema
	}
	if c.Flags.Output != "" {
		cfg.Output = c.Flags.Output
	}
	if c.Flags.Namespace != "" {
		cfg.Namespace = c.Flags.Namespace
	}

	return cfg, root, nil
}
