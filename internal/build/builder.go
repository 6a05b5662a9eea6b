// Package build runs the schema-to-Swift generation pipeline
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/realmgen/realmgen/internal/codegen"
	"github.com/realmgen/realmgen/internal/config"
	"github.com/realmgen/realmgen/internal/schema"
)

// Artifacts contains the results of one generation run
type Artifacts struct {
	// OutputPath is the path of the written Swift file
	OutputPath string

	// Schema contains the parsed schema graph
	Schema *schema.Schema

	// GeneratedAt is when the run completed
	GeneratedAt time.Time
}

// ModelBuilder reads a schema document, runs the Swift generator over it,
// and writes the generated source to the configured output path
type ModelBuilder struct {
	config      *config.Config
	projectRoot string
	logger      zerolog.Logger
}

// NewModelBuilder creates a new model builder
func NewModelBuilder(cfg *config.Config, projectRoot string, logger zerolog.Logger) *ModelBuilder {
	return &ModelBuilder{
		config:      cfg,
		projectRoot: projectRoot,
		logger:      logger,
	}
}

// Generate runs the full pipeline once: read, parse, generate, write
func (b *ModelBuilder) Generate() (*Artifacts, error) {
	schemaPath := b.resolve(b.config.Schema)

	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("schema file not found: %s", schemaPath)
	}

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", schemaPath, err)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("schema file is empty: %s", schemaPath)
	}

	b.logger.Debug().
		Str("path", schemaPath).
		Int("size", len(content)).
		Msg("read schema file")

	parsed, err := schema.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	b.logger.Debug().
		Int("type_count", len(parsed.TypeNames())).
		Int("object_count", len(parsed.ObjectTypes())).
		Msg("parsed schema types")

	generator, err := codegen.DefaultRegistry.Get("swift", codegen.Options{
		Namespace:                b.config.Namespace,
		PassthroughCustomScalars: b.config.PassthroughCustomScalars,
		CustomScalarsPrefix:      b.config.CustomScalarsPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve generator: %w", err)
	}

	code, err := generator.Generate(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	outputPath := b.resolve(b.config.Output)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, code, 0644); err != nil {
		return nil, fmt.Errorf("failed to write generated file: %w", err)
	}

	b.logger.Info().
		Str("output", outputPath).
		Int("size", len(code)).
		Msg("wrote generated models")

	return &Artifacts{
		OutputPath:  outputPath,
		Schema:      parsed,
		GeneratedAt: time.Now(),
	}, nil
}

// resolve makes a config-relative path absolute against the project root
func (b *ModelBuilder) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(b.projectRoot, path)
}
