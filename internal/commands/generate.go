package commands

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/realmgen/realmgen/internal/build"
)

// Generate runs the generation pipeline once
func (c *Controller) Generate(ctx context.Context) error {
	cfg, root, err := c.loadConfig()
	if err != nil {
		return err
	}

	builder := build.NewModelBuilder(cfg, root, log.Logger)
	artifacts, err := builder.Generate()
	if err != nil {
		return err
	}

	log.Info().
		Str("schema", cfg.Schema).
		Str("output", artifacts.OutputPath).
		Msg("generated Swift models")

	return nil
}
