package commands

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/realmgen/realmgen/internal/build"
	"github.com/realmgen/realmgen/internal/watch"
)

// Watch runs an initial generation and then regenerates whenever a schema
// file matching the configured patterns changes
func (c *Controller) Watch(ctx context.Context) error {
	cfg, root, err := c.loadConfig()
	if err != nil {
		return err
	}

	builder := build.NewModelBuilder(cfg, root, log.Logger)

	regenerate := func() {
		if _, err := builder.Generate(); err != nil {
			// A broken schema mid-edit shouldn't stop the watch loop
			log.Error().Err(err).Msg("generation failed")
		}
	}

	regenerate()

	watcher, err := watch.NewFileWatcher(cfg.Watch.Patterns, cfg.Watch.Exclude, log.Logger, func(path string, op fsnotify.Op) {
		if op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
			return
		}
		log.Debug().Str("path", path).Str("op", op.String()).Msg("schema change detected")
		regenerate()
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddDirectory(root); err != nil {
		return err
	}

	log.Info().Str("root", root).Msg("watching for schema changes")

	return watcher.Start(ctx)
}
