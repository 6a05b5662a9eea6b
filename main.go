package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/realmgen/realmgen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	schemaFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to realmgen.json",
			Destination: &ctrl.Flags.Config,
		},
		&cli.StringFlag{
			Name:        "schema",
			Usage:       "path to the GraphQL schema document",
			Destination: &ctrl.Flags.Schema,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "path of the generated Swift file",
			Destination: &ctrl.Flags.Output,
		},
		&cli.StringFlag{
			Name:        "namespace",
			Usage:       "wrap generated classes in an enclosing namespace",
			Destination: &ctrl.Flags.Namespace,
		},
	}

	app := &cli.Command{
		Name:    "realmgen",
		Usage:   "Generate RealmSwift model classes from a GraphQL schema.",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create a realmgen.json in the current directory",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:  "generate",
				Usage: "Generate Swift models from the schema",
				Flags: schemaFlags,
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate Swift models whenever the schema changes",
				Flags: schemaFlags,
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run realmgen")
	}
}
