package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/realmgen/realmgen/internal/config"
)

// InitOptions are the answers collected by the init form
type InitOptions struct {
	SchemaPath string
	OutputPath string
	Namespace  string
}

// FileSystem is the file access seam used by InitCommand
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// InitCommand writes a realmgen.json after prompting for project settings
type InitCommand struct {
	filesystem FileSystem
	// For testing: if set, skip prompting
	testOptions *InitOptions
}

func NewInitCommand() *InitCommand {
	return &InitCommand{
		filesystem: &osFileSystem{},
	}
}

// Init creates a realmgen.json in the current directory
func (c *Controller) Init(ctx context.Context) error {
	cmd := NewInitCommand()
	return cmd.Run(ctx)
}

func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	if _, err := ic.filesystem.Stat("realmgen.json"); err == nil {
		return fmt.Errorf("realmgen.json already exists in this directory")
	}

	var options *InitOptions
	var err error

	// For testing: use provided options instead of prompting
	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(opts...)
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}

	cfg := config.Config{
		Schema:    options.SchemaPath,
		Output:    options.OutputPath,
		Namespace: options.Namespace,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	if err := ic.filesystem.WriteFile("realmgen.json", data, 0644); err != nil {
		return fmt.Errorf("failed to write realmgen.json: %w", err)
	}

	fmt.Println("Created realmgen.json")
	return nil
}

func (ic *InitCommand) promptInitOptions(opts ...tea.ProgramOption) (*InitOptions, error) {
	options := &InitOptions{
		SchemaPath: "./schema.graphql",
		OutputPath: "./Models.generated.swift",
	}

	form := ic.createInitForm(options)

	if len(opts) > 0 {
		// For testing: run with provided program options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return options, nil
}

func (ic *InitCommand) createInitForm(options *InitOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema path").
				Description("Path to your GraphQL schema document").
				Value(&options.SchemaPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("schema path cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Title("Output path").
				Description("Where the generated Swift file is written").
				Value(&options.OutputPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output path cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Title("Namespace").
				Description("Optional enclosing namespace for generated classes").
				Value(&options.Namespace),
		),
	)
}
