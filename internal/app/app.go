package app

import (
	"github.com/hourbook/hourbook/internal/config"
	"github.com/hourbook/hourbook/pkg/calendar"
	"github.com/urfave/cli/v2"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Application wires configuration, services, and the command line surface.
type Application struct {
	cfg  config.Application
	deps *Dependencies
	cli  *cli.App
}

// NewApplication constructs the full CLI application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}

	// Build dependencies (repository, services, prompter...)
	deps := BuildDependencies(cfg)

	return newApplication(cfg, deps), nil
}

func newApplication(cfg config.Application, deps *Dependencies) *Application {
	if cfg.NoColor {
		calendar.DisableColors()
	}

	a := &Application{cfg: cfg, deps: deps}
	a.cli = &cli.App{
		Name:     "hourbook",
		Usage:    "track hours worked per project, one month at a time",
		Version:  Version,
		Commands: a.commands(),
	}
	return a
}

// Run parses args and executes the selected command.
func (a *Application) Run(args []string) error {
	return a.cli.Run(args)
}
