package clicommand

import (
	"context"
	"fmt"
	"os"

	"github.com/oleiade/reflections"
	"github.com/urfave/cli"

	"github.com/envlock/envlock/cliconfig"
	"github.com/envlock/envlock/internal/secrets"
	"github.com/envlock/envlock/logger"
)

// setupLoggerAndConfig loads the command's config struct from the CLI
// context and builds a logger configured by the global flags. The returned
// func must be deferred; it closes over any cleanup the setup acquired.
func setupLoggerAndConfig[T any](ctx context.Context, c *cli.Context) (context.Context, T, logger.Logger, []string, func()) {
	var cfg T

	loader := cliconfig.Loader{CLI: c, Config: &cfg}
	warnings, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	l := createLogger(&cfg)

	// Now that we have a logger, log out the warnings that loading config generated
	for _, warning := range warnings {
		l.Warn("%s", warning)
	}

	return ctx, cfg, l, warnings, func() {}
}

// createLogger builds the console logger, honouring the GlobalConfig fields
// embedded in cfg.
func createLogger(cfg any) logger.Logger {
	printer := logger.NewTextPrinter(os.Stderr)
	if noColor, err := reflections.GetField(cfg, "NoColor"); err == nil && noColor == true {
		printer.Colors = false
	}

	l := logger.NewConsoleLogger(printer, os.Exit)

	if levelStr, err := reflections.GetField(cfg, "LogLevel"); err == nil {
		if s, ok := levelStr.(string); ok && s != "" {
			if level, err := logger.LevelFromString(s); err == nil {
				l.SetLevel(level)
			}
		}
	}
	if debug, err := reflections.GetField(cfg, "Debug"); err == nil && debug == true {
		l.SetLevel(logger.DEBUG)
	}

	return l
}

// newBackend opens the OS credential store. It is a variable so tests can
// swap in an in-memory backend.
var newBackend = func() (secrets.Backend, error) {
	return secrets.NewKeyring()
}
