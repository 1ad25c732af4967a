package clicommand

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli"

	"github.com/envlock/envlock/env"
	"github.com/envlock/envlock/internal/secrets"
	"github.com/envlock/envlock/logger"
	"github.com/envlock/envlock/process"
)

const runHelpDescription = `Usage:

    envlock run [options] -- <command> [args...]

Description:

Runs a command with resolved secrets injected into its environment. The
envlock process is replaced by the command, so its exit status (and any
terminating signal) is exactly what an outer caller observes.

Which secrets are injected depends on the project manifest: if a ′.envlock′
file exists in the working directory or any ancestor, exactly the names it
lists are injected, and the run fails before the command starts if any of
them has no stored value. Without a manifest, every stored secret is
injected. An empty manifest injects nothing.

Secrets are overlaid on the ambient environment, so PATH and friends still
reach the command; pass --pristine to hand the command only the resolved
secrets.

Example:

    $ envlock run -- npm start

    $ envlock run --pristine -- env`

type RunConfig struct {
	GlobalConfig

	Pristine bool `cli:"pristine"`
}

var RunCommand = cli.Command{
	Name:        "run",
	Usage:       "Run a command with secrets injected into its environment",
	Description: runHelpDescription,
	Flags: append(globalFlags(),
		cli.BoolFlag{
			Name:   "pristine",
			Usage:  "Give the command only the resolved secrets, not the ambient environment",
			EnvVar: "ENVLOCK_RUN_PRISTINE",
		},
	),
	Action: func(c *cli.Context) error {
		_, cfg, l, _, done := setupLoggerAndConfig[RunConfig](context.Background(), c)
		defer done()

		command, args, err := targetCommand(c.Args())
		if err != nil {
			return fmt.Errorf("%w. See: `%s run --help`", err, c.App.Name)
		}

		backend, err := newBackend()
		if err != nil {
			return err
		}

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determining working directory: %w", err)
		}

		resolver := &secrets.Resolver{Backend: backend, Logger: l, Dir: wd}
		names, err := resolver.ResolveNames()
		if err != nil {
			return err
		}

		var environ []string
		if len(names) == 0 && !cfg.Pristine {
			// Nothing to inject: hand over the invoking environment
			// untouched.
			environ = os.Environ()
		} else {
			environ = childEnviron(l, backend, names, cfg.Pristine)
		}

		l.Debug("Injecting %d secrets into %s", len(names), command)

		err = process.Replace(command, args, environ)
		var childErr *process.ChildExitError
		switch {
		case errors.As(err, &childErr):
			return NewSilentExitError(childErr.Code)
		case errors.Is(err, exec.ErrNotFound):
			return NewExitError(127, err)
		default:
			return err
		}
	},
}

// targetCommand extracts the command and its argument vector, stripping an
// optional leading "--" separator.
func targetCommand(args []string) (string, []string, error) {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return "", nil, errors.New("no command given")
	}
	return args[0], args[1:], nil
}

// childEnviron builds the environment for the target command: the resolved
// name=value pairs, overlaid on the ambient environment unless pristine.
// A name that was validated but has vanished since (deleted concurrently)
// is skipped rather than failing the whole run; resolution already gated
// the command.
func childEnviron(l logger.Logger, backend secrets.Backend, names []string, pristine bool) []string {
	e := env.New()
	if !pristine {
		e = env.FromSlice(os.Environ())
	}

	for _, name := range names {
		value, err := backend.Retrieve(name)
		if err != nil {
			l.Debug("Skipping %s: %v", name, err)
			continue
		}
		e.Set(name, value)
	}

	return e.ToSlice()
}
