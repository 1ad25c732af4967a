package clicommand

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/envlock/envlock/internal/secrets"
)

const retrieveHelpDescription = `Usage:

    envlock retrieve <name>

Description:

Prints the raw value of a stored secret to stdout.

This is the only operation that echoes a secret value, and it refuses to do
so unless stdout is an interactive terminal. Scripts and other captured
contexts should consume secrets through ′envlock run′, which passes them as
process environment without ever disclosing them to the caller.

Example:

    $ envlock retrieve DATABASE_URL
    postgres://localhost/dev`

type RetrieveConfig struct {
	GlobalConfig

	Name string `cli:"arg:0" label:"secret name" validate:"required"`
}

var RetrieveCommand = cli.Command{
	Name:        "retrieve",
	Usage:       "Print a secret value to an interactive terminal",
	Description: retrieveHelpDescription,
	Flags:       globalFlags(),
	Action: func(c *cli.Context) error {
		_, cfg, _, _, done := setupLoggerAndConfig[RetrieveConfig](context.Background(), c)
		defer done()

		// The policy check comes first so a denial can never be confused
		// with (or leak) whether the secret exists.
		if err := authorizePrint(os.Stdout); err != nil {
			return err
		}

		backend, err := newBackend()
		if err != nil {
			return err
		}

		value, err := backend.Retrieve(cfg.Name)
		if err != nil {
			if errors.Is(err, secrets.ErrNotFound) {
				return fmt.Errorf("secret %q: %w", cfg.Name, err)
			}
			return err
		}

		fmt.Fprintln(c.App.Writer, value)
		return nil
	},
}

// authorizePrint is the exposure policy guard: raw values may only be
// written to a terminal a human is watching, never to a pipe, file, or
// capture.
func authorizePrint(out *os.File) error {
	if term.IsTerminal(int(out.Fd())) {
		return nil
	}
	return errors.New("output is not an interactive terminal: refusing to print the raw secret value (use `envlock run` to pass secrets to a command)")
}
