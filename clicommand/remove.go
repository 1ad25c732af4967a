package clicommand

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/envlock/envlock/internal/secrets"
)

const removeHelpDescription = `Usage:

    envlock remove <name>

Description:

Deletes a stored secret from the OS credential store. Fails if no secret is
stored under the given name.

Example:

    $ envlock remove DATABASE_URL`

type RemoveConfig struct {
	GlobalConfig

	Name string `cli:"arg:0" label:"secret name" validate:"required"`
}

var RemoveCommand = cli.Command{
	Name:        "remove",
	Usage:       "Delete a secret from the OS credential store",
	Description: removeHelpDescription,
	Flags:       globalFlags(),
	Action: func(c *cli.Context) error {
		_, cfg, l, _, done := setupLoggerAndConfig[RemoveConfig](context.Background(), c)
		defer done()

		backend, err := newBackend()
		if err != nil {
			return err
		}

		if err := backend.Delete(cfg.Name); err != nil {
			if errors.Is(err, secrets.ErrNotFound) {
				return fmt.Errorf("secret %q: %w", cfg.Name, err)
			}
			return err
		}

		l.Notice("Removed secret %s", cfg.Name)
		return nil
	},
}
