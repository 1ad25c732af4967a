package clicommand

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
)

const listHelpDescription = `Usage:

    envlock list

Description:

Prints the names of all stored secrets, one per line, in ascending order.
Values are never printed; use ′envlock retrieve′ for a single value.

Example:

    $ envlock list
    API_TOKEN
    DATABASE_URL`

type ListConfig struct {
	GlobalConfig
}

var ListCommand = cli.Command{
	Name:        "list",
	Usage:       "List the names of all stored secrets",
	Description: listHelpDescription,
	Flags:       globalFlags(),
	Action: func(c *cli.Context) error {
		_, _, _, _, done := setupLoggerAndConfig[ListConfig](context.Background(), c)
		defer done()

		backend, err := newBackend()
		if err != nil {
			return err
		}

		names, err := backend.Enumerate()
		if err != nil {
			return err
		}

		if len(names) == 0 {
			fmt.Fprintln(c.App.Writer, "No secrets stored.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(c.App.Writer, name)
		}
		return nil
	},
}
