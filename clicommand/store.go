package clicommand

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/envlock/envlock/stdin"
)

const storeHelpDescription = `Usage:

    envlock store <name>

Description:

Saves a secret value in the OS credential store under the given name. The
name must be a valid environment variable identifier.

The value is never accepted as a command line argument, so it cannot leak
into shell history or process listings. It is read from the terminal with
echo suppressed, or, when stdin is a pipe, taken verbatim from the first
line of input.

Example:

    $ envlock store DATABASE_URL
    Enter value for DATABASE_URL:

    $ pbpaste | envlock store API_TOKEN`

type StoreConfig struct {
	GlobalConfig

	Name string `cli:"arg:0" label:"secret name" validate:"required"`
}

var StoreCommand = cli.Command{
	Name:        "store",
	Usage:       "Save a secret value in the OS credential store",
	Description: storeHelpDescription,
	Flags:       globalFlags(),
	Action: func(c *cli.Context) error {
		_, cfg, l, _, done := setupLoggerAndConfig[StoreConfig](context.Background(), c)
		defer done()

		if len(c.Args()) > 1 {
			return errors.New("the value must not be passed as an argument (it would end up in your shell history): pipe it in or enter it at the prompt")
		}

		value, err := readSecretValue(cfg.Name)
		if err != nil {
			return fmt.Errorf("reading secret value: %w", err)
		}

		backend, err := newBackend()
		if err != nil {
			return err
		}
		if err := backend.Store(cfg.Name, value); err != nil {
			return err
		}

		l.Notice("Stored secret %s", cfg.Name)
		return nil
	},
}

// readSecretValue obtains the value interactively with echo suppressed, or
// from the first line of a piped stdin.
func readSecretValue(name string) (string, error) {
	if stdin.IsPipe() {
		return firstLine(os.Stdin)
	}

	fmt.Fprintf(os.Stderr, "Enter value for %s: ", name)
	value, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// firstLine reads the first line of r verbatim, without the trailing line
// ending.
func firstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
