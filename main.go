package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/envlock/envlock/clicommand"
	"github.com/envlock/envlock/version"
)

var appHelpTemplate = `envlock keeps project secrets in the OS credential store and injects them
into commands as environment variables.

Usage:

  {{.Name}} <command> [arguments...]

Available commands are:

  {{range .Commands}}{{.Name}}{{ "\t" }}{{.Usage}}
  {{end}}
Use "{{.Name}} <command> --help" for more information about a command.
`

var commandHelpTemplate = `{{.Description}}

Options:

   {{range .Flags}}{{.}}
   {{end}}
`

func main() {
	cli.AppHelpTemplate = appHelpTemplate
	cli.CommandHelpTemplate = commandHelpTemplate

	app := cli.NewApp()
	app.Name = "envlock"
	app.Version = version.FullVersion()
	app.Usage = "Keep secrets in the OS credential store, out of your dotfiles"
	app.Commands = []cli.Command{
		clicommand.StoreCommand,
		clicommand.RetrieveCommand,
		clicommand.RemoveCommand,
		clicommand.ListCommand,
		clicommand.RunCommand,
	}

	// When no sub command is used
	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(clicommand.PrintMessageAndReturnExitCode(err))
	}
}
