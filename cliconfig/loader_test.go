package cliconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/envlock/envlock/cliconfig"
)

type testConfig struct {
	Name     string   `cli:"arg:0" label:"secret name" validate:"required"`
	Rest     []string `cli:"arg:*"`
	Debug    bool     `cli:"debug"`
	LogLevel string   `cli:"log-level"`
	Tags     []string `cli:"tag" normalize:"list"`
}

func runLoad(t *testing.T, args []string) (testConfig, error) {
	t.Helper()

	var cfg testConfig
	var loadErr error

	app := cli.NewApp()
	app.Name = "envlock"
	app.Commands = []cli.Command{{
		Name: "frob",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "debug"},
			cli.StringFlag{Name: "log-level", Value: "notice"},
			cli.StringSliceFlag{Name: "tag", Value: &cli.StringSlice{}},
		},
		Action: func(c *cli.Context) error {
			loader := cliconfig.Loader{CLI: c, Config: &cfg}
			_, loadErr = loader.Load()
			return nil
		},
	}}

	require.NoError(t, app.Run(append([]string{"envlock", "frob"}, args...)))
	return cfg, loadErr
}

func TestLoaderBindsFlagsAndArgs(t *testing.T) {
	cfg, err := runLoad(t, []string{"--debug", "--tag", "a,b", "--tag", "c", "NAME", "extra1", "extra2"})
	require.NoError(t, err)

	assert.Equal(t, "NAME", cfg.Name)
	assert.Equal(t, []string{"NAME", "extra1", "extra2"}, cfg.Rest)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "notice", cfg.LogLevel)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
}

func TestLoaderRequiredValidation(t *testing.T) {
	_, err := runLoad(t, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing secret name.")
}
