package clicommand

import (
	"bytes"
	"testing"

	"github.com/urfave/cli"

	"github.com/envlock/envlock/internal/secrets"
)

// withMemoryBackend points every command at an in-memory backend for the
// duration of a test, so no real OS credential store is touched.
func withMemoryBackend(t *testing.T) *secrets.Memory {
	t.Helper()

	backend := secrets.NewMemory()
	prev := newBackend
	newBackend = func() (secrets.Backend, error) { return backend, nil }
	t.Cleanup(func() { newBackend = prev })
	return backend
}

// testApp builds a cli.App wired like main, with output captured in buf.
func testApp(buf *bytes.Buffer, commands ...cli.Command) *cli.App {
	app := cli.NewApp()
	app.Name = "envlock"
	app.Writer = buf
	app.Commands = commands
	return app
}
