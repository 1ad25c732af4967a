package clicommand

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmptyNamespaceIsNotAnError(t *testing.T) {
	withMemoryBackend(t)

	buf := &bytes.Buffer{}
	app := testApp(buf, ListCommand)

	require.NoError(t, app.Run([]string{"envlock", "list"}))
	assert.Equal(t, "No secrets stored.\n", buf.String())
}

func TestListPrintsSortedNames(t *testing.T) {
	backend := withMemoryBackend(t)
	for _, name := range []string{"BRAVO", "ALPHA", "CHARLIE"} {
		require.NoError(t, backend.Store(name, "x"))
	}

	buf := &bytes.Buffer{}
	app := testApp(buf, ListCommand)

	require.NoError(t, app.Run([]string{"envlock", "list"}))
	assert.Equal(t, "ALPHA\nBRAVO\nCHARLIE\n", buf.String())
}
