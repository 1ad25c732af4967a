package clicommand

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveMissingSecret(t *testing.T) {
	withMemoryBackend(t)

	buf := &bytes.Buffer{}
	app := testApp(buf, RemoveCommand)

	err := app.Run([]string{"envlock", "remove", "NOPE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRemoveThenRetrieveFromBackend(t *testing.T) {
	backend := withMemoryBackend(t)
	require.NoError(t, backend.Store("ALPHA", "value"))

	buf := &bytes.Buffer{}
	app := testApp(buf, RemoveCommand)

	require.NoError(t, app.Run([]string{"envlock", "remove", "ALPHA"}))

	_, err := backend.Retrieve("ALPHA")
	assert.Error(t, err)
}
