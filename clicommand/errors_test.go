package clicommand

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintMessageAndReturnExitCode(t *testing.T) {
	assert.Equal(t, 0, PrintMessageAndReturnExitCode(nil))
	assert.Equal(t, 1, PrintMessageAndReturnExitCode(errors.New("generic failure")))

	// A child exiting 42 must surface as status 42, with nothing logged.
	assert.Equal(t, 42, PrintMessageAndReturnExitCode(NewSilentExitError(42)))

	assert.Equal(t, 127, PrintMessageAndReturnExitCode(NewExitError(127, errors.New("command not found"))))

	// Wrapped exit errors still carry their code out.
	wrapped := fmt.Errorf("running command: %w", NewSilentExitError(3))
	assert.Equal(t, 3, PrintMessageAndReturnExitCode(wrapped))
}
