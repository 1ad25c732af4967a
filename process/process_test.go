//go:build !windows

package process

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitErrorMapsChildExitStatus(t *testing.T) {
	err := exec.Command("false").Run()
	require.Error(t, err)

	mapped := exitError(err)
	var childErr *ChildExitError
	require.ErrorAs(t, mapped, &childErr)
	assert.Equal(t, 1, childErr.Code)
	assert.Equal(t, "exited with status 1", childErr.Error())
}

func TestExitErrorPassesThroughSpawnFailures(t *testing.T) {
	err := exec.Command("/does/not/exist").Run()
	require.Error(t, err)

	mapped := exitError(err)
	require.Error(t, mapped)
	var childErr *ChildExitError
	assert.NotErrorAs(t, mapped, &childErr)
}

func TestExitErrorNil(t *testing.T) {
	assert.NoError(t, exitError(nil))
}
