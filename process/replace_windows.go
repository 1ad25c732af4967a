package process

import (
	"os"
	"os/exec"
)

// Replace runs command to completion with the given argument vector and
// environment, forwarding stdio. Windows has no way to replace the process
// image, so a non-zero child exit surfaces as a ChildExitError for the
// caller to propagate; a zero exit returns nil.
func Replace(command string, args []string, environ []string) error {
	path, err := exec.LookPath(command)
	if err != nil {
		return err
	}

	cmd := exec.Command(path, args...)
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return exitError(cmd.Run())
}
