// Package process replaces the current process image with a target command.
//
// On POSIX systems this is a true exec: the caller becomes the child, the
// child inherits stdio and receives signals directly, and the exit status an
// outer shell observes is exactly the child's. On Windows, which has no
// exec primitive, the same observable contract is kept by spawning the
// child, forwarding stdio, waiting, and propagating its exit code.
package process

import (
	"errors"
	"fmt"
	"os/exec"
)

// ChildExitError reports a child process that ran to completion with a
// non-zero exit status on the spawn-and-wait path.
type ChildExitError struct {
	Code int
}

func (e *ChildExitError) Error() string {
	return fmt.Sprintf("exited with status %d", e.Code)
}

// exitError maps an error from exec.Cmd.Run to a ChildExitError where the
// child actually ran, passing every other failure through unchanged.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ChildExitError{Code: exitErr.ExitCode()}
	}
	return err
}
