//go:build !windows

package process

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Replace swaps the current process image for command with the given
// argument vector and environment. It only returns on failure: once the
// exec succeeds there is no envlock process left to return to.
func Replace(command string, args []string, environ []string) error {
	path, err := exec.LookPath(command)
	if err != nil {
		return err
	}
	argv := append([]string{command}, args...)
	if err := unix.Exec(path, argv, environ); err != nil {
		return fmt.Errorf("exec %s: %w", command, err)
	}
	return nil
}
