package stdin

import "os"

// IsPipe reports whether stdin is connected to a pipe or redirect rather
// than a terminal.
func IsPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
