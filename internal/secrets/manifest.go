package secrets

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/envlock/envlock/internal/osutil"
)

// ManifestFilename is the project manifest: one secret name per line, with
// blank lines and #-comments permitted. Its presence scopes injection to
// exactly the names it lists.
const ManifestFilename = ".envlock"

// FindManifest walks from startDir upward through every ancestor directory
// (startDir included) and returns the path of the first manifest found, or
// "" when the filesystem root is reached without a match.
func FindManifest(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, ManifestFilename)
		if osutil.FileExists(path) {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ParseManifest reads secret names from the manifest at path, preserving
// their order. Lines are trimmed of surrounding whitespace; blank lines and
// lines starting with # are skipped. Names are not deduplicated and not
// checked against the backend. A missing file yields no names rather than
// an error.
func ParseManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}
