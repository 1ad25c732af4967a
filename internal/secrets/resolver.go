package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/envlock/envlock/logger"
)

// MissingSecretsError reports manifest names that have no stored value. It
// carries every missing name so they can all be fixed in one pass.
type MissingSecretsError struct {
	Names        []string
	ManifestPath string
}

func (e *MissingSecretsError) Error() string {
	return fmt.Sprintf("missing required secrets (%s) listed in %s",
		strings.Join(e.Names, ", "), e.ManifestPath)
}

// Resolver computes the set of secret names to inject for one invocation.
// The set is recomputed fresh every time and never cached.
type Resolver struct {
	Backend Backend
	Logger  logger.Logger

	// Dir is the directory the manifest search starts from, normally the
	// working directory.
	Dir string
}

// ResolveNames returns the names to inject, in manifest order when a
// manifest governs, or the full sorted enumeration when none does.
//
// A manifest that names a secret with no stored value fails the whole
// resolution before anything is injected: a child process must never see a
// partially populated environment because a missing name was skipped
// silently.
func (r *Resolver) ResolveNames() ([]string, error) {
	path := FindManifest(r.Dir)
	if path == "" {
		r.Logger.Debug("No %s manifest found, using every stored secret", ManifestFilename)
		return r.Backend.Enumerate()
	}

	r.Logger.Debug("Using manifest %s", path)
	names, err := ParseManifest(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if len(names) == 0 {
		// An empty manifest means "this project needs no secrets", which is
		// different from "no manifest" (inject everything).
		return nil, nil
	}

	names = dedupe(names)

	var missing []string
	for _, name := range names {
		if _, err := r.Backend.Retrieve(name); err != nil {
			if errors.Is(err, ErrNotFound) {
				missing = append(missing, name)
				continue
			}
			return nil, err
		}
	}
	if len(missing) > 0 {
		return nil, &MissingSecretsError{Names: missing, ManifestPath: path}
	}
	return names, nil
}

// dedupe collapses duplicate names, keeping first occurrences in their
// original order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
