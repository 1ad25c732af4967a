// Package secrets implements secret storage, project manifests, and
// per-invocation secret set resolution.
//
// Secret values live in the operating system credential store and are only
// ever held in memory for the duration of a single command.
package secrets

import (
	"errors"
	"fmt"
	"regexp"
)

// ServiceName is the credential-store service every entry is stored under.
// Together with KeyPrefix it keeps envlock entries from colliding with
// unrelated credentials belonging to the same OS user.
const ServiceName = "envlock"

// KeyPrefix namespaces entry names within the service.
const KeyPrefix = "envlock/"

// nameRE is the shape of a POSIX environment variable identifier. Names are
// validated at write time only: entries written by other tooling can still
// be read, listed, and deleted.
var nameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var (
	// ErrNotFound is returned when a named secret has no stored value.
	ErrNotFound = errors.New("secret not found")

	// ErrEmptyValue is returned when storing an empty value.
	ErrEmptyValue = errors.New("secret value must not be empty")

	// ErrBackendUnavailable is returned when the OS credential store cannot
	// be reached at all. It is a fatal precondition, not a per-secret error.
	ErrBackendUnavailable = errors.New("OS credential store is unavailable")
)

// InvalidNameError is returned when storing a secret whose name is not a
// valid environment variable identifier.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid secret name %q: names must match [A-Za-z_][A-Za-z0-9_]*", e.Name)
}

// Backend is a named secret store. Implementations are expected to be
// namespaced so that Enumerate only sees entries written through a Backend.
type Backend interface {
	// Store upserts a secret. The name must be a valid environment variable
	// identifier and the value must be non-empty.
	Store(name, value string) error

	// Retrieve returns the value for name, or ErrNotFound.
	Retrieve(name string) (string, error)

	// Delete removes the entry for name, or returns ErrNotFound.
	Delete(name string) error

	// Enumerate returns every stored name, deduplicated and sorted in
	// ascending lexicographic order. An empty store yields an empty slice,
	// not an error.
	Enumerate() ([]string, error)
}

// ValidateName reports whether name can be used as an environment variable.
func ValidateName(name string) error {
	if !nameRE.MatchString(name) {
		return &InvalidNameError{Name: name}
	}
	return nil
}

func validateWrite(name, value string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if value == "" {
		return ErrEmptyValue
	}
	return nil
}
