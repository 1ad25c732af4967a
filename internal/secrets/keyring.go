package secrets

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/zalando/go-keyring"
)

// indexKey is the reserved entry holding the names of all stored secrets.
// The credential-store APIs have no enumeration primitive, so the adapter
// maintains its own index. ".index" cannot collide with a secret because it
// is not a valid identifier.
const indexKey = KeyPrefix + ".index"

// Keyring is a Backend over the operating system credential store: Keychain
// on macOS, the Secret Service D-Bus API on Linux, and the Credential
// Manager on Windows.
type Keyring struct{}

// NewKeyring probes the credential store once and returns a Backend over
// it. A store that cannot be reached is reported as ErrBackendUnavailable;
// commands check this before doing any other work.
func NewKeyring() (*Keyring, error) {
	_, err := keyring.Get(ServiceName, indexKey)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return &Keyring{}, nil
}

func (k *Keyring) Store(name, value string) error {
	if err := validateWrite(name, value); err != nil {
		return err
	}
	if err := keyring.Set(ServiceName, KeyPrefix+name, value); err != nil {
		return fmt.Errorf("writing to credential store: %w", err)
	}
	return k.addToIndex(name)
}

func (k *Keyring) Retrieve(name string) (string, error) {
	value, err := keyring.Get(ServiceName, KeyPrefix+name)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading from credential store: %w", err)
	}
	return value, nil
}

func (k *Keyring) Delete(name string) error {
	err := keyring.Delete(ServiceName, KeyPrefix+name)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting from credential store: %w", err)
	}
	return k.removeFromIndex(name)
}

func (k *Keyring) Enumerate() ([]string, error) {
	return k.readIndex()
}

// readIndex returns the stored names, deduplicated and sorted. A missing
// index means nothing has been stored yet.
func (k *Keyring) readIndex() ([]string, error) {
	raw, err := keyring.Get(ServiceName, indexKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secret index: %w", err)
	}

	names := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func (k *Keyring) writeIndex(names []string) error {
	if err := keyring.Set(ServiceName, indexKey, strings.Join(names, "\n")); err != nil {
		return fmt.Errorf("writing secret index: %w", err)
	}
	return nil
}

func (k *Keyring) addToIndex(name string) error {
	names, err := k.readIndex()
	if err != nil {
		return err
	}
	if slices.Contains(names, name) {
		return nil
	}
	names = append(names, name)
	slices.Sort(names)
	return k.writeIndex(names)
}

func (k *Keyring) removeFromIndex(name string) error {
	names, err := k.readIndex()
	if err != nil {
		return err
	}
	i := slices.Index(names, name)
	if i < 0 {
		return nil
	}
	return k.writeIndex(slices.Delete(names, i, i+1))
}
