// Package env provides utilities for dealing with environment variables.
//
// It is intended for internal use by envlock only.
package env

import (
	"runtime"
	"sort"
	"strings"

	"github.com/puzpuzpuz/xsync/v2"
)

// Environment is a map of environment variables, with the keys normalized
// for case-insensitive operating systems.
type Environment struct {
	underlying *xsync.MapOf[string, string]
}

func New() *Environment {
	return &Environment{underlying: xsync.NewMapOf[string]()}
}

func NewWithLength(length int) *Environment {
	return &Environment{underlying: xsync.NewMapOfPresized[string](length)}
}

func FromMap(m map[string]string) *Environment {
	env := NewWithLength(len(m))
	for k, v := range m {
		env.Set(k, v)
	}
	return env
}

// FromSlice creates a new environment from a string slice of KEY=VALUE
// entries. Entries that are not of that form are dropped.
func FromSlice(s []string) *Environment {
	env := NewWithLength(len(s))
	for _, l := range s {
		if k, v, ok := Split(l); ok {
			env.Set(k, v)
		}
	}
	return env
}

// Split splits an environment variable (in the form "name=value") into the
// name and value substrings. If there is no '=', or the first '=' is at the
// start, it returns `"", "", false`.
func Split(l string) (name, value string, ok bool) {
	i := strings.IndexRune(l, '=')
	if i <= 0 {
		return "", "", false
	}
	return l[:i], l[i+1:], true
}

// Get returns a key from the environment.
func (e *Environment) Get(key string) (string, bool) {
	v, ok := e.underlying.Load(normalizeKeyName(key))
	return v, ok
}

// Exists reports whether the key exists in the environment.
func (e *Environment) Exists(key string) bool {
	_, ok := e.underlying.Load(normalizeKeyName(key))
	return ok
}

// Set sets a key in the environment.
func (e *Environment) Set(key string, value string) string {
	e.underlying.Store(normalizeKeyName(key), value)
	return value
}

// Remove a key from the Environment and return its value.
func (e *Environment) Remove(key string) string {
	value, ok := e.Get(key)
	if ok {
		e.underlying.Delete(normalizeKeyName(key))
	}
	return value
}

// Length returns the number of entries in the environment.
func (e *Environment) Length() int {
	return e.underlying.Size()
}

// Dump returns a copy of the environment as a map.
func (e *Environment) Dump() map[string]string {
	d := make(map[string]string, e.underlying.Size())
	e.underlying.Range(func(k, v string) bool {
		d[k] = v
		return true
	})
	return d
}

// ToSlice returns a sorted slice of KEY=VALUE entries, the form expected by
// os/exec and the process-replacement syscalls.
func (e *Environment) ToSlice() []string {
	s := make([]string, 0, e.underlying.Size())
	e.underlying.Range(func(k, v string) bool {
		s = append(s, k+"="+v)
		return true
	})
	sort.Strings(s)
	return s
}

// Windows isn't case sensitive for env
func normalizeKeyName(key string) string {
	if runtime.GOOS == "windows" {
		return strings.ToUpper(key)
	}
	return key
}
