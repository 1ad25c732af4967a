package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envlock/envlock/logger"
)

func newResolver(t *testing.T, backend Backend, dir string) *Resolver {
	t.Helper()
	return &Resolver{Backend: backend, Logger: logger.Discard, Dir: dir}
}

func TestResolveNamesWithoutManifestUsesEnumeration(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Store("BRAVO", "2"))
	require.NoError(t, backend.Store("ALPHA", "1"))

	names, err := newResolver(t, backend, t.TempDir()).ResolveNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"ALPHA", "BRAVO"}, names)
}

func TestResolveNamesWithoutManifestEmptyBackend(t *testing.T) {
	names, err := newResolver(t, NewMemory(), t.TempDir()).ResolveNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestResolveNamesEmptyManifestMeansNoSecrets(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Store("UNLISTED", "present but not wanted"))

	dir := t.TempDir()
	writeManifest(t, dir, "# no names\n\n")

	names, err := newResolver(t, backend, dir).ResolveNames()
	require.NoError(t, err)
	assert.Empty(t, names, "an empty manifest scopes injection down to nothing")
}

func TestResolveNamesPreservesManifestOrder(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Store("ZULU", "z"))
	require.NoError(t, backend.Store("ALPHA", "a"))

	dir := t.TempDir()
	writeManifest(t, dir, "ZULU\nALPHA\n")

	names, err := newResolver(t, backend, dir).ResolveNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"ZULU", "ALPHA"}, names, "manifest order must not be re-sorted")
}

func TestResolveNamesCollapsesDuplicates(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Store("ALPHA", "a"))
	require.NoError(t, backend.Store("BRAVO", "b"))

	dir := t.TempDir()
	writeManifest(t, dir, "ALPHA\nBRAVO\nALPHA\n")

	names, err := newResolver(t, backend, dir).ResolveNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"ALPHA", "BRAVO"}, names)
}

func TestResolveNamesFailsClosedOnMissingSecrets(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Store("PRESENT", "here"))

	dir := t.TempDir()
	path := writeManifest(t, dir, "PRESENT\nGONE_A\nGONE_B\n")

	names, err := newResolver(t, backend, dir).ResolveNames()
	assert.Nil(t, names)

	var missing *MissingSecretsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, path, missing.ManifestPath)
	if diff := cmp.Diff([]string{"GONE_A", "GONE_B"}, missing.Names); diff != "" {
		t.Errorf("missing names diff (-want +got):\n%s", diff)
	}
	assert.Contains(t, err.Error(), "missing required secrets")
	assert.Contains(t, err.Error(), "GONE_A")
	assert.Contains(t, err.Error(), "GONE_B")
}

func TestResolveNamesManifestInAncestorDirectory(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Store("LISTED_KEY", "v"))

	root := t.TempDir()
	writeManifest(t, root, "LISTED_KEY\n")
	nested := filepath.Join(root, "deep", "er", "still")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	names, err := newResolver(t, backend, nested).ResolveNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"LISTED_KEY"}, names)
}
