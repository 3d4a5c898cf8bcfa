package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTestFile creates a file with the given content under dir and
// returns its path. It uses require assertions for test setup.
func WriteTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create directory for %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write test file %s", path)
	return path
}

// WriteManifest creates each named file with its content under dir, plus
// a CSV manifest listing them in the given order, and returns the
// manifest path together with the listed file paths.
func WriteManifest(t *testing.T, dir string, names []string, contents map[string]string) (manifest string, paths []string) {
	t.Helper()
	for _, name := range names {
		paths = append(paths, WriteTestFile(t, dir, name, contents[name]))
	}
	manifest = WriteTestFile(t, dir, "list.csv", strings.Join(paths, ","))
	return manifest, paths
}
