package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateSite writes the given files below a fresh temporary directory
// and returns its path. Keys are slash separated paths relative to the
// site root; intermediate directories are created as needed.
func CreateSite(tb testing.TB, files map[string]string) string {
	tb.Helper()

	rootDir := tb.TempDir()

	// On some systems the temp dir is behind a symlink
	rootDir, err := filepath.EvalSymlinks(rootDir)
	require.NoError(tb, err)

	for name, content := range files {
		fullPath := filepath.Join(rootDir, filepath.FromSlash(name))

		require.NoError(tb, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(tb, os.WriteFile(fullPath, []byte(content), 0644))
	}

	return rootDir
}
