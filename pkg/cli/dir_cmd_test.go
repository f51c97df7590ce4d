package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDirDigestIgnoresTreeName(t *testing.T) {
	base := t.TempDir()
	dir1 := filepath.Join(base, "dir1")
	dir2 := filepath.Join(base, "dir2")
	require.NoError(t, os.MkdirAll(dir1, 0o755))
	require.NoError(t, os.MkdirAll(dir2, 0o755))
	writeFile(t, dir1, "a.txt", "x")
	writeFile(t, dir2, "a.txt", "x")

	out1, err := runCLI(t, "", "dir", dir1)
	require.NoError(t, err)
	out2, err := runCLI(t, "", "dir", dir2)
	require.NoError(t, err)
	require.Equal(t, digestLine(t, out1), digestLine(t, out2))
}

func TestDirIgnoreFlag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.txt", "payload")

	before, err := runCLI(t, "", "dir", dir, "--ignore", ".cache")
	require.NoError(t, err)

	writeFile(t, dir, ".cache", "scratch")
	after, err := runCLI(t, "", "dir", dir, "--ignore", ".cache")
	require.NoError(t, err)
	require.Equal(t, digestLine(t, before), digestLine(t, after))

	writeFile(t, dir, "extra.txt", "new")
	changed, err := runCLI(t, "", "dir", dir, "--ignore", ".cache")
	require.NoError(t, err)
	require.NotEqual(t, digestLine(t, before), digestLine(t, changed))
}

func TestDirMissingPath(t *testing.T) {
	_, err := runCLI(t, "", "dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
