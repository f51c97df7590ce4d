package provhash_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/provenlab/provhash/pkg/provhash"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root; keys are slash-separated relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestFolderNameIgnored(t *testing.T) {
	base := t.TempDir()
	dir1 := filepath.Join(base, "dir1")
	dir2 := filepath.Join(base, "dir2")
	writeTree(t, dir1, map[string]string{"a.txt": "x"})
	writeTree(t, dir2, map[string]string{"a.txt": "x"})

	require.Equal(t,
		mustHash(t, provhash.Folder{Path: dir1}),
		mustHash(t, provhash.Folder{Path: dir2}),
		"only contents matter, not the folder's own name")
}

func TestFolderContentSensitive(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	c := t.TempDir()
	writeTree(t, a, map[string]string{"a.txt": "x"})
	writeTree(t, b, map[string]string{"a.txt": "y"})
	writeTree(t, c, map[string]string{"b.txt": "x"})

	ha := mustHash(t, provhash.Folder{Path: a})
	require.NotEqual(t, ha, mustHash(t, provhash.Folder{Path: b}), "file content change must change the digest")
	require.NotEqual(t, ha, mustHash(t, provhash.Folder{Path: c}), "file rename must change the digest")
}

func TestFolderNestingMatters(t *testing.T) {
	flat := t.TempDir()
	nested := t.TempDir()
	writeTree(t, flat, map[string]string{"a.txt": "x"})
	writeTree(t, nested, map[string]string{"sub/a.txt": "x"})

	require.NotEqual(t,
		mustHash(t, provhash.Folder{Path: flat}),
		mustHash(t, provhash.Folder{Path: nested}))
}

func TestFolderSubdirectoryRecursion(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	tree := map[string]string{
		"top.txt":        "1",
		"sub/inner.txt":  "2",
		"sub/deep/x.bin": "3",
	}
	writeTree(t, a, tree)
	writeTree(t, b, tree)
	require.Equal(t, mustHash(t, provhash.Folder{Path: a}), mustHash(t, provhash.Folder{Path: b}))

	// changing a deeply nested file changes the root digest
	require.NoError(t, os.WriteFile(filepath.Join(b, "sub", "deep", "x.bin"), []byte("3!"), 0o644))
	require.NotEqual(t, mustHash(t, provhash.Folder{Path: a}), mustHash(t, provhash.Folder{Path: b}))
}

func TestFolderIgnoreList(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "x"})
	ignore := provhash.WithFolderIgnore(".scratch", "_snapshots")

	before := mustHash(t, provhash.Folder{Path: dir}, ignore)

	// an ignored file contributes nothing, not even a placeholder
	writeTree(t, dir, map[string]string{".scratch": "noise"})
	require.Equal(t, before, mustHash(t, provhash.Folder{Path: dir}, ignore))

	// ignored names apply to directories too
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "_snapshots"), 0o755))
	require.Equal(t, before, mustHash(t, provhash.Folder{Path: dir}, ignore))

	// a non-ignored file changes the digest
	writeTree(t, dir, map[string]string{"b.txt": "y"})
	require.NotEqual(t, before, mustHash(t, provhash.Folder{Path: dir}, ignore))
}

func TestFolderMissingPath(t *testing.T) {
	_, err := provhash.Hash(provhash.Folder{Path: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)

	var folderErr *provhash.FolderError
	require.ErrorAs(t, err, &folderErr)
	require.Equal(t, "list", folderErr.Op)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFolderInsideContainer(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "x"})

	// folders compose with the container rules like any other value
	d1 := mustHash(t, map[string]any{"inputs": provhash.Folder{Path: dir}})
	d2 := mustHash(t, map[string]any{"inputs": provhash.Folder{Path: dir}})
	require.Equal(t, d1, d2)
	require.NotEqual(t, d1, mustHash(t, provhash.Folder{Path: dir}))
}

func TestEmptyFolder(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	require.Equal(t, mustHash(t, provhash.Folder{Path: a}), mustHash(t, provhash.Folder{Path: b}))
	require.NotEqual(t, mustHash(t, provhash.Folder{Path: a}), mustHash(t, nil))
}
