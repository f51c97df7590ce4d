package provhash

import (
	"os"
	"path/filepath"
)

// folderLeaves hashes a directory tree by content. Entries are visited in
// sorted name order; files contribute their name and full content under
// separate tags, subdirectories open a bracketed run that recurses. The root
// directory's own name never participates, so renaming the tree preserves the
// digest. File contents are read fully: truncated or streamed reads would
// break the determinism contract.
func folderLeaves(f Folder, o *options) ([][]byte, error) {
	leaves := [][]byte{singleDigest(tagFolder, nil)}
	sub, err := walkFolder(f.Path, o)
	if err != nil {
		return nil, err
	}
	return append(leaves, sub...), nil
}

func walkFolder(dir string, o *options) ([][]byte, error) {
	// os.ReadDir returns entries already sorted by name
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &FolderError{Op: "list", Path: dir, Err: err}
	}

	var leaves [][]byte
	for _, entry := range entries {
		name := entry.Name()
		if o.ignored(name) {
			continue
		}
		path := filepath.Join(dir, name)
		if entry.IsDir() {
			leaves = append(leaves, singleDigest(tagDir, []byte(name)))
			sub, err := walkFolder(path, o)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, sub...)
			leaves = append(leaves, endDigest)
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &FolderError{Op: "read", Path: path, Err: err}
		}
		leaves = append(leaves, singleDigest(tagFileName, []byte(name)))
		leaves = append(leaves, singleDigest(tagFileContent, content))
	}
	return leaves, nil
}
