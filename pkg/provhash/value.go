package provhash

// Set marks a slice as an unordered collection of unique elements. The digest
// of a Set does not depend on element order; elements are canonicalized by
// sorting their digests.
type Set []any

// MapEntry is a single key/value pair of an OrderedMap. Keys may be any
// hashable value, not just strings.
type MapEntry struct {
	Key   any
	Value any
}

// OrderedMap is a mapping whose insertion order is meaningful. It hashes in
// entry order, unlike plain Go maps which hash as unordered mappings. The
// OrderedMapsAsUnordered option collapses it to the unordered rule.
type OrderedMap []MapEntry

// Folder references a directory whose contents are hashed recursively. Only
// the contents matter: the name and location of the directory itself never
// contribute to the digest, so relocating or renaming a tree preserves it.
type Folder struct {
	Path string
}
