package provhash

import (
	"encoding/hex"

	"github.com/dchest/blake2b"
)

// DigestSize is the byte length of a final digest.
const DigestSize = 32

// BLAKE2b tree parameters shared by every node: unlimited fanout, fixed depth
// of 2, and a 64-byte inner hash even though the output is truncated to 32.
const (
	treeMaxDepth  = 2
	innerHashSize = 64
)

// Digest is a canonical 32-byte content digest.
type Digest [DigestSize]byte

// String renders the digest as 64 lowercase hex characters.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Leaf tags. Each tag is bound into its leaf digest as BLAKE2b
// personalization, so identical payloads under different tags never collide.
// Container tags carry an open bracket and share the single close tag.
const (
	tagStr         = "str"
	tagBool        = "bool"
	tagNone        = "none"
	tagInt         = "int"
	tagFloat       = "float"
	tagComplex     = "complex"
	tagList        = "list("
	tagSet         = "set("
	tagDict        = "dict("
	tagOrderedDict = "odict("
	tagDatetime    = "datetime"
	tagUUID        = "uuid"
	tagFolder      = "folder"
	tagFileName    = "fname"
	tagFileContent = "fcontent"
	tagDir         = "dir("
	tagEnd         = ")"
)

func treeParams(nodeDepth uint8, lastNode bool) *blake2b.Tree {
	return &blake2b.Tree{
		Fanout:        0,
		MaxDepth:      treeMaxDepth,
		NodeDepth:     nodeDepth,
		InnerHashSize: innerHashSize,
		IsLastNode:    lastNode,
	}
}

// singleDigest produces the leaf digest for one tagged payload. All tags are
// short compile-time constants, so a config error here is a programming error.
func singleDigest(tag string, payload []byte) []byte {
	h, err := blake2b.New(&blake2b.Config{
		Size:   DigestSize,
		Person: []byte(tag),
		Tree:   treeParams(0, false),
	})
	if err != nil {
		panic("provhash: leaf digest config: " + err.Error())
	}
	h.Write(payload)
	return h.Sum(nil)
}

// endDigest closes every container; a universal close marker keeps nesting
// unambiguous without per-container close tags.
var endDigest = singleDigest(tagEnd, nil)

// combineLeaves folds an arbitrary number of leaf digests into one fixed-size
// result using the unlimited-fanout hashing protocol: a depth-1 last node
// absorbs every leaf digest in sequence, then one empty last leaf.
func combineLeaves(leaves [][]byte) Digest {
	root, err := blake2b.New(&blake2b.Config{
		Size: DigestSize,
		Tree: treeParams(1, true),
	})
	if err != nil {
		panic("provhash: root digest config: " + err.Error())
	}
	for _, leaf := range leaves {
		root.Write(leaf)
	}

	closing, err := blake2b.New(&blake2b.Config{
		Size: DigestSize,
		Tree: treeParams(0, true),
	})
	if err != nil {
		panic("provhash: closing digest config: " + err.Error())
	}
	root.Write(closing.Sum(nil))

	var d Digest
	copy(d[:], root.Sum(nil))
	return d
}
