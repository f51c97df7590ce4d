package provhash

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnhashable reports a value whose runtime type has no structural hashing
// rule. Detect it with errors.Is; the typed error below carries the offending
// type for diagnostics.
var ErrUnhashable = errors.New("unhashable type")

// UnhashableTypeError identifies the unsupported type behind an ErrUnhashable
// failure. It is always surfaced to the caller, never replaced by a sentinel
// digest.
type UnhashableTypeError struct {
	Type reflect.Type
}

func (e *UnhashableTypeError) Error() string {
	return fmt.Sprintf("cannot hash value of type %s", e.Type)
}

func (e *UnhashableTypeError) Unwrap() error { return ErrUnhashable }

// FolderError wraps an I/O failure during folder hashing. It unwraps to the
// underlying filesystem error so callers can test for os.ErrNotExist,
// os.ErrPermission, and friends.
type FolderError struct {
	Op   string // "list" or "read"
	Path string
	Err  error
}

func (e *FolderError) Error() string {
	return fmt.Sprintf("hash folder: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FolderError) Unwrap() error { return e.Err }
