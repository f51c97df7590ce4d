// Package provhash computes canonical, order-independent content digests for
// heterogeneous nested values: scalars, sequences, sets, ordered and unordered
// mappings, timestamps, UUIDs, and directory trees.
//
// The digest of a value depends only on its canonicalized content, never on
// in-memory representation or map iteration order, which makes it suitable as
// a cache or provenance key: two semantically equal inputs always produce the
// same 32-byte BLAKE2b digest, across processes and runs.
//
// Each leaf is hashed with its type tag bound as BLAKE2b personalization, so
// values with identical byte payloads but different types (the string "1" and
// the integer 1) never collide. Unordered containers are canonicalized by
// sorting element (or key) digests, floats are rendered to a fixed number of
// significant digits before hashing, and folders are walked in sorted name
// order with file names and contents hashed separately.
package provhash
