// Package document translates serialized documents (JSON, YAML) into values
// the provhash engine can fingerprint. Callers that receive computation inputs
// over a CLI or API boundary decode them here and hash the result.
//
// JSON objects always decode as unordered mappings. YAML mappings decode
// unordered by default to match; document order can be preserved when the
// caller wants ordered-map semantics. YAML tags map onto hasher value kinds:
// !!timestamp becomes a timestamp, !!binary a byte string, !!set a set, and
// the local !uuid tag a UUID.
package document
