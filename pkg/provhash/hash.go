package provhash

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Hash computes the canonical digest of v. It fails only when v (or something
// nested inside it) has no structural hashing rule, or when folder hashing
// cannot read the filesystem. The call is pure: v is never mutated and no
// state is shared between invocations, so Hash is safe for concurrent use.
func Hash(v any, opts ...Option) (Digest, error) {
	leaves, err := makeLeaves(v, newOptions(opts))
	if err != nil {
		return Digest{}, err
	}
	return combineLeaves(leaves), nil
}

// HashHex is Hash rendered as a 64-character lowercase hex string, the form
// consumers store and compare as an opaque cache key.
func HashHex(v any, opts ...Option) (string, error) {
	d, err := Hash(v, opts...)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// makeLeaves walks v and returns its leaf digests in canonical order. The
// type switch is the closed set of supported categories; the reflection arms
// below extend the container rules to concretely-typed slices and maps.
func makeLeaves(v any, o *options) ([][]byte, error) {
	switch val := v.(type) {
	case nil:
		return [][]byte{singleDigest(tagNone, nil)}, nil
	case bool:
		payload := []byte{0x00}
		if val {
			payload[0] = 0x01
		}
		return [][]byte{singleDigest(tagBool, payload)}, nil
	case []byte:
		// Byte strings and text share one tag: a string and its UTF-8
		// bytes hash identically.
		return [][]byte{singleDigest(tagStr, val)}, nil
	case string:
		return [][]byte{singleDigest(tagStr, []byte(val))}, nil
	case int, int8, int16, int32, int64:
		payload := strconv.AppendInt(nil, reflect.ValueOf(v).Int(), 10)
		return [][]byte{singleDigest(tagInt, payload)}, nil
	case uint, uint8, uint16, uint32, uint64:
		payload := strconv.AppendUint(nil, reflect.ValueOf(v).Uint(), 10)
		return [][]byte{singleDigest(tagInt, payload)}, nil
	case float32:
		return floatLeaf(float64(val), o), nil
	case float64:
		return floatLeaf(val, o), nil
	case complex64:
		return complexLeaf(complex128(val), o), nil
	case complex128:
		return complexLeaf(val, o), nil
	case time.Time:
		return timeLeaf(val, o), nil
	case uuid.UUID:
		return [][]byte{singleDigest(tagUUID, val[:])}, nil
	case Set:
		return setLeaves(val, o)
	case OrderedMap:
		if o.orderedMapsAsUnordered {
			return dictLeaves(val, o)
		}
		return orderedDictLeaves(val, o)
	case []any:
		return listLeaves(len(val), func(i int) any { return val[i] }, o)
	case map[string]any:
		entries := make([]MapEntry, 0, len(val))
		for k, v := range val {
			entries = append(entries, MapEntry{Key: k, Value: v})
		}
		return dictLeaves(entries, o)
	case Folder:
		return folderLeaves(val, o)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			// named byte-slice types hash as byte strings
			return [][]byte{singleDigest(tagStr, rv.Bytes())}, nil
		}
		return listLeaves(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, o)
	case reflect.Map:
		entries := make([]MapEntry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, MapEntry{
				Key:   iter.Key().Interface(),
				Value: iter.Value().Interface(),
			})
		}
		return dictLeaves(entries, o)
	}

	return nil, &UnhashableTypeError{Type: reflect.TypeOf(v)}
}

// floatToText renders a float with the given number of significant digits in
// general notation. Rounding before hashing trades sub-precision distinctions
// for reproducible equality semantics: representation noise hashes away.
func floatToText(v float64, sig int) string {
	return fmt.Sprintf("%.*g", sig, v)
}

func floatLeaf(v float64, o *options) [][]byte {
	return [][]byte{singleDigest(tagFloat, []byte(floatToText(v, o.floatPrecision)))}
}

// complexLeaf joins the independently rendered components with '!', which can
// never appear in a %g rendering of a float.
func complexLeaf(v complex128, o *options) [][]byte {
	payload := floatToText(real(v), o.floatPrecision) + "!" + floatToText(imag(v), o.floatPrecision)
	return [][]byte{singleDigest(tagComplex, []byte(payload))}
}

// timeLeaf hashes the absolute instant as epoch seconds with sub-second
// fraction, rendered under the float precision rule. Equal instants hash
// equal regardless of the zone they are expressed in.
func timeLeaf(v time.Time, o *options) [][]byte {
	seconds := float64(v.Unix()) + float64(v.Nanosecond())/1e9
	return [][]byte{singleDigest(tagDatetime, []byte(floatToText(seconds, o.floatPrecision)))}
}

func listLeaves(n int, elem func(int) any, o *options) ([][]byte, error) {
	leaves := [][]byte{singleDigest(tagList, nil)}
	for i := 0; i < n; i++ {
		sub, err := makeLeaves(elem(i), o)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, sub...)
	}
	return append(leaves, endDigest), nil
}

// setLeaves canonicalizes an unordered collection by sorting each element's
// digest run lexicographically. Sorting happens on digest bytes, not on the
// elements themselves, so heterogeneous and non-orderable members still get a
// well-defined order.
func setLeaves(s Set, o *options) ([][]byte, error) {
	runs := make([][][]byte, 0, len(s))
	keys := make([][]byte, 0, len(s))
	for _, elem := range s {
		sub, err := makeLeaves(elem, o)
		if err != nil {
			return nil, err
		}
		runs = append(runs, sub)
		keys = append(keys, bytes.Join(sub, nil))
	}
	order := sortedOrder(keys)

	leaves := [][]byte{singleDigest(tagSet, nil)}
	for _, i := range order {
		leaves = append(leaves, runs[i]...)
	}
	return append(leaves, endDigest), nil
}

// dictLeaves hashes entries as an unordered mapping: every key is hashed
// recursively and entries are sorted by key digest before key and value digest
// runs are emitted.
func dictLeaves(entries []MapEntry, o *options) ([][]byte, error) {
	keyRuns := make([][][]byte, len(entries))
	valRuns := make([][][]byte, len(entries))
	keys := make([][]byte, len(entries))
	for i, entry := range entries {
		keyRun, err := makeLeaves(entry.Key, o)
		if err != nil {
			return nil, err
		}
		valRun, err := makeLeaves(entry.Value, o)
		if err != nil {
			return nil, err
		}
		keyRuns[i] = keyRun
		valRuns[i] = valRun
		keys[i] = bytes.Join(keyRun, nil)
	}
	order := sortedOrder(keys)

	leaves := [][]byte{singleDigest(tagDict, nil)}
	for _, i := range order {
		leaves = append(leaves, keyRuns[i]...)
		leaves = append(leaves, valRuns[i]...)
	}
	return append(leaves, endDigest), nil
}

func orderedDictLeaves(m OrderedMap, o *options) ([][]byte, error) {
	leaves := [][]byte{singleDigest(tagOrderedDict, nil)}
	for _, entry := range m {
		keyRun, err := makeLeaves(entry.Key, o)
		if err != nil {
			return nil, err
		}
		valRun, err := makeLeaves(entry.Value, o)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, keyRun...)
		leaves = append(leaves, valRun...)
	}
	return append(leaves, endDigest), nil
}

// sortedOrder returns the indices of keys in lexicographic byte order.
func sortedOrder(keys [][]byte) []int {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return bytes.Compare(keys[order[a]], keys[order[b]]) < 0
	})
	return order
}
