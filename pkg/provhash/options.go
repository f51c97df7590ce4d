package provhash

// DefaultFloatPrecision is the number of significant digits kept when
// canonicalizing real numbers, complex components, and timestamps.
const DefaultFloatPrecision = 12

type options struct {
	floatPrecision         int
	orderedMapsAsUnordered bool
	folderIgnore           map[string]struct{}
}

// Option configures a single Hash call.
type Option func(*options)

// WithFloatPrecision overrides the number of significant digits used to render
// floating-point payloads. Values equal within the chosen precision hash
// identically.
func WithFloatPrecision(sig int) Option {
	return func(o *options) {
		if sig > 0 {
			o.floatPrecision = sig
		}
	}
}

// WithOrderedMapsAsUnordered hashes OrderedMap values with the unordered
// mapping rule, mostly useful for interoperability testing.
func WithOrderedMapsAsUnordered() Option {
	return func(o *options) { o.orderedMapsAsUnordered = true }
}

// WithFolderIgnore excludes directory entries with the given names from folder
// hashing. Ignored entries contribute nothing to the digest, not even a
// placeholder.
func WithFolderIgnore(names ...string) Option {
	return func(o *options) {
		if o.folderIgnore == nil {
			o.folderIgnore = make(map[string]struct{}, len(names))
		}
		for _, name := range names {
			o.folderIgnore[name] = struct{}{}
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{floatPrecision: DefaultFloatPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) ignored(name string) bool {
	_, ok := o.folderIgnore[name]
	return ok
}
