package pathmap

// Fetch returns the value located at path. The empty path yields the root
// itself. Fetch is strict: an absent key at any depth fails with
// MissingError, and a non-map value encountered before the path is exhausted
// fails with NotAMapError carrying the exact prefix consumed.
func Fetch[K comparable](root any, path Path[K]) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	return walk(node, path, nil, policy[K]{
		exhausted: func(node Map[K]) (any, error) {
			return node, nil
		},
		lastKey: func(node Map[K], key K, prefix []K) (any, error) {
			value, ok := node[key]
			if !ok {
				return nil, &MissingError{Prefix: prefixKeys(prefix, key)}
			}
			return value, nil
		},
	})
}

// Get returns the value located at path, or fallback if the lookup fails for
// any reason. Every error variant is normalized to the fallback, including a
// malformed path or a root that is not a map.
func Get[K comparable](root any, path Path[K], fallback any) any {
	value, err := Fetch(root, path)
	if err != nil {
		return fallback
	}
	return value
}

// Exists reports whether a value is present at path. Like Get, it never
// propagates a failure: malformed inputs simply report false.
func Exists[K comparable](root any, path Path[K]) bool {
	_, err := Fetch(root, path)
	return err == nil
}

// Validate checks that path resolves to a value inside root, returning nil on
// success and the classified failure otherwise.
func Validate[K comparable](root any, path Path[K]) error {
	_, err := Fetch(root, path)
	return err
}

// IsValid reports whether path resolves to a value inside root, collapsing
// every failure to false.
func IsValid[K comparable](root any, path Path[K]) bool {
	return Validate(root, path) == nil
}
