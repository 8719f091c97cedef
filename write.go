package pathmap

import "maps"

// Put replaces the value at path and returns the new root. The input tree is
// never modified: every ancestor along the path is rebuilt. Put is strict
// twice over: intermediate maps must exist, and so must the final key — it
// overwrites, it does not insert. The empty path replaces the entire root
// with value.
func Put[K comparable](root any, path Path[K], value any) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	return walk(node, path, nil, policy[K]{
		rebuild: true,
		exhausted: func(Map[K]) (any, error) {
			return value, nil
		},
		lastKey: func(node Map[K], key K, prefix []K) (any, error) {
			if _, ok := node[key]; !ok {
				return nil, &MissingError{Prefix: prefixKeys(prefix, key)}
			}
			return setKey(node, key, value), nil
		},
	})
}

// PutAuto sets the value at path and returns the new root, creating empty
// intermediate maps and the final key as needed. The empty path replaces the
// entire root with value.
func PutAuto[K comparable](root any, path Path[K], value any) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	return walk(node, path, nil, policy[K]{
		rebuild: true,
		vivify:  true,
		exhausted: func(Map[K]) (any, error) {
			return value, nil
		},
		lastKey: func(node Map[K], key K, prefix []K) (any, error) {
			return setKey(node, key, value), nil
		},
	})
}

// PutNew inserts a value at path and returns the new root, failing with
// AlreadyExistsError if any value is already present there. Intermediate maps
// must exist. The empty path always fails: the root, by definition, already
// exists.
func PutNew[K comparable](root any, path Path[K], value any) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	return walk(node, path, nil, policy[K]{
		rebuild:   true,
		exhausted: refuseExisting[K],
		lastKey:   insertNew[K](value),
	})
}

// PutNewAuto inserts a value at path and returns the new root, creating empty
// intermediate maps as needed but still refusing to overwrite an existing
// value at the final key. The empty path always fails with
// AlreadyExistsError.
func PutNewAuto[K comparable](root any, path Path[K], value any) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	return walk(node, path, nil, policy[K]{
		rebuild:   true,
		vivify:    true,
		exhausted: refuseExisting[K],
		lastKey:   insertNew[K](value),
	})
}

// refuseExisting is the empty-path policy shared by the PutNew family.
func refuseExisting[K comparable](Map[K]) (any, error) {
	return nil, &AlreadyExistsError{Prefix: []any{}}
}

// insertNew builds the last-key policy shared by the PutNew family: set when
// absent, refuse when present.
func insertNew[K comparable](value any) func(Map[K], K, []K) (any, error) {
	return func(node Map[K], key K, prefix []K) (any, error) {
		if _, ok := node[key]; ok {
			return nil, &AlreadyExistsError{Prefix: prefixKeys(prefix, key)}
		}
		return setKey(node, key, value), nil
	}
}

// setKey clones node and remaps key to value, keeping the caller's map
// untouched.
func setKey[K comparable](node Map[K], key K, value any) Map[K] {
	out := maps.Clone(node)
	if out == nil {
		out = Map[K]{}
	}
	out[key] = value
	return out
}
