package pathmap

// Ensure guarantees a value exists at path and returns the (possibly new)
// root. When the final key is already present the tree is returned with its
// value untouched and init is never called; when it is absent the key is set
// to init(). Intermediate maps must exist. The empty path is a no-op: the
// root always exists. A nil init fails with InvalidInitializerError before
// any traversal.
func Ensure[K comparable](root any, path Path[K], init func() any) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	if init == nil {
		return nil, &InvalidInitializerError{}
	}
	return walk(node, path, nil, policy[K]{
		rebuild: true,
		exhausted: func(node Map[K]) (any, error) {
			return node, nil
		},
		lastKey: func(node Map[K], key K, prefix []K) (any, error) {
			if _, ok := node[key]; ok {
				return node, nil
			}
			return setKey(node, key, init()), nil
		},
	})
}

// Update applies fn to the value at path and returns the new root. The empty
// path applies fn to the entire root. Update is strict: an absent
// intermediate fails with MissingError, while an absent final key — every
// intermediate present, only the leaf missing — fails with the distinct
// LeafMissingError. A nil fn fails with InvalidFunctionError before any
// traversal.
func Update[K comparable](root any, path Path[K], fn func(any) any) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, &InvalidFunctionError{}
	}
	return walk(node, path, nil, policy[K]{
		rebuild: true,
		exhausted: func(node Map[K]) (any, error) {
			return fn(node), nil
		},
		lastKey: func(node Map[K], key K, prefix []K) (any, error) {
			value, ok := node[key]
			if !ok {
				return nil, &LeafMissingError{Path: keysOf(append(prefix, key))}
			}
			return setKey(node, key, fn(value)), nil
		},
	})
}

// UpdateOr applies fn to the value at path, or sets the final key to fallback
// when it is absent; fn is not called in that case. Intermediate maps must
// exist. The empty path applies fn to the entire root.
func UpdateOr[K comparable](root any, path Path[K], fallback any, fn func(any) any) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, &InvalidFunctionError{}
	}
	return walk(node, path, nil, policy[K]{
		rebuild: true,
		exhausted: func(node Map[K]) (any, error) {
			return fn(node), nil
		},
		lastKey: func(node Map[K], key K, prefix []K) (any, error) {
			value, ok := node[key]
			if !ok {
				return setKey(node, key, fallback), nil
			}
			return setKey(node, key, fn(value)), nil
		},
	})
}

// UpdateAuto applies fn to the value at path, creating empty intermediate
// maps as needed; when the final key is absent fn is applied to fallback
// instead of the stored value. The empty path applies fn to the entire root.
func UpdateAuto[K comparable](root any, path Path[K], fallback any, fn func(any) any) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, &InvalidFunctionError{}
	}
	return walk(node, path, nil, policy[K]{
		rebuild: true,
		vivify:  true,
		exhausted: func(node Map[K]) (any, error) {
			return fn(node), nil
		},
		lastKey: func(node Map[K], key K, prefix []K) (any, error) {
			value, ok := node[key]
			if !ok {
				value = fallback
			}
			return setKey(node, key, fn(value)), nil
		},
	})
}
