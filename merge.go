package pathmap

import "dario.cat/mergo"

// MergeAt deep-merges src into the map located at path and returns the new
// root. Keys present in src win over keys already in the target map; nested
// maps are merged recursively rather than replaced. The descent is strict:
// intermediate maps must exist, and a non-map value at path fails with
// NotAMapError. The empty path merges src into the root itself.
func MergeAt[K comparable](root any, path Path[K], src Map[K]) (any, error) {
	node, err := validate(root, path)
	if err != nil {
		return nil, err
	}
	return walk(node, path, nil, policy[K]{
		rebuild: true,
		exhausted: func(node Map[K]) (any, error) {
			return mergeMaps(node, src)
		},
		lastKey: func(node Map[K], key K, prefix []K) (any, error) {
			value, ok := node[key]
			if !ok {
				return nil, &MissingError{Prefix: prefixKeys(prefix, key)}
			}
			target, ok := value.(Map[K])
			if !ok {
				return nil, &NotAMapError{Value: value, Prefix: prefixKeys(prefix, key)}
			}
			merged, err := mergeMaps(target, src)
			if err != nil {
				return nil, err
			}
			return setKey(node, key, merged), nil
		},
	})
}

// mergeMaps merges src into a deep copy of dst. The copy is required for the
// no-shared-mutation guarantee: mergo updates nested destination maps in
// place, and a shallow clone would leak those writes into the caller's tree.
func mergeMaps[K comparable](dst, src Map[K]) (Map[K], error) {
	out := deepCopy(dst)
	if err := mergo.Merge(&out, src, mergo.WithOverride); err != nil {
		return nil, err
	}
	return out, nil
}

// deepCopy copies every interior node of the tree. Leaves are shared.
func deepCopy[K comparable](node Map[K]) Map[K] {
	out := make(Map[K], len(node))
	for k, v := range node {
		if child, ok := v.(Map[K]); ok {
			out[k] = deepCopy(child)
			continue
		}
		out[k] = v
	}
	return out
}
