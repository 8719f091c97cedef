package pathmap

import (
	"maps"
	"reflect"
)

// Map is a tree node: a mapping from keys to arbitrary values. A value that
// is itself a Map[K] is an interior node; any other value is a leaf. It is an
// alias, so plain map literals satisfy it directly.
type Map[K comparable] = map[K]any

// Path is an ordered sequence of keys locating a position in a tree. The nil
// or empty path denotes the root itself.
type Path[K comparable] = []K

// policy supplies the three decision points of the shared descent. Every
// public operation is a thin instantiation of walk with one of these.
type policy[K comparable] struct {
	// exhausted decides the terminal result when the whole path was empty
	// from the start: the operation applies to the root itself.
	exhausted func(node Map[K]) (any, error)

	// lastKey decides the result when exactly one key remains: read it,
	// overwrite it, refuse if absent, create if absent.
	lastKey func(node Map[K], key K, prefix []K) (any, error)

	// vivify, when set, synthesizes an empty map for an absent intermediate
	// key and keeps descending instead of failing with MissingError.
	vivify bool

	// rebuild, when set, clones every ancestor along the path and remaps the
	// traversed key to the child returned by the deeper level. Write
	// operations set it; reads propagate the inner result unchanged.
	rebuild bool
}

// walk consumes path one key at a time against node, carrying the keys
// already consumed in prefix for error reporting. node has already been
// verified to be a map by validate; children are verified here, so the
// not-a-map diagnosis applies at every depth.
func walk[K comparable](node Map[K], path, prefix []K, pol policy[K]) (any, error) {
	if len(path) == 0 {
		return pol.exhausted(node)
	}
	key := path[0]
	if len(path) == 1 {
		return pol.lastKey(node, key, prefix)
	}

	child, ok := node[key]
	if !ok {
		if !pol.vivify {
			return nil, &MissingError{Prefix: prefixKeys(prefix, key)}
		}
		child = Map[K]{}
	}
	childMap, ok := child.(Map[K])
	if !ok {
		return nil, &NotAMapError{Value: child, Prefix: prefixKeys(prefix, key)}
	}

	result, err := walk(childMap, path[1:], append(prefix, key), pol)
	if err != nil {
		return nil, err
	}
	if !pol.rebuild {
		return result, nil
	}
	out := maps.Clone(node)
	if out == nil {
		// A nil map value is a legal (empty) interior node on the way down,
		// but rebuilding must produce a writable map.
		out = Map[K]{}
	}
	out[key] = result
	return out, nil
}

// validate classifies the root/path pair before any traversal. The root check
// is unconditional and always wins: a non-map root is reported even when the
// path is also malformed.
func validate[K comparable](root any, path Path[K]) (Map[K], error) {
	node, ok := root.(Map[K])
	if !ok {
		return nil, &NotAMapError{Value: root, Prefix: []any{}}
	}
	for i, k := range path {
		if !usableKey(k) {
			return nil, &InvalidPathError{Key: k, Index: i}
		}
	}
	return node, nil
}

// usableKey reports whether k can be used in a map lookup without panicking.
// Only interface key types can smuggle in incomparable dynamic values, but
// the check is precise for any K: reflect.Value.Comparable inspects the value
// itself, so an array or struct key that merely contains an incomparable
// element is caught too.
func usableKey[K comparable](k K) bool {
	v := reflect.ValueOf(k)
	if !v.IsValid() {
		// The nil interface; a legal map key.
		return true
	}
	return v.Comparable()
}

// prefixKeys materializes consumed keys plus the key under inspection as the
// []any prefix carried by error values.
func prefixKeys[K comparable](prefix []K, key K) []any {
	out := make([]any, 0, len(prefix)+1)
	for _, k := range prefix {
		out = append(out, k)
	}
	return append(out, key)
}

// keysOf converts a full path for error values that carry the path as such.
func keysOf[K comparable](path []K) []any {
	out := make([]any, len(path))
	for i, k := range path {
		out[i] = k
	}
	return out
}
