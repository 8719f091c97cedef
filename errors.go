package pathmap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the closed set of failure kinds. Every typed error in
// this package unwraps to exactly one of these, so callers can classify a
// failure with errors.Is without inspecting concrete types.
var (
	// ErrNotAMap reports a non-map value where a map was required.
	ErrNotAMap = errors.New("pathmap: not a map")
	// ErrMissing reports an absent key during a strict descent.
	ErrMissing = errors.New("pathmap: missing key")
	// ErrInvalidPath reports a path key that cannot be used as a map key.
	ErrInvalidPath = errors.New("pathmap: invalid path")
	// ErrAlreadyExists reports a value already present where PutNew expected none.
	ErrAlreadyExists = errors.New("pathmap: already exists")
	// ErrLeafMissing reports an absent final key when every intermediate exists.
	ErrLeafMissing = errors.New("pathmap: leaf missing")
	// ErrInvalidFunction reports a nil transform function.
	ErrInvalidFunction = errors.New("pathmap: invalid function")
	// ErrInvalidInitializer reports a nil initializer function.
	ErrInvalidInitializer = errors.New("pathmap: invalid initializer")
)

// NotAMapError is returned when traversal, including the initial root check,
// encounters a non-map value where a map was required. Prefix holds the keys
// consumed to reach the offending value; it is empty when the root itself is
// not a map.
type NotAMapError struct {
	Value  any
	Prefix []any
}

func (e *NotAMapError) Error() string {
	return fmt.Sprintf("pathmap: value at %s is not a map (got %T)", formatPrefix(e.Prefix), e.Value)
}

func (e *NotAMapError) Unwrap() error { return ErrNotAMap }

// MissingError is returned when a strict operation requires a key that does
// not exist. Prefix holds every key attempted, up to and including the absent
// one.
type MissingError struct {
	Prefix []any
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("pathmap: no value at %s", formatPrefix(e.Prefix))
}

func (e *MissingError) Unwrap() error { return ErrMissing }

// InvalidPathError is returned when a path contains a key whose dynamic type
// cannot be used for a map lookup without panicking. Index is the position of
// the offending key within the supplied path.
type InvalidPathError struct {
	Key   any
	Index int
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("pathmap: path key %d (%T) is not usable as a map key", e.Index, e.Key)
}

func (e *InvalidPathError) Unwrap() error { return ErrInvalidPath }

// AlreadyExistsError is returned by the PutNew family when a value is already
// present at the target path. Prefix identifies the existing value; it is
// empty when the path itself was empty, since the root always exists.
type AlreadyExistsError struct {
	Prefix []any
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("pathmap: value already exists at %s", formatPrefix(e.Prefix))
}

func (e *AlreadyExistsError) Unwrap() error { return ErrAlreadyExists }

// LeafMissingError is returned by Update when every intermediate map along the
// path exists but the final key does not. It is deliberately distinct from
// MissingError so callers can tell "the parent is there, the leaf is not" from
// "the descent itself failed".
type LeafMissingError struct {
	Path []any
}

func (e *LeafMissingError) Error() string {
	return fmt.Sprintf("pathmap: no leaf at %s", formatPrefix(e.Path))
}

func (e *LeafMissingError) Unwrap() error { return ErrLeafMissing }

// InvalidFunctionError is returned when a nil transform function is supplied
// to one of the Update operations.
type InvalidFunctionError struct{}

func (e *InvalidFunctionError) Error() string {
	return "pathmap: transform function must not be nil"
}

func (e *InvalidFunctionError) Unwrap() error { return ErrInvalidFunction }

// InvalidInitializerError is returned when a nil initializer is supplied to
// Ensure.
type InvalidInitializerError struct{}

func (e *InvalidInitializerError) Error() string {
	return "pathmap: initializer must not be nil"
}

func (e *InvalidInitializerError) Unwrap() error { return ErrInvalidInitializer }

// formatPrefix renders a key sequence for error messages. The empty prefix
// denotes the root.
func formatPrefix(keys []any) string {
	if len(keys) == 0 {
		return "(root)"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, ".")
}
