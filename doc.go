// Package pathmap reads, checks, and mutates values inside arbitrarily
// nested, heterogeneous key-value trees using explicit paths.
//
// A tree node is a plain Go map whose values are any; a value that is itself
// such a map is an interior node, anything else is a leaf. The key type is a
// generic parameter, so string-keyed document trees (the shape produced by
// JSON, YAML, and HCL decoding) and fully dynamic map[any]any trees are both
// supported:
//
//	root := map[string]any{"server": map[string]any{"port": 8080}}
//	port, err := pathmap.Fetch(root, pathmap.Path[string]{"server", "port"})
//
// Every operation is total: any input, including a root that is not a map at
// all, produces either a result or one of a closed set of classified errors
// (NotAMapError, MissingError, InvalidPathError, AlreadyExistsError,
// LeafMissingError, InvalidFunctionError, InvalidInitializerError). Errors
// report the exact prefix of keys consumed before the failure. Nothing ever
// panics and nothing silently guesses intent.
//
// Operations come in strict and auto-vivifying flavors: strict ones (Put,
// PutNew, Ensure, Update, UpdateOr) fail when an intermediate map is absent,
// while the auto flavors (PutAuto, PutNewAuto, UpdateAuto) synthesize empty
// intermediate maps as needed.
//
// Mutating operations never modify their input. Every write rebuilds the
// ancestor maps along the path and returns a new root; subtrees off the path
// are shared between the old and new tree. Concurrent readers of the original
// root therefore never observe a partial update.
package pathmap
