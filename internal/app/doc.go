// Package app wires the pathmap engine to the command line: it owns the
// validated run configuration, the logger, document loading, and the dispatch
// of one operation against the loaded document.
package app
