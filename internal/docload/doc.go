// Package docload reads configuration documents from disk into the
// map[string]any trees the pathmap engine operates on, and encodes updated
// trees back out. HCL, JSON, and YAML inputs are supported, selected by file
// extension. A directory argument loads every supported file beneath it and
// shallow-merges the results in filename order.
package docload
