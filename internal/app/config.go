package app

import (
	"errors"
	"fmt"
)

// Operations the CLI can apply to a document.
const (
	OpFetch      = "fetch"
	OpGet        = "get"
	OpExists     = "exists"
	OpValidate   = "validate"
	OpPut        = "put"
	OpPutAuto    = "put-auto"
	OpPutNew     = "put-new"
	OpPutNewAuto = "put-new-auto"
	OpEnsure     = "ensure"
	OpUpdate     = "update"
	OpMerge      = "merge"
)

// writeOps marks the operations that require a VALUE argument and print the
// whole updated document instead of a single value.
var writeOps = map[string]bool{
	OpPut:        true,
	OpPutAuto:    true,
	OpPutNew:     true,
	OpPutNewAuto: true,
	OpEnsure:     true,
	OpUpdate:     true,
	OpMerge:      true,
}

// knownOps is the full operation vocabulary.
var knownOps = map[string]bool{
	OpFetch: true, OpGet: true, OpExists: true, OpValidate: true,
	OpPut: true, OpPutAuto: true, OpPutNew: true, OpPutNewAuto: true,
	OpEnsure: true, OpUpdate: true, OpMerge: true,
}

// Config holds everything one invocation needs to run.
type Config struct {
	DocPath  string // file or directory of documents
	Op       string
	PathExpr string // dotted path, "" meaning the root
	Value    string // raw VALUE argument, parsed as JSON with a string fallback
	HasValue bool

	OutFormat string // json, yaml or hcl
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DocPath == "" {
		return nil, errors.New("a document path is required (use -doc)")
	}
	if !knownOps[cfg.Op] {
		return nil, fmt.Errorf("unknown operation %q", cfg.Op)
	}
	if writeOps[cfg.Op] && !cfg.HasValue {
		return nil, fmt.Errorf("operation %q requires a VALUE argument", cfg.Op)
	}
	return &cfg, nil
}
