package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/pathmap"
	"github.com/vk/pathmap/internal/ctxlog"
	"github.com/vk/pathmap/internal/docload"
)

// Run applies the configured operation to the loaded document and writes the
// result. Read operations print the resolved value; write operations print
// the entire updated document.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	path := pathmap.ParsePath(a.config.PathExpr)
	logger.Debug("Dispatching operation.", "op", a.config.Op, "path", a.config.PathExpr)

	switch a.config.Op {
	case OpFetch:
		value, err := pathmap.Fetch(a.doc, path)
		if err != nil {
			return err
		}
		return a.emit(value)

	case OpGet:
		var fallback any
		if a.config.HasValue {
			fallback = parseValue(a.config.Value)
		}
		return a.emit(pathmap.Get(a.doc, path, fallback))

	case OpExists:
		_, err := fmt.Fprintln(a.outW, pathmap.Exists(a.doc, path))
		return err

	case OpValidate:
		if err := pathmap.Validate(a.doc, path); err != nil {
			return err
		}
		_, err := fmt.Fprintln(a.outW, "ok")
		return err

	case OpPut:
		return a.emitUpdated(pathmap.Put(a.doc, path, parseValue(a.config.Value)))

	case OpPutAuto:
		return a.emitUpdated(pathmap.PutAuto(a.doc, path, parseValue(a.config.Value)))

	case OpPutNew:
		return a.emitUpdated(pathmap.PutNew(a.doc, path, parseValue(a.config.Value)))

	case OpPutNewAuto:
		return a.emitUpdated(pathmap.PutNewAuto(a.doc, path, parseValue(a.config.Value)))

	case OpEnsure:
		return a.emitUpdated(pathmap.Ensure(a.doc, path, func() any {
			return parseValue(a.config.Value)
		}))

	case OpUpdate:
		value := parseValue(a.config.Value)
		return a.emitUpdated(pathmap.Update(a.doc, path, func(any) any {
			return value
		}))

	case OpMerge:
		src, ok := parseValue(a.config.Value).(map[string]any)
		if !ok {
			return fmt.Errorf("merge requires a JSON object VALUE, got %q", a.config.Value)
		}
		return a.emitUpdated(pathmap.MergeAt(a.doc, path, src))

	default:
		// NewConfig vets the operation name; reaching this is a bug.
		return fmt.Errorf("unhandled operation %q", a.config.Op)
	}
}

// emitUpdated prints the new document produced by a write operation.
func (a *App) emitUpdated(updated any, err error) error {
	if err != nil {
		return err
	}
	return a.emit(updated)
}

// emit encodes a value in the configured output format.
func (a *App) emit(value any) error {
	data, err := docload.Encode(value, a.config.OutFormat)
	if err != nil {
		return err
	}
	_, err = a.outW.Write(data)
	return err
}

// parseValue interprets a VALUE argument as JSON, falling back to the raw
// string, so `8080`, `true`, `{"a":1}` and `plain text` all do what they look
// like they do.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}
