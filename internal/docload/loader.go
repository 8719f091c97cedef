package docload

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"gopkg.in/yaml.v3"

	"github.com/vk/pathmap/internal/ctxlog"
	"github.com/vk/pathmap/internal/ctyconv"
)

// supportedExtensions lists the file extensions the loader recognizes.
var supportedExtensions = []string{".hcl", ".json", ".yaml", ".yml"}

// Load reads the document at path into a native tree. A regular file is
// decoded according to its extension; a directory is walked for supported
// files, which are decoded and shallow-merged in filename order, later files
// winning on key collision.
func Load(ctx context.Context, path string) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return loadFile(path)
	}

	files, err := findByExtension(path, supportedExtensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no supported documents under %s", path)
	}
	sort.Strings(files)
	logger.Debug("Merging documents from directory.", "path", path, "count", len(files))

	merged := map[string]any{}
	for _, f := range files {
		doc, err := loadFile(f)
		if err != nil {
			return nil, err
		}
		maps.Copy(merged, doc)
	}
	return merged, nil
}

// loadFile decodes a single document, dispatching on the file extension.
func loadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON(data, path)
	case ".yaml", ".yml":
		return decodeYAML(data, path)
	case ".hcl":
		return decodeHCL(data, path)
	default:
		return nil, fmt.Errorf("unsupported document type %q (want one of %s)",
			filepath.Ext(path), strings.Join(supportedExtensions, ", "))
	}
}

func decodeJSON(data []byte, path string) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

func decodeYAML(data []byte, path string) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

// decodeHCL parses native HCL syntax and evaluates every attribute to a
// value. Attributes are evaluated without an EvalContext, so only literal
// expressions are supported: an attribute referencing a variable or calling a
// function fails the load. Blocks become nested maps keyed by block type and
// then by label, so
//
//	server "api" { port = 8080 }
//
// decodes to {"server": {"api": {"port": 8080}}}.
func decodeHCL(data []byte, path string) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parse %s: unexpected body type %T", path, file.Body)
	}
	return decodeBody(body, path)
}

func decodeBody(body *hclsyntax.Body, path string) (map[string]any, error) {
	out := map[string]any{}

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluate %s in %s: %w", name, path, diags)
		}
		native, err := ctyconv.FromValue(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %s in %s: %w", name, path, err)
		}
		out[name] = native
	}

	for _, block := range body.Blocks {
		inner, err := decodeBody(block.Body, path)
		if err != nil {
			return nil, err
		}

		// Nest the block content under its type and each label in turn.
		node := out
		keys := append([]string{block.Type}, block.Labels...)
		for _, key := range keys[:len(keys)-1] {
			child, ok := node[key].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[key] = child
			}
			node = child
		}
		node[keys[len(keys)-1]] = inner
	}

	return out, nil
}
