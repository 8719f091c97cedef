package docload

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"gopkg.in/yaml.v3"

	"github.com/vk/pathmap/internal/ctyconv"
)

// Encode renders a value in the requested output format: "json", "yaml" or
// "hcl". JSON output is indented; all three end in a newline. HCL can only
// represent an object at the top level, so "hcl" rejects other values.
func Encode(v any, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	case "hcl":
		return encodeHCL(v)
	default:
		return nil, fmt.Errorf("unsupported output format %q (want json, yaml or hcl)", format)
	}
}

// encodeHCL writes each top-level entry of an object as an attribute, in key
// order so the output is deterministic.
func encodeHCL(v any) ([]byte, error) {
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("encode hcl: top-level value must be an object, got %T", v)
	}

	file := hclwrite.NewEmptyFile()
	body := file.Body()
	for _, name := range slices.Sorted(maps.Keys(doc)) {
		val, err := ctyconv.ToValue(doc[name])
		if err != nil {
			return nil, fmt.Errorf("encode hcl: attribute %q: %w", name, err)
		}
		body.SetAttributeValue(name, val)
	}
	return file.Bytes(), nil
}
