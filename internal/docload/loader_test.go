package docload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, t.TempDir(), "conf.json", `{"server":{"port":8080,"host":"localhost"}}`)

	got, err := Load(context.Background(), path)
	require.NoError(t, err)

	want := map[string]any{
		"server": map[string]any{"port": float64(8080), "host": "localhost"},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, t.TempDir(), "conf.yaml", "server:\n  port: 8080\n  host: localhost\n")

	got, err := Load(context.Background(), path)
	require.NoError(t, err)

	want := map[string]any{
		"server": map[string]any{"port": 8080, "host": "localhost"},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestLoad_HCL(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, t.TempDir(), "conf.hcl", `
debug = true

server "api" {
  port = 8080
  tags = ["internal", "v2"]
}
`)

	got, err := Load(context.Background(), path)
	require.NoError(t, err)

	want := map[string]any{
		"debug": true,
		"server": map[string]any{
			"api": map[string]any{
				"port": float64(8080),
				"tags": []any{"internal", "v2"},
			},
		},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestLoad_HCLParseError(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, t.TempDir(), "broken.hcl", "server {\n  port =\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoad_DirectoryMergesInFilenameOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "01-base.json", `{"a":1,"b":1}`)
	writeFixture(t, dir, "02-override.json", `{"b":2,"c":3}`)

	got, err := Load(context.Background(), dir)
	require.NoError(t, err)

	want := map[string]any{"a": float64(1), "b": float64(2), "c": float64(3)}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestLoad_HCLRejectsNonLiteralExpression(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, t.TempDir(), "conf.hcl", "port = var.port\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluate port")
}

func TestLoad_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no supported documents")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, t.TempDir(), "conf.toml", "a = 1\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document type")
}

func TestEncode(t *testing.T) {
	t.Parallel()

	v := map[string]any{"a": 1}

	jsonOut, err := Encode(v, "json")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", string(jsonOut))

	yamlOut, err := Encode(v, "yaml")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(yamlOut))

	_, err = Encode(v, "toml")
	assert.Error(t, err)
}

func TestEncode_HCLRoundTrip(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"host":  "localhost",
		"port":  float64(8080),
		"debug": true,
		"tls":   map[string]any{"cert": "/etc/cert.pem"},
	}

	out, err := Encode(doc, "hcl")
	require.NoError(t, err)
	assert.Contains(t, string(out), `host = "localhost"`)

	path := writeFixture(t, t.TempDir(), "out.hcl", string(out))
	back, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(doc, back))
}

func TestEncode_HCLRequiresObject(t *testing.T) {
	t.Parallel()

	_, err := Encode([]any{1, 2}, "hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-level value must be an object")
}
