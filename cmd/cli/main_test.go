package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_Fetch(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := writeDoc(t, "conf.json", `{"server":{"port":8080}}`)
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, []string{"-doc", doc, "fetch", "server.port"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out.String())
}

func TestRun_PutAutoPrintsUpdatedDocument(t *testing.T) {
	t.Parallel()

	doc := writeDoc(t, "conf.json", `{}`)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-doc", doc, "put-auto", "a.b", "1"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"b":1}}`, out.String())
}

func TestRun_UpdateReplacesLeaf(t *testing.T) {
	t.Parallel()

	doc := writeDoc(t, "conf.json", `{"a":1}`)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-doc", doc, "update", "a", "2"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, out.String())
}

func TestRun_ExistsIsTotal(t *testing.T) {
	t.Parallel()

	doc := writeDoc(t, "conf.json", `{"a":1}`)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-doc", doc, "exists", "a.b.c"})

	require.NoError(t, err)
	assert.Equal(t, "false\n", out.String())
}

func TestRun_FetchMissingReportsPrefix(t *testing.T) {
	t.Parallel()

	doc := writeDoc(t, "conf.json", `{"a":{"b":1}}`)

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-doc", doc, "fetch", "a.x.y"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.x")
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntactically broken document makes app.NewApp panic during loading.
	doc := writeDoc(t, "broken.hcl", "server {\n  port =\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-doc", doc, "fetch", "server"})

	// --- Assert ---
	require.Error(t, err, "run() should have returned an error after recovering from a panic")
	assert.Contains(t, err.Error(), "application startup panicked")
	assert.Contains(t, err.Error(), "failed to load document")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Contains(t, out.String(), "Usage:", "expected help text on the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MissingValueForWriteOp(t *testing.T) {
	t.Parallel()

	doc := writeDoc(t, "conf.json", `{}`)

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-doc", doc, "put", "a"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a VALUE")
}
