package pathmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAt_Root(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"server": map[string]any{"host": "localhost", "port": 8080},
	}
	patch := map[string]any{
		"server": map[string]any{"port": 9090},
		"debug":  true,
	}

	got, err := MergeAt[string](root, nil, patch)
	require.NoError(t, err)

	want := map[string]any{
		"server": map[string]any{"host": "localhost", "port": 9090},
		"debug":  true,
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestMergeAt_Nested(t *testing.T) {
	t.Parallel()

	got, err := MergeAt(sample(), Path[string]{"server", "tls"}, map[string]any{
		"key": "/etc/certs/server.key",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/certs/server.pem", Get(got, Path[string]{"server", "tls", "cert"}, nil))
	assert.Equal(t, "/etc/certs/server.key", Get(got, Path[string]{"server", "tls", "key"}, nil))
}

func TestMergeAt_NonMapTarget(t *testing.T) {
	t.Parallel()

	_, err := MergeAt(sample(), Path[string]{"server", "port"}, map[string]any{"x": 1})
	require.ErrorIs(t, err, ErrNotAMap)

	var notAMap *NotAMapError
	require.ErrorAs(t, err, &notAMap)
	assert.Equal(t, []any{"server", "port"}, notAMap.Prefix)
}

func TestMergeAt_StrictDescent(t *testing.T) {
	t.Parallel()

	_, err := MergeAt(map[string]any{}, Path[string]{"absent"}, map[string]any{"x": 1})
	assert.ErrorIs(t, err, ErrMissing)
}

func TestMergeAt_NeverMutatesInput(t *testing.T) {
	t.Parallel()

	root := sample()
	_, err := MergeAt(root, Path[string]{"server"}, map[string]any{
		"tls": map[string]any{"key": "/k"},
	})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(sample(), root), "input tree changed after MergeAt")
}
