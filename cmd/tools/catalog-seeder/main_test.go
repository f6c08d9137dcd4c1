package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-recommender/internal/catalog"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestHelp_EndsWithSingleNewline(t *testing.T) {
	out := captureStdout(t, help)

	assert.Contains(t, out, "Usage: catalog-seeder <command> [flags]")
	assert.True(t, strings.HasSuffix(out, "command.\n"), "unexpected tail: %q", out[len(out)-20:])
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestExportThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.json")
	require.NoError(t, export(path))

	out := captureStdout(t, func() {
		require.NoError(t, validate(path))
	})
	assert.Contains(t, out, "Catalog validation passed.")

	rs, err := restaurantsFrom(path)
	require.NoError(t, err)
	assert.Len(t, rs, len(catalog.Default().All()))
}

func TestValidate_MissingFile(t *testing.T) {
	err := validate(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to load snapshot")
}
