package load

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/logging"
	"github.com/thoreinstein/kvcheck/pkg/kvconf"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testContext(t *testing.T) context.Context {
	return logging.NewContext(context.Background(), logging.ForTest(t))
}

func TestLoader_Config(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.conf", "# app\nport = 8080\n-debug = yes\n")

	cfg, err := New().Config(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Len())

	e, ok := cfg.Lookup("debug")
	require.True(t, ok)
	assert.True(t, e.IgnoreError)
	assert.Equal(t, 3, e.Line)
}

func TestLoader_Schema(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.schema", "port = integer\ndebug = bool\n")

	schema, err := New().Schema(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"port", "debug"}, schema.Keys())
}

func TestLoader_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.conf")

	_, err := New().Config(testContext(t), missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), missing)
}

func TestLoader_ParseErrorKeepsPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.schema", "port = integer\nratio = float\n")

	_, err := New().Schema(testContext(t), path)
	require.Error(t, err)

	var pe *kvconf.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, kvconf.UnknownType, pe.Kind)
	assert.Equal(t, 2, pe.Line)
	assert.True(t, strings.HasPrefix(err.Error(), path+": line 2:"), err.Error())
}

func TestLoader_Stdin(t *testing.T) {
	l := NewWithStdin(strings.NewReader("host = example.com\n"))

	cfg, err := l.Config(testContext(t), Stdin)
	require.NoError(t, err)
	e, ok := cfg.Lookup("host")
	require.True(t, ok)
	assert.Equal(t, "example.com", e.Value)
}

func TestLoader_NoLoggerInContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.conf", "a = 1\n")

	_, err := New().Config(context.Background(), path)
	assert.NoError(t, err)
}
