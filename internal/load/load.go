// Package load reads config and schema files from disk or stdin and parses
// them with kvconf.
package load

import (
	"context"
	"io"
	"io/fs"
	"os"

	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/logging"
	"github.com/thoreinstein/kvcheck/pkg/fileutil"
	"github.com/thoreinstein/kvcheck/pkg/kvconf"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Loader reads and parses kvcheck inputs.
type Loader struct {
	stdin io.Reader
}

// New returns a Loader reading "-" from os.Stdin.
func New() *Loader {
	return &Loader{stdin: os.Stdin}
}

// NewWithStdin returns a Loader reading "-" from r.
func NewWithStdin(r io.Reader) *Loader {
	return &Loader{stdin: r}
}

// Text reads path as UTF-8 text. A missing file is reported as
// errors.ErrNotFound.
func (l *Loader) Text(ctx context.Context, path string) (string, error) {
	logger := logging.FromContext(ctx)

	if path == Stdin {
		logger.Debug("reading stdin")
		text, err := fileutil.ReadTextFrom(l.stdin)
		return text, errors.Wrap(err, "reading stdin")
	}

	logger.Debug("reading file", "path", path)
	text, err := fileutil.ReadText(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrapf(errors.ErrNotFound, "%s", path)
		}
		return "", errors.Wrapf(err, "%s", path)
	}
	return text, nil
}

// Config reads and parses a config file.
func (l *Loader) Config(ctx context.Context, path string) (*kvconf.Config, error) {
	text, err := l.Text(ctx, path)
	if err != nil {
		return nil, err
	}
	cfg, err := kvconf.ParseConfig(text)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	logging.FromContext(ctx).Debug("parsed config", "path", path, "entries", cfg.Len())
	return cfg, nil
}

// Schema reads and parses a schema file.
func (l *Loader) Schema(ctx context.Context, path string) (*kvconf.Schema, error) {
	text, err := l.Text(ctx, path)
	if err != nil {
		return nil, err
	}
	schema, err := kvconf.ParseSchema(text)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	logging.FromContext(ctx).Debug("parsed schema", "path", path, "keys", schema.Len())
	return schema, nil
}
