package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/thoreinstein/kvcheck/internal/errors"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ErrInvalidFormat indicates a --log-format value other than text or json.
var ErrInvalidFormat = errors.New("invalid log format")

// Options configures the CLI logger.
type Options struct {
	// Level sets the minimum level for every destination.
	Level slog.Level
	// Format selects the console encoding. Empty means FormatText.
	Format Format
	// Console receives human-facing logs. Defaults to os.Stderr.
	Console io.Writer
	// File, if set, is opened for append and receives every record as JSON.
	File string
}

// Setup builds the CLI logger from opts. The returned close function
// releases the log file and is a no-op when none was opened.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	hopts := &slog.HandlerOptions{Level: opts.Level}

	console, err := consoleHandler(opts.Console, opts.Format, hopts)
	if err != nil {
		return nil, nil, err
	}
	if opts.File == "" {
		return slog.New(console), func() error { return nil }, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", opts.File)
	}
	return slog.New(tee{console, slog.NewJSONHandler(f, hopts)}), f.Close, nil
}

func consoleHandler(w io.Writer, format Format, opts *slog.HandlerOptions) (slog.Handler, error) {
	if w == nil {
		w = os.Stderr
	}
	switch format {
	case FormatText, "":
		return NewHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, errors.Wrapf(ErrInvalidFormat, "%q", string(format))
	}
}

// testWriter adapts testing.T to io.Writer for use with slog handlers.
type testWriter struct {
	t *testing.T
}

// Write implements io.Writer by logging to the test.
func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	// Trim trailing newline since t.Log adds its own
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest creates a logger that writes to the test's log output.
// Log messages appear only when the test fails or when running with -v.
// Every level down to LevelTrace is captured.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(NewHandler(&testWriter{t: t}, &slog.HandlerOptions{Level: LevelTrace}))
}

// LevelTrace is below Debug and enabled by -vvv.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps the number of -v flags to a log level.
// Zero (or negative) logs warnings and above.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default if none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}
