// Package logging provides structured logging for the kvcheck CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Setup
//
// [Setup] builds the logger the CLI installs before every command. The
// console gets text or JSON; with --log-file every record is also appended
// to that file as JSON:
//
//	logger, closeLog, err := logging.Setup(logging.Options{
//		Level:   logging.LevelFromVerbosity(v),
//		Format:  logging.FormatText,
//		Console: os.Stderr,
//		File:    "kvcheck.log",
//	})
//	defer closeLog()
//
// Colors are used only when the console is a terminal and neither NO_COLOR
// nor TERM=dumb is set.
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Verbosity
//
// [LevelFromVerbosity] maps the count of -v flags to a level, with
// [LevelTrace] below Debug for the noisiest output.
//
// # Context
//
// Commands carry their logger in the context. Use [NewContext] to attach
// one and [FromContext] to retrieve it; FromContext falls back to
// [slog.Default]:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("parsed config", "entries", n)
//
// # Redaction
//
// The text [Handler] masks values whose key looks secret (token, password,
// api_key, ...) or whose value starts with a known token prefix. The JSON
// destinations write values as given.
package logging
