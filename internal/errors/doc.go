// Package errors provides error handling conventions for the kvcheck CLI.
//
// This package re-exports the constructors and inspectors of
// github.com/cockroachdb/errors, defines sentinel errors for common failure
// conditions, an ExitError type for CLI exit code handling, and exit code
// constants following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found case
//	}
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): Parse or validation failure, bad flags
//   - ExitSystem (2): I/O failure (unreadable file, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion
// for CLI applications. [Code] extracts the exit code from any error:
//
//	err := errors.NewUserError(errors.ErrMissingSchema, "Pass --schema or set schema in config")
//	os.Exit(errors.Code(err))
package errors
