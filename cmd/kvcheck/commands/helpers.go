package commands

import (
	"encoding/json"
	"io"

	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/load"
	"github.com/thoreinstein/kvcheck/internal/validator"
)

// errValidationFailed signals a non-zero exit after a report was written.
var errValidationFailed = errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)

// resolveSchema returns the schema path from the flag, falling back to the
// schema setting.
func resolveSchema(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if s := settings().Schema; s != "" {
		return s, nil
	}
	return "", errors.NewUserError(errors.ErrMissingSchema,
		"Pass --schema FILE or set one with: kvcheck init --schema FILE")
}

// checkStdin rejects reading both inputs from stdin.
func checkStdin(configPath, schemaPath string) error {
	if configPath == load.Stdin && schemaPath == load.Stdin {
		return errors.NewUserError(errors.New("config and schema cannot both be read from stdin"),
			"Pass at most one of the two files as \"-\"")
	}
	return nil
}

// reportLoadError reports a parse error for source and returns
// errValidationFailed. Any other error is an I/O failure.
func reportLoadError(r *validator.Reporter, source string, err error) error {
	if result := validator.FromParseError(source, err); result != nil {
		if rerr := r.Report(result); rerr != nil {
			return errors.NewSystemError(rerr, "")
		}
		return errValidationFailed
	}
	if errors.Is(err, errors.ErrNotFound) {
		return errors.NewSystemError(err, "Check the path and try again")
	}
	return errors.NewSystemError(err, "")
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON")
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
