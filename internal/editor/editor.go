// Package editor launches the user's preferred text editor on kvcheck's
// settings file.
package editor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/logging"
)

// Open launches the user's preferred editor for the given path and waits for
// it to exit. $EDITOR and $VISUAL may carry arguments, e.g. "code --wait".
func Open(ctx context.Context, path string) error {
	argv := append(Command(), path)
	logging.FromContext(ctx).Debug("launching editor", "command", argv[0], "path", path)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// Command returns the editor command line to use.
// Fallback chain: $EDITOR → $VISUAL → nano → vi
func Command() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	// User-friendly fallback (nano is easier for beginners)
	if _, err := exec.LookPath("nano"); err == nil {
		return []string{"nano"}
	}

	// POSIX standard fallback (vi is available on all Unix systems)
	return []string{"vi"}
}
