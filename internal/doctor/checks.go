package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/load"
)

// otherWritePerm covers the group and world write bits.
const otherWritePerm os.FileMode = 0o022

// SettingsCheck reports whether kvcheck's settings loaded.
type SettingsCheck struct {
	// Path is the settings file that was read, "" when defaults were used.
	Path string
	// Err is the error returned while loading settings.
	Err error
}

var _ Check = (*SettingsCheck)(nil)

// Name returns the unique identifier for this check.
func (c *SettingsCheck) Name() string { return "settings-load" }

// Category returns the grouping for this check.
func (c *SettingsCheck) Category() string { return "settings" }

// Run executes the check.
func (c *SettingsCheck) Run(_ context.Context) *CheckResult {
	switch {
	case c.Err != nil:
		return &CheckResult{
			Status:  SeverityError,
			Message: c.Err.Error(),
			FixHint: "Run: kvcheck init --force",
		}
	case c.Path == "":
		return &CheckResult{
			Status:  SeverityInfo,
			Message: "no settings file found, using defaults",
			FixHint: "Run: kvcheck init",
		}
	default:
		return &CheckResult{
			Status:  SeverityPass,
			Message: "loaded " + c.Path,
			Details: map[string]any{"path": c.Path},
		}
	}
}

// PermissionCheck warns when the settings file is writable by group or others.
type PermissionCheck struct {
	Path string
}

var _ Check = (*PermissionCheck)(nil)

// Name returns the unique identifier for this check.
func (c *PermissionCheck) Name() string { return "settings-permissions" }

// Category returns the grouping for this check.
func (c *PermissionCheck) Category() string { return "settings" }

// Run executes the check.
func (c *PermissionCheck) Run(_ context.Context) *CheckResult {
	if c.Path == "" {
		return &CheckResult{Status: SeverityPass, Message: "no settings file to check"}
	}

	info, err := os.Stat(c.Path)
	if err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: fmt.Sprintf("cannot stat %s: %v", c.Path, err),
		}
	}

	mode := info.Mode().Perm()
	details := map[string]any{"path": c.Path, "permissions": formatOctal(mode)}
	if mode&otherWritePerm != 0 {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: fmt.Sprintf("%s is writable by other users (%s)", c.Path, formatOctal(mode)),
			Details: details,
			FixHint: "chmod 600 " + c.Path,
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: fmt.Sprintf("permissions %s", formatOctal(mode)),
		Details: details,
	}
}

func formatOctal(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}

// SchemaCheck verifies that the default schema reads and parses.
type SchemaCheck struct {
	Path   string
	Loader *load.Loader
}

var _ Check = (*SchemaCheck)(nil)

// Name returns the unique identifier for this check.
func (c *SchemaCheck) Name() string { return "default-schema" }

// Category returns the grouping for this check.
func (c *SchemaCheck) Category() string { return "schema" }

// Run executes the check.
func (c *SchemaCheck) Run(ctx context.Context) *CheckResult {
	if c.Path == "" {
		return &CheckResult{
			Status:  SeverityInfo,
			Message: "no default schema set; validate needs --schema",
			FixHint: "Run: kvcheck config set schema FILE",
		}
	}

	loader := c.Loader
	if loader == nil {
		loader = load.New()
	}

	schema, err := loader.Schema(ctx, c.Path)
	if err != nil {
		hint := "Fix the schema file or point the schema setting elsewhere"
		if errors.Is(err, errors.ErrNotFound) {
			hint = "Run: kvcheck config set schema FILE"
		}
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			Details: map[string]any{"path": c.Path},
			FixHint: hint,
		}
	}

	return &CheckResult{
		Status:  SeverityPass,
		Message: fmt.Sprintf("%s declares %d keys", c.Path, schema.Len()),
		Details: map[string]any{"path": c.Path, "keys": schema.Len()},
	}
}
