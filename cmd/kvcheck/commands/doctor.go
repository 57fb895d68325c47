package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/kvcheck/internal/config"
	"github.com/thoreinstein/kvcheck/internal/doctor"
	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/load"
)

var (
	doctorJSON bool
	doctorAll  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose settings issues",
	Long: `Run diagnostic checks on kvcheck's settings and default schema.

Checks that the settings file loads, that it is not writable by other
users, and that the default schema (if set) reads and parses.

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	used := config.FileUsed()

	runner := doctor.NewRunner(
		&doctor.SettingsCheck{Path: used, Err: configLoadErr},
		&doctor.PermissionCheck{Path: used},
		&doctor.SchemaCheck{Path: settings().Schema, Loader: load.NewWithStdin(cmd.InOrStdin())},
	)
	report := runner.Run(ctx)

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	// Determine exit code based on results
	if report.HasErrors() {
		return errDoctorErrors
	}
	if report.HasWarnings() {
		return errDoctorWarnings
	}
	return nil
}

func outputDoctorReport(w io.Writer, report *doctor.Report) error {
	if doctorJSON {
		return writeJSON(w, report)
	}
	if quiet {
		return nil
	}

	hasOutput := false
	for _, result := range report.Results {
		if !doctorAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && result.Status != doctor.SeverityPass {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

// errDoctorWarnings signals exit code 1 after the report was written.
var errDoctorWarnings = errors.NewExitError(errors.Wrap(errors.ErrValidationFailed, "doctor found warnings"), errors.ExitUser)

// errDoctorErrors signals exit code 2 after the report was written.
var errDoctorErrors = errors.NewExitError(errors.Wrap(errors.ErrValidationFailed, "doctor found errors"), errors.ExitSystem)
