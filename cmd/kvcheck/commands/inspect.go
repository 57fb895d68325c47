package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/load"
	"github.com/thoreinstein/kvcheck/internal/logging"
	"github.com/thoreinstein/kvcheck/internal/validator"
	"github.com/thoreinstein/kvcheck/pkg/kvconf"
)

var inspectSchema string

// findEntry picks one status interactively. Tests replace it.
var findEntry = func(statuses []kvconf.EntryStatus) (int, error) {
	return fuzzyfinder.Find(
		statuses,
		func(i int) string {
			return entryLabel(statuses[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeStatus(statuses[i])
		}),
	)
}

// interactive reports whether the finder can take over the terminal.
var interactive = func() bool {
	return logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stdout)
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectSchema, "schema", "s", "",
		"schema file (default: the schema setting)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <config>",
	Short: "Browse config entries and their validation status",
	Long: `Open an interactive fuzzy finder over the entries of a config file.

The preview shows each entry's value, the type the schema declares for it,
and whether it passes validation, including errors suppressed by a leading
"-" on the key. The selected entry is printed on exit.

Requires a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	configPath := args[0]
	w := cmd.OutOrStdout()

	if configPath == load.Stdin {
		return errors.NewUserError(errors.New("inspect cannot read the config from stdin"),
			"Pass the config as a file path")
	}
	if !interactive() {
		return errors.NewUserError(errors.New("inspect requires a terminal"),
			"Use: kvcheck validate --show-suppressed")
	}

	schemaPath, err := resolveSchema(inspectSchema)
	if err != nil {
		return err
	}

	reporter := validator.NewReporter(w, validator.FormatText)
	loader := load.New()

	schema, err := loader.Schema(ctx, schemaPath)
	if err != nil {
		return reportLoadError(reporter, schemaPath, err)
	}
	cfg, err := loader.Config(ctx, configPath)
	if err != nil {
		return reportLoadError(reporter, configPath, err)
	}

	statuses := kvconf.Check(cfg, schema)
	if len(statuses) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	idx, err := findEntry(statuses)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive inspect failed")
	}

	fmt.Fprint(w, describeStatus(statuses[idx]))
	return nil
}

// statusWord summarizes how validation treats an entry.
func statusWord(st kvconf.EntryStatus) string {
	switch {
	case st.Err == nil:
		return "ok"
	case st.Suppressed:
		return "suppressed"
	default:
		return "error"
	}
}

func entryLabel(st kvconf.EntryStatus) string {
	return fmt.Sprintf("%s = %s [%s]", st.Entry.Key, truncate(st.Entry.Value, 40), statusWord(st))
}

// describeStatus renders the preview for one entry.
func describeStatus(st kvconf.EntryStatus) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Key:      %s\n", st.Entry.Key)
	fmt.Fprintf(&sb, "Value:    %s\n", st.Entry.Value)
	fmt.Fprintf(&sb, "Line:     %d\n", st.Entry.Line)

	if st.Declared {
		fmt.Fprintf(&sb, "Type:     %s\n", st.Type)
	} else {
		sb.WriteString("Type:     (not in schema)\n")
	}
	if st.Entry.IgnoreError {
		sb.WriteString("Ignored:  yes\n")
	}

	fmt.Fprintf(&sb, "Status:   %s\n", statusWord(st))
	if st.Err != nil {
		fmt.Fprintf(&sb, "\n%s\n", st.Err)
	}
	return sb.String()
}

