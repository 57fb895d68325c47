package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/kvcheck/internal/load"
	"github.com/thoreinstein/kvcheck/internal/validator"
	"github.com/thoreinstein/kvcheck/pkg/kvconf"
)

var parseJSON bool

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <config>",
	Short: "List the entries of a config file",
	Long: `Parse a config file and list its entries in source order.

Comments and blank lines are skipped. Duplicate keys are listed once per
line. Entries whose key starts with "-" are marked as ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// parseOutput is the JSON shape of the parse command.
type parseOutput struct {
	Source  string               `json:"source"`
	Entries []kvconf.ConfigEntry `json:"entries"`
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	path := args[0]
	w := cmd.OutOrStdout()

	cfg, err := load.NewWithStdin(cmd.InOrStdin()).Config(ctx, path)
	if err != nil {
		return reportLoadError(validator.NewReporter(w, outputFormat(parseJSON)), path, err)
	}

	if parseJSON {
		return writeJSON(w, parseOutput{Source: path, Entries: cfg.Entries()})
	}

	if cfg.Len() == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", bold("LINE"), bold("KEY"), bold("VALUE"), bold("FLAGS"))
	for _, e := range cfg.Entries() {
		flags := ""
		if e.IgnoreError {
			flags = "ignored"
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", e.Line, color.GreenString(e.Key), truncate(e.Value, 60), flags)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d entries, %d distinct keys\n", cfg.Len(), len(cfg.Keys()))
	return nil
}
