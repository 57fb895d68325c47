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

var schemaJSON bool

func init() {
	schemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema <schema>",
	Short: "List the keys and types a schema declares",
	Long: `Parse a schema file and list every declared key with its type.

Keys are listed in the order they were first declared. When a key is
declared twice the later type wins.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

// schemaOutput is the JSON shape of the schema command.
type schemaOutput struct {
	Source string               `json:"source"`
	Keys   []kvconf.SchemaEntry `json:"keys"`
}

func runSchema(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	path := args[0]
	w := cmd.OutOrStdout()

	schema, err := load.NewWithStdin(cmd.InOrStdin()).Schema(ctx, path)
	if err != nil {
		return reportLoadError(validator.NewReporter(w, outputFormat(schemaJSON)), path, err)
	}

	if schemaJSON {
		return writeJSON(w, schemaOutput{Source: path, Keys: schema.Entries()})
	}

	if schema.Len() == 0 {
		fmt.Fprintln(w, "No keys declared.")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %s\t%s\t%s\n", bold("KEY"), bold("TYPE"), bold("LINE"))
	for _, e := range schema.Entries() {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", color.GreenString(e.Key), color.CyanString(e.Type.String()), e.Line)
	}
	tw.Flush()
	return nil
}
