package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/load"
	"github.com/thoreinstein/kvcheck/internal/logging"
	"github.com/thoreinstein/kvcheck/internal/validator"
	"github.com/thoreinstein/kvcheck/pkg/kvconf"
)

var (
	validateSchema         string
	validateJSON           bool
	validateShowSuppressed bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "",
		"schema file (default: the schema setting)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	validateCmd.Flags().BoolVar(&validateShowSuppressed, "show-suppressed", false,
		"also list errors hidden by a leading \"-\" on the key")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Validate a config file against a schema",
	Long: `Validate a config file against a schema and report every problem.

Each config entry is checked in order: its key must be declared by the
schema and its value must parse as the declared type. Every schema key the
config never sets is reported as missing. Entries whose key starts with "-"
never produce errors themselves.

Use "-" as the path to read the config from stdin.

Exit codes:
  0 - Config is valid
  1 - Validation or parse failure
  2 - A file could not be read`,
	Example: `  kvcheck validate app.conf --schema app.schema
  cat app.conf | kvcheck validate - --schema app.schema --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)
	configPath := args[0]

	schemaPath, err := resolveSchema(validateSchema)
	if err != nil {
		return err
	}
	if err := checkStdin(configPath, schemaPath); err != nil {
		return err
	}

	reporter := validator.NewReporter(cmd.OutOrStdout(), outputFormat(validateJSON))
	loader := load.NewWithStdin(cmd.InOrStdin())

	schema, err := loader.Schema(ctx, schemaPath)
	if err != nil {
		return reportLoadError(reporter, schemaPath, err)
	}
	cfg, err := loader.Config(ctx, configPath)
	if err != nil {
		return reportLoadError(reporter, configPath, err)
	}

	errs := kvconf.Validate(cfg, schema)
	result := validator.FromValidation(configPath, errs)
	result.AddDuplicates(cfg)
	if validateShowSuppressed {
		result.AddSuppressed(kvconf.Check(cfg, schema))
	}

	logger.Info("validated config",
		"config", configPath,
		"schema", schemaPath,
		"entries", cfg.Len(),
		"errors", len(errs),
		"warnings", len(result.Warnings()))

	if !quiet || result.HasErrors() || result.HasWarnings() {
		if err := reporter.Report(result); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	if result.HasErrors() {
		return errValidationFailed
	}
	return nil
}
