package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/kvcheck/internal/config"
	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/logging"
)

var (
	initFormat string
	initSchema string
	initOutput string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVar(&initFormat, "format", config.FormatYAML, "Settings file format: yaml, toml")
	initCmd.Flags().StringVar(&initSchema, "schema", "", "Default schema file for validate and inspect")
	initCmd.Flags().StringVar(&initOutput, "output", config.OutputText, "Default report format: text, json")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kvcheck settings",
	Long: `Write a kvcheck settings file with default values.

Creates ~/.config/kvcheck/config.yaml (or config.toml with --format toml),
or the file named by --config. An existing file is left alone unless
--force is given.`,
	Example: `  # Write default settings
  kvcheck init

  # Remember a schema so validate needs no --schema flag
  kvcheck init --schema ~/schemas/app.schema

  # TOML settings, replacing any existing file
  kvcheck init --format toml --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if initFormat != config.FormatYAML && initFormat != config.FormatTOML {
		return errors.NewUserError(errors.Newf("invalid format %q", initFormat),
			"Use --format yaml or --format toml")
	}

	configPath := configFile
	if configPath == "" {
		configPath = config.DefaultPath(initFormat)
	}

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	cfg := config.Default()
	cfg.Schema = initSchema
	cfg.Output = initOutput

	if err := config.Save(configPath, cfg); err != nil {
		if errors.Is(err, config.ErrInvalidOutput) {
			return errors.NewUserError(err, "Use --output text or --output json")
		}
		return errors.NewSystemError(err, "Check that the settings directory is writable")
	}

	logging.FromContext(commandContext(cmd)).Info("wrote settings", "path", configPath)
	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}
