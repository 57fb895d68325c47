package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/kvcheck/internal/config"
	"github.com/thoreinstein/kvcheck/internal/editor"
	"github.com/thoreinstein/kvcheck/internal/errors"
)

var configListJSON bool

func init() {
	configListCmd.Flags().BoolVar(&configListJSON, "json", false, "Output in JSON format")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kvcheck settings",
	Long: `Manage kvcheck settings stored in ~/.config/kvcheck/config.yaml.

Without a subcommand, lists the effective settings.`,
	Example: `  # List all settings
  kvcheck config

  # Use a default schema
  kvcheck config set schema ~/schemas/app.schema

  # Report as JSON by default
  kvcheck config set output json

See Also: kvcheck init`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a setting",
	Long:      `Print the effective value of one setting: version, schema, or output.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE:      runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long: `Set one setting and write the settings file.

The file named by --config is written if given, otherwise the file
currently in use, otherwise ~/.config/kvcheck/config.yaml.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Long:  `List the effective settings in YAML format.`,
	RunE:  runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Long:  `Print the settings file kvcheck reads, or the path init would write.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), settingsPath())
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open settings in $EDITOR",
	Long: `Open the settings file in your default editor.

Uses $EDITOR, then $VISUAL, then nano or vi.
If no settings file exists, run 'kvcheck init' first.`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

// settingsPath returns the settings file to read or write.
func settingsPath() string {
	if configFile != "" {
		return configFile
	}
	if used := config.FileUsed(); used != "" {
		return used
	}
	return config.DefaultPath(config.FormatYAML)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	val, err := settings().Get(args[0])
	if err != nil {
		return errors.NewUserError(err, "Valid keys: version, schema, output")
	}
	if val == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg := *settings()
	if err := cfg.Set(key, value); err != nil {
		return errors.NewUserError(err, "Valid keys: version, schema, output")
	}

	path := settingsPath()
	if err := config.Save(path, &cfg); err != nil {
		if errs := config.Validate(&cfg); len(errs) > 0 {
			return errors.NewUserError(err, "")
		}
		return errors.NewSystemError(err, "Check that the settings directory is writable")
	}
	appConfig = &cfg

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	cfg := settings()
	if configListJSON {
		return writeJSON(cmd.OutOrStdout(), cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := settingsPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "%s", path),
			"Run 'kvcheck init' to create it")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", path)
	return editor.Open(commandContext(cmd), path)
}
