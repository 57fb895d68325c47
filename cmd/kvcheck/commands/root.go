// Package commands implements the CLI commands for kvcheck.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/kvcheck/cmd"
	"github.com/thoreinstein/kvcheck/internal/config"
	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/logging"
	"github.com/thoreinstein/kvcheck/internal/validator"
)

// debugEnv raises verbosity when no -v flag is given: "1"/"true" for debug,
// "2" for trace.
const debugEnv = "KVCHECK_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// closeLog releases the --log-file handle opened by setupLogging.
var closeLog = func() error { return nil }

// configFile holds the value of the --config flag.
var configFile string

// appConfig holds the loaded settings; nil until initConfig runs.
var appConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"settings file (default: ./config.yaml or ~/.config/kvcheck/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("kvcheck version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	appConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "kvcheck",
	Short: "Validate key-value config files against a typed schema",
	Long: `kvcheck checks flat "key = value" configuration files against a schema
that declares the type of every key: string, bool, or integer.

Every problem is reported at once: values that do not match their declared
type, keys the schema does not know, and schema keys the config never sets.
Prefix a config key with "-" to suppress errors for that entry.`,
	Example: `  # Validate a config file
  kvcheck validate app.conf --schema app.schema

  # Machine-readable report
  kvcheck validate app.conf --schema app.schema --json

  # Save a default schema path in the settings file
  kvcheck init --schema ~/schemas/app.schema

  See Also: kvcheck parse, kvcheck schema, kvcheck inspect`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	logger, closeFn, err := logging.Setup(logging.Options{
		Level:   level,
		Format:  logging.Format(logFormat),
		Console: cmd.ErrOrStderr(),
		File:    logFile,
	})
	switch {
	case errors.Is(err, logging.ErrInvalidFormat):
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	case err != nil:
		return errors.NewUserError(err, "Check that the --log-file directory exists and is writable")
	}
	_ = closeLog()
	closeLog = closeFn
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces settings load errors. init is exempt so a broken
// settings file can be replaced.
func checkConfig(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "help", "version", "init":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if path := config.FileUsed(); path != "" {
		logging.FromContext(cmd.Context()).Debug("loaded settings", "path", path)
	}
	return nil
}

// settings returns the loaded settings, or defaults if none were loaded.
func settings() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// outputFormat picks the report format: --json wins over the output setting.
func outputFormat(jsonFlag bool) validator.Format {
	if jsonFlag {
		return validator.FormatJSON
	}
	f, err := validator.ParseFormat(settings().Output)
	if err != nil {
		return validator.FormatText
	}
	return f
}

// commandContext returns the command's context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// PrintError writes err and any suggestion to w. Validation failures are
// skipped because their report has already been written.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errors.ErrValidationFailed) {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Hint:"), exitErr.Suggestion)
	}
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeLog(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "closing log file")
	}
	return err
}
