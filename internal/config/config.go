// Package config provides settings management for kvcheck using Viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/kvcheck/internal/errors"
	"github.com/thoreinstein/kvcheck/internal/paths"
	"github.com/thoreinstein/kvcheck/pkg/fileutil"
)

// EnvPrefix is the prefix for environment variable overrides (KVCHECK_SCHEMA, ...).
const EnvPrefix = "KVCHECK"

// EnvConfigDir overrides the directory searched for the settings file.
const EnvConfigDir = EnvPrefix + "_CONFIG_DIR"

// Output formats accepted by the output setting.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Settings file formats supported by Save.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config represents kvcheck's own settings.
type Config struct {
	Version int `mapstructure:"version" yaml:"version" toml:"version" json:"version"`

	// Schema is the schema file used when a command is given no --schema flag.
	Schema string `mapstructure:"schema" yaml:"schema" toml:"schema" json:"schema"`

	// Output is the default report format: "text" or "json".
	Output string `mapstructure:"output" yaml:"output" toml:"output" json:"output"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Version: 1,
		Output:  OutputText,
	}
}

// Dir returns the directory searched for the settings file, honoring
// KVCHECK_CONFIG_DIR.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return paths.AppConfigDir()
}

// DefaultPath returns the settings file path for the given format.
func DefaultPath(format string) string {
	return filepath.Join(Dir(), "config."+format)
}

// Init resets Viper and registers search paths, env overrides and defaults.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	// No fixed type: config.yaml and config.toml are both discovered.
	viper.SetConfigName("config")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("schema", def.Schema)
	viper.SetDefault("output", def.Output)
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
			}
			return nil, errors.Wrap(err, "checking config file")
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	expanded, err := paths.ExpandHome(cfg.Schema)
	if err != nil {
		return nil, errors.Wrap(err, "expanding schema path")
	}
	if expanded != "" && !filepath.IsAbs(expanded) {
		if base := schemaBaseDir(); base != "" {
			expanded = filepath.Join(base, expanded)
		}
	}
	cfg.Schema = expanded

	return &cfg, nil
}

// schemaBaseDir returns the directory a relative schema setting is resolved
// against: the settings file's directory when the value came from that file,
// "" (the working directory) otherwise.
func schemaBaseDir() string {
	used := viper.ConfigFileUsed()
	if used == "" || !viper.InConfig("schema") {
		return ""
	}
	if _, ok := os.LookupEnv(EnvPrefix + "_SCHEMA"); ok {
		return ""
	}
	return filepath.Dir(used)
}

// FileUsed returns the settings file Viper read, or "" when defaults were used.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Save writes cfg to path. The format follows the file extension:
// .toml writes TOML, anything else writes YAML.
// Parent directories are created as needed.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Wrap(errs[0], "validating config")
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	switch FormatOf(path) {
	case FormatTOML:
		return fileutil.AtomicWriteTOML(path, cfg)
	default:
		return fileutil.AtomicWriteYAML(path, cfg)
	}
}

// FormatOf returns the settings format implied by the extension of path.
func FormatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}
