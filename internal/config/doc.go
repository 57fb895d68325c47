// Package config provides settings management for the kvcheck CLI.
//
// These are kvcheck's own settings, not the key-value files it validates.
//
// # Settings File
//
// The file is named config.yaml or config.toml and is searched for in the
// current directory and then in ~/.config/kvcheck/ (or $KVCHECK_CONFIG_DIR):
//
//	version: 1
//	schema: ~/schemas/app.schema # used when --schema is not given
//	output: text                 # text or json
//
// Every key can be overridden from the environment with a KVCHECK_ prefix,
// for example KVCHECK_SCHEMA or KVCHECK_OUTPUT.
//
// # Loading
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return errors.Wrap(err, "loading config")
//	}
//
// Loaded settings are validated automatically; [Validate] can also be called
// directly and returns every problem found.
//
// # Saving
//
// [Save] picks YAML or TOML from the file extension and writes atomically.
package config
