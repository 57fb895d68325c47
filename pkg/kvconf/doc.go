// Package kvconf parses flat key/value configuration files and checks them
// against a schema of declared scalar types.
//
// A config file is a list of "key = value" lines:
//
//	# service settings
//	endpoint = localhost:3000
//	retry = 3
//	-debug = maybe
//
// A schema file uses the same syntax, with the value naming one of the
// types string, bool or integer:
//
//	endpoint = string
//	retry = integer
//	debug = bool
//
// A leading '-' on a config key sets IgnoreError for that entry, which
// suppresses unknown-key and type-mismatch errors for it. It never hides
// a missing key.
//
// # Basic Usage
//
//	cfg, err := kvconf.ParseConfig(configText)
//	if err != nil {
//		return err
//	}
//	schema, err := kvconf.ParseSchema(schemaText)
//	if err != nil {
//		return err
//	}
//	if errs := kvconf.Validate(cfg, schema); errs != nil {
//		for _, e := range errs {
//			fmt.Println(e)
//		}
//	}
//
// # Error Handling
//
// Parsing stops at the first bad line and returns a [*ParseError], which
// wraps [ErrMalformedLine] or [ErrUnknownType]. Validation never stops
// early: [Validate] returns every [*ValidationError] it finds, each
// wrapping one of [ErrTypeMismatch], [ErrUnknownKey] or [ErrMissingKey].
//
// # Concurrency
//
// [Config] and [Schema] are immutable after parsing and safe for
// concurrent use.
package kvconf
