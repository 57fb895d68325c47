// Package validator renders kvconf validation outcomes for kvcheck's output.
//
// A [Result] collects [Issue] values, each with a [Severity]. Results are
// usually built from the library's own errors:
//
//	errs := kvconf.Validate(cfg, schema)
//	result := validator.FromValidation("app.conf", errs)
//	result.AddSuppressed(kvconf.Check(cfg, schema))
//
// A [Reporter] writes a Result as colored text or as indented JSON:
//
//	validator.NewReporter(os.Stdout, validator.FormatText).Report(result)
//
// Suppressed errors (entries whose key starts with "-") are carried as
// [SeverityInfo] issues and never make a result fail.
package validator
