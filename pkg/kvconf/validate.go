package kvconf

// Validate checks every config entry against the schema and reports every
// schema key the config never sets. It returns nil if there are no errors.
//
// Errors for config entries come first, in source order. MissingKey errors
// follow in schema order. An entry with IgnoreError set never produces an
// error itself, but it still counts as setting its key.
func Validate(cfg *Config, schema *Schema) ValidationErrors {
	var errs ValidationErrors
	present := make(map[string]bool, cfg.Len())

	for _, e := range cfg.Entries() {
		present[e.Key] = true
		if err := checkEntry(e, schema); err != nil && !e.IgnoreError {
			errs = append(errs, err)
		}
	}

	for _, key := range schema.Keys() {
		if !present[key] {
			errs = append(errs, &ValidationError{
				Kind: MissingKey,
				Key:  key,
			})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// checkEntry returns the error a single entry would produce, ignoring its
// IgnoreError flag.
func checkEntry(e ConfigEntry, schema *Schema) *ValidationError {
	t, ok := schema.Type(e.Key)
	if !ok {
		return &ValidationError{
			Kind: UnknownKey,
			Key:  e.Key,
			Line: e.Line,
		}
	}
	if !t.Accepts(e.Value) {
		return &ValidationError{
			Kind:     TypeMismatch,
			Key:      e.Key,
			Expected: t,
			Value:    e.Value,
			Line:     e.Line,
		}
	}
	return nil
}

// EntryStatus describes how validation treats a single entry.
type EntryStatus struct {
	Entry ConfigEntry
	// Declared is false when the schema has no such key.
	Declared bool
	Type     TypeName
	// Err is the error the entry produces, even if suppressed.
	Err *ValidationError
	// Suppressed is true when Err is set but IgnoreError hides it.
	Suppressed bool
}

// Check reports the validation status of each config entry in source order.
// Unlike Validate it also returns the errors that IgnoreError suppresses.
func Check(cfg *Config, schema *Schema) []EntryStatus {
	entries := cfg.Entries()
	out := make([]EntryStatus, len(entries))
	for i, e := range entries {
		t, declared := schema.Type(e.Key)
		err := checkEntry(e, schema)
		out[i] = EntryStatus{
			Entry:      e,
			Declared:   declared,
			Type:       t,
			Err:        err,
			Suppressed: err != nil && e.IgnoreError,
		}
	}
	return out
}
