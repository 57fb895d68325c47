package kvconf

import (
	"github.com/thoreinstein/kvcheck/pkg/kvconf/line"
)

// ConfigEntry is one key/value line of a config file.
type ConfigEntry struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	IgnoreError bool   `json:"ignore_error"`
	Line        int    `json:"line"`
}

// Config is the ordered list of entries parsed from config text.
// Duplicate keys are kept as separate entries.
type Config struct {
	entries []ConfigEntry
}

// ParseConfig parses config text. Comments and blank lines are skipped.
// The first malformed line aborts parsing with a *ParseError.
func ParseConfig(text string) (*Config, error) {
	var entries []ConfigEntry
	err := scan(text, func(n int, tok line.Token) error {
		entries = append(entries, ConfigEntry{
			Key:         tok.Key,
			Value:       tok.Value,
			IgnoreError: tok.IgnoreError,
			Line:        n,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Config{entries: entries}, nil
}

// Entries returns a copy of the entries in source order.
func (c *Config) Entries() []ConfigEntry {
	if c == nil {
		return nil
	}
	out := make([]ConfigEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Lookup returns the last entry for key. A later line shadows an earlier
// one when reading values; validation still checks every entry.
func (c *Config) Lookup(key string) (ConfigEntry, bool) {
	if c == nil {
		return ConfigEntry{}, false
	}
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Key == key {
			return c.entries[i], true
		}
	}
	return ConfigEntry{}, false
}

// Has reports whether any entry sets key, regardless of IgnoreError.
func (c *Config) Has(key string) bool {
	_, ok := c.Lookup(key)
	return ok
}

// Keys returns the distinct keys in order of first appearance.
func (c *Config) Keys() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool, len(c.entries))
	var keys []string
	for _, e := range c.entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// scan tokenizes text line by line and calls fn for each pair.
func scan(text string, fn func(n int, tok line.Token) error) error {
	for i, raw := range line.Split(text) {
		n := i + 1
		tok, err := line.Tokenize(raw)
		if err != nil {
			return &ParseError{
				Kind:    MalformedLine,
				Line:    n,
				Content: raw,
				Err:     err,
			}
		}
		if tok.Kind != line.Pair {
			continue
		}
		if err := fn(n, tok); err != nil {
			return err
		}
	}
	return nil
}
