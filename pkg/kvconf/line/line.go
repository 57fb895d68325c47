// Package line classifies single lines of kvconf text.
//
// Both the config and the schema formats share the same line grammar:
//
//	# comment
//	; comment
//	key = value
//	-key = value   (ignore_error set)
//
// Blank lines are allowed anywhere. A line is split at its first '=' only,
// so values may themselves contain '='.
package line

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind identifies the class of a tokenized line.
type Kind int

const (
	// Blank is an empty or whitespace-only line.
	Blank Kind = iota
	// Comment is a line whose first non-whitespace character is '#' or ';'.
	Comment
	// Pair is a key/value line.
	Pair
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Pair:
		return "pair"
	default:
		return "unknown"
	}
}

// ignorePrefix marks a key whose validation errors are suppressed.
const ignorePrefix = "-"

// Sentinel errors for malformed lines.
var (
	// ErrNoSeparator indicates a non-comment, non-blank line without '='.
	ErrNoSeparator = errors.New("missing '=' separator")

	// ErrEmptyKey indicates a pair line whose key is empty after trimming.
	ErrEmptyKey = errors.New("empty key")
)

// Token is one classified line.
// Key, Value and IgnoreError are only meaningful when Kind is Pair.
type Token struct {
	Kind        Kind
	Key         string
	Value       string
	IgnoreError bool
}

// Tokenize classifies a single line of text.
// The line must not contain a newline.
func Tokenize(s string) (Token, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Token{Kind: Blank}, nil
	}

	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
		return Token{Kind: Comment}, nil
	}

	key, value, ok := strings.Cut(trimmed, "=")
	if !ok {
		return Token{}, ErrNoSeparator
	}

	key = strings.TrimSpace(key)
	ignore := false
	if rest, found := strings.CutPrefix(key, ignorePrefix); found {
		ignore = true
		key = strings.TrimSpace(rest)
	}
	if key == "" {
		return Token{}, ErrEmptyKey
	}

	return Token{
		Kind:        Pair,
		Key:         key,
		Value:       strings.TrimSpace(value),
		IgnoreError: ignore,
	}, nil
}

// Split breaks text into lines on '\n', dropping a trailing '\r' from each.
// A trailing newline does not produce an extra line.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
