package kvconf

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors wrapped by ParseError.
var (
	// ErrMalformedLine indicates a line that is not a comment, blank or key/value pair.
	ErrMalformedLine = errors.New("malformed line")

	// ErrUnknownType indicates a schema value that is not a known type name.
	ErrUnknownType = errors.New("unknown type")
)

// Sentinel errors wrapped by ValidationError.
var (
	// ErrTypeMismatch indicates a config value that does not parse as its declared type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownKey indicates a config key that the schema does not declare.
	ErrUnknownKey = errors.New("unknown key")

	// ErrMissingKey indicates a schema key that the config does not set.
	ErrMissingKey = errors.New("missing key")
)

// ParseErrorKind distinguishes the two ways parsing can fail.
type ParseErrorKind int

const (
	// MalformedLine is reported when a line has no '=' or an empty key.
	MalformedLine ParseErrorKind = iota
	// UnknownType is reported when a schema line names an unsupported type.
	UnknownType
)

func (k ParseErrorKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed line"
	case UnknownType:
		return "unknown type"
	default:
		return "unknown"
	}
}

// ParseError represents a fatal error while parsing config or schema text.
type ParseError struct {
	Kind    ParseErrorKind
	Line    int    // 1-based line number
	Content string // Raw line text (MalformedLine)
	Key     string // Declared key (UnknownType)
	Token   string // Rejected type name (UnknownType)
	Err     error  // Underlying tokenizer error, if any; not rendered
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownType:
		return fmt.Sprintf("line %d: unknown type %q for key %q", e.Line, e.Token, e.Key)
	default:
		return fmt.Sprintf("line %d: malformed line: %q", e.Line, e.Content)
	}
}

// Unwrap returns the sentinel for the error kind along with the
// underlying tokenizer error, so errors.Is matches either.
func (e *ParseError) Unwrap() []error {
	sentinel := ErrMalformedLine
	if e.Kind == UnknownType {
		sentinel = ErrUnknownType
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// ErrorKind distinguishes the three validation failures.
type ErrorKind int

const (
	// TypeMismatch is a config value that does not parse as the declared type.
	TypeMismatch ErrorKind = iota
	// UnknownKey is a config key with no schema declaration.
	UnknownKey
	// MissingKey is a schema key with no config entry.
	MissingKey
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case UnknownKey:
		return "unknown key"
	case MissingKey:
		return "missing key"
	default:
		return "unknown"
	}
}

// ValidationError is a single discrepancy between a config and its schema.
type ValidationError struct {
	Kind     ErrorKind
	Key      string
	Expected TypeName // TypeMismatch only
	Value    string   // Actual value, TypeMismatch only
	Line     int      // Config line of the entry; 0 for MissingKey
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case TypeMismatch:
		return fmt.Sprintf("'%s': expected %s, got '%s'", e.Key, e.Expected, e.Value)
	case UnknownKey:
		return fmt.Sprintf("'%s': unknown key (not in schema)", e.Key)
	case MissingKey:
		return fmt.Sprintf("'%s': missing (required by schema)", e.Key)
	default:
		return fmt.Sprintf("'%s': %s", e.Key, e.Kind)
	}
}

// Unwrap returns the sentinel error for the kind.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case TypeMismatch:
		return ErrTypeMismatch
	case UnknownKey:
		return ErrUnknownKey
	case MissingKey:
		return ErrMissingKey
	default:
		return nil
	}
}

// ValidationErrors is the complete list of problems found by Validate,
// in report order.
type ValidationErrors []*ValidationError

// Error renders one error per line.
func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns v as an error, or nil if v is empty.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Unwrap exposes each error so errors.Is and errors.As can search the list.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

// Count returns the number of errors of the given kind.
func (v ValidationErrors) Count(kind ErrorKind) int {
	n := 0
	for _, e := range v {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
