package kvconf

import (
	"strconv"
	"strings"
)

// TypeName is one of the scalar types a schema can declare.
type TypeName int

const (
	// String accepts any value.
	String TypeName = iota
	// Bool accepts exactly "true" or "false".
	Bool
	// Integer accepts a base-10 signed 64-bit integer.
	Integer
)

// typeNames maps schema tokens to types. Matching is case-sensitive.
var typeNames = map[string]TypeName{
	"string":  String,
	"bool":    Bool,
	"integer": Integer,
}

// ParseTypeName returns the type for a schema token.
func ParseTypeName(token string) (TypeName, bool) {
	t, ok := typeNames[token]
	return t, ok
}

// TypeNames returns the accepted schema tokens.
func TypeNames() []string {
	return []string{"string", "bool", "integer"}
}

func (t TypeName) String() string {
	switch t {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	default:
		return "unknown"
	}
}

// MarshalText renders the type as its schema token.
func (t TypeName) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Accepts reports whether value parses as type t.
func (t TypeName) Accepts(value string) bool {
	_, ok := t.convert(value)
	return ok
}

// convert parses value as type t.
func (t TypeName) convert(value string) (any, bool) {
	switch t {
	case String:
		return value, true
	case Bool:
		switch value {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	case Integer:
		// ParseInt allows a leading '+'; the format does not.
		if strings.HasPrefix(value, "+") {
			return nil, false
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	default:
		return nil, false
	}
}
