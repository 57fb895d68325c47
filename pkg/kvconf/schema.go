package kvconf

import (
	"github.com/thoreinstein/kvcheck/pkg/kvconf/line"
)

// SchemaEntry is the declared type of one key.
type SchemaEntry struct {
	Key  string   `json:"key"`
	Type TypeName `json:"type"`
	Line int      `json:"line"`
}

// Schema maps keys to declared types. Keys iterate in order of first
// declaration; a repeated key keeps its position but takes the later type.
type Schema struct {
	order []string
	types map[string]SchemaEntry
}

// ParseSchema parses schema text. The ignore-error marker is accepted on
// schema keys but has no effect. Any value other than string, bool or
// integer aborts parsing with a *ParseError of kind UnknownType.
func ParseSchema(text string) (*Schema, error) {
	s := &Schema{types: make(map[string]SchemaEntry)}
	err := scan(text, func(n int, tok line.Token) error {
		t, ok := ParseTypeName(tok.Value)
		if !ok {
			return &ParseError{
				Kind:  UnknownType,
				Line:  n,
				Key:   tok.Key,
				Token: tok.Value,
			}
		}
		if _, exists := s.types[tok.Key]; !exists {
			s.order = append(s.order, tok.Key)
		}
		s.types[tok.Key] = SchemaEntry{Key: tok.Key, Type: t, Line: n}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Type returns the declared type for key.
func (s *Schema) Type(key string) (TypeName, bool) {
	if s == nil {
		return 0, false
	}
	e, ok := s.types[key]
	return e.Type, ok
}

// Has reports whether key is declared.
func (s *Schema) Has(key string) bool {
	_, ok := s.Type(key)
	return ok
}

// Len returns the number of declared keys.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Keys returns the declared keys in iteration order.
func (s *Schema) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Entries returns the declarations in iteration order.
func (s *Schema) Entries() []SchemaEntry {
	if s == nil {
		return nil
	}
	out := make([]SchemaEntry, len(s.order))
	for i, k := range s.order {
		out[i] = s.types[k]
	}
	return out
}
