package kvconf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []SchemaEntry
	}{
		{
			name:  "empty",
			input: "",
			want:  []SchemaEntry{},
		},
		{
			name:  "all types",
			input: "endpoint = string\nretry = integer\n# flags\ndebug = bool",
			want: []SchemaEntry{
				{Key: "endpoint", Type: String, Line: 1},
				{Key: "retry", Type: Integer, Line: 2},
				{Key: "debug", Type: Bool, Line: 4},
			},
		},
		{
			name:  "ignore marker has no effect",
			input: "-retry = integer",
			want: []SchemaEntry{
				{Key: "retry", Type: Integer, Line: 1},
			},
		},
		{
			name:  "later duplicate overwrites type and keeps position",
			input: "a = string\nb = bool\na = integer",
			want: []SchemaEntry{
				{Key: "a", Type: Integer, Line: 3},
				{Key: "b", Type: Bool, Line: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSchema(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Entries())
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestParseSchema_UnknownType(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLine  int
		wantKey   string
		wantToken string
	}{
		{"float", "ratio = float", 1, "ratio", "float"},
		{"case sensitive", "a = string\nflag = Bool", 2, "flag", "Bool"},
		{"alias", "n = int", 1, "n", "int"},
		{"empty type", "n =", 1, "n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSchema(tt.input)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, ErrUnknownType))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, UnknownType, perr.Kind)
			assert.Equal(t, tt.wantLine, perr.Line)
			assert.Equal(t, tt.wantKey, perr.Key)
			assert.Equal(t, tt.wantToken, perr.Token)
		})
	}
}

func TestParseSchema_MalformedLine(t *testing.T) {
	_, err := ParseSchema("a = string\nb integer")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, MalformedLine, perr.Kind)
	assert.Equal(t, 2, perr.Line)
}

func TestSchema_Accessors(t *testing.T) {
	s, err := ParseSchema("b = bool\na = string")
	require.NoError(t, err)

	typ, ok := s.Type("b")
	assert.True(t, ok)
	assert.Equal(t, Bool, typ)

	_, ok = s.Type("c")
	assert.False(t, ok)

	assert.True(t, s.Has("a"))
	assert.Equal(t, []string{"b", "a"}, s.Keys())

	var nilSchema *Schema
	assert.Zero(t, nilSchema.Len())
	assert.Nil(t, nilSchema.Keys())
	assert.False(t, nilSchema.Has("a"))
}

func TestTypeName(t *testing.T) {
	for _, tok := range TypeNames() {
		typ, ok := ParseTypeName(tok)
		require.True(t, ok, tok)
		assert.Equal(t, tok, typ.String())

		text, err := typ.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tok, string(text))
	}

	_, ok := ParseTypeName("STRING")
	assert.False(t, ok)
	assert.Equal(t, "unknown", TypeName(9).String())
}

func TestTypeName_Accepts(t *testing.T) {
	tests := []struct {
		typ   TypeName
		value string
		want  bool
	}{
		{String, "", true},
		{String, "anything = goes", true},
		{Bool, "true", true},
		{Bool, "false", true},
		{Bool, "TRUE", false},
		{Bool, "yes", false},
		{Bool, "1", false},
		{Bool, "", false},
		{Integer, "0", true},
		{Integer, "3", true},
		{Integer, "-42", true},
		{Integer, "9223372036854775807", true},
		{Integer, "-9223372036854775808", true},
		{Integer, "9223372036854775808", false},
		{Integer, "+3", false},
		{Integer, "3.0", false},
		{Integer, "1e3", false},
		{Integer, "0x10", false},
		{Integer, "1_000", false},
		{Integer, " 3", false},
		{Integer, "abc", false},
		{Integer, "-", false},
		{Integer, "", false},
		{TypeName(9), "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Accepts(tt.value))
		})
	}
}
