// Package validator turns kvconf validation outcomes into reports.
package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/kvcheck/pkg/kvconf"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a non-blocking issue, such as a duplicate key.
	SeverityWarning
	// SeverityInfo indicates an informational note, such as a suppressed error.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue represents a single validation problem.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity `json:"severity"`
	// Kind names the failure, e.g. "type mismatch" (optional).
	Kind string `json:"kind,omitempty"`
	// Field is the config key with the issue (optional).
	Field string `json:"key,omitempty"`
	// Line is the 1-based source line, 0 when not tied to a line.
	Line int `json:"line,omitempty"`
	// Message is a human-readable description of the problem.
	Message string `json:"message"`
	// Value is the actual value that failed validation (optional).
	Value any `json:"value,omitempty"`
	// Context is additional detail such as the expected type.
	Context map[string]string `json:"context,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", i.Line)
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates validation issues for one config file.
type Result struct {
	// Source is the config file the issues refer to.
	Source string  `json:"source,omitempty"`
	Issues []Issue `json:"issues"`
}

// FromValidation builds a Result from the errors returned by kvconf.Validate,
// preserving their order.
func FromValidation(source string, errs kvconf.ValidationErrors) *Result {
	r := &Result{Source: source, Issues: []Issue{}}
	for _, e := range errs {
		r.Issues = append(r.Issues, issueFor(e, SeverityError))
	}
	return r
}

// FromParseError builds a Result holding a single parse failure.
// It returns nil if err is not a *kvconf.ParseError.
func FromParseError(source string, err error) *Result {
	var pe *kvconf.ParseError
	if !errors.As(err, &pe) {
		return nil
	}
	issue := Issue{
		Severity: SeverityError,
		Kind:     pe.Kind.String(),
		Field:    pe.Key,
		Line:     pe.Line,
		Message:  strings.TrimPrefix(pe.Error(), fmt.Sprintf("line %d: ", pe.Line)),
	}
	if pe.Kind == kvconf.UnknownType {
		issue.Value = pe.Token
	} else if pe.Content != "" {
		issue.Value = pe.Content
	}
	return &Result{Source: source, Issues: []Issue{issue}}
}

// AddSuppressed records entries whose errors the ignore flag hides as info
// issues. Entries without a suppressed error are skipped.
func (r *Result) AddSuppressed(statuses []kvconf.EntryStatus) {
	for _, st := range statuses {
		if !st.Suppressed {
			continue
		}
		issue := issueFor(st.Err, SeverityInfo)
		issue.Message += " (suppressed)"
		r.Issues = append(r.Issues, issue)
	}
}

func issueFor(e *kvconf.ValidationError, sev Severity) Issue {
	issue := Issue{
		Severity: sev,
		Kind:     e.Kind.String(),
		Field:    e.Key,
		Line:     e.Line,
		Message:  e.Error(),
	}
	if e.Kind == kvconf.TypeMismatch {
		issue.Value = e.Value
		issue.Context = map[string]string{"expected": e.Expected.String()}
	}
	return issue
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// AddDuplicates records a warning for every config entry whose key already
// appeared on an earlier line. The last entry is the one Lookup returns.
func (r *Result) AddDuplicates(cfg *kvconf.Config) {
	first := make(map[string]int)
	for _, e := range cfg.Entries() {
		line, seen := first[e.Key]
		if !seen {
			first[e.Key] = e.Line
			continue
		}
		r.Issues = append(r.Issues, Issue{
			Severity: SeverityWarning,
			Kind:     "duplicate key",
			Field:    e.Key,
			Line:     e.Line,
			Message:  fmt.Sprintf("'%s': duplicate key (first set on line %d)", e.Key, line),
			Value:    e.Value,
			Context:  map[string]string{"first_line": strconv.Itoa(line)},
		})
	}
}

// Errors returns a slice of all issues with SeverityError.
func (r *Result) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns a slice of all issues with SeverityWarning.
func (r *Result) Warnings() []Issue { return r.filter(SeverityWarning) }

// Infos returns a slice of all issues with SeverityInfo.
func (r *Result) Infos() []Issue { return r.filter(SeverityInfo) }

func (r *Result) filter(sev Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			res = append(res, i)
		}
	}
	return res
}
