package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestReporter_Report(t *testing.T) {
	result := &Result{Source: "app.conf"}
	result.Issues = append(result.Issues,
		Issue{
			Severity: SeverityError,
			Kind:     "type mismatch",
			Field:    "port",
			Line:     2,
			Message:  "'port': expected integer, got 'abc'",
			Value:    "abc",
			Context:  map[string]string{"expected": "integer"},
		},
		Issue{
			Severity: SeverityInfo,
			Field:    "debug",
			Line:     4,
			Message:  "'debug': expected bool, got 'maybe' (suppressed)",
		},
	)

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatText)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"app.conf: Validation failed: 1 error(s)",
			"line 2: 'port': expected integer, got 'abc'",
			"(expected=integer)",
			"Suppressed:",
			"line 4: 'debug'",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatJSON)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		var decoded struct {
			Issues []struct {
				Severity string `json:"severity"`
				Field    string `json:"key"`
				Line     int    `json:"line"`
			} `json:"issues"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode JSON output: %v", err)
		}

		if len(decoded.Issues) != 2 {
			t.Fatalf("decoded issues count = %d, want 2", len(decoded.Issues))
		}
		if decoded.Issues[0].Field != "port" || decoded.Issues[0].Line != 2 {
			t.Errorf("first issue = %+v", decoded.Issues[0])
		}
		if decoded.Issues[1].Severity != "info" {
			t.Errorf("second issue severity = %q, want info", decoded.Issues[1].Severity)
		}
		if !strings.Contains(buf.String(), `"severity": "error"`) {
			t.Errorf("severity should render by name:\n%s", buf.String())
		}
	})

	t.Run("empty result text", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatText)
		if err := reporter.Report(&Result{}); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		if !strings.Contains(buf.String(), "Validation passed") {
			t.Error("output missing success message")
		}
	})

	t.Run("warnings only pass", func(t *testing.T) {
		warned := &Result{Source: "app.conf", Issues: []Issue{{
			Severity: SeverityWarning,
			Field:    "port",
			Line:     3,
			Message:  "'port': duplicate key (first set on line 1)",
		}}}
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatText).Report(warned); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{
			"✓ app.conf: Validation passed with 1 warning(s)",
			"Warnings:",
			"line 3: 'port': duplicate key (first set on line 1)",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
		if strings.Contains(output, "failed") {
			t.Errorf("warnings alone should not fail:\n%s", output)
		}
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatText).Report(nil); err != nil || buf.Len() != 0 {
			t.Errorf("Report(nil) wrote %q, err %v", buf.String(), err)
		}
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}
