package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/kvcheck/internal/config"
	"github.com/thoreinstein/kvcheck/internal/errors"
)

func TestRunInit(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{config.FormatYAML, "output: text"},
		{config.FormatTOML, "output = 'text'"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resetFlags(t)
			dir := t.TempDir()
			t.Setenv(config.EnvConfigDir, dir)
			initFormat = tt.format
			initSchema = "~/schemas/app.schema"
			initOutput = config.OutputText
			initForce = false

			c, out := newTestCommand(t, "")
			if err := runInit(c, nil); err != nil {
				t.Fatalf("runInit() error: %v", err)
			}

			path := filepath.Join(dir, "config."+tt.format)
			if !strings.Contains(out.String(), "Created "+path) {
				t.Errorf("output = %q", out)
			}
			data := readFile(t, path)
			if !strings.Contains(data, tt.want) || !strings.Contains(data, "~/schemas/app.schema") {
				t.Errorf("settings file = %q", data)
			}
		})
	}
}

func TestRunInit_Existing(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	configFile = writeTestFile(t, dir, "config.yaml", "version: 1\noutput: json\n")
	initFormat = config.FormatYAML
	initOutput = config.OutputText
	initForce = false

	c, out := newTestCommand(t, "")
	if err := runInit(c, nil); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output = %q", out)
	}
	if data := readFile(t, configFile); !strings.Contains(data, "json") {
		t.Errorf("existing file was overwritten: %q", data)
	}

	initForce = true
	c, _ = newTestCommand(t, "")
	if err := runInit(c, nil); err != nil {
		t.Fatalf("runInit(--force) error: %v", err)
	}
	if data := readFile(t, configFile); !strings.Contains(data, "output: text") {
		t.Errorf("--force did not overwrite: %q", data)
	}
}

func TestRunInit_InvalidFlags(t *testing.T) {
	tests := []struct {
		name   string
		format string
		output string
	}{
		{"format", "ini", config.OutputText},
		{"output", config.FormatYAML, "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			configFile = filepath.Join(t.TempDir(), "config."+tt.format)
			initFormat = tt.format
			initOutput = tt.output
			initForce = false

			c, _ := newTestCommand(t, "")
			err := runInit(c, nil)
			if errors.Code(err) != errors.ExitUser {
				t.Errorf("runInit() error = %v, want user error", err)
			}
			if _, statErr := os.Stat(configFile); !os.IsNotExist(statErr) {
				t.Error("runInit() wrote a file for invalid flags")
			}
		})
	}
}
