package editor

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		visual string
		want   []string
	}{
		{"editor wins", "nvim", "code", []string{"nvim"}},
		{"visual fallback", "", "code", []string{"code"}},
		{"arguments kept", "code --wait", "", []string{"code", "--wait"}},
		{"whitespace treated as unset", "   ", "vscode", []string{"vscode"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)

			got := Command()
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("Command() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_FallbackNano(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	got := Command()

	// Should be nano if available, otherwise vi
	want := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		want = "nano"
	}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Command() = %q, want %q", got, want)
	}
}

func TestOpen_Integration(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping integration test on windows (uses shell script mock)")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "mock-editor.sh")
	outputFile := filepath.Join(tmpDir, "output.txt")

	// Create a mock editor that writes its arguments to a file
	script := "#!/bin/sh\necho \"$@\" > " + outputFile + "\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EDITOR", mockEditor+" --wait")

	targetFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(targetFile, []byte("version: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Open(context.Background(), targetFile); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	if want := "--wait " + targetFile; !strings.Contains(string(got), want) {
		t.Errorf("mock editor output = %q, want it to contain %q", string(got), want)
	}
}

func TestOpen_NoEditor(t *testing.T) {
	t.Setenv("EDITOR", "non-existent-binary-12345")
	t.Setenv("VISUAL", "")

	if err := Open(context.Background(), "config.yaml"); err == nil {
		t.Error("expected error for non-existent editor, got nil")
	}
}
