package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/kvcheck/internal/logging"
)

func init() {
	color.NoColor = true
}

// newTestCommand returns a command whose output is captured and whose
// context carries a test logger.
func newTestCommand(t *testing.T, stdin string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetIn(bytes.NewBufferString(stdin))
	c.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))
	return c, &out
}

// keep restores *p when the test ends.
func keep[T any](t *testing.T, p *T) {
	t.Helper()
	old := *p
	t.Cleanup(func() { *p = old })
}

// resetFlags restores package-level flag state after a test and clears the
// loaded settings.
func resetFlags(t *testing.T) {
	t.Helper()
	keep(t, &verbosity)
	keep(t, &quiet)
	keep(t, &logFormat)
	keep(t, &logFile)
	keep(t, &configFile)
	keep(t, &appConfig)
	keep(t, &configLoadErr)
	keep(t, &validateSchema)
	keep(t, &validateJSON)
	keep(t, &validateShowSuppressed)
	keep(t, &parseJSON)
	keep(t, &schemaJSON)
	keep(t, &inspectSchema)
	keep(t, &initFormat)
	keep(t, &initSchema)
	keep(t, &initOutput)
	keep(t, &initForce)
	keep(t, &configListJSON)
	keep(t, &genDocDir)
	keep(t, &genDocFormat)
	keep(t, &findEntry)
	keep(t, &interactive)

	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configFile = ""
	appConfig = nil
	configLoadErr = nil
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
