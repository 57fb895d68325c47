package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/kvcheck/internal/config"
	"github.com/thoreinstein/kvcheck/internal/errors"
)

func TestRunDoctor(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvConfigDir, t.TempDir())
	t.Chdir(t.TempDir())
	config.Init()
	keep(t, &doctorJSON)
	keep(t, &doctorAll)

	t.Run("defaults are fine", func(t *testing.T) {
		appConfig = config.Default()
		doctorAll = true
		doctorJSON = false

		c, out := newTestCommand(t, "")
		if err := runDoctor(c, nil); err != nil {
			t.Fatalf("runDoctor() error: %v\n%s", err, out)
		}
		for _, want := range []string{"settings-load", "no default schema set", "Summary: 1 passed, 2 info, 0 warnings, 0 errors"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("broken schema", func(t *testing.T) {
		schemaPath := writeTestFile(t, t.TempDir(), "app.schema", "ratio = float\n")
		appConfig = &config.Config{Version: 1, Schema: schemaPath, Output: config.OutputText}
		doctorAll = false
		doctorJSON = false

		c, out := newTestCommand(t, "")
		err := runDoctor(c, nil)
		if errors.Code(err) != errors.ExitSystem {
			t.Fatalf("runDoctor() error = %v, want exit code %d", err, errors.ExitSystem)
		}
		if !strings.Contains(out.String(), `unknown type "float"`) || !strings.Contains(out.String(), "hint:") {
			t.Errorf("output = %s", out)
		}
		if strings.Contains(out.String(), "settings-load") {
			t.Errorf("passing checks should be hidden without --all:\n%s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		appConfig = config.Default()
		doctorJSON = true

		c, out := newTestCommand(t, "")
		if err := runDoctor(c, nil); err != nil {
			t.Fatalf("runDoctor() error: %v", err)
		}
		var got struct {
			Results []struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"results"`
		}
		if err := json.Unmarshal(out.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if len(got.Results) != 3 || got.Results[0].Status != "info" {
			t.Errorf("decoded = %+v", got)
		}
	})
}
