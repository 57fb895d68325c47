// Package cmd contains build-time variables injected via ldflags.
package cmd

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X github.com/thoreinstein/kvcheck/cmd.Version=v1.2.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// Info renders the build information as the version command prints it.
func Info() string {
	return fmt.Sprintf("kvcheck version %s\n  commit:    %s\n  built:     %s\n  go:        %s\n",
		Version, Commit, Date, runtime.Version())
}
