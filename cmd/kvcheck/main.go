// Package main is the entry point for the kvcheck CLI.
package main

import (
	"os"

	"github.com/thoreinstein/kvcheck/cmd/kvcheck/commands"
	"github.com/thoreinstein/kvcheck/internal/errors"
)

func main() {
	err := commands.Execute()
	if err != nil {
		commands.PrintError(os.Stderr, err)
	}
	os.Exit(errors.Code(err))
}
