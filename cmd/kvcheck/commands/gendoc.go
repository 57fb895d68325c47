package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/kvcheck/cmd"
	"github.com/thoreinstein/kvcheck/internal/errors"
)

var (
	genDocDir    string
	genDocFormat string
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate Markdown or man page documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runGenDoc,
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "Output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "Documentation format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(c *cobra.Command, _ []string) error {
	if genDocDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "Pass --dir DIR")
	}

	if err := os.MkdirAll(genDocDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	switch genDocFormat {
	case "markdown":
		if err := doc.GenMarkdownTreeCustom(rootCmd, genDocDir, filePrepender, linkHandler); err != nil {
			return errors.Wrap(err, "generating markdown")
		}
	case "man":
		header := &doc.GenManHeader{
			Title:   "KVCHECK",
			Section: "1",
			Source:  "kvcheck " + cmd.Version,
		}
		if err := doc.GenManTree(rootCmd, header, genDocDir); err != nil {
			return errors.Wrap(err, "generating man pages")
		}
	default:
		return errors.NewUserError(errors.Newf("invalid format %q", genDocFormat),
			"Use --format markdown or --format man")
	}

	fmt.Fprintf(c.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
	return nil
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// kvcheck_config_set.md -> kvcheck config set
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s command"
draft: false
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
