// Package cmd implements the CLI commands for richtext using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "richtext",
	Short: "richtext — convert HTML into a structured rich text document tree",
	Long: `richtext converts HTML from a URL, a file, or stdin into a normalized
rich text document tree (headings, paragraphs, lists, hyperlinks and marked
text runs), and renders it as JSON, HTML, Markdown, plain text, or PDF.

Usage:
  richtext convert <source> [flags]
  richtext dump <source> [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
