// Package cmd — dump command.
// Prints the document tree as an indented outline (or as a Go value with
// --raw) and reports any invariant violations found by Validate.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/richtext/core/extract"
	"github.com/gaurav-prasanna/richtext/core/fetch"
	"github.com/gaurav-prasanna/richtext/core/richtext"
)

var flagRaw bool

var dumpCmd = &cobra.Command{
	Use:   "dump <source>",
	Short: "Print the document tree of a URL, file, or stdin",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().BoolVar(&flagRaw, "raw", false, "Pretty-print the Go value instead of an outline")
	dumpCmd.Flags().BoolVar(&flagKeepWhitespace, "keep-whitespace", false, "Keep whitespace-only text between blocks as paragraphs")
}

func runDump(cmd *cobra.Command, args []string) error {
	source := args[0]

	result, err := fetch.ForSource(source).Fetch(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	content, err := extract.NewBody().Extract(result.HTML)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	doc, err := newConverter().Convert(content)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagRaw {
		if _, err := pp.Fprintln(out, doc); err != nil {
			return err
		}
	} else if err := writeOutline(out, doc); err != nil {
		return err
	}

	errs := richtext.Validate(doc)
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ %v\n", err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d invariant violations", len(errs))
	}
	return nil
}

// writeOutline prints one line per node, indented by depth.
func writeOutline(w io.Writer, doc *richtext.Node) error {
	return richtext.Walk(doc, func(n *richtext.Node, ctx richtext.WalkContext) error {
		indent := strings.Repeat("  ", ctx.Depth)
		var err error
		switch {
		case n.IsLeaf():
			_, err = fmt.Fprintf(w, "%s%s %q%s\n", indent, n.NodeType, n.Value, markList(n.Marks))
		case n.NodeType == richtext.NodeHyperlink:
			uri, _ := n.URI()
			_, err = fmt.Fprintf(w, "%s%s <%s>\n", indent, n.NodeType, uri)
		default:
			_, err = fmt.Fprintf(w, "%s%s\n", indent, n.NodeType)
		}
		return err
	})
}

func markList(marks []richtext.Mark) string {
	if len(marks) == 0 {
		return ""
	}
	names := make([]string, len(marks))
	for i, m := range marks {
		names[i] = string(m.Type)
	}
	return " [" + strings.Join(names, " ") + "]"
}
