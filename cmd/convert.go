// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → convert → render → write.
//
// It handles flag validation, renderer selection, and writing to a file
// or stdout.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/richtext/core"
	"github.com/gaurav-prasanna/richtext/core/extract"
	"github.com/gaurav-prasanna/richtext/core/fetch"
	"github.com/gaurav-prasanna/richtext/core/output"
	"github.com/gaurav-prasanna/richtext/core/render"
	"github.com/gaurav-prasanna/richtext/core/richtext"
)

// Flag variables.
var (
	flagJSON           bool
	flagHTML           bool
	flagMarkdown       bool
	flagText           bool
	flagPDF            bool
	flagWithMetadata   bool
	flagWidth          int
	flagExtract        bool
	flagSelector       string
	flagKeepWhitespace bool
	flagOutputDir      string
	flagStdout         bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <source>",
	Short: "Convert HTML from a URL, file, or stdin to the specified output format",
	Long: `Convert reads HTML, optionally isolates the main content, builds the rich
text document tree, and renders it to the specified output format (JSON by
default, or HTML, Markdown, plain text, PDF).

The source is an http(s) URL, a file path, or "-" for stdin.

Examples:
  richtext convert page.html
  richtext convert https://example.com --extract --markdown --output_dir ./out
  richtext convert https://example.com --selector "div.post" --pdf
  echo '<b>hi</b>' | richtext convert - --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the document tree as JSON (default)")
	convertCmd.Flags().BoolVar(&flagHTML, "html", false, "Output normalized HTML")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	convertCmd.Flags().BoolVar(&flagText, "text", false, "Output wrapped plain text")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	// Format-specific flags.
	convertCmd.Flags().BoolVar(&flagWithMetadata, "with-metadata", false, "Wrap JSON output with page metadata and structure")
	convertCmd.Flags().IntVar(&flagWidth, "width", 80, "Line width for --text")

	// Content selection.
	convertCmd.Flags().BoolVar(&flagExtract, "extract", false, "Keep only the main content (<main>, <article> or <body>) and strip noise")
	convertCmd.Flags().StringVar(&flagSelector, "selector", "", "CSS selector of the content container (implies --extract)")
	convertCmd.Flags().BoolVar(&flagKeepWhitespace, "keep-whitespace", false, "Keep whitespace-only text between blocks as paragraphs")

	// Output destination.
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	convertCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write output to stdout instead of a file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	// --- Validate flags ---
	if err := validateFlags(); err != nil {
		return err
	}

	// Select renderer.
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	extractor, err := selectExtractor()
	if err != nil {
		return err
	}

	// Initialize pipeline components.
	fetcher := fetch.ForSource(source)
	converter := newConverter()

	data, err := processSource(cmd.Context(), source, fetcher, extractor, converter, renderer)
	if err != nil {
		return err
	}

	if flagStdout {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s (%s)\n", path, humanize.Bytes(uint64(len(data))))
	return nil
}

// processSource runs a single source through the full pipeline.
// A nil extractor converts the whole page.
func processSource(
	ctx context.Context,
	source string,
	fetcher core.Fetcher,
	extractor core.Extractor,
	converter core.Converter,
	renderer core.Renderer,
) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Fetch
	result, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract main content
	content := result.HTML
	if extractor != nil {
		content, err = extractor.Extract(result.HTML)
		if err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
	}

	// 3. Build the document tree
	doc, err := converter.Convert(content)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	// 4. Render to output format
	data, err := renderer.Render(doc, buildMetadata(source, result.HTML))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// buildMetadata constructs PageMetadata from the source and raw HTML.
func buildMetadata(source string, html string) core.PageMetadata {
	meta := core.PageMetadata{
		Source:    source,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if fetch.IsURL(source) {
		parsed, _ := url.Parse(source)
		meta.Domain = parsed.Host
		meta.Path = parsed.Path
	}
	if page, err := extract.ReadMetadata(html); err == nil {
		meta.Title = page.Title
		meta.Language = page.Language
	}
	return meta
}

func newConverter() *richtext.Converter {
	if flagKeepWhitespace {
		return richtext.New()
	}
	return richtext.New(richtext.WithSkipBlankText())
}

// validateFlags checks that at most one output format is chosen and that
// format-specific flags fit the chosen format.
func validateFlags() error {
	// Count output formats.
	formatCount := 0
	for _, set := range []bool{flagJSON, flagHTML, flagMarkdown, flagText, flagPDF} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if flagWithMetadata && formatCount == 1 && !flagJSON {
		return fmt.Errorf("--with-metadata only applies to --json")
	}
	if flagWidth <= 0 {
		return fmt.Errorf("--width must be positive (got %d)", flagWidth)
	}
	if flagStdout && flagOutputDir != "" {
		return fmt.Errorf("--stdout and --output_dir are mutually exclusive")
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
// JSON is the default format.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagHTML:
		return render.NewHTMLRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagText:
		return render.NewTextRenderer(flagWidth), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewJSONRenderer(flagWithMetadata), nil
	}
}

// selectExtractor picks the content extractor. Without --extract or
// --selector the whole <body> is kept and only scripts and styles go.
func selectExtractor() (core.Extractor, error) {
	switch {
	case flagSelector != "":
		e, err := extract.NewWithSelector(flagSelector)
		if err != nil {
			return nil, err
		}
		return e, nil
	case flagExtract:
		return extract.New(), nil
	default:
		return extract.NewBody(), nil
	}
}
