// Package render provides output renderers for document trees.
// This file implements the Markdown renderer: the tree is written back out
// as normalized markup and converted with html-to-markdown.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/richtext/core"
	"github.com/gaurav-prasanna/richtext/core/richtext"
)

// MarkdownRenderer converts the document tree to Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the document as Markdown.
func (r *MarkdownRenderer) Render(doc *richtext.Node, meta core.PageMetadata) ([]byte, error) {
	markup, err := richtext.HTML(doc)
	if err != nil {
		return nil, err
	}

	markdown, err := htmltomarkdown.ConvertString(markup)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
