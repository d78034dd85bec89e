// Package core defines the pipeline interfaces for richtext.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"

	"github.com/gaurav-prasanna/richtext/core/richtext"
)

// FetchResult holds the raw HTML and where it came from.
type FetchResult struct {
	Source     string // URL, file path, or "-" for stdin
	StatusCode int    // 0 for non-HTTP sources
	HTML       string
}

// PageMetadata holds metadata extracted from the page and its source.
type PageMetadata struct {
	Source    string `json:"source"`
	Domain    string `json:"domain,omitempty"`
	Path      string `json:"path,omitempty"`
	Title     string `json:"title,omitempty"`
	Language  string `json:"language,omitempty"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// Heading represents a single heading found in the document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the document.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// DocumentStructure summarizes a converted document.
type DocumentStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	Paragraphs int       `json:"paragraphs"`
	Lists      int       `json:"lists"`
	ListItems  int       `json:"list_items"`
}

// DocumentJSON is the enveloped JSON output for a single source.
type DocumentJSON struct {
	Metadata  PageMetadata      `json:"metadata"`
	Document  *richtext.Node    `json:"document"`
	Structure DocumentStructure `json:"structure"`
}

// Fetcher retrieves raw HTML from a source.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Converter turns an HTML fragment into a document tree.
type Converter interface {
	Convert(html string) (*richtext.Node, error)
}

// Renderer converts a document tree (and metadata) into a final output format.
type Renderer interface {
	Render(doc *richtext.Node, meta PageMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
