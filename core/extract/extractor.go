// Package extract implements the Extractor interface.
// It isolates the main content from a full HTML page by:
//  1. Finding the best content container (a custom selector, or <main>,
//     <article>, <body>)
//  2. Removing noise elements (nav, footer, scripts, images, etc.)
//
// NewBody is the lighter mode used when no extraction is requested: it only
// drops the <head> and non-content elements (scripts, styles) and keeps the
// whole <body>.
//
// It also reads page metadata (title, language) from the full page.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// scriptSelectors hold source code or fallbacks, never document text.
var scriptSelectors = []string{"script", "style", "noscript", "template"}

// noiseSelectors are HTML elements removed before extraction.
// These contribute no meaningful content to the document tree.
var noiseSelectors = append(append([]string{}, scriptSelectors...),
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
)

// defaultContainers are tried in order when no selector is configured.
// <main> is the most semantically correct, then <article>, then <body>.
var defaultContainers = []string{"main", "article", "body"}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct {
	container goquery.Matcher
	noise     []string
}

// New creates an HTMLExtractor using the default container order.
func New() *HTMLExtractor {
	return &HTMLExtractor{noise: noiseSelectors}
}

// NewBody creates an HTMLExtractor that keeps the whole <body> and removes
// only scripts, styles and the like. Fragments come back unchanged apart
// from those elements, since the parser places them in <body>.
func NewBody() *HTMLExtractor {
	return &HTMLExtractor{
		container: cascadia.MustCompile("body"),
		noise:     scriptSelectors,
	}
}

// NewWithSelector creates an HTMLExtractor whose content container is the
// first element matching the CSS selector.
func NewWithSelector(selector string) (*HTMLExtractor, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return &HTMLExtractor{container: m, noise: noiseSelectors}, nil
}

// Extract takes raw HTML and returns the inner HTML of the content
// container, ready to be converted as a fragment.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Remove noise elements first (operates on the whole document).
	for _, sel := range e.noise {
		doc.Find(sel).Remove()
	}

	content := e.findContainer(doc)
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}

func (e *HTMLExtractor) findContainer(doc *goquery.Document) *goquery.Selection {
	if e.container != nil {
		sel := doc.FindMatcher(e.container)
		if sel.Length() == 0 {
			return nil
		}
		return sel.First()
	}
	for _, tag := range defaultContainers {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			return sel.First()
		}
	}
	return nil
}

// Metadata holds page-level information found outside the content.
type Metadata struct {
	Title    string
	Language string
}

// ReadMetadata pulls the <title> text and the <html lang> attribute.
// Language defaults to "en" when absent.
func ReadMetadata(html string) (Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Metadata{}, fmt.Errorf("parsing HTML: %w", err)
	}
	return Metadata{
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		Language: doc.Find("html").AttrOr("lang", "en"),
	}, nil
}
