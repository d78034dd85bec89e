package richtext

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures a Converter.
type Option func(*Converter)

// WithSkipBlankText drops whitespace-only text nodes met in block context.
// Without it, the indentation between block tags turns into paragraphs
// holding nothing but whitespace.
func WithSkipBlankText() Option {
	return func(c *Converter) { c.b.skipBlankText = true }
}

// Converter turns HTML into document trees. A Converter holds no state
// between calls and is safe for concurrent use.
type Converter struct {
	b builder
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses an HTML fragment and builds its document tree.
func (c *Converter) Convert(src string) (*Node, error) {
	return c.ConvertReader(strings.NewReader(src))
}

// ConvertReader parses an HTML fragment read from r and builds its
// document tree. The markup is parsed as the content of a <body>, so no
// html/head/body elements are synthesized around it.
func (c *Converter) ConvertReader(r io.Reader) (*Node, error) {
	nodes, err := html.ParseFragment(r, bodyContext())
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return c.Build(FromHTML(nodes...)...), nil
}

// Build converts already-parsed DOM nodes. It never fails.
func (c *Converter) Build(nodes ...DOMNode) *Node {
	return c.b.build(nodes)
}

func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}

// GenerateRichText converts an HTML fragment with default options.
func GenerateRichText(src string) (*Node, error) {
	return New().Convert(src)
}
