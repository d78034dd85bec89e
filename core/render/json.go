// Package render — JSON renderer.
// Serializes the document tree as-is, or wrapped in an envelope with page
// metadata and a structural summary (headings, links, list counts).
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/richtext/core"
	"github.com/gaurav-prasanna/richtext/core/richtext"
)

// JSONRenderer produces JSON output from a document tree.
type JSONRenderer struct {
	// WithMetadata wraps the tree in a core.DocumentJSON envelope.
	WithMetadata bool
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(withMetadata bool) *JSONRenderer {
	return &JSONRenderer{WithMetadata: withMetadata}
}

// Render serializes the document, optionally with metadata and structure.
func (r *JSONRenderer) Render(doc *richtext.Node, meta core.PageMetadata) ([]byte, error) {
	if !r.WithMetadata {
		var buf bytes.Buffer
		if err := richtext.Encode(&buf, doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	page := core.DocumentJSON{
		Metadata:  meta,
		Document:  doc,
		Structure: Structure(doc),
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Structure summarizes the headings, links and block counts of a document.
func Structure(doc *richtext.Node) core.DocumentStructure {
	s := core.DocumentStructure{
		Headings: []core.Heading{},
		Links:    []core.Link{},
	}
	_ = richtext.Walk(doc, func(n *richtext.Node, _ richtext.WalkContext) error {
		switch {
		case n.NodeType.IsHeading():
			s.Headings = append(s.Headings, core.Heading{
				Level: n.NodeType.HeadingLevel(),
				Text:  richtext.Text(n),
			})
		case n.NodeType == richtext.NodeHyperlink:
			href, _ := n.URI()
			s.Links = append(s.Links, core.Link{Text: richtext.Text(n), Href: href})
		case n.NodeType == richtext.NodeParagraph:
			s.Paragraphs++
		case n.NodeType.IsList():
			s.Lists++
		case n.NodeType == richtext.NodeListItem:
			s.ListItems++
		}
		return nil
	})
	return s
}
