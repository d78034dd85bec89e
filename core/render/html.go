package render

import (
	"bytes"

	"github.com/gaurav-prasanna/richtext/core"
	"github.com/gaurav-prasanna/richtext/core/richtext"
)

// HTMLRenderer writes the document tree back out as normalized markup.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the document's markup followed by a newline.
func (r *HTMLRenderer) Render(doc *richtext.Node, meta core.PageMetadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := richtext.RenderHTML(&buf, doc); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
