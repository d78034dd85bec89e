// Package render — PDF renderer.
// Lays out the document tree with gofpdf: headings get variable font sizes,
// marks map to font styles (code to Courier), hyperlinks become link
// annotations, and list items are indented with bullets or numbers.
package render

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/richtext/core"
	"github.com/gaurav-prasanna/richtext/core/richtext"
)

const (
	bodyFontSize = 10.0
	lineHeight   = 5.0
	listIndent   = 6.0
)

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders a document tree as a PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// pdfWriter carries the document being laid out. The core fonts only
// cover cp1252, so all text goes through tr.
type pdfWriter struct {
	pdf  *gofpdf.Fpdf
	tr   func(string) string
	left float64
}

// Render converts the document into PDF bytes.
func (r *PDFRenderer) Render(doc *richtext.Node, meta core.PageMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	left, _, _, _ := pdf.GetMargins()
	w := &pdfWriter{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		left: left,
	}

	// Title from metadata.
	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, w.tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	// Source line.
	if meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, w.tr("Source: "+meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	for _, n := range doc.Content {
		w.block(n, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func (w *pdfWriter) block(n *richtext.Node, depth int) {
	switch {
	case n.NodeType.IsHeading():
		size := headingSizes[n.NodeType.HeadingLevel()]
		w.pdf.Ln(4)
		w.inline(n.Content, size, "B")
		w.pdf.Ln(size*0.6 + 2)

	case n.NodeType.IsList():
		for i, item := range n.Content {
			marker := "• "
			if n.NodeType == richtext.NodeOrderedList {
				marker = strconv.Itoa(i+1) + ". "
			}
			w.item(item, marker, depth+1)
		}
		w.pdf.Ln(1)

	case n.NodeType == richtext.NodeListItem:
		w.item(n, "• ", depth+1)

	default:
		if strings.TrimSpace(richtext.Text(n)) == "" {
			return
		}
		w.inline(n.Content, bodyFontSize, "")
		w.pdf.Ln(lineHeight + 2)
	}
}

// item writes the marker at the item's indentation and lets the first
// block continue on the same line.
func (w *pdfWriter) item(n *richtext.Node, marker string, depth int) {
	indent := w.left + listIndent*float64(depth)
	w.pdf.SetLeftMargin(indent)
	w.pdf.SetX(indent)
	w.pdf.SetFont("Helvetica", "", bodyFontSize)
	w.pdf.Write(lineHeight, w.tr(marker))
	for _, c := range n.Content {
		w.block(c, depth)
	}
	if len(n.Content) == 0 {
		w.pdf.Ln(lineHeight)
	}
	w.pdf.SetLeftMargin(w.left + listIndent*float64(depth-1))
}

// inline writes leaves and hyperlinks as flowing text.
func (w *pdfWriter) inline(nodes []*richtext.Node, size float64, base string) {
	h := size * 0.5
	for _, c := range nodes {
		switch {
		case c.IsLeaf():
			family, style := fontFor(c.Marks, base)
			w.pdf.SetFont(family, style, size)
			w.pdf.Write(h, w.tr(c.Value))

		case c.NodeType == richtext.NodeHyperlink:
			uri, _ := c.URI()
			w.pdf.SetTextColor(20, 60, 180)
			for _, leaf := range c.Content {
				if !leaf.IsLeaf() {
					continue
				}
				family, style := fontFor(leaf.Marks, base+"U")
				w.pdf.SetFont(family, style, size)
				if uri == "" {
					w.pdf.Write(h, w.tr(leaf.Value))
				} else {
					w.pdf.WriteLinkString(h, w.tr(leaf.Value), uri)
				}
			}
			w.pdf.SetTextColor(0, 0, 0)
		}
	}
}

// fontFor maps marks onto a core font family and style string.
func fontFor(marks []richtext.Mark, base string) (family, style string) {
	family = "Helvetica"
	bold := strings.Contains(base, "B")
	italic := strings.Contains(base, "I")
	underline := strings.Contains(base, "U")
	for _, m := range marks {
		switch m.Type {
		case richtext.MarkBold:
			bold = true
		case richtext.MarkItalic:
			italic = true
		case richtext.MarkUnderline:
			underline = true
		case richtext.MarkCode:
			family = "Courier"
		}
	}
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	if underline {
		style += "U"
	}
	return family, style
}
