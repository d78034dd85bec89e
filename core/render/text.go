// Package render — plain text renderer.
// Wraps paragraphs to a display width, measuring East Asian wide and
// combining characters with go-runewidth. Marks are dropped; links keep
// their target in angle brackets.
package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/gaurav-prasanna/richtext/core"
	"github.com/gaurav-prasanna/richtext/core/richtext"
)

const defaultTextWidth = 80

// TextRenderer renders a document as wrapped plain text.
type TextRenderer struct {
	Width int // columns per line
}

// NewTextRenderer creates a TextRenderer. Defaults to 80 columns if width <= 0.
func NewTextRenderer(width int) *TextRenderer {
	if width <= 0 {
		width = defaultTextWidth
	}
	return &TextRenderer{Width: width}
}

// Render returns the document as NFC-normalized plain text.
func (r *TextRenderer) Render(doc *richtext.Node, meta core.PageMetadata) ([]byte, error) {
	var blocks []string
	if meta.Title != "" {
		blocks = append(blocks, r.heading(meta.Title, 1, 0))
	}
	blocks = append(blocks, r.blocks(doc.Content, 0)...)

	out := strings.Join(blocks, "\n\n")
	if out != "" {
		out += "\n"
	}
	return []byte(norm.NFC.String(out)), nil
}

// Extension returns the file extension for plain text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}

// blocks renders block nodes indented by indent columns. Blank paragraphs
// produce nothing.
func (r *TextRenderer) blocks(nodes []*richtext.Node, indent int) []string {
	var out []string
	for _, n := range nodes {
		var s string
		switch {
		case n.NodeType.IsHeading():
			s = r.heading(inlineText(n), n.NodeType.HeadingLevel(), indent)
		case n.NodeType.IsList():
			s = r.list(n, indent)
		case n.NodeType == richtext.NodeListItem:
			s = r.item(n, "- ", indent)
		default:
			s = r.paragraph(inlineText(n), indent)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r *TextRenderer) heading(text string, level, indent int) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	pad := strings.Repeat(" ", indent)
	switch level {
	case 1:
		return pad + text + "\n" + pad + strings.Repeat("=", runewidth.StringWidth(text))
	case 2:
		return pad + text + "\n" + pad + strings.Repeat("-", runewidth.StringWidth(text))
	default:
		return pad + strings.Repeat("#", level) + " " + text
	}
}

func (r *TextRenderer) paragraph(text string, indent int) string {
	lines := wrap(text, r.Width-indent)
	pad := strings.Repeat(" ", indent)
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (r *TextRenderer) list(n *richtext.Node, indent int) string {
	var items []string
	for i, c := range n.Content {
		marker := "- "
		if n.NodeType == richtext.NodeOrderedList {
			marker = strconv.Itoa(i+1) + ". "
		}
		items = append(items, r.item(c, marker, indent))
	}
	return strings.Join(items, "\n")
}

// item renders list item content indented past the marker, then puts the
// marker in front of the first line.
func (r *TextRenderer) item(n *richtext.Node, marker string, indent int) string {
	inner := strings.Join(r.blocks(n.Content, indent+len(marker)), "\n")
	prefix := strings.Repeat(" ", indent) + marker
	if inner == "" {
		return strings.TrimRight(prefix, " ")
	}
	return prefix + inner[len(prefix):]
}

// inlineText flattens a block's inline content.
func inlineText(n *richtext.Node) string {
	var buf strings.Builder
	for _, c := range n.Content {
		switch {
		case c.IsLeaf():
			buf.WriteString(c.Value)
		case c.NodeType == richtext.NodeHyperlink:
			text := inlineText(c)
			buf.WriteString(text)
			if uri, _ := c.URI(); uri != "" && uri != strings.TrimSpace(text) {
				buf.WriteString(" <" + uri + ">")
			}
		default:
			buf.WriteString(inlineText(c))
		}
	}
	return buf.String()
}

// wrap breaks text into lines of at most width display columns. Words
// wider than the line are placed on a line of their own.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var (
		lines []string
		line  strings.Builder
		used  int
	)
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if used > 0 && used+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(word)
		used += w
	}
	if used > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
