package richtext

import (
	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// DOMNode is the parsed-markup input the builder consumes.
type DOMNode interface {
	// TagName returns the lowercase element name, or "" for a text node.
	TagName() string
	// Children returns element and text children in document order.
	Children() []DOMNode
	// Data returns the literal text of a text node.
	Data() string
	// Attr returns the value of an attribute and whether it is present.
	Attr(key string) (string, bool)
}

// htmlNode adapts *html.Node to DOMNode.
type htmlNode struct {
	n *html.Node
}

// FromHTML wraps parsed nodes, dropping comments, doctypes and other
// non-content nodes.
func FromHTML(nodes ...*html.Node) []DOMNode {
	out := make([]DOMNode, 0, len(nodes))
	for _, n := range nodes {
		if isContent(n) {
			out = append(out, htmlNode{n: n})
		}
	}
	return out
}

func isContent(n *html.Node) bool {
	return n.Type == html.ElementNode || n.Type == html.TextNode
}

func (h htmlNode) TagName() string {
	if h.n.Type != html.ElementNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) Children() []DOMNode {
	var out []DOMNode
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if isContent(c) {
			out = append(out, htmlNode{n: c})
		}
	}
	return out
}

func (h htmlNode) Data() string {
	if h.n.Type != html.TextNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) Attr(key string) (string, bool) {
	return dom.GetAttribute(h.n, key)
}

// Element is a plain in-memory DOMNode, handy for building input by hand.
type Element struct {
	Tag   string
	Text  string
	Attrs map[string]string
	Nodes []*Element
}

// TextNode returns an Element standing for a raw text run.
func TextNode(s string) *Element { return &Element{Text: s} }

func (e *Element) TagName() string { return e.Tag }

func (e *Element) Children() []DOMNode {
	out := make([]DOMNode, len(e.Nodes))
	for i, c := range e.Nodes {
		out[i] = c
	}
	return out
}

func (e *Element) Data() string { return e.Text }

func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}
