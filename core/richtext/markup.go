package richtext

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blockTags = map[NodeType]atom.Atom{
	NodeHeading1:      atom.H1,
	NodeHeading2:      atom.H2,
	NodeHeading3:      atom.H3,
	NodeHeading4:      atom.H4,
	NodeHeading5:      atom.H5,
	NodeHeading6:      atom.H6,
	NodeParagraph:     atom.P,
	NodeOrderedList:   atom.Ol,
	NodeUnorderedList: atom.Ul,
	NodeListItem:      atom.Li,
	NodeHyperlink:     atom.A,
}

var markTags = map[MarkType]atom.Atom{
	MarkBold:      atom.B,
	MarkItalic:    atom.I,
	MarkCode:      atom.Code,
	MarkUnderline: atom.U,
}

// RenderHTML writes root's content back out as markup. Converting the
// output again yields an equivalent tree, as long as the source had no
// block tags nested in inline content.
func RenderHTML(w io.Writer, root *Node) error {
	nodes, err := markupNodes(root)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering %s: %w", n.Data, err)
		}
	}
	return nil
}

// HTML is a convenience wrapper for RenderHTML.
func HTML(root *Node) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func markupNodes(root *Node) ([]*html.Node, error) {
	if root == nil {
		return nil, nil
	}
	if root.NodeType != NodeDocument {
		n, err := toMarkup(root)
		if err != nil {
			return nil, err
		}
		return []*html.Node{n}, nil
	}
	out := make([]*html.Node, 0, len(root.Content))
	for _, c := range root.Content {
		n, err := toMarkup(c)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func toMarkup(n *Node) (*html.Node, error) {
	if n.IsLeaf() {
		return leafMarkup(n)
	}

	a, ok := blockTags[n.NodeType]
	if !ok {
		return nil, fmt.Errorf("no markup for node type %q", n.NodeType)
	}
	el := element(a)
	if uri, ok := n.URI(); ok && n.NodeType == NodeHyperlink {
		el.Attr = append(el.Attr, html.Attribute{Key: "href", Val: uri})
	}
	for _, c := range n.Content {
		child, err := toMarkup(c)
		if err != nil {
			return nil, err
		}
		el.AppendChild(child)
	}
	return el, nil
}

// leafMarkup wraps the text in one element per mark, the first mark
// outermost.
func leafMarkup(n *Node) (*html.Node, error) {
	inner := &html.Node{Type: html.TextNode, Data: n.Value}
	for i := len(n.Marks) - 1; i >= 0; i-- {
		a, ok := markTags[n.Marks[i].Type]
		if !ok {
			return nil, fmt.Errorf("no markup for mark %s", strconv.Quote(string(n.Marks[i].Type)))
		}
		el := element(a)
		el.AppendChild(inner)
		inner = el
	}
	return inner, nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
