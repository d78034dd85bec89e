package richtext

import "strings"

// builder walks DOM nodes depth-first in document order. It holds only
// options; every piece of traversal state is passed down explicitly.
type builder struct {
	skipBlankText bool
}

// build converts top-level DOM nodes into a document root.
func (b builder) build(nodes []DOMNode) *Node {
	root := NewDocument()
	for _, n := range nodes {
		node, hoisted := b.buildNode(n)
		root.Content = appendBlocks(root.Content, node, hoisted)
	}
	return root
}

// appendBlocks adds the output of buildNode to an accumulator: hoisted
// blocks first, then the node's own container if any.
func appendBlocks(acc []*Node, node *Node, hoisted []*Node) []*Node {
	acc = append(acc, hoisted...)
	if node != nil {
		acc = append(acc, node)
	}
	return acc
}

// buildNode decides how a single DOM node contributes to the enclosing
// accumulator. It returns the container created for n (nil when n
// contributes none) and the blocks that escaped from n's inline content;
// those belong in the accumulator before the container.
func (b builder) buildNode(n DOMNode) (node *Node, hoisted []*Node) {
	t := ClassifyTag(n.TagName())

	switch {
	case t.IsHeading(), t == NodeParagraph, t.IsList():
		node = NewContainer(t)
		node.Content, hoisted = b.buildChildren(n.Children(), t, nil)

	case t == NodeText:
		if n.TagName() == "" {
			if b.skipBlankText && strings.TrimSpace(n.Data()) == "" {
				return nil, nil
			}
			return NewContainer(NodeParagraph, NewText(n.Data())), nil
		}
		// An inline wrapper at block level becomes a paragraph; its own
		// mark applies to everything it wraps.
		node = NewContainer(NodeParagraph)
		node.Content, hoisted = b.buildChildren(n.Children(), NodeParagraph, MarksFor(n.TagName()))

	case t == NodeHyperlink:
		link, escaped := b.buildHyperlink(n, NodeParagraph, nil)
		node = NewContainer(NodeParagraph, link)
		hoisted = escaped
	}
	return node, hoisted
}

// buildChildren is the inline-flattening pass over a block container's DOM
// children. parent is the type of the enclosing container and inherited the
// marks of the inline tags between it and children. It returns the content
// for the container and the block-level nodes that escaped to the
// accumulator the container itself is built into.
func (b builder) buildChildren(children []DOMNode, parent NodeType, inherited []Mark) (content, hoisted []*Node) {
	for _, child := range children {
		tag := child.TagName()
		t := ClassifyTag(tag)
		marks := withMarks(inherited, MarksFor(tag))

		switch {
		case t == NodeText && !parent.IsList():
			if tag != "" {
				inner, escaped := b.buildChildren(child.Children(), parent, marks)
				content = append(content, inner...)
				hoisted = append(hoisted, escaped...)
				continue
			}
			leaf := NewText(child.Data())
			leaf.Marks = marks
			content = append(content, leaf)

		case t == NodeHyperlink && !parent.IsList():
			link, escaped := b.buildHyperlink(child, parent, marks)
			content = append(content, link)
			hoisted = append(hoisted, escaped...)

		case t == NodeListItem:
			content = append(content, b.buildListItem(child))

		default:
			// Block-level tags met in inline context are not nested under
			// the current container: they go to the enclosing accumulator.
			// So do text and links met directly inside a list.
			node, escaped := b.buildNode(child)
			hoisted = appendBlocks(hoisted, node, escaped)
		}
	}
	return content, hoisted
}

// buildListItem builds list item content with block semantics: each DOM
// child is built as if the item were the top-level accumulator.
func (b builder) buildListItem(n DOMNode) *Node {
	item := NewContainer(NodeListItem)
	for _, c := range n.Children() {
		node, hoisted := b.buildNode(c)
		item.Content = appendBlocks(item.Content, node, hoisted)
	}
	return item
}

// buildHyperlink builds a hyperlink whose inline content inherits marks.
// A missing href yields an empty URI.
func (b builder) buildHyperlink(n DOMNode, parent NodeType, inherited []Mark) (*Node, []*Node) {
	href, _ := n.Attr("href")
	link := NewHyperlink(href)
	var hoisted []*Node
	link.Content, hoisted = b.buildChildren(n.Children(), parent, inherited)
	return link, hoisted
}

// withMarks returns a new slice holding inherited followed by own; neither
// argument is modified.
func withMarks(inherited, own []Mark) []Mark {
	if len(inherited)+len(own) == 0 {
		return nil
	}
	out := make([]Mark, 0, len(inherited)+len(own))
	out = append(out, inherited...)
	return append(out, own...)
}
