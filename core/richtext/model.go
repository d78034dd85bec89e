// Package richtext converts parsed HTML into a normalized rich document tree.
// The tree is a small closed vocabulary of block containers (headings,
// paragraphs, lists, list items), hyperlinks, and text leaves carrying
// inline formatting marks.
package richtext

// NodeType identifies the kind of a node in the document tree.
type NodeType string

const (
	NodeDocument      NodeType = "document"
	NodeHeading1      NodeType = "heading-1"
	NodeHeading2      NodeType = "heading-2"
	NodeHeading3      NodeType = "heading-3"
	NodeHeading4      NodeType = "heading-4"
	NodeHeading5      NodeType = "heading-5"
	NodeHeading6      NodeType = "heading-6"
	NodeParagraph     NodeType = "paragraph"
	NodeOrderedList   NodeType = "ordered-list"
	NodeUnorderedList NodeType = "unordered-list"
	NodeListItem      NodeType = "list-item"
	NodeHyperlink     NodeType = "hyperlink"
	NodeText          NodeType = "text"
)

var headingLevels = map[NodeType]int{
	NodeHeading1: 1, NodeHeading2: 2, NodeHeading3: 3,
	NodeHeading4: 4, NodeHeading5: 5, NodeHeading6: 6,
}

// IsHeading reports whether t is one of heading-1 through heading-6.
func (t NodeType) IsHeading() bool {
	_, ok := headingLevels[t]
	return ok
}

// HeadingLevel returns 1-6 for heading types and 0 otherwise.
func (t NodeType) HeadingLevel() int {
	return headingLevels[t]
}

// IsList reports whether t is an ordered or unordered list.
func (t NodeType) IsList() bool {
	return t == NodeOrderedList || t == NodeUnorderedList
}

// Valid reports whether t belongs to the closed node vocabulary.
func (t NodeType) Valid() bool {
	switch t {
	case NodeDocument, NodeParagraph, NodeOrderedList, NodeUnorderedList,
		NodeListItem, NodeHyperlink, NodeText:
		return true
	}
	return t.IsHeading()
}

// MarkType identifies an inline formatting annotation.
type MarkType string

const (
	MarkBold      MarkType = "bold"
	MarkItalic    MarkType = "italic"
	MarkCode      MarkType = "code"
	MarkUnderline MarkType = "underline"
)

// Valid reports whether m belongs to the closed mark vocabulary.
func (m MarkType) Valid() bool {
	switch m {
	case MarkBold, MarkItalic, MarkCode, MarkUnderline:
		return true
	}
	return false
}

// Mark is a formatting annotation attached to a text leaf.
type Mark struct {
	Type MarkType `json:"type"`
}

// Data is the optional typed payload of a node. Only hyperlinks carry a URI.
type Data struct {
	URI *string `json:"uri,omitempty"`
}

// Kind is the structural variant of a node, derived from its NodeType.
type Kind int

const (
	KindContainer Kind = iota
	KindRoot
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindLeaf:
		return "leaf"
	default:
		return "container"
	}
}

// Node is a single node of the document tree.
//
// Containers (including the document root) use Content; leaves use Value and
// Marks. Every node is owned by exactly one parent.
type Node struct {
	NodeType NodeType
	Data     Data
	Content  []*Node
	Value    string
	Marks    []Mark
}

// Kind returns the structural variant of n.
func (n *Node) Kind() Kind {
	switch n.NodeType {
	case NodeDocument:
		return KindRoot
	case NodeText:
		return KindLeaf
	default:
		return KindContainer
	}
}

// IsLeaf reports whether n is a text leaf.
func (n *Node) IsLeaf() bool { return n != nil && n.Kind() == KindLeaf }

// URI returns the hyperlink payload and whether one is present.
func (n *Node) URI() (string, bool) {
	if n == nil || n.Data.URI == nil {
		return "", false
	}
	return *n.Data.URI, true
}

// HasMark reports whether a leaf carries at least one mark of type m.
func (n *Node) HasMark(m MarkType) bool {
	for _, mark := range n.Marks {
		if mark.Type == m {
			return true
		}
	}
	return false
}

// NewDocument creates the root node holding the given top-level blocks.
func NewDocument(content ...*Node) *Node {
	return &Node{NodeType: NodeDocument, Content: content}
}

// NewContainer creates a block container of type t.
// Passing NodeText or NodeDocument is a programming error.
func NewContainer(t NodeType, content ...*Node) *Node {
	if t == NodeText || t == NodeDocument {
		panic("richtext: NewContainer called with " + string(t))
	}
	return &Node{NodeType: t, Content: content}
}

// NewHyperlink creates a hyperlink container with the given URI payload.
func NewHyperlink(uri string, content ...*Node) *Node {
	return &Node{
		NodeType: NodeHyperlink,
		Data:     Data{URI: &uri},
		Content:  content,
	}
}

// NewText creates a text leaf.
func NewText(value string, marks ...MarkType) *Node {
	n := &Node{NodeType: NodeText, Value: value}
	for _, m := range marks {
		n.Marks = append(n.Marks, Mark{Type: m})
	}
	return n
}
