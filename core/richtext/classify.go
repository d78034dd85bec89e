package richtext

// tagTypes maps recognized element names to node types.
var tagTypes = map[string]NodeType{
	"h1":  NodeHeading1,
	"h2":  NodeHeading2,
	"h3":  NodeHeading3,
	"h4":  NodeHeading4,
	"h5":  NodeHeading5,
	"h6":  NodeHeading6,
	"p":   NodeParagraph,
	"div": NodeParagraph,
	"ul":  NodeUnorderedList,
	"ol":  NodeOrderedList,
	"li":  NodeListItem,
	"a":   NodeHyperlink,
}

// ClassifyTag returns the node type for an element name. An empty name
// stands for a raw text node. Inline wrappers (span, b, i) and every
// unrecognized tag classify as NodeText.
func ClassifyTag(tag string) NodeType {
	if t, ok := tagTypes[tag]; ok {
		return t
	}
	return NodeText
}

// tagMarks maps inline formatting elements to the mark they contribute.
// "u" yields italic, not underline; downstream documents depend on it.
var tagMarks = map[string]MarkType{
	"b":    MarkBold,
	"i":    MarkItalic,
	"u":    MarkItalic,
	"code": MarkCode,
}

// MarksFor returns the marks an element contributes to its descendants:
// zero or one mark. The returned slice is freshly allocated.
func MarksFor(tag string) []Mark {
	if m, ok := tagMarks[tag]; ok {
		return []Mark{{Type: m}}
	}
	return nil
}
