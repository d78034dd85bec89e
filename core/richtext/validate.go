package richtext

import "fmt"

// ValidationError describes a violated tree invariant.
type ValidationError struct {
	Path    string
	Message string
	Node    *Node
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks the structural invariants of a document tree and returns
// every violation found. Trees produced by a Converter always validate.
func Validate(root *Node) []error {
	if root == nil {
		return []error{&ValidationError{Path: "$", Message: "nil document"}}
	}

	var errs []error
	report := func(n *Node, path, format string, args ...any) {
		errs = append(errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf(format, args...),
			Node:    n,
		})
	}

	if root.NodeType != NodeDocument {
		report(root, "$", "root has type %q, want %q", root.NodeType, NodeDocument)
	}

	_ = Walk(root, func(n *Node, ctx WalkContext) error {
		if n == nil {
			report(n, ctx.Path, "nil node")
			return SkipChildren
		}
		if !n.NodeType.Valid() {
			report(n, ctx.Path, "unknown node type %q", n.NodeType)
		}
		if ctx.Parent != nil && n.NodeType == NodeDocument {
			report(n, ctx.Path, "document nested inside %q", ctx.Parent.NodeType)
		}
		if ctx.Parent != nil && ctx.Parent.NodeType.IsList() && n.NodeType != NodeListItem {
			report(n, ctx.Path, "%q child of %q, want %q", n.NodeType, ctx.Parent.NodeType, NodeListItem)
		}

		switch {
		case n.NodeType == NodeHyperlink && n.Data.URI == nil:
			report(n, ctx.Path, "hyperlink without uri")
		case n.NodeType != NodeHyperlink && n.Data.URI != nil:
			report(n, ctx.Path, "uri on %q node", n.NodeType)
		}

		if n.IsLeaf() {
			if len(n.Content) > 0 {
				report(n, ctx.Path, "text leaf has %d children", len(n.Content))
			}
			for i, m := range n.Marks {
				if !m.Type.Valid() {
					report(n, fmt.Sprintf("%s.marks[%d]", ctx.Path, i), "unknown mark type %q", m.Type)
				}
			}
			return SkipChildren
		}
		if len(n.Marks) > 0 || n.Value != "" {
			report(n, ctx.Path, "container %q carries leaf fields", n.NodeType)
		}
		return nil
	})
	return errs
}
