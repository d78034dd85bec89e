package richtext

import (
	"errors"
	"strconv"
	"strings"
)

// SkipChildren may be returned from a WalkFunc to skip a node's subtree.
var SkipChildren = errors.New("skip children")

// WalkContext describes where a visited node sits in the tree.
type WalkContext struct {
	Parent *Node
	Index  int // position within Parent.Content
	Depth  int // 0 for the root
	Path   string
}

// WalkFunc is called for every node in depth-first pre-order.
type WalkFunc func(n *Node, ctx WalkContext) error

// Walk visits root and its descendants in document order. It stops at the
// first error other than SkipChildren and returns it.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	err := walk(root, WalkContext{Path: "$"}, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walk(n *Node, ctx WalkContext, fn WalkFunc) error {
	if err := fn(n, ctx); err != nil {
		return err
	}
	if n == nil {
		return nil
	}
	for i, c := range n.Content {
		child := WalkContext{
			Parent: n,
			Index:  i,
			Depth:  ctx.Depth + 1,
			Path:   childPath(ctx.Path, i),
		}
		if err := walk(c, child, fn); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
	}
	return nil
}

// Text concatenates the values of all leaves under n.
func Text(n *Node) string {
	var buf strings.Builder
	_ = Walk(n, func(n *Node, _ WalkContext) error {
		if n.IsLeaf() {
			buf.WriteString(n.Value)
		}
		return nil
	})
	return buf.String()
}

// Count returns how many nodes under root (inclusive) have type t.
func Count(root *Node, t NodeType) int {
	count := 0
	_ = Walk(root, func(n *Node, _ WalkContext) error {
		if n != nil && n.NodeType == t {
			count++
		}
		return nil
	})
	return count
}

func childPath(parent string, i int) string {
	return parent + ".content[" + strconv.Itoa(i) + "]"
}
