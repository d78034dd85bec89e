package richtext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

//
// JSON wire format
//

type wireContainer struct {
	NodeType NodeType `json:"nodeType"`
	Data     Data     `json:"data"`
	Content  []*Node  `json:"content"`
}

type wireLeaf struct {
	NodeType NodeType `json:"nodeType"`
	Data     Data     `json:"data"`
	Marks    []Mark   `json:"marks"`
	Value    string   `json:"value"`
}

// MarshalJSON mirrors the node structurally. Containers always emit a
// content array and leaves always emit a marks array.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsLeaf() {
		marks := n.Marks
		if marks == nil {
			marks = []Mark{}
		}
		return json.Marshal(wireLeaf{
			NodeType: n.NodeType,
			Data:     n.Data,
			Marks:    marks,
			Value:    n.Value,
		})
	}
	content := n.Content
	if content == nil {
		content = []*Node{}
	}
	return json.Marshal(wireContainer{
		NodeType: n.NodeType,
		Data:     n.Data,
		Content:  content,
	})
}

// Encode writes root as JSON followed by a newline.
func Encode(w io.Writer, root *Node) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return wrap("encode", "", err)
	}
	return nil
}

// EncodeString is a convenience wrapper for Encode.
func EncodeString(root *Node) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Decode reads a JSON document tree. It checks the wire shape (node and
// mark types, leaf versus container fields) but not tree invariants; use
// Validate for those.
func Decode(r io.Reader) (*Node, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, wrap("decode", "", err)
	}
	return parseNode(raw, "$")
}

// DecodeString is a convenience wrapper for Decode.
func DecodeString(s string) (*Node, error) {
	return Decode(strings.NewReader(s))
}

//
// Errors
//

var (
	ErrMissingType = errors.New("missing nodeType")
	ErrInvalidType = errors.New("invalid nodeType")
	ErrInvalidMark = errors.New("invalid mark type")
	ErrLeafContent = errors.New("text node with content")
)

// Error is returned by Encode and Decode.
type Error struct {
	Op   string // "encode", "decode", "node"
	Path string // e.g. "$.content[2].content[0]"
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("richtext %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("richtext %s at %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Err: err}
}

//
// Parsing
//

type wireNode struct {
	NodeType *NodeType         `json:"nodeType"`
	Data     Data              `json:"data"`
	Content  []json.RawMessage `json:"content"`
	Marks    []Mark            `json:"marks"`
	Value    string            `json:"value"`
}

func parseNode(b []byte, path string) (*Node, error) {
	var w wireNode
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, wrap("node", path, err)
	}
	if w.NodeType == nil {
		return nil, wrap("node", path, ErrMissingType)
	}
	if !w.NodeType.Valid() {
		return nil, wrap("node", path, fmt.Errorf("%w: %q", ErrInvalidType, *w.NodeType))
	}

	n := &Node{NodeType: *w.NodeType, Data: w.Data}
	if n.IsLeaf() {
		if len(w.Content) > 0 {
			return nil, wrap("node", path, ErrLeafContent)
		}
		n.Value = w.Value
		for i, m := range w.Marks {
			if !m.Type.Valid() {
				return nil, wrap("node", fmt.Sprintf("%s.marks[%d]", path, i),
					fmt.Errorf("%w: %q", ErrInvalidMark, m.Type))
			}
			n.Marks = append(n.Marks, m)
		}
		return n, nil
	}

	for i, raw := range w.Content {
		child, err := parseNode(raw, childPath(path, i))
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, child)
	}
	return n, nil
}
