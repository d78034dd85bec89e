package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleInputs = []string{
	`<b>hi</b>`,
	`<a href="mailto:x">y</a>`,
	`<ol><li>a</li></ol>`,
	`<h1>T</h1>text`,
	`<b>Can we <i>nest?</i></b>`,
	`<a href="x"><b>bold link</b></a>`,
	`<p>this a test is <a href='mailto:test'>inmtext</a> test <b>Can we do it nested? <i>And nested styles?</i></b></p>`,
	`<ol><li><h1>Major one:</h1>eins</li><li>zwei</li></ol>`,
	`<ul><li>a<ul><li><a href="/b"><code>b</code></a></li></ul></li></ul>`,
	`<div><span>x</span><u>y</u></div><h3>z</h3>`,
	`<p><a>no href</a></p>`,
}

func TestConvertedTreesValidate(t *testing.T) {
	inputs := append([]string{
		`<b>x<h2>T</h2></b>`,
		`<ul>stray<li>a</li></ul>`,
		`<li>orphan</li>`,
		`<p>unclosed <b>bold`,
		"<ol>\n<li>a</li>\n</ol>",
		`<table><tr><td>cell</td></tr></table>`,
		`<ul><a href="x">y</a></ul>`,
		`<ol><li>a</li><a href="x">y</a></ol>`,
	}, sampleInputs...)

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			root := convert(t, input)
			assert.Equal(t, NodeDocument, root.NodeType)
			assert.Empty(t, Validate(root))

			require.NoError(t, Walk(root, func(n *Node, ctx WalkContext) error {
				if ctx.Parent != nil {
					assert.NotEqual(t, NodeDocument, n.NodeType, ctx.Path)
				}
				if n.IsLeaf() {
					assert.Empty(t, n.Content, ctx.Path)
				}
				return nil
			}))
		})
	}
}

func TestValidateReportsViolations(t *testing.T) {
	bad := NewDocument(
		NewContainer(NodeOrderedList, para(NewText("x"))),
		&Node{NodeType: NodeHyperlink},
		&Node{NodeType: NodeText, Content: []*Node{NewText("child")}},
		&Node{NodeType: NodeParagraph, Data: Data{URI: new(string)}},
		NewDocument(),
		&Node{NodeType: NodeText, Marks: []Mark{{Type: "strike"}}},
		&Node{NodeType: "table"},
	)

	errs := Validate(bad)
	var paths []string
	for _, err := range errs {
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		paths = append(paths, verr.Path)
	}

	assert.Equal(t, []string{
		"$.content[0].content[0]",
		"$.content[1]",
		"$.content[2]",
		"$.content[3]",
		"$.content[4]",
		"$.content[5].marks[0]",
		"$.content[6]",
	}, paths)
}

func TestValidateRoot(t *testing.T) {
	assert.Len(t, Validate(nil), 1)
	assert.Len(t, Validate(para(NewText("x"))), 1)
}

// Rendering a tree back to markup and converting it again must give the
// same tree, for inputs whose block tags are not nested in inline content.
func TestMarkupRoundTripIsStable(t *testing.T) {
	for _, input := range sampleInputs {
		t.Run(input, func(t *testing.T) {
			first := convert(t, input)

			markup, err := HTML(first)
			require.NoError(t, err)

			second := convert(t, markup)
			assert.Equal(t, first, second, "markup: %s", markup)
		})
	}
}

func TestHTML(t *testing.T) {
	root := doc(
		NewContainer(NodeHeading2, NewText("Title")),
		para(
			NewText("a < b "),
			NewText("both", MarkBold, MarkItalic),
			NewHyperlink("https://example.com/?q=1&r=2", NewText("link")),
		),
		NewContainer(NodeUnorderedList, NewContainer(NodeListItem, para(NewText("u", MarkUnderline)))),
	)

	got, err := HTML(root)
	require.NoError(t, err)

	assert.Equal(t,
		`<h2>Title</h2>`+
			`<p>a &lt; b <b><i>both</i></b><a href="https://example.com/?q=1&amp;r=2">link</a></p>`+
			`<ul><li><p><u>u</u></p></li></ul>`,
		got)
}

func TestHTMLRejectsUnknownTypes(t *testing.T) {
	_, err := HTML(doc(&Node{NodeType: "table"}))
	assert.Error(t, err)

	_, err = HTML(doc(para(&Node{NodeType: NodeText, Marks: []Mark{{Type: "strike"}}})))
	assert.Error(t, err)
}

func TestWalkSkipChildren(t *testing.T) {
	root := convert(t, `<ol><li>a</li></ol><p>b</p>`)

	var visited []NodeType
	err := Walk(root, func(n *Node, _ WalkContext) error {
		visited = append(visited, n.NodeType)
		if n.NodeType.IsList() {
			return SkipChildren
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []NodeType{NodeDocument, NodeOrderedList, NodeParagraph, NodeText}, visited)
}

func TestTextAndCount(t *testing.T) {
	root := convert(t, `<h1>T</h1><p>a <b>b</b></p><ul><li>c</li><li>d</li></ul>`)

	assert.Equal(t, "Ta bcd", Text(root))
	assert.Equal(t, 2, Count(root, NodeListItem))
	assert.Equal(t, 3, Count(root, NodeParagraph))
}
