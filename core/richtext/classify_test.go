package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTag(t *testing.T) {
	cases := []struct {
		tag  string
		want NodeType
	}{
		{"h1", NodeHeading1},
		{"h2", NodeHeading2},
		{"h3", NodeHeading3},
		{"h4", NodeHeading4},
		{"h5", NodeHeading5},
		{"h6", NodeHeading6},
		{"p", NodeParagraph},
		{"div", NodeParagraph},
		{"ul", NodeUnorderedList},
		{"ol", NodeOrderedList},
		{"li", NodeListItem},
		{"a", NodeHyperlink},
		{"span", NodeText},
		{"b", NodeText},
		{"i", NodeText},
		{"", NodeText},
		{"table", NodeText},
		{"h7", NodeText},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyTag(tc.tag))
		})
	}
}

func TestMarksFor(t *testing.T) {
	assert.Equal(t, []Mark{{MarkBold}}, MarksFor("b"))
	assert.Equal(t, []Mark{{MarkItalic}}, MarksFor("i"))
	assert.Equal(t, []Mark{{MarkCode}}, MarksFor("code"))
	assert.Empty(t, MarksFor("span"))
	assert.Empty(t, MarksFor("strong"))
	assert.Empty(t, MarksFor(""))
}

// <u> produces italic, never underline. Changing this alters existing
// documents and has to be a deliberate decision.
func TestMarksForUnderlineTagIsItalic(t *testing.T) {
	assert.Equal(t, []Mark{{MarkItalic}}, MarksFor("u"))
}

func TestMarksForReturnsFreshSlice(t *testing.T) {
	first := MarksFor("b")
	first[0].Type = MarkCode
	assert.Equal(t, []Mark{{MarkBold}}, MarksFor("b"))
}

func TestNodeTypePredicates(t *testing.T) {
	assert.True(t, NodeHeading3.IsHeading())
	assert.Equal(t, 3, NodeHeading3.HeadingLevel())
	assert.Equal(t, 0, NodeParagraph.HeadingLevel())
	assert.True(t, NodeOrderedList.IsList())
	assert.True(t, NodeUnorderedList.IsList())
	assert.False(t, NodeListItem.IsList())
	assert.False(t, NodeType("table").Valid())
	assert.False(t, MarkType("strike").Valid())
}
