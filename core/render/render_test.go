package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/richtext/core"
	"github.com/gaurav-prasanna/richtext/core/richtext"
)

const sample = `<h1>Guide</h1>` +
	`<p>Read <b>this</b> and <a href="https://example.com/docs">the docs</a>.</p>` +
	`<ol><li>one</li><li><i>two</i></li></ol>` +
	`<ul><li>x<ul><li>y</li></ul></li></ul>`

func sampleDoc(t *testing.T) *richtext.Node {
	t.Helper()
	doc, err := richtext.GenerateRichText(sample)
	require.NoError(t, err)
	return doc
}

var meta = core.PageMetadata{
	Source:    "https://example.com/guide",
	Domain:    "example.com",
	Path:      "/guide",
	Title:     "Guide",
	Language:  "en",
	FetchedAt: "2026-01-02T03:04:05Z",
}

func TestJSONRendererBare(t *testing.T) {
	doc := sampleDoc(t)

	data, err := NewJSONRenderer(false).Render(doc, meta)
	require.NoError(t, err)

	decoded, err := richtext.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
	assert.Equal(t, ".json", NewJSONRenderer(false).Extension())
}

func TestJSONRendererWithMetadata(t *testing.T) {
	data, err := NewJSONRenderer(true).Render(sampleDoc(t), meta)
	require.NoError(t, err)

	var out struct {
		Metadata  core.PageMetadata      `json:"metadata"`
		Document  json.RawMessage        `json:"document"`
		Structure core.DocumentStructure `json:"structure"`
	}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, meta, out.Metadata)
	assert.Contains(t, string(out.Document), `"nodeType":"document"`)
	assert.Equal(t, core.DocumentStructure{
		Headings:   []core.Heading{{Level: 1, Text: "Guide"}},
		Links:      []core.Link{{Text: "the docs", Href: "https://example.com/docs"}},
		Paragraphs: 5,
		Lists:      3,
		ListItems:  4,
	}, out.Structure)
}

func TestStructureOfEmptyDocument(t *testing.T) {
	s := Structure(richtext.NewDocument())
	assert.NotNil(t, s.Headings)
	assert.NotNil(t, s.Links)
	assert.Zero(t, s.Paragraphs)
}

func TestHTMLRenderer(t *testing.T) {
	data, err := NewHTMLRenderer().Render(sampleDoc(t), meta)
	require.NoError(t, err)

	assert.Equal(t,
		`<h1>Guide</h1>`+
			`<p>Read <b>this</b> and <a href="https://example.com/docs">the docs</a>.</p>`+
			`<ol><li><p>one</p></li><li><p><i>two</i></p></li></ol>`+
			`<ul><li><p>x</p><ul><li><p>y</p></li></ul></li></ul>`+"\n",
		string(data))
}

func TestMarkdownRenderer(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(sampleDoc(t), meta)
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "# Guide")
	assert.Contains(t, md, "**this**")
	assert.Contains(t, md, "[the docs](https://example.com/docs)")
	assert.Contains(t, md, "*two*")
	assert.Equal(t, ".md", NewMarkdownRenderer().Extension())
}

func TestTextRenderer(t *testing.T) {
	data, err := NewTextRenderer(80).Render(sampleDoc(t), core.PageMetadata{})
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"Guide",
		"=====",
		"",
		"Read this and the docs <https://example.com/docs>.",
		"",
		"1. one",
		"2. two",
		"",
		"- x",
		"  - y",
	}, "\n")+"\n", string(data))
}

func TestTextRendererWraps(t *testing.T) {
	doc, err := richtext.GenerateRichText(`<p>aaa bbb ccc ddd</p><ul><li>eee fff ggg</li></ul>`)
	require.NoError(t, err)

	data, err := NewTextRenderer(8).Render(doc, core.PageMetadata{})
	require.NoError(t, err)

	assert.Equal(t, "aaa bbb\nccc ddd\n\n- eee\n  fff\n  ggg\n", string(data))
}

func TestWrapCountsWideRunes(t *testing.T) {
	assert.Equal(t, []string{"日本", "語"}, wrap("日本 語", 5))
	assert.Equal(t, []string{"toolongword", "x"}, wrap("toolongword x", 4))
	assert.Nil(t, wrap("   ", 10))
}

func TestTextRendererNormalizesToNFC(t *testing.T) {
	doc := richtext.NewDocument(richtext.NewContainer(richtext.NodeParagraph,
		richtext.NewText("Cafe\u0301"),
	))

	data, err := NewTextRenderer(0).Render(doc, core.PageMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9\n", string(data))
}

func TestPDFRenderer(t *testing.T) {
	data, err := NewPDFRenderer().Render(sampleDoc(t), meta)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, ".pdf", NewPDFRenderer().Extension())
}

func TestFontFor(t *testing.T) {
	cases := []struct {
		name   string
		marks  []richtext.Mark
		base   string
		family string
		style  string
	}{
		{"plain", nil, "", "Helvetica", ""},
		{"bold italic", []richtext.Mark{{Type: richtext.MarkBold}, {Type: richtext.MarkItalic}}, "", "Helvetica", "BI"},
		{"code", []richtext.Mark{{Type: richtext.MarkCode}}, "", "Courier", ""},
		{"heading base", []richtext.Mark{{Type: richtext.MarkItalic}}, "B", "Helvetica", "BI"},
		{"link base", []richtext.Mark{{Type: richtext.MarkBold}}, "U", "Helvetica", "BU"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			family, style := fontFor(tc.marks, tc.base)
			assert.Equal(t, tc.family, family)
			assert.Equal(t, tc.style, style)
		})
	}
}
