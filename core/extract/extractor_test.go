package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html lang="de">
<head><title> Seite </title><style>p{}</style></head>
<body>
<nav><a href="/">home</a></nav>
<main><h1>Titel</h1><p>Text <img src="x.png"></p><script>alert(1)</script></main>
<div class="post"><p>post body</p></div>
<footer>footer</footer>
</body>
</html>`

func TestExtractPrefersMain(t *testing.T) {
	got, err := New().Extract(page)
	require.NoError(t, err)

	assert.Equal(t, `<h1>Titel</h1><p>Text </p>`, got)
}

func TestExtractFallsBackToBody(t *testing.T) {
	got, err := New().Extract(`<html><body><p>only</p><footer>f</footer></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, `<p>only</p>`, got)
}

func TestExtractWithSelector(t *testing.T) {
	e, err := NewWithSelector("div.post")
	require.NoError(t, err)

	got, err := e.Extract(page)
	require.NoError(t, err)
	assert.Equal(t, `<p>post body</p>`, got)

	e, err = NewWithSelector("section#missing")
	require.NoError(t, err)
	_, err = e.Extract(page)
	assert.Error(t, err)
}

func TestNewWithSelectorRejectsInvalid(t *testing.T) {
	_, err := NewWithSelector("div[")
	assert.Error(t, err)
}

func TestReadMetadata(t *testing.T) {
	meta, err := ReadMetadata(page)
	require.NoError(t, err)
	assert.Equal(t, Metadata{Title: "Seite", Language: "de"}, meta)

	meta, err = ReadMetadata(`<p>fragment</p>`)
	require.NoError(t, err)
	assert.Equal(t, Metadata{Language: "en"}, meta)
}

func TestBodyKeepsContentAndDropsScripts(t *testing.T) {
	got, err := NewBody().Extract(`<html><head><title>Page</title><style>p{color:red}</style>` +
		`<script>var secret = 1;</script></head><body><nav>menu</nav><p>hello</p>` +
		`<script>track()</script></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, `<nav>menu</nav><p>hello</p>`, got)
}

func TestBodyLeavesFragmentsAlone(t *testing.T) {
	got, err := NewBody().Extract("<h1>T</h1>\n<ul><li><b>a</b></li></ul><style>x{}</style>")
	require.NoError(t, err)

	assert.Equal(t, "<h1>T</h1>\n<ul><li><b>a</b></li></ul>", got)
}
