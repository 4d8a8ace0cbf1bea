package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRemovesScriptAndStyle(t *testing.T) {
	html := `<p>Before.</p><script type="text/javascript">alert("x");</script><style>.a{color:red}</style><p>After.</p>`
	got := Clean(html)
	assert.Equal(t, "Before.\n\nAfter.", got)
}

func TestCleanDecodesEntities(t *testing.T) {
	got := Clean(`<p>Fish &amp; Chips &nbsp;&quot;daily&quot; &#39;special&#39; &lt;3</p>`)
	assert.Equal(t, `Fish & Chips  "daily" 'special' <3`, got)
}

func TestCleanNormalizesParagraphsAndBreaks(t *testing.T) {
	got := Clean(`<p>Line one<br>Line two</p><p class="intro">Next paragraph</p>`)
	assert.Equal(t, "Line one\nLine two\n\nNext paragraph", got)
}

func TestCleanKeepsAllowedTagsOnly(t *testing.T) {
	html := `<div><p>Plain <strong>bold</strong> <span>span</span></p><h2>Heading</h2><blockquote>Quote</blockquote><img src="a.jpg"><table><tr><td>cell</td></tr></table></div>`
	got := Clean(html)
	assert.Contains(t, got, "<strong>bold</strong>")
	assert.Contains(t, got, "<h2>Heading</h2>")
	assert.Contains(t, got, "<blockquote>Quote</blockquote>")
	assert.Contains(t, got, `<img src="a.jpg">`)
	assert.NotContains(t, got, "<span>")
	assert.NotContains(t, got, "<div>")
	assert.NotContains(t, got, "<table>")
	assert.Contains(t, got, "cell")
}

func TestCleanCollapsesBlankLines(t *testing.T) {
	got := Clean("<p>One</p><p></p><p></p><p>Two</p>")
	assert.Equal(t, "One\n\nTwo", got)
}

func TestCleanMalformedInputDegradesGracefully(t *testing.T) {
	// Unmatched tags pass through the removal rules silently.
	got := Clean("<p>Open only<div><b>bold")
	assert.Equal(t, "Open only<b>bold", got)
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Heading and bold", StripTags("<h2>Heading</h2> and <strong>bold</strong>"))
	assert.Equal(t, "plain", StripTags("plain"))
}

func TestExtractImages(t *testing.T) {
	html := `<p><img src="https://cdn.example.com/a.jpg" alt="A"></p>text<img class="x" src='https://cdn.example.com/b.png'><img alt="no src">`
	got := ExtractImages(html)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.png"}, got)
}

func TestExtractImagesEmpty(t *testing.T) {
	assert.Empty(t, ExtractImages("<p>No images here.</p>"))
}

func TestFirstImage(t *testing.T) {
	src, alt, ok := FirstImage(`Intro <img src="https://cdn.example.com/a.jpg" alt="First"> <img src="b.jpg">`)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/a.jpg", src)
	assert.Equal(t, "First", alt)
}

func TestFirstImageSkipsSrclessTags(t *testing.T) {
	src, alt, ok := FirstImage(`<img alt="broken"> then <img src="real.jpg">`)
	require.True(t, ok)
	assert.Equal(t, "real.jpg", src)
	assert.Empty(t, alt)
}

func TestFirstImageAbsent(t *testing.T) {
	_, _, ok := FirstImage("no image markup")
	assert.False(t, ok)
}
