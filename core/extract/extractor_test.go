package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Fallback Title | Example News</title>
<meta property="og:title" content="Hello World">
<meta property="og:description" content="A short summary of the post.">
<meta property="og:image" content="https://example.com/featured.jpg">
<meta name="author" content="Jane Doe">
<meta property="article:section" content="Technology">
<meta property="article:tag" content="go">
<meta property="article:tag" content="stories">
</head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Hello World</h1>
<p>First paragraph text here.</p>
<img src="https://example.com/inline.jpg" alt="Inline">
<p>Second paragraph.</p>
</article>
<footer>© Example News</footer>
<script>analytics();</script>
</body>
</html>`

func TestExtractBuildsRawPost(t *testing.T) {
	post, err := New().Extract(samplePage, "https://example.com/posts/hello")
	require.NoError(t, err)

	assert.Equal(t, "Hello World", post.Title)
	assert.Equal(t, "A short summary of the post.", post.Excerpt)
	assert.Equal(t, "https://example.com/featured.jpg", post.FeaturedImage)
	assert.Equal(t, "Jane Doe", post.Author)
	assert.Equal(t, []string{"Technology"}, post.Categories)
	assert.Equal(t, []string{"go", "stories"}, post.Tags)
}

func TestExtractKeepsArticleContentAndImages(t *testing.T) {
	post, err := New().Extract(samplePage, "https://example.com/posts/hello")
	require.NoError(t, err)

	assert.Contains(t, post.HTMLContent, "First paragraph text here.")
	// Images are story content, not noise.
	assert.Contains(t, post.HTMLContent, `src="https://example.com/inline.jpg"`)
	// Navigation, footer, and scripts are noise.
	assert.NotContains(t, post.HTMLContent, "<nav>")
	assert.NotContains(t, post.HTMLContent, "<footer>")
	assert.NotContains(t, post.HTMLContent, "analytics()")
}

func TestExtractFallsBackToTitleTag(t *testing.T) {
	page := `<html><head><title>Only Title</title></head><body><p>Text body.</p></body></html>`
	post, err := New().Extract(page, "https://example.com/x")
	require.NoError(t, err)
	assert.Equal(t, "Only Title", post.Title)
	assert.Contains(t, post.HTMLContent, "Text body.")
}
