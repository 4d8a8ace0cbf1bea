package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/storypress/core"
	"github.com/gaurav-prasanna/storypress/core/story"
	"github.com/gaurav-prasanna/storypress/core/templates"
	"github.com/gaurav-prasanna/storypress/core/validate"
)

func sampleMetadata() core.Metadata {
	return core.Metadata{
		Title:         "Hello World",
		Description:   "A sample story",
		Author:        "Jane Doe",
		PublisherName: "Example News",
		PublisherLogo: "https://example.com/logo.png",
		CanonicalURL:  "https://example.com/posts/hello-world",
	}
}

func sampleDocument() *core.StoryDocument {
	post := core.RawPost{
		Title:       "Hello World",
		Author:      "Jane Doe",
		HTMLContent: "<p>First paragraph text here.</p><blockquote>Stay hungry.</blockquote><p>Closing thoughts on everything.</p>",
	}
	slides := story.GenerateSlides(post, templates.Builtin()[0].Config, core.DefaultOptions(), func(n int) int { return 0 })
	return &core.StoryDocument{Slides: slides, Metadata: sampleMetadata()}
}

func TestAMPRenderShellMarkers(t *testing.T) {
	data, err := NewAMPRenderer().Render(sampleDocument())
	require.NoError(t, err)
	markup := string(data)

	assert.Contains(t, markup, "<html amp")
	assert.Contains(t, markup, `name="viewport"`)
	assert.Contains(t, markup, `<link rel="canonical" href="https://example.com/posts/hello-world">`)
	assert.Contains(t, markup, "<amp-story standalone")
	assert.Contains(t, markup, "application/ld+json")
	assert.Contains(t, markup, "amp-story-auto-ads")
	assert.Contains(t, markup, `publisher="Example News"`)
}

func TestAMPRenderPageFragments(t *testing.T) {
	doc := sampleDocument()
	data, err := NewAMPRenderer().Render(doc)
	require.NoError(t, err)
	markup := string(data)

	// One page per slide, ids carried through.
	assert.Equal(t, len(doc.Slides), strings.Count(markup, "<amp-story-page"))
	assert.Contains(t, markup, `<amp-story-page id="1"`)
	assert.Contains(t, markup, `<amp-story-page id="cta"`)

	assert.Contains(t, markup, "<h1")
	assert.Contains(t, markup, "<blockquote")
	assert.Contains(t, markup, "<cite>Jane Doe</cite>")
	assert.Contains(t, markup, `class="cta-button"`)
}

func TestAMPRenderEscapesUserContent(t *testing.T) {
	doc := &core.StoryDocument{
		Slides: []core.Slide{{
			ID:   "1",
			Type: core.SlideTypeContent,
			Content: core.SlideContent{
				Title: `Rock & Roll <Tips>`,
				Text:  `She said "don't" <script>alert(1)</script>`,
			},
			Style:  core.SlideStyle{Duration: 4},
			Layout: core.LayoutResponsive,
		}},
		Metadata: sampleMetadata(),
	}

	data, err := NewAMPRenderer().Render(doc)
	require.NoError(t, err)
	markup := string(data)

	assert.Contains(t, markup, "Rock &amp; Roll &lt;Tips&gt;")
	assert.Contains(t, markup, "She said &quot;don&#39;t&quot; &lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, markup, "<script>alert(1)</script>")
}

func TestAMPRenderPosterFallsBackToPublisherLogo(t *testing.T) {
	doc := sampleDocument()
	// The title slide has no featured image, so the logo is the poster.
	data, err := NewAMPRenderer().Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `poster-portrait-src="https://example.com/logo.png"`)
}

func TestAMPRenderPosterPrefersFirstSlideImage(t *testing.T) {
	doc := sampleDocument()
	doc.Slides[0].Content.Image = "https://example.com/featured.jpg"
	data, err := NewAMPRenderer().Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `poster-portrait-src="https://example.com/featured.jpg"`)
}

func TestAMPRenderRoundTripValidates(t *testing.T) {
	data, err := NewAMPRenderer().Render(sampleDocument())
	require.NoError(t, err)

	result := validate.Validate(string(data))
	assert.True(t, result.IsValid, "errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestJSONRenderRoundTrip(t *testing.T) {
	doc := sampleDocument()
	data, err := NewJSONRenderer().Render(doc)
	require.NoError(t, err)

	markup := string(data)
	assert.Contains(t, markup, `"canonicalUrl": "https://example.com/posts/hello-world"`)
	assert.Contains(t, markup, `"type": "title"`)
	assert.Contains(t, markup, `"id": "cta"`)
	assert.Equal(t, ".json", NewJSONRenderer().Extension())
}

func TestMarkdownRenderStoryboard(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(sampleDocument())
	require.NoError(t, err)
	md := string(data)

	assert.True(t, strings.HasPrefix(md, "# Hello World\n"))
	assert.Contains(t, md, "## Slide 1 (title, 6.0s)")
	assert.Contains(t, md, "> Stay hungry.")
	assert.Contains(t, md, "[Read Full Article](#)")
}

func TestPDFRenderProducesDocument(t *testing.T) {
	data, err := NewPDFRenderer().Render(sampleDocument())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Equal(t, ".pdf", NewPDFRenderer().Extension())
}
